// Package qrcode renders QR codes as PNG images using
// github.com/skip2/go-qrcode.
//
// Course pages use it to offer a scannable link to the course's external URL:
//
//	png, err := qrcode.Generate(course.URL, qrcode.WithSize(320))
//	uri, err := qrcode.DataURI(course.URL)
package qrcode
