// Package file is the publish target for static exports of the site.
//
// Storage is implemented by LocalStorage, which writes into a directory on
// disk, and by S3Storage, which uploads to Amazon S3 or an S3-compatible
// service (MinIO, R2) through aws-sdk-go-v2.
//
// Keys are slash separated and relative to the storage root. CleanKey
// normalises them and rejects "..", and PagePath maps a site route to the
// key of its rendered page:
//
//	key, _ := file.PagePath("/ko/courses") // "ko/courses/index.html"
//	obj, err := storage.Put(ctx, key, bytes.NewReader(html), "")
//
// S3 failures are classified into package sentinel errors (ErrAccessDenied,
// ErrBucketNotFound, ErrServiceUnavailable, ErrOperationTimeout and so on)
// so callers can match them with errors.Is.
package file
