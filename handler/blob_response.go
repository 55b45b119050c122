package handler

import (
	"net/http"
	"strconv"
)

// BlobOption configures a binary response.
type BlobOption func(*blobResponse)

// WithCacheControl sets the Cache-Control header.
func WithCacheControl(value string) BlobOption {
	return func(b *blobResponse) { b.cacheControl = value }
}

// WithFilename suggests a download name via Content-Disposition (inline).
func WithFilename(name string) BlobOption {
	return func(b *blobResponse) { b.filename = name }
}

type blobResponse struct {
	contentType  string
	data         []byte
	cacheControl string
	filename     string
}

func (b blobResponse) Render(w http.ResponseWriter, r *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", b.contentType)
	h.Set("Content-Length", strconv.Itoa(len(b.data)))
	if b.cacheControl != "" {
		h.Set("Cache-Control", b.cacheControl)
	}
	if b.filename != "" {
		h.Set("Content-Disposition", "inline; filename="+strconv.Quote(b.filename))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(b.data)
	return err
}

// Blob responds with raw bytes, such as a rendered QR code image.
func Blob(contentType string, data []byte, opts ...BlobOption) Response {
	b := blobResponse{contentType: contentType, data: data}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
