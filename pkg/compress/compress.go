package compress

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
)

// DefaultLevel is a good speed/size balance for dynamically rendered pages.
const DefaultLevel = 5

var defaultTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"text/xml",
	"application/javascript",
	"text/javascript",
	"application/json",
	"application/xml",
	"image/svg+xml",
}

// Option configures the middleware.
type Option func(*config)

type config struct {
	level int
	types []string
}

// WithLevel sets the brotli quality (0-11). Out of range values are ignored.
func WithLevel(level int) Option {
	return func(c *config) {
		if level >= brotli.BestSpeed && level <= brotli.BestCompression {
			c.level = level
		}
	}
}

// WithContentTypes replaces the list of compressible media types.
func WithContentTypes(types ...string) Option {
	return func(c *config) {
		if len(types) > 0 {
			c.types = types
		}
	}
}

// Middleware brotli-encodes responses for clients that accept "br".
// Event streams, already encoded bodies and media types outside the
// configured list are passed through untouched.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := config{level: DefaultLevel, types: defaultTypes}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool := &sync.Pool{New: func() any {
		return brotli.NewWriterLevel(io.Discard, cfg.level)
	}}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Encoding")

			if r.Method == http.MethodHead || !AcceptsBrotli(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}

			cw := &responseWriter{ResponseWriter: w, cfg: &cfg, pool: pool}
			defer cw.Close()
			next.ServeHTTP(cw, r)
		})
	}
}

// AcceptsBrotli reports whether an Accept-Encoding header allows "br".
func AcceptsBrotli(header string) bool {
	for part := range strings.SplitSeq(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "br") {
			continue
		}
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			q, err := strconv.ParseFloat(v, 64)
			return err != nil || q > 0
		}
		return true
	}
	return false
}

type responseWriter struct {
	http.ResponseWriter
	cfg  *config
	pool *sync.Pool

	code        int
	wroteHeader bool
	br          *brotli.Writer
}

func (w *responseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.code = code
	if code < http.StatusOK || code == http.StatusNoContent || code == http.StatusNotModified {
		w.commit(nil)
	}
}

func (w *responseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.commit(p)
	}
	if w.br != nil {
		return w.br.Write(p)
	}
	return w.ResponseWriter.Write(p)
}

// commit decides whether to compress and writes the header.
func (w *responseWriter) commit(first []byte) {
	w.wroteHeader = true
	if w.code == 0 {
		w.code = http.StatusOK
	}

	h := w.Header()
	if first != nil && h.Get("Content-Type") == "" {
		h.Set("Content-Type", http.DetectContentType(first))
	}

	if first != nil && h.Get("Content-Encoding") == "" && w.compressible(h.Get("Content-Type")) {
		h.Set("Content-Encoding", "br")
		h.Del("Content-Length")
		w.br = w.pool.Get().(*brotli.Writer)
		w.br.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(w.code)
}

func (w *responseWriter) compressible(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	for _, t := range w.cfg.types {
		if strings.EqualFold(t, mediaType) {
			return true
		}
	}
	return false
}

// Flush implements http.Flusher.
func (w *responseWriter) Flush() {
	if w.br != nil {
		_ = w.br.Flush()
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Close finishes the brotli stream and returns the encoder to the pool.
func (w *responseWriter) Close() error {
	if !w.wroteHeader {
		if w.code == 0 {
			return nil
		}
		w.commit(nil)
	}
	if w.br == nil {
		return nil
	}
	err := w.br.Close()
	w.br.Reset(io.Discard)
	w.pool.Put(w.br)
	w.br = nil
	return err
}

// Unwrap supports http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
