package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cash-card/internal/logger"
)

const encodingGzip = "gzip"

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && acceptsGzip(r.Header.Get("Content-Encoding")) {
			body, err := newGzipBody(r.Body)
			if err != nil {
				logger.FromRequest(r).Debug().Err(err).Str("func", "withGZip").Msg("request body is not gzip")
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}

			r.Body = body
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}

		if !acceptsGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriterPool.Get().(*gzip.Writer),
		}
		defer gzipWriterPool.Put(gw.gzipWriter)

		next.ServeHTTP(gw, r)
		if err := gw.finish(); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "withGZip").Msg("error closing gzip stream")
		}
	})
}

// acceptsGzip reports whether a comma separated coding list names gzip
// with a non-zero quality.
func acceptsGzip(header string) bool {
	for _, coding := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(coding, ";")
		if !strings.EqualFold(strings.TrimSpace(name), encodingGzip) {
			continue
		}

		q, found := strings.CutPrefix(strings.TrimSpace(params), "q=")
		if !found {
			return true
		}
		quality, err := strconv.ParseFloat(q, 64)
		return err != nil || quality > 0
	}
	return false
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
	source io.ReadCloser
}

func newGzipBody(source io.ReadCloser) (*gzipBody, error) {
	reader := gzipReaderPool.Get().(*gzip.Reader)
	if err := reader.Reset(source); err != nil {
		gzipReaderPool.Put(reader)
		return nil, err
	}
	return &gzipBody{Reader: reader, source: source}, nil
}

func (b *gzipBody) Close() error {
	b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	return b.source.Close()
}

// gzipResponseWriter starts compressing on the first body write. Responses
// without a body (201, 404, 405) are sent as is, without an empty gzip
// stream.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	status      int
	wroteHeader bool
	compressing bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if !w.compressing {
		w.compressing = true

		header := w.Header()
		header.Set("Content-Encoding", encodingGzip)
		header.Add("Vary", "Accept-Encoding")
		header.Del("Content-Length")

		w.gzipWriter.Reset(w.ResponseWriter)
		w.ResponseWriter.WriteHeader(w.status)
	}

	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) finish() error {
	if w.compressing {
		return w.gzipWriter.Close()
	}
	if w.wroteHeader {
		w.ResponseWriter.WriteHeader(w.status)
	}
	return nil
}
