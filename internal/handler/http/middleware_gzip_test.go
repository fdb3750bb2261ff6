// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardsPayload = `[{"id":100,"amount":1.00},{"id":99,"amount":123.45},{"id":101,"amount":150.00}]`

func gzipBytes(t *testing.T, data string) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	zw := gzip.NewWriter(buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

// echo отвечает телом запроса
var echo = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
})

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{header: "", want: false},
		{header: "gzip", want: true},
		{header: "GZIP", want: true},
		{header: "deflate, gzip, br", want: true},
		{header: "gzip;q=1.0, identity;q=0.5", want: true},
		{header: "gzip; q=0.3", want: true},
		{header: "gzip;q=0", want: false},
		{header: "br, deflate", want: false},
		{header: "x-gzip-ish", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, acceptsGzip(tt.header))
		})
	}
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", wantGzip: true},
		{name: "client lists several codings", acceptEncoding: "deflate, gzip", wantGzip: true},
		{name: "client refuses gzip", acceptEncoding: "gzip;q=0", wantGzip: false},
		{name: "no accept-encoding", acceptEncoding: "", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, cashCardsPath, strings.NewReader(cardsPayload))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(echo).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			if !tt.wantGzip {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, cardsPayload, rr.Body.String())
				return
			}

			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, cardsPayload, gunzip(t, rr.Body))
		})
	}
}

func TestGZip_RequestBody(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		body            func(t *testing.T) io.Reader
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "gzip body is inflated",
			contentEncoding: "gzip",
			body:            func(t *testing.T) io.Reader { return gzipBytes(t, `{"amount":250.00}`) },
			wantStatus:      http.StatusOK,
			wantBody:        `{"amount":250.00}`,
		},
		{
			name:            "plain body passes through",
			contentEncoding: "",
			body:            func(t *testing.T) io.Reader { return strings.NewReader(`{"amount":1}`) },
			wantStatus:      http.StatusOK,
			wantBody:        `{"amount":1}`,
		},
		{
			name:            "body claiming gzip but plain",
			contentEncoding: "gzip",
			body:            func(t *testing.T) io.Reader { return strings.NewReader(`{"amount":1}`) },
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader http.Header
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Clone()
				echo(w, r)
			})

			req := httptest.NewRequest(http.MethodPost, cashCardsPath, tt.body(t))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Nil(t, gotHeader, "next handler must not run")
				return
			}
			assert.Equal(t, tt.wantBody, rr.Body.String())
			assert.Empty(t, gotHeader.Get("Content-Encoding"))
		})
	}
}

func TestGZip_RoundTrip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, cashCardsPath, gzipBytes(t, cardsPayload))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(echo).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, cardsPayload, gunzip(t, rr.Body))
}

func TestGZip_LargePageIsSmaller(t *testing.T) {
	page := "[" + strings.Repeat(`{"id":99,"amount":123.45},`, 500) + `{"id":100,"amount":1}]`
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})

	req := httptest.NewRequest(http.MethodGet, cashCardsPath, nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(page)/10)
	assert.Equal(t, page, gunzip(t, bytes.NewReader(rr.Body.Bytes())))
}

func TestGZip_PooledWritersAreReset(t *testing.T) {
	handler := withGZip(echo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := strings.Repeat("x", i+1)
			req := httptest.NewRequest(http.MethodPost, cashCardsPath, strings.NewReader(body))
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			got, err := io.ReadAll(zr)
			assert.NoError(t, err)
			assert.Equal(t, body, string(got))
		}()
	}
	wg.Wait()
}

func TestGZip_EmptyResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "created without body", status: http.StatusCreated},
		{name: "not found without body", status: http.StatusNotFound},
		{name: "no content", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "http://example.com/cashcards/1")
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodPost, cashCardsPath, nil)
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Empty(t, rr.Header().Get("Content-Encoding"), "empty responses are not wrapped in a gzip stream")
			assert.Equal(t, "http://example.com/cashcards/1", rr.Header().Get("Location"))
			assert.Zero(t, rr.Body.Len())
		})
	}
}

func TestGZip_HandlerWritesNothing(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, cashCardsPath, nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_DropsPlainContentLength(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "2")
		w.Write([]byte("[]"))
	})

	req := httptest.NewRequest(http.MethodGet, cashCardsPath, nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Length"), "length of the plain body must not leak")
	assert.Equal(t, "[]", gunzip(t, rr.Body))
}

func TestGzipBody_Close(t *testing.T) {
	source := io.NopCloser(gzipBytes(t, "data"))

	body, err := newGzipBody(source)
	require.NoError(t, err)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
	assert.NoError(t, body.Close())
}
