package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-vinted/internal/logger"
)

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		status   int
		body     string
		wantLogs []string
	}{
		{
			name:     "GET 200",
			method:   http.MethodGet,
			path:     "/offer?page=2",
			status:   http.StatusOK,
			body:     "OK",
			wantLogs: []string{`"method":"GET"`, `"uri":"/offer?page=2"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:     "POST 201",
			method:   http.MethodPost,
			path:     "/offer/publish",
			status:   http.StatusCreated,
			body:     `{"id":"1"}`,
			wantLogs: []string{`"method":"POST"`, `"status":201`, `"size":10`},
		},
		{
			name:     "status without body",
			method:   http.MethodDelete,
			path:     "/offer/delete/1",
			status:   http.StatusNoContent,
			wantLogs: []string{`"status":204`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(buf).WithContext(req.Context()))
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantLogs {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	buf := &bytes.Buffer{}
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zerolog.New(buf).WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"route":"unmatched"`)
}

func TestWithLogging_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, `"level":"info"`},
		{http.StatusNotFound, `"level":"warn"`},
		{http.StatusInternalServerError, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			buf := &bytes.Buffer{}
			h := &Handler{logger: logger.Nop()}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/offer", nil)
			req = req.WithContext(zerolog.New(buf).WithContext(req.Context()))
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}
