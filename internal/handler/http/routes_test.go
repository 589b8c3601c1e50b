package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vinted/models"
)

func TestInit_Home(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Hello Vinted API", decodeMessage(t, rec))
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/does-not-exist"},
		{http.MethodGet, "/offer/publish/extra/segments"},
		{http.MethodPatch, "/offer/modify/123"},
		{http.MethodGet, "/user/logout"},
		{http.MethodDelete, "/offer"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Endpoint not found", decodeMessage(t, rec))
		})
	}
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/user/logout"},
		{http.MethodPost, "/offer/publish"},
		{http.MethodPut, "/offer/modify/6560f1f77bcf86cd79943901"},
		{http.MethodDelete, "/offer/delete/6560f1f77bcf86cd79943901"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Unauthorized", decodeMessage(t, rec))
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rec := serve(h, req)

	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)
	h.frontendURL = "https://shop.example.com"

	req := httptest.NewRequest(http.MethodOptions, "/offer/publish", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := serve(h, req)

	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestInit_MetricsRecordRoutePattern(t *testing.T) {
	h, s := newTestHandler(t)
	router := h.Init()

	s.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	s.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("", "", ""))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/version", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.True(t, strings.Contains(text, `test_requests_total{method="GET",route="/version",status="200"} 1`), text)
	assert.True(t, strings.Contains(text, `route="unmatched",status="404"`), text)
	assert.False(t, strings.Contains(text, `route="/nowhere"`))
}
