package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vinted/models"
)

func TestGetServerVersion(t *testing.T) {
	h, s := newTestHandler(t)
	s.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	s.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.0", "2026-10-01", ""))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, map[string]string{
		"version":     "1.2.3",
		"buildDate":   "2026-10-01",
		"buildCommit": "N/A",
	}, body)
}
