package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/metrics"
	"github.com/MKhiriev/go-vinted/internal/mock"
	"github.com/MKhiriev/go-vinted/internal/service"
	"github.com/MKhiriev/go-vinted/models"
)

type testServices struct {
	auth    *mock.MockAuthService
	offers  *mock.MockOfferService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		offers:  mock.NewMockOfferService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    s.auth,
		OfferService:   s.offers,
		AppInfoService: s.appInfo,
	}

	h := NewHandler(services, metrics.New("test"), config.Server{MaxUploadSize: 1 << 20}, logger.Nop())
	return h, s
}

type testFile struct {
	field       string
	name        string
	contentType string
	data        []byte
}

// newMultipartBody encodes fields and files the way a browser form would.
func newMultipartBody(t *testing.T, fields map[string]string, files ...testFile) (io.Reader, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)

		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

// authorize makes the next Authenticate call accept token as user.
func authorize(s testServices, token string, user models.User) {
	s.auth.EXPECT().Authenticate(gomock.Any(), token).Return(user, nil)
}
