package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vinted/internal/service"
	"github.com/MKhiriev/go-vinted/internal/utils"
	"github.com/MKhiriev/go-vinted/models"
)

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc123", wantToken: "abc123"},
		{name: "bare token", header: "abc123", wantToken: "abc123"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "prefix only", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "blank token", header: "Bearer    ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Middleware(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID(), Account: models.Account{Username: "alice"}}

	tests := []struct {
		name        string
		header      string
		setup       func(s testServices)
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:        "empty token",
			header:      "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:   "unknown token",
			header: "Bearer nobody",
			setup: func(s testServices) {
				s.auth.EXPECT().Authenticate(gomock.Any(), "nobody").Return(models.User{}, service.ErrUnauthorized)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:   "lookup failure",
			header: "Bearer abc",
			setup: func(s testServices) {
				s.auth.EXPECT().Authenticate(gomock.Any(), "abc").Return(models.User{}, errors.New("server selection timeout"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unknown error occurred",
		},
		{
			name:   "valid token",
			header: "Bearer abc",
			setup: func(s testServices) {
				authorize(s, "abc", user)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(s)
			}

			var nextUser models.User
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				nextUser, _ = utils.GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/user/logout", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			}
			if tt.wantNext {
				assert.Equal(t, user.ID, nextUser.ID)
			}
		})
	}
}
