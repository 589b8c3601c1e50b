package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-vinted/internal/app"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/utils"
	"github.com/MKhiriev/go-vinted/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.parseForm(w, r); err != nil {
		writeError(w, r, err)
		return
	}

	req := models.SignUpRequest{
		Username:   r.FormValue("username"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		Newsletter: formBool(r.FormValue("newsletter")),
	}

	avatars, err := formFiles(r, "avatar")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(avatars) > 0 {
		req.Avatar = &avatars[0]
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID.Hex()).Msg("user signed up")
	utils.WriteMessage(w, fmt.Sprintf(app.MsgUserCreated, user.Email), http.StatusCreated)
}

// loginFromQuery serves legacy clients sending credentials in the query
// string.
func (h *Handler) loginFromQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.login(w, r, models.LoginRequest{
		Email:    query.Get("email"),
		Password: query.Get("password"),
	})
}

func (h *Handler) loginFromBody(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
			return
		}
	} else {
		if err := h.parseForm(w, r); err != nil {
			writeError(w, r, err)
			return
		}
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
	}

	h.login(w, r, req)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, req models.LoginRequest) {
	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID.Hex()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		ID:      user.ID,
		Token:   user.Token,
		Account: user.Account,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgUserLoggedOut, http.StatusOK)
}
