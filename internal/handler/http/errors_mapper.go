package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vinted/internal/app"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/service"
	"github.com/MKhiriev/go-vinted/internal/store"
	"github.com/MKhiriev/go-vinted/internal/utils"
	"github.com/MKhiriev/go-vinted/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order, the first hit wins.
var errorResponses = []errorResponse{
	{ErrInvalidForm, http.StatusBadRequest, app.MsgInvalidForm},
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge},

	{validators.ErrMissingRequiredFields, http.StatusBadRequest, app.MsgMissingRequiredFields},
	{validators.ErrInvalidPrice, http.StatusBadRequest, app.MsgInvalidPrice},
	{validators.ErrPriceNotWhole, http.StatusBadRequest, app.MsgPriceNotWhole},
	{validators.ErrTitleTooLong, http.StatusBadRequest, app.MsgTitleTooLong},
	{validators.ErrDescriptionTooLong, http.StatusBadRequest, app.MsgDescriptionTooLong},
	{validators.ErrInvalidFileType, http.StatusBadRequest, app.MsgInvalidFileType},
	{validators.ErrInvalidPriceMin, http.StatusBadRequest, app.MsgInvalidPriceMin},
	{validators.ErrInvalidPriceMax, http.StatusBadRequest, app.MsgInvalidPriceMax},
	{validators.ErrInvalidSort, http.StatusBadRequest, app.MsgInvalidSort},
	{validators.ErrUsernameHasSpaces, http.StatusNotAcceptable, app.MsgUsernameHasSpaces},

	{service.ErrInvalidOfferID, http.StatusBadRequest, app.MsgInvalidOfferID},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrUnauthorized, http.StatusUnauthorized, app.MsgUnauthorized},
	{service.ErrForbiddenModify, http.StatusForbidden, app.MsgModifyForbidden},
	{service.ErrForbiddenDelete, http.StatusForbidden, app.MsgDeleteForbidden},
	{service.ErrUsernameTaken, http.StatusConflict, app.MsgUsernameTaken},
	{service.ErrEmailTaken, http.StatusConflict, app.MsgEmailTaken},

	{store.ErrOfferNotFound, http.StatusNotFound, app.MsgOfferNotFound},
}

// responseFromError returns the status and message sent for err.
// Errors without an entry are reported as 500 with a generic message.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgUnknownError
}

// writeError is the central error responder. The full error is only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}

func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgEndpointNotFound, http.StatusNotFound)
}
