package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-vinted/internal/app"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/utils"
)

// withRecoverer turns a handler panic into 500 {"message":"An unknown error
// occurred"}. http.ErrAbortHandler is re-raised so that net/http can abort
// the connection.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteMessage(w, app.MsgUnknownError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
