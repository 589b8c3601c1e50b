package http

import (
	"net/http"

	"github.com/MKhiriev/go-vinted/internal/utils"
)

type versionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	build := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, versionResponse{
		Version:     h.services.AppInfoService.GetAppVersion(r.Context()),
		BuildDate:   build.Date,
		BuildCommit: build.Commit,
	}, http.StatusOK)
}
