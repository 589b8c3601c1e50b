package http

import (
	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/metrics"
	"github.com/MKhiriev/go-vinted/internal/service"
)

// defaultMaxUploadSize bounds multipart bodies when the server config leaves
// it unset.
const defaultMaxUploadSize = 32 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	frontendURL   string
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		metrics:       metrics,
		frontendURL:   cfg.FrontendURL,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}
