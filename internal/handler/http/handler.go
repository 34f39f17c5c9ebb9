package http

import (
	"time"

	"github.com/MKhiriev/estate-hub/internal/config"
	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds the total handling time of a single request via
	// chi's Timeout middleware.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
