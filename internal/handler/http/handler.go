package http

import (
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/supervisor"
	"github.com/MKhiriev/go-bot-launcher/internal/utils"
)

// StatusProvider reports the current supervisor status.
type StatusProvider interface {
	Status() supervisor.Status
}

type Handler struct {
	status  StatusProvider
	version string
	ids     utils.IDGenerator
	metrics *metrics

	logger *logger.Logger
}

func NewHandler(status StatusProvider, version string, logger *logger.Logger) *Handler {
	logger.Debug().Msg("status handler created")
	return &Handler{
		status:  status,
		version: version,
		ids:     utils.NewUUIDGenerator(),
		metrics: newMetrics(status),
		logger:  logger,
	}
}
