package http

import (
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/supervisor"
	"github.com/MKhiriev/go-bot-launcher/internal/utils"
)

// staticStatus is a fixed StatusProvider.
type staticStatus supervisor.Status

func (s staticStatus) Status() supervisor.Status {
	return supervisor.Status(s)
}

// newTestHandler creates a Handler with a nop logger and a fixed trace ID.
func newTestHandler() *Handler {
	h := NewHandler(staticStatus{
		Mode:  "dry-run",
		State: "running",
		RunID: "01927c3e-run",
	}, "v1.4.0", logger.Nop())
	h.ids = utils.StaticID("trace-1")
	return h
}
