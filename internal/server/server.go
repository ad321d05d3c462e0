package server

import (
	"context"

	handler "github.com/MKhiriev/go-bot-launcher/internal/handler/http"
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/supervisor"
)

// StatusFactory returns a supervisor.StatusServerFactory serving the status
// API of the supervisor it is given. A server that cannot be built is
// reported through Start.
func StatusFactory(version string, log *logger.Logger) supervisor.StatusServerFactory {
	return func(addr string, sup *supervisor.Supervisor) supervisor.StatusServer {
		router := handler.NewHandler(sup, version, log).Init()

		srv, err := NewHTTPServer(addr, router, log)
		if err != nil {
			return failedServer{err: err}
		}
		return srv
	}
}

type failedServer struct {
	err error
}

func (f failedServer) Start() error {
	return f.err
}

func (failedServer) Shutdown(context.Context) error {
	return nil
}
