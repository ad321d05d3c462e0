package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-bot-launcher/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
}

// NewHTTPServer returns a Server for handler on addr ("host:port").
func NewHTTPServer(addr string, handler http.Handler, logger *logger.Logger) (Server, error) {
	if addr == "" {
		return nil, errEmptyAddress
	}

	return &httpServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}, nil
}

func (h *httpServer) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener != nil {
		return errAlreadyStarted
	}

	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("status server listen on %s: %w", h.server.Addr, err)
	}
	h.listener = ln
	h.done = make(chan struct{})

	go func() {
		defer close(h.done)
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error().Err(err).Msg("status server stopped")
		}
	}()

	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	done := h.done
	h.mu.Unlock()

	if done == nil {
		return nil
	}

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("status server shutdown: %w", err)
	}
	<-done
	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (h *httpServer) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}
