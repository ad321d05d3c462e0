package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-bot-launcher/internal/logger"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.status.Status(), http.StatusOK)
}

// getHealth answers liveness probes. The endpoint only exists while the bot
// is running, so reaching it is the whole check.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

// writeJSON serializes data and writes it with statusCode. An encoding
// failure is answered with 500 and logged.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing data to JSON")
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
