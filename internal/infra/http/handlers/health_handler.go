package handlers

import (
	"net/http"
	"time"
)

const Version = "1.0.0"

type HealthHandler struct {
	TextBeeConfigured bool
	StartTime         time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(textBeeConfigured bool) *HealthHandler {
	return &HealthHandler{
		TextBeeConfigured: textBeeConfigured,
		StartTime:         time.Now(),
	}
}

// Handle (GET /health)
// Sempre 200: sem credenciais o relay continua de pé e responde erro de configuração.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.TextBeeConfigured {
		deps["textbee"] = "configured"
	} else {
		deps["textbee"] = "not configured"
	}

	status := "healthy"
	if !h.TextBeeConfigured {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       status,
		Version:      Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
