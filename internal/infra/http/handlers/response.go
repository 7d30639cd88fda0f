package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// SendSMSResponse é o formato de resposta do /send-sms.
type SendSMSResponse struct {
	Success bool   `json:"success"`
	SID     string `json:"sid,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️ Erro ao serializar resposta: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, SendSMSResponse{Success: false, Error: message})
}
