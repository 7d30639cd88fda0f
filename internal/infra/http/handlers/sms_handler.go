package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/Yenn-ink/WhisperNet/internal/infra/http/middleware"
	"github.com/Yenn-ink/WhisperNet/internal/usecase"
)

const InvalidJSONMessage = "Invalid JSON body."

type SMSHandler struct {
	SendSMSUC *usecase.SendSMSUseCase
}

func NewSMSHandler(uc *usecase.SendSMSUseCase) *SMSHandler {
	return &SMSHandler{SendSMSUC: uc}
}

// Handle (POST /send-sms)
func (h *SMSHandler) Handle(w http.ResponseWriter, r *http.Request) {
	// credenciais primeiro: sem elas o corpo nem é lido
	if err := h.SendSMSUC.CheckConfig(); err != nil {
		h.writeError(w, err)
		return
	}

	var input usecase.SendSMSInput
	if isJSON(r.Header.Get("Content-Type")) {
		if err := decodeStrict(r.Body, &input); err != nil {
			log.Printf("❌ JSON inválido em /send-sms: %v", err)
			writeErrorResponse(w, http.StatusBadRequest, InvalidJSONMessage)
			return
		}
	}

	output, err := h.SendSMSUC.Execute(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	middleware.RecordSMS("sent")
	writeJSON(w, http.StatusOK, SendSMSResponse{Success: true, SID: output.SID})
}

func (h *SMSHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsConfigurationError(err):
		middleware.RecordSMS("config_error")
	case usecase.IsGatewayError(err):
		middleware.RecordSMS("gateway_error")
		middleware.RecordIntegrationError("textbee")
	}
	writeErrorResponse(w, http.StatusInternalServerError, err.Error())
}

// isJSON segue o bodyParser.json: só application/json e tipos *+json são
// lidos. Qualquer outro corpo (ou sem Content-Type) conta como {}.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// decodeStrict aceita corpo vazio, mas recusa qualquer coisa depois do
// primeiro valor JSON.
func decodeStrict(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("dados após o JSON")
	}
	return nil
}
