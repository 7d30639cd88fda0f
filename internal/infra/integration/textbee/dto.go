package textbee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type SendSMSInput struct {
	Recipients []string
	Message    string
}

type sendSMSRequest struct {
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
}

// SendSMSResponse é o corpo de sucesso do TextBee. Só message_id é usado.
type SendSMSResponse struct {
	MessageID string `json:"message_id"`
}

// UnmarshalJSON aceita message_id como string, número ou booleano.
// Valores "falsy" (vazio, 0, false, null) viram string vazia.
func (r *SendSMSResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		MessageID json.RawMessage `json:"message_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.MessageID = scalarText(raw.MessageID)
	return nil
}

func scalarText(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return ""
		}
		return t.String()
	case bool:
		if t {
			return "true"
		}
	}
	// objetos e listas não são um sid utilizável
	return ""
}

type errorResponse struct {
	Message interface{} `json:"message"`
}

// APIError é devolvido quando o TextBee responde com status fora de 2xx.
type APIError struct {
	StatusCode int
	Message    string // vazio quando o corpo não tem "message"
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// messageText normaliza o campo "message", que pode vir como string ou lista
// de strings (erros de validação).
func messageText(v interface{}) string {
	switch m := v.(type) {
	case string:
		return m
	case []interface{}:
		parts := make([]string, 0, len(m))
		for _, p := range m {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
