package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entidade: SMS
// Vive apenas durante uma requisição de relay, nunca é persistida.
type SMS struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Factory
func NewSMS(to, message string) *SMS {
	return &SMS{
		ID:        uuid.New().String(),
		To:        to,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// Recipients sempre tem exatamente um destinatário.
func (s *SMS) Recipients() []string {
	return []string{s.To}
}
