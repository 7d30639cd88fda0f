package usecase

import (
	"context"

	"github.com/Yenn-ink/WhisperNet/internal/infra/integration/textbee"
)

// SMSGateway é o contrato do provedor de SMS (hoje só o TextBee).
type SMSGateway interface {
	SendSMS(ctx context.Context, input textbee.SendSMSInput) (*textbee.SendSMSResponse, error)
}

// Credentials são os segredos lidos na inicialização. Imutáveis depois disso.
type Credentials struct {
	APIKey   string
	DeviceID string
}

func (c Credentials) Missing() []string {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "TEXTBEE_API_KEY")
	}
	if c.DeviceID == "" {
		missing = append(missing, "TEXTBEE_DEVICE_ID")
	}
	return missing
}

type SendSMSUseCase struct {
	Gateway     SMSGateway
	Credentials Credentials
}
