package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/Yenn-ink/WhisperNet/internal/entity"
	"github.com/Yenn-ink/WhisperNet/internal/infra/integration/textbee"
)

// DefaultSID é devolvido quando o TextBee não informa message_id.
const DefaultSID = "textbee-sent"

func NewSendSMSUseCase(gateway SMSGateway, creds Credentials) *SendSMSUseCase {
	return &SendSMSUseCase{
		Gateway:     gateway,
		Credentials: creds,
	}
}

// CheckConfig é chamado por requisição: o processo sobe mesmo sem credenciais.
func (uc *SendSMSUseCase) CheckConfig() error {
	if missing := uc.Credentials.Missing(); len(missing) > 0 {
		log.Printf("❌ [SERVER ERROR] Credenciais do TextBee ausentes: %s", strings.Join(missing, ", "))
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

func (uc *SendSMSUseCase) Execute(ctx context.Context, input SendSMSInput) (*SendSMSOutput, error) {
	if err := uc.CheckConfig(); err != nil {
		return nil, err
	}

	sms := entity.NewSMS(input.To, input.Message)
	log.Printf("📤 [Gateway] %s: enviando SMS via TextBee para %s", sms.ID, sms.To)

	resp, err := uc.Gateway.SendSMS(ctx, textbee.SendSMSInput{
		Recipients: sms.Recipients(),
		Message:    sms.Message,
	})
	if err != nil {
		log.Printf("❌ [Gateway] %s: erro: %v", sms.ID, err)
		return nil, &GatewayError{Err: err}
	}

	sid := DefaultSID
	if resp != nil && resp.MessageID != "" {
		sid = resp.MessageID
	}

	log.Printf("✅ [Gateway] %s: sucesso (sid=%s)", sms.ID, sid)
	return &SendSMSOutput{ID: sms.ID, SID: sid}, nil
}
