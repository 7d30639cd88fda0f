package textbee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	apiKey   string
	deviceID string
	baseURL  string
	http     *http.Client
}

// NewClient cria o client. timeout zero mantém o comportamento padrão do
// net/http (sem limite).
func NewClient(apiKey, deviceID, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:   apiKey,
		deviceID: deviceID,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
	}
}

// SendURL monta a URL do device configurado.
func (c *Client) SendURL() string {
	return fmt.Sprintf("%s/gateway/devices/%s/send-sms", c.baseURL, c.deviceID)
}

// SendSMS faz um único POST para o TextBee. Sem retentativas.
func (c *Client) SendSMS(ctx context.Context, input SendSMSInput) (*SendSMSResponse, error) {
	payload := sendSMSRequest{
		Recipients: input.Recipients,
		Message:    input.Message,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.SendURL(), bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta textbee: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ TextBee: API retornou status %d: %s", resp.StatusCode, string(body))
		return nil, newAPIError(resp.StatusCode, body)
	}

	var result SendSMSResponse
	if len(bytes.TrimSpace(body)) > 0 {
		// corpo de sucesso fora do formato esperado não é erro, só não tem message_id
		if err := json.Unmarshal(body, &result); err != nil {
			log.Printf("⚠️ TextBee: resposta de sucesso não é JSON: %v", err)
		}
	}

	return &result, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(body)}

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = messageText(parsed.Message)
	}
	return apiErr
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
