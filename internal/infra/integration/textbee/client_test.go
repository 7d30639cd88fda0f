package textbee

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendURL(t *testing.T) {
	c := NewClient("key", "dev-42", "https://api.textbee.dev/api/v1/", 0)
	assert.Equal(t, "https://api.textbee.dev/api/v1/gateway/devices/dev-42/send-sms", c.SendURL())
}

// TestSendSMSRequestShape - método, URL, headers e corpo enviados ao TextBee
func TestSendSMSRequestShape(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotKey    string
		gotCT     string
		gotBody   map[string]interface{}
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotCT = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message_id":"abc"}`))
	}))
	defer srv.Close()

	c := NewClient("secret-key", "device-1", srv.URL, 0)
	resp, err := c.SendSMS(context.Background(), SendSMSInput{
		Recipients: []string{"+15550001111"},
		Message:    "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", resp.MessageID)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/gateway/devices/device-1/send-sms", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, []interface{}{"+15550001111"}, gotBody["recipients"])
	assert.Equal(t, "hello", gotBody["message"])
}

func TestSendSMSSuccessWithoutMessageID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"success":true}}`))
	}))
	defer srv.Close()

	c := NewClient("k", "d", srv.URL, 0)
	resp, err := c.SendSMS(context.Background(), SendSMSInput{Recipients: []string{"1"}, Message: "m"})
	require.NoError(t, err)
	assert.Empty(t, resp.MessageID)
}

func TestSendSMSSuccessNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`OK`))
	}))
	defer srv.Close()

	c := NewClient("k", "d", srv.URL, 0)
	resp, err := c.SendSMS(context.Background(), SendSMSInput{Recipients: []string{"1"}, Message: "m"})
	require.NoError(t, err)
	assert.Empty(t, resp.MessageID)
}

// TestSendSMSStructuredError - corpo JSON com "message" vira a mensagem do erro
func TestSendSMSStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid API key","statusCode":401}`))
	}))
	defer srv.Close()

	c := NewClient("bad", "d", srv.URL, 0)
	_, err := c.SendSMS(context.Background(), SendSMSInput{Recipients: []string{"1"}, Message: "m"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid API key", apiErr.Message)
	assert.Equal(t, "Invalid API key", err.Error())
}

func TestSendSMSValidationErrorList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":["recipients must be an array","message should not be empty"]}`))
	}))
	defer srv.Close()

	c := NewClient("k", "d", srv.URL, 0)
	_, err := c.SendSMS(context.Background(), SendSMSInput{Recipients: []string{"1"}})
	require.Error(t, err)
	assert.Equal(t, "recipients must be an array, message should not be empty", err.Error())
}

// TestSendSMSUnstructuredError - sem corpo estruturado, cai na descrição crua
func TestSendSMSUnstructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	c := NewClient("k", "d", srv.URL, 0)
	_, err := c.SendSMS(context.Background(), SendSMSInput{Recipients: []string{"1"}, Message: "m"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "<html>bad gateway</html>", apiErr.Body)
	assert.Equal(t, "Request failed with status code 502", err.Error())
}

func TestSendSMSTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient("k", "d", url, 0)
	_, err := c.SendSMS(context.Background(), SendSMSInput{Recipients: []string{"1"}, Message: "m"})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "/gateway/devices/d/send-sms")
}

func TestSendSMSContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient("k", "d", srv.URL, 0)
	_, err := c.SendSMS(ctx, SendSMSInput{Recipients: []string{"1"}, Message: "m"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSendSMSMessageIDScalars - message_id numérico é ecoado; valores "falsy" ficam vazios
func TestSendSMSMessageIDScalars(t *testing.T) {
	cases := map[string]string{
		`{"message_id":12345}`:      "12345",
		`{"message_id":"abc"}`:      "abc",
		`{"message_id":1.5e3}`:      "1.5e3",
		`{"message_id":true}`:       "true",
		`{"message_id":0}`:          "",
		`{"message_id":false}`:      "",
		`{"message_id":null}`:       "",
		`{"message_id":""}`:         "",
		`{"message_id":{"id":"x"}}`: "",
	}

	for body, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		c := NewClient("k", "d", srv.URL, 0)
		resp, err := c.SendSMS(context.Background(), SendSMSInput{Recipients: []string{"1"}, Message: "m"})
		srv.Close()

		require.NoError(t, err, body)
		assert.Equal(t, want, resp.MessageID, body)
	}
}
