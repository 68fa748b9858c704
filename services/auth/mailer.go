package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Mailer delivers a one-time code to an email address.
type Mailer interface {
	SendOTP(ctx context.Context, email, name, code string) error
}

// HTTPMailer posts the code to an external delivery endpoint.
type HTTPMailer struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPMailer(endpoint string, timeout time.Duration) *HTTPMailer {
	return &HTTPMailer{Endpoint: endpoint, Client: &http.Client{Timeout: timeout}}
}

type otpPayload struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	OTP   string `json:"otp"`
}

func (m *HTTPMailer) SendOTP(ctx context.Context, email, name, code string) error {
	body, err := json.Marshal(otpPayload{Email: email, Name: name, OTP: code})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build OTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("OTP endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("OTP endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// LogMailer writes the code to the log instead of sending it.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) SendOTP(ctx context.Context, email, name, code string) error {
	m.Logger.Info("OTP issued", zap.String("email", email), zap.String("otp", code))
	return nil
}
