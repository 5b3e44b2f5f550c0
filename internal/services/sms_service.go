package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"renti/internal/config"
	"renti/internal/models"
)

const (
	africasTalkingSMSURL        = "https://api.africastalking.com/version1/messaging"
	africasTalkingSandboxSMSURL = "https://api.sandbox.africastalking.com/version1/messaging"
)

// SMSService sends text messages to tenants.
type SMSService interface {
	Send(ctx context.Context, to, message string) (*models.SMSResult, error)
	Stubbed() bool
}

type smsService struct {
	cfg        config.AfricasTalkingConfig
	endpoint   string
	httpClient *http.Client
}

// NewSMSService returns an Africa's Talking sender. Without credentials it
// runs stubbed: messages are logged and reported as sent.
func NewSMSService(cfg config.AfricasTalkingConfig) SMSService {
	endpoint := africasTalkingSMSURL
	if cfg.Sandbox {
		endpoint = africasTalkingSandboxSMSURL
	}
	return &smsService{
		cfg:        cfg,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *smsService) Stubbed() bool {
	return !s.cfg.Configured()
}

type atRecipient struct {
	StatusCode int    `json:"statusCode"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	Cost       string `json:"cost"`
	MessageID  string `json:"messageId"`
}

type atResponse struct {
	SMSMessageData struct {
		Message    string        `json:"Message"`
		Recipients []atRecipient `json:"Recipients"`
	} `json:"SMSMessageData"`
}

func (s *smsService) Send(ctx context.Context, to, message string) (*models.SMSResult, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, fmt.Errorf("sms recipient is required")
	}

	if s.Stubbed() {
		log.Printf("INFO: [SMS stub] To=%s, Message=%s", to, message)
		return &models.SMSResult{Recipient: to, Status: "Stubbed", Stubbed: true}, nil
	}

	form := url.Values{}
	form.Set("username", s.cfg.Username)
	form.Set("to", to)
	form.Set("message", message)
	if s.cfg.Shortcode != "" {
		form.Set("from", s.cfg.Shortcode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read sms response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed atResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode sms response: %w", err)
	}
	if len(parsed.SMSMessageData.Recipients) == 0 {
		return nil, fmt.Errorf("sms not sent: %s", parsed.SMSMessageData.Message)
	}

	recipient := parsed.SMSMessageData.Recipients[0]
	log.Printf("INFO: [SMS] To=%s, Status=%s, MessageID=%s", recipient.Number, recipient.Status, recipient.MessageID)
	return &models.SMSResult{
		Recipient: recipient.Number,
		Status:    recipient.Status,
		MessageID: recipient.MessageID,
		Cost:      recipient.Cost,
	}, nil
}
