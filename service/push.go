package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"butce/config"
)

// PushService delivers push notifications through the Expo push API.
// A non-2xx response is an error; the caller decides whether that aborts
// anything (for milestones it never does).
type PushService struct {
	cfg    config.PushConfig
	client *http.Client
}

// NewPushService creates the service from configuration.
func NewPushService(cfg config.PushConfig) *PushService {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PushService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether push delivery is configured on.
func (s *PushService) Enabled() bool {
	return s.cfg.Enabled && s.cfg.URL != ""
}

type pushMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound"`
}

// Send posts one message to the push endpoint.
func (s *PushService) Send(token, title, body string, data map[string]string) error {
	msg := pushMessage{
		To:    token,
		Title: title,
		Body:  body,
		Data:  data,
		Sound: "default",
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push endpoint returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
