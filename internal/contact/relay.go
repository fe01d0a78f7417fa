package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DefaultEndpoint is the hosted relay's send API.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// RelayConfig identifies the account and template on the relay.
type RelayConfig struct {
	Endpoint    string        `yaml:"endpoint"`
	ServiceID   string        `yaml:"serviceID"`
	TemplateID  string        `yaml:"templateID"`
	UserID      string        `yaml:"userID"`
	AccessToken string        `yaml:"accessToken"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Sender delivers a validated message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// RelayClient posts messages to the relay API. It is safe for concurrent use.
type RelayClient struct {
	cfg  RelayConfig
	http *http.Client
}

func NewRelayClient(cfg RelayConfig, client *http.Client) *RelayClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &RelayClient{cfg: cfg, http: client}
}

// templateParams are the variables the relay template expects.
type templateParams struct {
	FromName string `mapstructure:"from_name"`
	ReplyTo  string `mapstructure:"reply_to"`
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Subject  string `mapstructure:"subject,omitempty"`
	Message  string `mapstructure:"message"`
}

type relayRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams map[string]any `json:"template_params"`
}

// TemplateParams flattens msg into the relay's template variables.
func TemplateParams(msg Message) (map[string]any, error) {
	params := map[string]any{}
	err := mapstructure.Decode(templateParams{
		FromName: msg.Name,
		ReplyTo:  msg.Email,
		Name:     msg.Name,
		Email:    msg.Email,
		Subject:  msg.Subject,
		Message:  msg.Message,
	}, &params)
	if err != nil {
		return nil, err
	}
	return params, nil
}

// Send posts msg to the relay. Any non-2xx status is a failure; nothing is
// retried.
func (c *RelayClient) Send(ctx context.Context, msg Message) error {
	params, err := TemplateParams(msg)
	if err != nil {
		return fmt.Errorf("%w: template params: %v", ErrRelay, err)
	}
	body, err := json.Marshal(relayRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.UserID,
		AccessToken:    c.cfg.AccessToken,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrRelay, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelay, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelay, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrRelay, resp.StatusCode, bytes.TrimSpace(detail))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
