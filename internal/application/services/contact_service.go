package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gospelarchive/core/internal/infrastructure/config"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

// ContactService forwards contact form submissions to the configured
// third-party form relay. The relay's response is passed through coarsely:
// delivered or not.
type ContactService struct {
	relayURL string
	client   *http.Client
	logger   *logger.Logger
}

// NewContactService creates a new contact service
func NewContactService(cfg config.ContentConfig, logger *logger.Logger) *ContactService {
	return &ContactService{
		relayURL: cfg.ContactRelayURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger.WithComponent("contact_service"),
	}
}

// Send relays the submission as a standard form POST.
func (s *ContactService) Send(ctx context.Context, req ports.ContactRequest) error {
	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("email", req.Email)
	form.Set("message", req.Message)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.relayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach contact relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("contact relay rejected submission: %s", resp.Status)
	}

	s.logger.Infow("Contact message relayed", "status", resp.StatusCode)
	return nil
}
