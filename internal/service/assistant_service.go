package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/glowderma/glowderma/internal/config"
)

const assistantSystemPrompt = "You are the content assistant for a cosmetic clinic storefront. " +
	"Help the staff draft product descriptions, blog posts and customer announcements. " +
	"Write clearly, avoid medical claims that require a practitioner, and answer in the language of the request."

// AssistantMessage is one turn of the chat exchange.
type AssistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssistantService proxies admin chat requests to an OpenAI-compatible
// chat-completions endpoint.
type AssistantService struct {
	cfg        config.AssistantConfig
	httpClient *http.Client
}

// NewAssistantService creates the assistant service.
func NewAssistantService(cfg config.AssistantConfig) *AssistantService {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AssistantService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the assistant is configured.
func (s *AssistantService) Enabled() bool {
	return s != nil && s.cfg.Enabled && strings.TrimSpace(s.cfg.APIKey) != ""
}

// Chat sends the conversation to the model and returns its reply.
func (s *AssistantService) Chat(ctx context.Context, messages []AssistantMessage) (string, error) {
	if !s.Enabled() {
		return "", ErrAssistantDisabled
	}
	if len(messages) == 0 {
		return "", ErrInvalidInput
	}

	payload := map[string]interface{}{
		"model": s.cfg.Model,
		"messages": append(
			[]AssistantMessage{{Role: "system", Content: assistantSystemPrompt}},
			messages...,
		),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(strings.TrimSpace(s.cfg.BaseURL), "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("assistant response read failed: %w", err)
	}

	var parsed struct {
		Choices []struct {
			Message AssistantMessage `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("assistant response invalid: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("assistant error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || len(parsed.Choices) == 0 {
		return "", fmt.Errorf("assistant response invalid: status %d", resp.StatusCode)
	}
	return parsed.Choices[0].Message.Content, nil
}
