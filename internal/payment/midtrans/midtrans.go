package midtrans

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrConfigInvalid    = errors.New("midtrans config invalid")
	ErrRequestFailed    = errors.New("midtrans request failed")
	ErrResponseInvalid  = errors.New("midtrans response invalid")
	ErrSignatureInvalid = errors.New("midtrans signature invalid")
)

// Transaction statuses reported by the gateway.
const (
	StatusCapture    = "capture"
	StatusSettlement = "settlement"
	StatusPending    = "pending"
	StatusDeny       = "deny"
	StatusCancel     = "cancel"
	StatusExpire     = "expire"
	StatusFailure    = "failure"
)

// Config holds the Snap gateway credentials and endpoints.
type Config struct {
	BaseURL     string `json:"base_url"`     // e.g. https://app.sandbox.midtrans.com
	ServerKey   string `json:"server_key"`   // server-side API key, also the signature secret
	ClientKey   string `json:"client_key"`   // exposed to the payment widget
	CallbackURL string `json:"callback_url"` // async notification endpoint
	FinishURL   string `json:"finish_url"`   // browser redirect after payment
	Timeout     time.Duration
}

// ItemDetail is one line of the transaction breakdown.
type ItemDetail struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// CreateInput describes the transaction to open in the hosted widget.
type CreateInput struct {
	OrderNo       string
	GrossAmount   int64 // whole currency units
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []ItemDetail
	ExpiryMinutes int
}

// CreateResult is the widget handle returned by the gateway.
type CreateResult struct {
	Token       string                 // widget token consumed by the storefront
	RedirectURL string                 // hosted payment page fallback
	Raw         map[string]interface{} // original response
}

// CallbackNotification is the async status payload posted by the gateway.
type CallbackNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	SignatureKey      string `json:"signature_key"`
}

// ValidateConfig checks that the required credentials are present.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return fmt.Errorf("%w: base_url is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.ServerKey) == "" {
		return fmt.Errorf("%w: server_key is required", ErrConfigInvalid)
	}
	return nil
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.ServerKey = strings.TrimSpace(c.ServerKey)
	c.ClientKey = strings.TrimSpace(c.ClientKey)
	c.CallbackURL = strings.TrimSpace(c.CallbackURL)
	c.FinishURL = strings.TrimSpace(c.FinishURL)
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
}

// CreateSnapTransaction opens a hosted-widget transaction and returns its token.
func CreateSnapTransaction(ctx context.Context, cfg *Config, input CreateInput) (*CreateResult, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	if input.OrderNo == "" || input.GrossAmount <= 0 {
		return nil, fmt.Errorf("%w: order_no and gross_amount are required", ErrConfigInvalid)
	}

	items := make([]map[string]interface{}, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, map[string]interface{}{
			"id":       item.ID,
			"name":     truncateItemName(item.Name),
			"price":    item.Price,
			"quantity": item.Quantity,
		})
	}

	params := map[string]interface{}{
		"transaction_details": map[string]interface{}{
			"order_id":     input.OrderNo,
			"gross_amount": input.GrossAmount,
		},
		"customer_details": map[string]interface{}{
			"first_name": input.CustomerName,
			"email":      input.CustomerEmail,
			"phone":      input.CustomerPhone,
		},
	}
	if len(items) > 0 {
		params["item_details"] = items
	}
	if input.ExpiryMinutes > 0 {
		params["expiry"] = map[string]interface{}{
			"unit":     "minutes",
			"duration": input.ExpiryMinutes,
		}
	}
	if cfg.FinishURL != "" {
		params["callbacks"] = map[string]interface{}{
			"finish": cfg.FinishURL,
		}
	}

	respBytes, err := postJSON(ctx, cfg, cfg.BaseURL+"/snap/v1/transactions", params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Token         string   `json:"token"`
		RedirectURL   string   `json:"redirect_url"`
		ErrorMessages []string `json:"error_messages"`
	}
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if len(resp.ErrorMessages) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrResponseInvalid, strings.Join(resp.ErrorMessages, "; "))
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrResponseInvalid)
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(respBytes, &raw)

	return &CreateResult{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
		Raw:         raw,
	}, nil
}

// ParseCallback decodes the async notification body.
func ParseCallback(body []byte) (*CallbackNotification, error) {
	if len(body) == 0 {
		return nil, ErrResponseInvalid
	}
	var data CallbackNotification
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if data.OrderID == "" || data.SignatureKey == "" {
		return nil, fmt.Errorf("%w: missing order_id or signature_key", ErrResponseInvalid)
	}
	return &data, nil
}

// VerifyCallback checks the notification signature against the server key.
func VerifyCallback(cfg *Config, data *CallbackNotification) error {
	if cfg == nil || data == nil {
		return ErrConfigInvalid
	}
	expected := Sign(data.OrderID, data.StatusCode, data.GrossAmount, cfg.ServerKey)
	if !strings.EqualFold(expected, data.SignatureKey) {
		return ErrSignatureInvalid
	}
	return nil
}

// Sign computes the gateway signature:
// sha512 hex of order_id + status_code + gross_amount + server_key.
func Sign(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// IsPaid reports whether the notification marks the transaction as settled.
// A capture is only final when fraud screening accepted it.
func (n *CallbackNotification) IsPaid() bool {
	if n == nil {
		return false
	}
	switch n.TransactionStatus {
	case StatusSettlement:
		return true
	case StatusCapture:
		return n.FraudStatus == "" || n.FraudStatus == "accept"
	}
	return false
}

// IsFinalFailure reports whether the transaction can no longer succeed.
func (n *CallbackNotification) IsFinalFailure() bool {
	if n == nil {
		return false
	}
	switch n.TransactionStatus {
	case StatusDeny, StatusCancel, StatusExpire, StatusFailure:
		return true
	}
	return false
}

func postJSON(ctx context.Context, cfg *Config, endpoint string, params map[string]interface{}) ([]byte, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(cfg.ServerKey+":")))

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	return body, nil
}

// truncateItemName keeps item names inside the gateway's 50-char limit.
func truncateItemName(name string) string {
	const limit = 50
	if len(name) <= limit {
		return name
	}
	return name[:limit]
}
