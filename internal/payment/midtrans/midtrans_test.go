package midtrans

import (
	"errors"
	"strings"
	"testing"
)

func TestSignKnownVector(t *testing.T) {
	// sha512 of the concatenated fields, hex encoded.
	got := Sign("ORDER-1", "200", "10000.00", "server-key")
	if len(got) != 128 {
		t.Fatalf("expected 128 hex chars, got %d", len(got))
	}
	if got != Sign("ORDER-1", "200", "10000.00", "server-key") {
		t.Fatalf("signature not deterministic")
	}
	if got == Sign("ORDER-2", "200", "10000.00", "server-key") {
		t.Fatalf("signature must depend on the order id")
	}
}

func TestVerifyCallback(t *testing.T) {
	cfg := &Config{BaseURL: "https://app.sandbox.midtrans.com", ServerKey: "server-key"}
	data := &CallbackNotification{
		OrderID:     "GD20240101120000123456",
		StatusCode:  "200",
		GrossAmount: "180000.00",
	}
	data.SignatureKey = Sign(data.OrderID, data.StatusCode, data.GrossAmount, cfg.ServerKey)
	if err := VerifyCallback(cfg, data); err != nil {
		t.Fatalf("VerifyCallback: %v", err)
	}

	// Case differences in the hex digest are tolerated.
	data.SignatureKey = strings.ToUpper(data.SignatureKey)
	if err := VerifyCallback(cfg, data); err != nil {
		t.Fatalf("VerifyCallback uppercase: %v", err)
	}

	data.SignatureKey = "deadbeef"
	if err := VerifyCallback(cfg, data); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestParseCallback(t *testing.T) {
	body := []byte(`{"order_id":"GD1","status_code":"200","gross_amount":"100.00","transaction_status":"settlement","signature_key":"x"}`)
	data, err := ParseCallback(body)
	if err != nil {
		t.Fatalf("ParseCallback: %v", err)
	}
	if data.OrderID != "GD1" || data.TransactionStatus != StatusSettlement {
		t.Fatalf("unexpected payload: %+v", data)
	}

	if _, err := ParseCallback([]byte("{not json")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestIsPaid(t *testing.T) {
	cases := []struct {
		status string
		fraud  string
		want   bool
	}{
		{StatusSettlement, "", true},
		{StatusCapture, "accept", true},
		{StatusCapture, "challenge", false},
		{StatusPending, "", false},
		{StatusDeny, "", false},
	}
	for _, tc := range cases {
		n := &CallbackNotification{TransactionStatus: tc.status, FraudStatus: tc.fraud}
		if n.IsPaid() != tc.want {
			t.Fatalf("IsPaid(%s, %s) = %v, want %v", tc.status, tc.fraud, n.IsPaid(), tc.want)
		}
	}
}

func TestIsFinalFailure(t *testing.T) {
	for _, status := range []string{StatusDeny, StatusCancel, StatusExpire, StatusFailure} {
		n := &CallbackNotification{TransactionStatus: status}
		if !n.IsFinalFailure() {
			t.Fatalf("expected %s to be final failure", status)
		}
	}
	n := &CallbackNotification{TransactionStatus: StatusPending}
	if n.IsFinalFailure() {
		t.Fatalf("pending is not a final failure")
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(nil); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
	if err := ValidateConfig(&Config{BaseURL: "https://x"}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for missing server key, got %v", err)
	}
	if err := ValidateConfig(&Config{BaseURL: "https://x", ServerKey: "k"}); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestTruncateItemName(t *testing.T) {
	short := "UV Shield SPF50"
	if truncateItemName(short) != short {
		t.Fatalf("short names must pass through")
	}
	long := strings.Repeat("a", 80)
	if got := truncateItemName(long); len(got) != 50 {
		t.Fatalf("expected 50 chars, got %d", len(got))
	}
}
