package service

import (
	"strings"
	"time"

	"github.com/glowderma/glowderma/internal/config"

	"github.com/mojocn/base64Captcha"
)

// CaptchaChallenge is an image challenge served to the login form.
type CaptchaChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService issues and verifies image captchas for admin login.
type CaptchaService struct {
	cfg   config.CaptchaConfig
	store base64Captcha.Store
}

// NewCaptchaService creates the captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	maxStore := cfg.MaxStore
	if maxStore <= 0 {
		maxStore = base64Captcha.GCLimitNumber
	}
	expireSec := cfg.ExpireSeconds
	if expireSec <= 0 {
		expireSec = 300
	}
	return &CaptchaService{
		cfg:   cfg,
		store: base64Captcha.NewMemoryStore(maxStore, time.Duration(expireSec)*time.Second),
	}
}

// Enabled reports whether login requires a captcha.
func (s *CaptchaService) Enabled() bool {
	return s != nil && s.cfg.Enabled
}

// Generate creates a new image challenge.
func (s *CaptchaService) Generate() (*CaptchaChallenge, error) {
	driver := base64Captcha.NewDriverDigit(
		s.cfg.Height,
		s.cfg.Width,
		s.cfg.Length,
		0.7,
		s.cfg.NoiseCount,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.store)
	id, b64, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaChallenge{CaptchaID: id, ImageBase64: b64}, nil
}

// Verify checks a challenge answer. The challenge is consumed either way.
func (s *CaptchaService) Verify(captchaID, answer string) error {
	if !s.Enabled() {
		return nil
	}
	captchaID = strings.TrimSpace(captchaID)
	answer = strings.TrimSpace(answer)
	if captchaID == "" || answer == "" {
		return ErrCaptchaInvalid
	}
	if !s.store.Verify(captchaID, answer, true) {
		return ErrCaptchaInvalid
	}
	return nil
}
