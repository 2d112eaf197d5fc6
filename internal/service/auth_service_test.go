package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/glowderma/glowderma/internal/config"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, repository.AdminRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:auth_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "unit-test-secret-key-with-enough-length"
	cfg.JWT.ExpireHours = 24

	adminRepo := repository.NewAdminRepository(db)
	return NewAuthService(cfg, adminRepo), adminRepo
}

func seedAdmin(t *testing.T, svc *AuthService, adminRepo repository.AdminRepository, username, password string) *models.Admin {
	t.Helper()

	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := adminRepo.Create(admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func TestLoginAndTokenRoundTrip(t *testing.T) {
	svc, adminRepo := setupAuthServiceTest(t)
	seedAdmin(t, svc, adminRepo, "derma_ops", "correct-horse-battery")

	admin, token, expiresAt, err := svc.Login("derma_ops", "correct-horse-battery")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("token should not be empty")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("token should expire in the future")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Username != "derma_ops" {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
	if stored.LastLoginAt == nil {
		t.Fatalf("last login should be stamped")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, adminRepo := setupAuthServiceTest(t)
	seedAdmin(t, svc, adminRepo, "derma_ops", "correct-horse-battery")

	if _, _, _, err := svc.Login("derma_ops", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("no_such_admin", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown admin want ErrInvalidCredentials got %v", err)
	}
}

func TestParseJWTRejectsForeignSignature(t *testing.T) {
	svc, adminRepo := setupAuthServiceTest(t)
	admin := seedAdmin(t, svc, adminRepo, "derma_ops", "correct-horse-battery")

	token, _, err := svc.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	otherSvc, _ := setupAuthServiceTest(t)
	otherSvc.cfg.JWT.SecretKey = "a-completely-different-signing-secret"
	if _, err := otherSvc.ParseJWT(token); err == nil {
		t.Fatalf("token signed with another secret should be rejected")
	}
}

func TestChangePassword(t *testing.T) {
	svc, adminRepo := setupAuthServiceTest(t)
	admin := seedAdmin(t, svc, adminRepo, "derma_ops", "correct-horse-battery")

	if err := svc.ChangePassword(admin.ID, "wrong-old", "new-password-123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong old password want ErrInvalidCredentials got %v", err)
	}
	if err := svc.ChangePassword(admin.ID, "correct-horse-battery", "short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("short password want ErrPasswordTooShort got %v", err)
	}
	if err := svc.ChangePassword(admin.ID, "correct-horse-battery", "new-password-123"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, _, err := svc.Login("derma_ops", "new-password-123"); err != nil {
		t.Fatalf("login with rotated password failed: %v", err)
	}
}
