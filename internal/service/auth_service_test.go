package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/veltrachem-web/internal/config"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newAuthTestService(t *testing.T, name string) (*gorm.DB, *AuthService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-0123456789abcdef"
	cfg.JWT.ExpireHours = 24
	return db, NewAuthService(cfg, repository.NewAdminRepository(db))
}

func TestLoginIssuesTokenAndUpdatesLastLogin(t *testing.T) {
	_, svc := newAuthTestService(t, "auth_login")

	created, err := svc.CreateAdmin("ops", "supersecret", true)
	if err != nil {
		t.Fatalf("CreateAdmin error: %v", err)
	}

	admin, token, expiresAt, err := svc.Login("ops", "supersecret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("token already expired: %v", expiresAt)
	}
	if admin.LastLoginAt == nil {
		t.Fatalf("LastLoginAt not set")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if claims.AdminID != created.ID || claims.Username != "ops" || !claims.IsSuper {
		t.Fatalf("wrong claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, svc := newAuthTestService(t, "auth_bad_creds")

	if _, err := svc.CreateAdmin("ops", "supersecret", false); err != nil {
		t.Fatalf("CreateAdmin error: %v", err)
	}

	if _, _, _, err := svc.Login("ops", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "supersecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	_, svc := newAuthTestService(t, "auth_change_pw")

	admin, err := svc.CreateAdmin("ops", "supersecret", false)
	if err != nil {
		t.Fatalf("CreateAdmin error: %v", err)
	}

	if err := svc.ChangePassword(admin.ID, "wrong", "newpassword"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got: %v", err)
	}
	if err := svc.ChangePassword(admin.ID, "supersecret", "short"); err == nil {
		t.Fatalf("expected rejection of short password")
	}
	if err := svc.ChangePassword(admin.ID, "supersecret", "newpassword"); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}
	if _, _, _, err := svc.Login("ops", "newpassword"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestDeleteAdminProtections(t *testing.T) {
	_, svc := newAuthTestService(t, "auth_delete")

	first, err := svc.CreateAdmin("ops", "supersecret", true)
	if err != nil {
		t.Fatalf("CreateAdmin error: %v", err)
	}

	if err := svc.DeleteAdmin(first.ID, first.ID); err == nil {
		t.Fatalf("deleting own account must fail")
	}

	second, err := svc.CreateAdmin("backup", "supersecret", false)
	if err != nil {
		t.Fatalf("CreateAdmin error: %v", err)
	}
	if err := svc.DeleteAdmin(second.ID, first.ID); err != nil {
		t.Fatalf("DeleteAdmin error: %v", err)
	}

	// Only one account left now; it cannot be removed.
	if err := svc.DeleteAdmin(first.ID, second.ID); err == nil {
		t.Fatalf("deleting the last admin must fail")
	}
}
