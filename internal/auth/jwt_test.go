package auth

import (
	"testing"
	"time"

	"estate-voice-api/internal/config"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "test-secret",
		JWTIssuer:       "estate-voice-api",
		JWTAudience:     "estate-voice-admin",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		AdminAPIKey:     "admin-key-1",
	}
}

func TestManager_IssueAndVerifyPair(t *testing.T) {
	m, err := NewManager(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	now := time.Unix(1700000000, 0).UTC()
	pair, err := m.IssuePair(now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	claims, err := m.Verify(pair.AccessToken, TokenTypeAccess, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("expected valid access token, got %v", err)
	}
	if claims.Subject != "admin" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}

	if _, err := m.Verify(pair.RefreshToken, TokenTypeRefresh, now.Add(time.Minute)); err != nil {
		t.Fatalf("expected valid refresh token, got %v", err)
	}
}

func TestManager_RejectsTokenTypeMismatch(t *testing.T) {
	m, _ := NewManager(testConfig())
	now := time.Unix(1700000000, 0).UTC()
	pair, _ := m.IssuePair(now)

	if _, err := m.Verify(pair.RefreshToken, TokenTypeAccess, now.Add(time.Minute)); err == nil {
		t.Fatalf("expected token_type mismatch error")
	}
}

func TestManager_RejectsExpiredAccessToken(t *testing.T) {
	m, _ := NewManager(testConfig())
	now := time.Unix(1700000000, 0).UTC()
	pair, _ := m.IssuePair(now)

	if _, err := m.Verify(pair.AccessToken, TokenTypeAccess, now.Add(16*time.Minute)); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	m1, _ := NewManager(testConfig())

	other := testConfig()
	other.JWTSecret = "different-secret"
	m2, _ := NewManager(other)

	now := time.Unix(1700000000, 0).UTC()
	pair, _ := m2.IssuePair(now)

	if _, err := m1.Verify(pair.AccessToken, TokenTypeAccess, now.Add(time.Minute)); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestManager_CheckAPIKey(t *testing.T) {
	m, _ := NewManager(testConfig())

	if !m.CheckAPIKey("admin-key-1") {
		t.Fatalf("expected configured key to match")
	}
	if m.CheckAPIKey("wrong") {
		t.Fatalf("expected mismatch")
	}
	if m.CheckAPIKey("") {
		t.Fatalf("empty presented key must not match")
	}

	unset := testConfig()
	unset.AdminAPIKey = ""
	m2, _ := NewManager(unset)
	if m2.CheckAPIKey("") {
		t.Fatalf("empty configured key must never match")
	}
}

func TestNewManager_RequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""
	if _, err := NewManager(cfg); err == nil {
		t.Fatalf("expected error for missing secret")
	}
}
