package config

import (
	"strings"
	"testing"
)

func validBase() Config {
	return Config{
		App:   AppConfig{Env: "local", Port: 8080},
		DB:    DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "estate", SSLMode: ""},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		Auth:  AuthConfig{JWTSecret: "secret"},
	}
}

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_ProductionRequiresSSLMode(t *testing.T) {
	c := validBase()
	c.App.Env = "production"
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected error for production without DB_SSLMODE")
	}
	if !strings.Contains(err.Error(), "DB_SSLMODE") {
		t.Fatalf("expected DB_SSLMODE in error, got %v", err)
	}
}

func TestValidate_LocalDefaultsSSLMode(t *testing.T) {
	c := validBase()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable default, got %q", c.DB.SSLMode)
	}
}

func TestValidate_VapiBaseURLDefaultsToFullURL(t *testing.T) {
	c := validBase()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Vapi.BaseURL != "https://api.vapi.ai" {
		t.Fatalf("unexpected base url %q", c.Vapi.BaseURL)
	}
}

func TestValidate_VapiBaseURLRejectsBareHost(t *testing.T) {
	c := validBase()
	c.Vapi.BaseURL = "api.vapi.ai"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for bare hostname")
	}
}

func TestValidate_MissingVapiCredentialsIsNotFatal(t *testing.T) {
	// The voice gateway reports not_configured at runtime instead.
	c := validBase()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error without vapi credentials, got %v", err)
	}
}
