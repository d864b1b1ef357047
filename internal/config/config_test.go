package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Errorf("TokenTTLHours = %d, want 24", cfg.Auth.TokenTTLHours)
	}
	if cfg.Auth.CookieName != "portfolio_session" {
		t.Errorf("CookieName = %q", cfg.Auth.CookieName)
	}
	if cfg.Auth.LoginPath != "/login" {
		t.Errorf("LoginPath = %q", cfg.Auth.LoginPath)
	}
	if cfg.RateLimit.MaxRequests != 100 {
		t.Errorf("MaxRequests = %d, want 100", cfg.RateLimit.MaxRequests)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "72")
	t.Setenv("AUTH_TOKEN_COOKIE", "custom_session")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.TokenTTLHours != 72 {
		t.Errorf("TokenTTLHours = %d, want 72", cfg.Auth.TokenTTLHours)
	}
	if cfg.Auth.CookieName != "custom_session" {
		t.Errorf("CookieName = %q", cfg.Auth.CookieName)
	}
	if cfg.RateLimit.Window() != time.Minute {
		t.Errorf("Window = %v, want 1m", cfg.RateLimit.Window())
	}
}

func TestDurationFallbacks(t *testing.T) {
	if w := (RateLimitConfig{}).Window(); w != 15*time.Minute {
		t.Errorf("Window = %v, want 15m", w)
	}
	if d := (ClientConfig{}).Timeout(); d != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", d)
	}
	if d := (AppConfig{RequestTimeoutSeconds: 30}).RequestTimeout(); d != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", d)
	}
	if d := (AppConfig{}).RequestTimeout(); d != 0 {
		t.Errorf("RequestTimeout = %v, want 0", d)
	}
}

func TestAddr(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "9000"}
	if addr := app.Addr(); addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", addr)
	}
}
