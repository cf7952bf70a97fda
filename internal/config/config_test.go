package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/expenses_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("AUTH_RATE_LIMIT_MAX", "")
	t.Setenv("AUTH_RATE_LIMIT_WINDOW_MINUTES", "")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "3000")
	}
	if cfg.JWTTTLHours != 720 {
		t.Errorf("JWTTTLHours = %d, want 720", cfg.JWTTTLHours)
	}
	if cfg.AuthRateLimitMax != 5 {
		t.Errorf("AuthRateLimitMax = %d, want 5", cfg.AuthRateLimitMax)
	}
	if cfg.AuthRateLimitWindow != 15 {
		t.Errorf("AuthRateLimitWindow = %d, want 15", cfg.AuthRateLimitWindow)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false for default env")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/expenses_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_TTL_HOURS", "24")
	t.Setenv("AUTH_RATE_LIMIT_MAX", "10")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.JWTTTLHours != 24 {
		t.Errorf("JWTTTLHours = %d, want 24", cfg.JWTTTLHours)
	}
	if cfg.AuthRateLimitMax != 10 {
		t.Errorf("AuthRateLimitMax = %d, want 10", cfg.AuthRateLimitMax)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset uses default", "", 42},
		{"valid integer", "7", 7},
		{"malformed uses default", "seven", 42},
		{"negative accepted", "-1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VALUE", tt.value)
			if got := getEnvInt("TEST_INT_VALUE", 42); got != tt.want {
				t.Errorf("getEnvInt(%q, 42) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
