package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	for _, k := range []string{"PORT", "DATABASE_URL", "DB_CONNECT_ATTEMPTS", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "3001" || cfg.Addr() != ":3001" {
		t.Errorf("expected default port 3001, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != defaultDatabaseURL {
		t.Errorf("expected default database url, got %q", cfg.DatabaseURL)
	}
	if cfg.DBConnectAttempts != 10 {
		t.Errorf("expected 10 connect attempts, got %d", cfg.DBConnectAttempts)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRPS != 0 {
		t.Errorf("expected rate limiting off, got %v", cfg.RateLimitRPS)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/books")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://books.example.com")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "bogus")

	cfg := Load()

	if cfg.Addr() != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.Addr())
	}
	if cfg.DatabaseURL != "postgres://u:p@db:5432/books" {
		t.Errorf("unexpected database url %q", cfg.DatabaseURL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://books.example.com" {
		t.Errorf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("expected 2.5 rps, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 20 {
		t.Errorf("expected invalid burst to fall back to 20, got %d", cfg.RateLimitBurst)
	}
}

func TestLoad_DotEnvInDebug(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=4567\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("GIN_MODE", "debug")
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg := Load()
	if cfg.Port != "4567" {
		t.Errorf("expected port from .env, got %q", cfg.Port)
	}
}
