// Package config defines the server configuration structure.
package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Check server defaults
	if cfg.Server.HTTP.Addr != DefaultHTTPAddr {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.Server.HTTP.Addr, DefaultHTTPAddr)
	}
	if cfg.Server.HTTP.ReadTimeout != DefaultReadTimeout {
		t.Errorf("HTTP.ReadTimeout = %v, want %v", cfg.Server.HTTP.ReadTimeout, DefaultReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	}
	if len(cfg.Server.CORS.AllowedOrigins) != 3 {
		t.Errorf("AllowedOrigins count = %d, want 3", len(cfg.Server.CORS.AllowedOrigins))
	}
	if cfg.Server.CORS.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowedOrigins[0] = %q, want http://localhost:5173", cfg.Server.CORS.AllowedOrigins[0])
	}

	// Check security defaults
	if cfg.Security.SecureCookies {
		t.Error("SecureCookies should be disabled by default")
	}

	// Check log defaults
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}
}

func TestVerify_Defaults(t *testing.T) {
	if err := Verify(Default()); err != nil {
		t.Errorf("Verify(Default()) = %v, want nil", err)
	}
}

func TestVerify_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServerConfig)
	}{
		{"empty addr", func(c *ServerConfig) { c.Server.HTTP.Addr = "" }},
		{"bad addr", func(c *ServerConfig) { c.Server.HTTP.Addr = "not-an-address" }},
		{"bad origin", func(c *ServerConfig) { c.Server.CORS.AllowedOrigins = []string{"localhost:5173"} }},
		{"zero shutdown timeout", func(c *ServerConfig) { c.Server.ShutdownTimeout = 0 }},
		{"unknown log level", func(c *ServerConfig) { c.Log.Level = "verbose" }},
		{"unknown log format", func(c *ServerConfig) { c.Log.Format = "logfmt" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := Verify(cfg); err == nil {
				t.Error("Verify() = nil, want error")
			}
		})
	}
}

func TestVerify_CustomValid(t *testing.T) {
	cfg := Default()
	cfg.Server.HTTP.Addr = "0.0.0.0:9090"
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Server.CORS.AllowedOrigins = []string{"https://forums.example.com"}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "text"

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
}
