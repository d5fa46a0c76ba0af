// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for forums-server.
type ServerConfig struct {
	Server   ServerSection   `koanf:"server"`
	Security SecuritySection `koanf:"security"`
	Log      LogSection      `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP            HTTPConfig    `koanf:"http"`
	CORS            CORSConfig    `koanf:"cors"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// CORSConfig configures cross-origin access for browser frontends.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// SecuritySection configures security settings.
type SecuritySection struct {
	// SecureCookies marks session cookies as Secure (HTTPS-only).
	// Disabled by default for local development over plain HTTP.
	SecureCookies bool `koanf:"secure_cookies"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
