// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr     = "127.0.0.1:8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second

	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// DefaultAllowedOrigins returns the origins allowed for local frontend
// development.
func DefaultAllowedOrigins() []string {
	return []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://localhost:3001",
	}
}

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:         DefaultHTTPAddr,
				ReadTimeout:  DefaultReadTimeout,
				WriteTimeout: DefaultWriteTimeout,
			},
			CORS: CORSConfig{
				AllowedOrigins: DefaultAllowedOrigins(),
			},
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Security: SecuritySection{
			SecureCookies: false,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
