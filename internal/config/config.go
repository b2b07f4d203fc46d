package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		UI
		Session
		Covers
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Session struct {
		Secret        string        // Session/CSRF secret, auto-generated if empty
		Lifetime      time.Duration // How long a visitor's session lives
		SecureCookies bool          // Set to false for local dev without HTTPS
	}
	Covers struct {
		BaseURL     string // Covers service endpoint
		Placeholder string // Path served when a book has no ISBN
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Session defaults
	v.SetDefault("session_secret", "")
	v.SetDefault("session_lifetime", "720h") // 30 days
	v.SetDefault("secure_cookies", false)

	// Covers defaults
	v.SetDefault("covers_base_url", "")
	v.SetDefault("covers_placeholder", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Session: Session{
			Secret:        v.GetString("SESSION_SECRET"),
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Covers: Covers{
			BaseURL:     v.GetString("COVERS_BASE_URL"),
			Placeholder: v.GetString("COVERS_PLACEHOLDER"),
		},
	}
}
