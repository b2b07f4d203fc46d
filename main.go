package main

import (
	"github.com/joho/godotenv"

	"github.com/booklog-app/booklog/internal/config"
	"github.com/booklog-app/booklog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// Optional local overrides; environment variables win
	_ = godotenv.Load()

	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
