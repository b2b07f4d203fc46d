package config

// Default paths for the application database
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./booklog.db"
)
