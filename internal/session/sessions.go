// Package session manages lightweight visitor sessions. There is no login:
// the session only remembers per-visitor UI preferences, such as the last
// catalog sort order.
package session

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/booklog-app/booklog/internal/config"
	"github.com/booklog-app/booklog/internal/entities"
)

// Session data keys
const (
	KeySortMode = "sort_mode"
)

// Manager wraps scs.SessionManager with application-specific methods.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a configured session manager.
// The sqlDB parameter should be the underlying *sql.DB from GORM.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// RememberSortMode stores the visitor's chosen catalog ordering.
func (m *Manager) RememberSortMode(r *http.Request, mode entities.SortMode) {
	m.Put(r.Context(), KeySortMode, string(mode))
}

// PreferredSortMode returns the visitor's stored ordering, or the recency
// default when none has been chosen yet.
func (m *Manager) PreferredSortMode(r *http.Request) entities.SortMode {
	return entities.ParseSortMode(m.GetString(r.Context(), KeySortMode))
}
