// Package storage persists UI preferences in SQLite. The report itself is
// session-scoped and never written to disk; the theme flag is the only
// state that survives a restart.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	themeKey = "theme"
)

var ErrInvalidTheme = errors.New("invalid theme")

// Prefs is a SQLite-backed key-value store for UI preferences.
type Prefs struct {
	db *sql.DB
}

func NewPrefs(dbPath string) (*Prefs, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Prefs{db: db}, nil
}

func (p *Prefs) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// Theme returns the stored preference, defaulting to light when unset or
// when the stored value is not a known theme.
func (p *Prefs) Theme(ctx context.Context) (string, error) {
	var v string
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE name = ?`, themeKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	if v != ThemeLight && v != ThemeDark {
		return ThemeLight, nil
	}
	return v, nil
}

// SetTheme upserts the preference. Only "light" and "dark" are accepted.
func (p *Prefs) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}

	_, err := p.db.ExecContext(ctx,
		`INSERT INTO settings (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		themeKey, theme)
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	slog.InfoContext(ctx, "Theme preference saved", "theme", theme)
	return nil
}
