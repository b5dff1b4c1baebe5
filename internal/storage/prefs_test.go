package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestPrefs(t *testing.T) *Prefs {
	t.Helper()
	p, err := NewPrefs(filepath.Join(t.TempDir(), "trex.db"))
	if err != nil {
		t.Fatalf("open prefs: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestThemeDefaultsToLight(t *testing.T) {
	p := newTestPrefs(t)
	theme, err := p.Theme(context.Background())
	if err != nil {
		t.Fatalf("read theme: %v", err)
	}
	if theme != ThemeLight {
		t.Fatalf("expected default %q, got %q", ThemeLight, theme)
	}
}

func TestSetThemeRoundTrip(t *testing.T) {
	p := newTestPrefs(t)
	ctx := context.Background()

	if err := p.SetTheme(ctx, ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	theme, err := p.Theme(ctx)
	if err != nil {
		t.Fatalf("read theme: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("expected %q, got %q", ThemeDark, theme)
	}

	// toggling back overwrites the row
	if err := p.SetTheme(ctx, ThemeLight); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	theme, err = p.Theme(ctx)
	if err != nil {
		t.Fatalf("read theme: %v", err)
	}
	if theme != ThemeLight {
		t.Fatalf("expected %q, got %q", ThemeLight, theme)
	}
}

func TestSetThemeRejectsUnknownValues(t *testing.T) {
	p := newTestPrefs(t)
	err := p.SetTheme(context.Background(), "sepia")
	if !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}
