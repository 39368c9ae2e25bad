package cli

import (
	"context"
	"fmt"

	"github.com/champsapp/champs-cli/internal/client/storage"
)

// loadTheme reads the persisted theme preference. Missing or unreadable
// settings fall back to the light theme.
func (a *App) loadTheme(ctx context.Context) string {
	repo := storage.NewSQLiteRepository(a.db)
	v, err := repo.Get(ctx, storage.KeyTheme)
	if err != nil {
		a.log.Warn(ctx, "reading theme preference", "error", err)
		return ThemeLight
	}
	theme := string(v)
	if theme != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Theme shows or changes the color theme.
//
//	theme            — print the active theme
//	theme dark       — switch to the dark palette
//	theme light      — switch to the light palette
//
// The choice is persisted and restored on the next start.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify("theme: " + a.theme)
		return nil
	}

	theme := args[0]
	if theme != ThemeLight && theme != ThemeDark {
		err := fmt.Errorf("unknown theme %q, want %q or %q", theme, ThemeLight, ThemeDark)
		a.notifyError(err)
		return err
	}

	repo := storage.NewSQLiteRepository(a.db)
	if err := repo.Set(ctx, storage.KeyTheme, []byte(theme)); err != nil {
		a.notifyError(err)
		return err
	}

	a.theme = theme
	a.styles = NewStyles(theme)
	a.notify("theme: " + theme)
	return nil
}
