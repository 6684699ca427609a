package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/persistence"
	"github.com/yatraflow/yatraflow/pkg/util"
)

// Theme values accepted by the dashboard.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SettingsService owns small persisted UI preferences.
type SettingsService struct {
	store  persistence.Store
	logger *zap.Logger
}

// NewSettingsService constructs the service.
func NewSettingsService(store persistence.Store, logger *zap.Logger) *SettingsService {
	return &SettingsService{store: store, logger: logger}
}

// Theme returns the persisted theme, defaulting to light.
func (s *SettingsService) Theme(ctx context.Context) string {
	raw, err := s.store.Get(ctx, persistence.KeyTheme)
	if err != nil {
		if !errors.Is(err, persistence.ErrKeyNotFound) {
			s.logger.Warn("read theme", zap.Error(err))
		}
		return ThemeLight
	}
	theme := string(raw)
	if theme != ThemeLight && theme != ThemeDark {
		return ThemeLight
	}
	return theme
}

// SetTheme persists the theme choice.
func (s *SettingsService) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return util.NewValidationError("theme must be light or dark", map[string]any{"theme": theme})
	}
	if err := s.store.Set(ctx, persistence.KeyTheme, []byte(theme)); err != nil {
		return util.NewInternalError(err)
	}
	return nil
}
