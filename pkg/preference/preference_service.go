// Package preference keeps display settings such as the dark theme flag.
package preference

import (
	"context"
	"log/slog"
	"sync"

	"fridgemate/domain"
)

type (
	PreferenceService interface {
		GetPreferences(ctx context.Context) domain.Preferences
		SetDarkMode(ctx context.Context, enabled bool) domain.Preferences
	}

	preferenceService struct {
		mu                   sync.RWMutex
		preferenceRepository PreferenceRepository
		log                  *slog.Logger

		prefs domain.Preferences
	}
)

func NewPreferenceService(ctx context.Context, preferenceRepository PreferenceRepository, log *slog.Logger) PreferenceService {
	s := &preferenceService{
		preferenceRepository: preferenceRepository,
		log:                  log.With("service", "preference"),
	}

	darkMode, err := preferenceRepository.GetDarkMode(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "failed to load dark mode, using light theme", "error", err)
	}
	s.prefs.DarkMode = darkMode

	return s
}

func (s *preferenceService) GetPreferences(_ context.Context) domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.prefs
}

func (s *preferenceService) SetDarkMode(ctx context.Context, enabled bool) domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.DarkMode = enabled
	if err := s.preferenceRepository.SaveDarkMode(ctx, enabled); err != nil {
		s.log.WarnContext(ctx, "failed to persist dark mode", "error", err)
	}

	return s.prefs
}
