package user

import (
	"context"
	"fmt"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"
)

// Preferences defaults to the dark theme with onboarding pending.
func (s *DefaultUserService) Preferences(ctx context.Context, clientID string) (*models.Preferences, error) {
	prefs := &models.Preferences{Theme: models.ThemeDark}

	var theme string
	if _, err := storageRepo.GetJSON(ctx, s.Store, clientID, storageRepo.KeyTheme, &theme); err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	if theme == models.ThemeLight || theme == models.ThemeDark {
		prefs.Theme = theme
	}

	var onboarding string
	if _, err := storageRepo.GetJSON(ctx, s.Store, clientID, storageRepo.KeyOnboardingCompleted, &onboarding); err != nil {
		return nil, fmt.Errorf("failed to load onboarding state: %w", err)
	}
	prefs.OnboardingCompleted = onboarding == onboardingDone
	return prefs, nil
}

func (s *DefaultUserService) UpdatePreferences(ctx context.Context, clientID string, update models.PreferencesUpdate) (*models.Preferences, error) {
	if update.Theme != nil {
		theme := *update.Theme
		if theme != models.ThemeLight && theme != models.ThemeDark {
			return nil, ErrInvalidTheme
		}
		if err := storageRepo.SetJSON(ctx, s.Store, clientID, storageRepo.KeyTheme, theme); err != nil {
			return nil, fmt.Errorf("failed to save theme: %w", err)
		}
	}
	if update.OnboardingCompleted != nil {
		var err error
		if *update.OnboardingCompleted {
			err = storageRepo.SetJSON(ctx, s.Store, clientID, storageRepo.KeyOnboardingCompleted, onboardingDone)
		} else {
			err = s.Store.Delete(ctx, clientID, storageRepo.KeyOnboardingCompleted)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to save onboarding state: %w", err)
		}
	}
	return s.Preferences(ctx, clientID)
}
