package user

import (
	"context"
	"errors"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"

	"go.uber.org/zap"
)

var (
	ErrInvalidTheme = errors.New("theme must be light or dark")
	ErrNoSession    = errors.New("no active session")
)

const (
	keyRecentSearches = "recentSearches"
	maxRecentSearches = 10
	onboardingDone    = "true"
)

// UserService manages the per-client profile data: favorites, preferences,
// recent searches and the signed-in identity.
type UserService interface {
	// Favorites
	Favorites(ctx context.Context, clientID string) ([]string, error)
	AddFavorite(ctx context.Context, clientID, serviceID string) (bool, error)
	RemoveFavorite(ctx context.Context, clientID, serviceID string) (bool, error)

	// Preferences
	Preferences(ctx context.Context, clientID string) (*models.Preferences, error)
	UpdatePreferences(ctx context.Context, clientID string, update models.PreferencesUpdate) (*models.Preferences, error)

	// Recent searches
	RecentSearches(ctx context.Context, clientID string, limit int) ([]string, error)
	RecordSearch(ctx context.Context, clientID, query string) error
	ClearRecentSearches(ctx context.Context, clientID string) error

	// Session
	Session(ctx context.Context, clientID string) (*models.UserSession, error)
	SetSession(ctx context.Context, clientID string, session models.UserSession) error
	ClearSession(ctx context.Context, clientID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Store  storageRepo.Store
	Logger *zap.Logger
}

func NewUserService(store storageRepo.Store, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Store: store, Logger: logger}
}
