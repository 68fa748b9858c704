package user

import (
	"context"
	"fmt"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"

	"go.uber.org/zap"
)

// Session returns the identity stored under "user", or ErrNoSession.
func (s *DefaultUserService) Session(ctx context.Context, clientID string) (*models.UserSession, error) {
	var session models.UserSession
	ok, err := storageRepo.GetJSON(ctx, s.Store, clientID, storageRepo.KeyUser, &session)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok || session.Email == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

func (s *DefaultUserService) SetSession(ctx context.Context, clientID string, session models.UserSession) error {
	if err := storageRepo.SetJSON(ctx, s.Store, clientID, storageRepo.KeyUser, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.Logger.Info("Session stored", zap.String("email", session.Email), zap.String("role", session.Role))
	return nil
}

func (s *DefaultUserService) ClearSession(ctx context.Context, clientID string) error {
	if err := s.Store.Delete(ctx, clientID, storageRepo.KeyUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
