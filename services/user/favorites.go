package user

import (
	"context"
	"fmt"

	storageRepo "findmylocal/database/repository/storage"
)

// Favorites returns the saved service ids, oldest first.
func (s *DefaultUserService) Favorites(ctx context.Context, clientID string) ([]string, error) {
	favorites := []string{}
	if _, err := storageRepo.GetJSON(ctx, s.Store, clientID, storageRepo.KeyFavorites, &favorites); err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	if favorites == nil {
		favorites = []string{}
	}
	return favorites, nil
}

func (s *DefaultUserService) AddFavorite(ctx context.Context, clientID, serviceID string) (bool, error) {
	added := false
	err := storageRepo.UpdateJSON(ctx, s.Store, clientID, storageRepo.KeyFavorites, func(ids *[]string) (bool, error) {
		added = false
		for _, id := range *ids {
			if id == serviceID {
				return false, nil
			}
		}
		*ids = append(*ids, serviceID)
		added = true
		return true, nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return added, nil
}

func (s *DefaultUserService) RemoveFavorite(ctx context.Context, clientID, serviceID string) (bool, error) {
	removed := false
	err := storageRepo.UpdateJSON(ctx, s.Store, clientID, storageRepo.KeyFavorites, func(ids *[]string) (bool, error) {
		removed = false
		kept := make([]string, 0, len(*ids))
		for _, id := range *ids {
			if id == serviceID {
				removed = true
				continue
			}
			kept = append(kept, id)
		}
		*ids = kept
		return removed, nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return removed, nil
}
