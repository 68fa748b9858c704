package user

import (
	"context"
	"fmt"
	"strings"

	storageRepo "findmylocal/database/repository/storage"
)

// RecentSearches returns up to limit queries, newest first.
func (s *DefaultUserService) RecentSearches(ctx context.Context, clientID string, limit int) ([]string, error) {
	searches := []string{}
	if _, err := storageRepo.GetJSON(ctx, s.Store, clientID, keyRecentSearches, &searches); err != nil {
		return nil, fmt.Errorf("failed to load recent searches: %w", err)
	}
	if searches == nil {
		searches = []string{}
	}
	if limit > 0 && len(searches) > limit {
		searches = searches[:limit]
	}
	return searches, nil
}

// RecordSearch moves query to the front, dropping older duplicates.
func (s *DefaultUserService) RecordSearch(ctx context.Context, clientID, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	err := storageRepo.UpdateJSON(ctx, s.Store, clientID, keyRecentSearches, func(list *[]string) (bool, error) {
		next := make([]string, 0, maxRecentSearches)
		next = append(next, query)
		for _, q := range *list {
			if len(next) == maxRecentSearches {
				break
			}
			if !strings.EqualFold(q, query) {
				next = append(next, q)
			}
		}
		*list = next
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

func (s *DefaultUserService) ClearRecentSearches(ctx context.Context, clientID string) error {
	if err := s.Store.Delete(ctx, clientID, keyRecentSearches); err != nil {
		return fmt.Errorf("failed to clear recent searches: %w", err)
	}
	return nil
}
