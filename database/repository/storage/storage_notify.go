package storageRepo

import "context"

// NotifyingStore tells a listener about every successful write.
type NotifyingStore struct {
	Store
	listener ChangeListener
}

func NewNotifyingStore(store Store, listener ChangeListener) *NotifyingStore {
	return &NotifyingStore{Store: store, listener: listener}
}

func (s *NotifyingStore) Set(ctx context.Context, clientID, key string, value []byte) error {
	if err := s.Store.Set(ctx, clientID, key, value); err != nil {
		return err
	}
	s.listener.KeyChanged(clientID, key)
	return nil
}

func (s *NotifyingStore) Delete(ctx context.Context, clientID, key string) error {
	if err := s.Store.Delete(ctx, clientID, key); err != nil {
		return err
	}
	s.listener.KeyChanged(clientID, key)
	return nil
}

func (s *NotifyingStore) Update(ctx context.Context, clientID, key string, fn UpdateFunc) error {
	wrote := false
	err := s.Store.Update(ctx, clientID, key, func(current []byte) ([]byte, bool, error) {
		next, changed, err := fn(current)
		wrote = changed && err == nil
		return next, changed, err
	})
	if err != nil {
		return err
	}
	if wrote {
		s.listener.KeyChanged(clientID, key)
	}
	return nil
}
