package service

import (
	"context"
	"fmt"

	"github.com/wizardchad/forum/internal/forum/store"
)

// ConcentrateService owns the shared concentration counter.
type ConcentrateService struct {
	Store store.Store
}

// Count returns the current counter value.
func (s *ConcentrateService) Count(ctx context.Context) (int64, error) {
	count, err := s.Store.Concentrate().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading concentration count: %w", err)
	}
	return count, nil
}

// Press increments the counter and returns the committed value. The
// increment is atomic at the storage layer, and the returned value is
// durable before any caller may announce it to live connections.
func (s *ConcentrateService) Press(ctx context.Context) (int64, error) {
	count, err := s.Store.Concentrate().Increment(ctx)
	if err != nil {
		return 0, fmt.Errorf("incrementing concentration count: %w", err)
	}
	return count, nil
}
