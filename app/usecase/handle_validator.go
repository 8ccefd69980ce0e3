package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"store-service/app/domain"
	"store-service/app/port"
)

// HandleChecker implements port.HandleValidator against the store
// registry. The format check is pure; the availability check queries
// the registry and fails closed on query errors.
type HandleChecker struct {
	storeRepo port.StoreRepository
	logger    *slog.Logger
}

// NewHandleChecker creates a new HandleChecker instance
func NewHandleChecker(storeRepo port.StoreRepository, logger *slog.Logger) *HandleChecker {
	return &HandleChecker{
		storeRepo: storeRepo,
		logger:    logger.With("component", "handle_checker"),
	}
}

// Validate checks handle syntax and availability. A malformed handle is
// rejected without touching the registry. A registry query failure is
// reported as unavailable together with the error so callers never
// proceed to reservation on an inconclusive check.
func (v *HandleChecker) Validate(ctx context.Context, handle domain.StoreHandle) (bool, error) {
	if !handle.IsValidFormat() {
		return false, nil
	}

	_, err := v.storeRepo.FindByHandle(ctx, handle.Normalized())
	if err == nil {
		// A record exists, the handle is taken
		return false, nil
	}

	if errors.Is(err, domain.ErrStoreNotFound) {
		return true, nil
	}

	v.logger.Error("handle availability check failed", "handle", handle.Normalized(), "error", err)
	return false, fmt.Errorf("failed to check handle availability: %w", err)
}
