package port

//go:generate mockgen -source=store_port.go -destination=../mocks/mock_store_port.go

import (
	"context"

	"store-service/app/domain"

	"github.com/google/uuid"
)

// StoreRepository defines store registry data access.
//
// Insert must surface a storage-layer uniqueness violation on the
// handle column as domain.ErrDuplicateHandle so callers can tell the
// race-loser case apart from other write failures.
type StoreRepository interface {
	// FindByHandle looks up a store by its normalized handle; returns
	// domain.ErrStoreNotFound when no matching record exists
	FindByHandle(ctx context.Context, handle domain.StoreHandle) (*domain.Store, error)

	// Insert creates a store record; returns domain.ErrDuplicateHandle
	// on a handle uniqueness violation
	Insert(ctx context.Context, store *domain.Store) error

	// GetByOwner returns the store owned by the given identity
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Store, error)

	// MarkSetupCompleted flips setup_completed for a store created
	// outside the full pipeline
	MarkSetupCompleted(ctx context.Context, storeID uuid.UUID) error
}
