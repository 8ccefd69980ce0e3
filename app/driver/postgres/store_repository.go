package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"store-service/app/domain"
	"store-service/app/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the SQLSTATE for a unique constraint violation
const uniqueViolationCode = "23505"

// StoreRepository implements port.StoreRepository for PostgreSQL.
// The handle column carries a unique constraint; a 23505 on insert is
// the authoritative signal that the handle is taken.
type StoreRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewStoreRepository creates a new PostgreSQL store repository
func NewStoreRepository(db DatabaseIface, logger *slog.Logger) port.StoreRepository {
	return &StoreRepository{
		db:     db,
		logger: logger.With("component", "store_repository"),
	}
}

// FindByHandle retrieves a store by its normalized handle
func (r *StoreRepository) FindByHandle(ctx context.Context, handle domain.StoreHandle) (*domain.Store, error) {
	query := `
		SELECT id, owner_id, name, handle, description, currency, country,
			setup_completed, is_active, created_at, updated_at
		FROM stores WHERE handle = $1`

	store, err := r.scanStore(r.db.QueryRow(ctx, query, string(handle.Normalized())))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		r.logger.Error("failed to find store by handle", "handle", handle.Normalized(), "error", err)
		return nil, fmt.Errorf("failed to find store by handle: %w", err)
	}

	return store, nil
}

// Insert creates a new store record. A unique violation on the handle
// column is surfaced as domain.ErrDuplicateHandle so callers can tell
// the race-loser case apart from other write failures.
func (r *StoreRepository) Insert(ctx context.Context, store *domain.Store) error {
	query := `
		INSERT INTO stores (
			id, owner_id, name, handle, description, currency, country,
			setup_completed, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	r.logger.Info("creating store", "store_id", store.ID, "handle", store.Handle)

	_, err := r.db.Exec(ctx, query,
		store.ID,
		store.OwnerID,
		store.Name,
		string(store.Handle.Normalized()),
		store.Description,
		store.Currency,
		store.Country,
		store.SetupCompleted,
		store.IsActive,
		store.CreatedAt,
		store.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			r.logger.Warn("handle already taken", "handle", store.Handle, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", domain.ErrDuplicateHandle, store.Handle)
		}

		r.logger.Error("failed to create store", "store_id", store.ID, "error", err)
		return fmt.Errorf("failed to create store: %w", err)
	}

	r.logger.Info("store created successfully", "store_id", store.ID, "handle", store.Handle)
	return nil
}

// GetByOwner returns the store owned by the given identity
func (r *StoreRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Store, error) {
	query := `
		SELECT id, owner_id, name, handle, description, currency, country,
			setup_completed, is_active, created_at, updated_at
		FROM stores WHERE owner_id = $1 ORDER BY created_at ASC LIMIT 1`

	store, err := r.scanStore(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		r.logger.Error("failed to get store by owner", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to get store by owner: %w", err)
	}

	return store, nil
}

// MarkSetupCompleted flips setup_completed for a store created outside
// the full pipeline
func (r *StoreRepository) MarkSetupCompleted(ctx context.Context, storeID uuid.UUID) error {
	query := `UPDATE stores SET setup_completed = true, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, storeID)
	if err != nil {
		r.logger.Error("failed to mark setup completed", "store_id", storeID, "error", err)
		return fmt.Errorf("failed to mark setup completed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrStoreNotFound
	}

	r.logger.Info("store setup marked completed", "store_id", storeID)
	return nil
}

// scanStore scans a single store row
func (r *StoreRepository) scanStore(row pgx.Row) (*domain.Store, error) {
	var store domain.Store
	var handle string

	err := row.Scan(
		&store.ID,
		&store.OwnerID,
		&store.Name,
		&handle,
		&store.Description,
		&store.Currency,
		&store.Country,
		&store.SetupCompleted,
		&store.IsActive,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	store.Handle = domain.StoreHandle(handle)
	return &store, nil
}
