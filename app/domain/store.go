package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StoreDetails is the merchant-entered metadata collected in the second
// signup step.
type StoreDetails struct {
	Name        string      `json:"name" validate:"required,min=2,max=100"`
	Handle      StoreHandle `json:"handle" validate:"required,handle"`
	Description string      `json:"description,omitempty" validate:"max=500"`
	Currency    string      `json:"currency" validate:"required,len=3"`
	Country     string      `json:"country" validate:"required,len=2"`
}

// Store represents a merchant store record
type Store struct {
	ID             uuid.UUID   `json:"id"`
	OwnerID        uuid.UUID   `json:"owner_id"`
	Name           string      `json:"name"`
	Handle         StoreHandle `json:"handle"`
	Description    string      `json:"description,omitempty"`
	Currency       string      `json:"currency"`
	Country        string      `json:"country"`
	SetupCompleted bool        `json:"setup_completed"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewStore creates a store record owned by the given identity. The
// handle is normalized before it is stored; setup_completed and
// is_active are set true because creation through the provisioning
// pipeline is the completed path.
func NewStore(ownerID uuid.UUID, details StoreDetails) (*Store, error) {
	if ownerID == (uuid.UUID{}) {
		return nil, fmt.Errorf("owner ID is required")
	}

	if details.Name == "" {
		return nil, fmt.Errorf("store name is required")
	}

	if !details.Handle.IsValidFormat() {
		return nil, fmt.Errorf("invalid store handle: %s", details.Handle)
	}

	now := time.Now()

	store := &Store{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           details.Name,
		Handle:         details.Handle.Normalized(),
		Description:    details.Description,
		Currency:       details.Currency,
		Country:        details.Country,
		SetupCompleted: true,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return store, nil
}
