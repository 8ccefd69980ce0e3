package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	ownerID := uuid.New()
	details := StoreDetails{
		Name:        "My Shop",
		Handle:      "@My-Shop",
		Description: "Handmade goods",
		Currency:    "USD",
		Country:     "US",
	}

	store, err := NewStore(ownerID, details)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, store.ID)
	assert.Equal(t, ownerID, store.OwnerID)
	assert.Equal(t, "My Shop", store.Name)
	// The handle is persisted in its normalized form
	assert.Equal(t, StoreHandle("@my-shop"), store.Handle)
	assert.Equal(t, "Handmade goods", store.Description)
	assert.True(t, store.SetupCompleted)
	assert.True(t, store.IsActive)
	assert.False(t, store.CreatedAt.IsZero())
	assert.Equal(t, store.CreatedAt, store.UpdatedAt)
}

func TestNewStore_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		ownerID uuid.UUID
		details StoreDetails
	}{
		{
			name:    "missing owner",
			ownerID: uuid.UUID{},
			details: StoreDetails{Name: "My Shop", Handle: "@my-shop", Currency: "USD", Country: "US"},
		},
		{
			name:    "missing name",
			ownerID: uuid.New(),
			details: StoreDetails{Handle: "@my-shop", Currency: "USD", Country: "US"},
		},
		{
			name:    "malformed handle",
			ownerID: uuid.New(),
			details: StoreDetails{Name: "My Shop", Handle: "my-shop", Currency: "USD", Country: "US"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(tt.ownerID, tt.details)

			assert.Error(t, err)
			assert.Nil(t, store)
		})
	}
}
