package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreHandle_IsValidFormat(t *testing.T) {
	tests := []struct {
		name   string
		handle StoreHandle
		want   bool
	}{
		{"simple handle", "@myshop", true},
		{"with hyphens", "@my-shop-2", true},
		{"with digits", "@shop123", true},
		{"mixed case accepted", "@MyShop", true},
		{"single character", "@a", true},
		{"missing prefix", "myshop", false},
		{"bare at sign", "@", false},
		{"empty", "", false},
		{"underscore rejected", "@my_shop", false},
		{"space rejected", "@my shop", false},
		{"unicode rejected", "@магазин", false},
		{"double at rejected", "@@shop", false},
		{"trailing punctuation rejected", "@shop!", false},
		{"interior at rejected", "@my@shop", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.handle.IsValidFormat())
		})
	}
}

func TestStoreHandle_Normalized(t *testing.T) {
	tests := []struct {
		name   string
		handle StoreHandle
		want   StoreHandle
	}{
		{"already lowercase", "@myshop", "@myshop"},
		{"uppercase folded", "@MYSHOP", "@myshop"},
		{"mixed case folded", "@My-Shop", "@my-shop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.handle.Normalized())
		})
	}
}

func TestStoreHandle_CaseInsensitiveEquivalence(t *testing.T) {
	// @Shop-1 and @SHOP-1 normalize to the same handle and would collide
	// in the registry
	a := StoreHandle("@Shop-1")
	b := StoreHandle("@SHOP-1")

	assert.Equal(t, a.Normalized(), b.Normalized())
}
