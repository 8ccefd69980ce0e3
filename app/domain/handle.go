package domain

import (
	"regexp"
	"strings"
)

// StoreHandle is the globally-unique, @-prefixed identifier of a store.
// Uniqueness is case-insensitive: handles are lower-cased before any
// comparison or write.
type StoreHandle string

// handlePattern: '@' followed by one or more ASCII letters, digits or hyphens
var handlePattern = regexp.MustCompile(`^@[A-Za-z0-9-]+$`)

// IsValidFormat reports whether the handle matches the required syntax.
// This is a pure check and never touches the store registry.
func (h StoreHandle) IsValidFormat() bool {
	return handlePattern.MatchString(string(h))
}

// Normalized returns the canonical lower-cased form of the handle.
// All registry lookups and writes use the normalized form.
func (h StoreHandle) Normalized() StoreHandle {
	return StoreHandle(strings.ToLower(string(h)))
}

// String implements fmt.Stringer
func (h StoreHandle) String() string {
	return string(h)
}
