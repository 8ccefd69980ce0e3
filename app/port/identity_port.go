package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"store-service/app/domain"
)

// IdentityGateway defines the domain-facing identity provider interface
type IdentityGateway interface {
	// CreateIdentity creates a credential-holding principal
	CreateIdentity(ctx context.Context, creds domain.Credentials) (*domain.Identity, error)

	// Authenticate signs in with the given credentials and returns a
	// live session
	Authenticate(ctx context.Context, creds domain.Credentials) (*domain.AuthenticatedSession, error)

	// GetCurrentSession resolves a session token to its identity
	GetCurrentSession(ctx context.Context, token domain.SessionToken) (*domain.Identity, error)
}

// KratosClient defines the low-level Kratos driver interface
type KratosClient interface {
	// CreateIdentity creates an identity through the Kratos admin API
	CreateIdentity(ctx context.Context, email, password string) (*domain.Identity, error)

	// SubmitNativeLogin runs a native login flow and returns the
	// resulting session token plus identity
	SubmitNativeLogin(ctx context.Context, email, password string) (*domain.AuthenticatedSession, error)

	// GetSession introspects a session token
	GetSession(ctx context.Context, token string) (*domain.Identity, error)
}
