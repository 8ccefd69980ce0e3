package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"store-service/app/domain"
	"store-service/app/port"
)

// IdentityGateway implements port.IdentityGateway.
// It acts as an anti-corruption layer between the domain and the
// external identity provider.
type IdentityGateway struct {
	kratosClient port.KratosClient
	logger       *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(kratosClient port.KratosClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "identity_gateway"),
	}
}

// CreateIdentity creates a credential-holding principal with the
// identity provider.
func (g *IdentityGateway) CreateIdentity(ctx context.Context, creds domain.Credentials) (*domain.Identity, error) {
	g.logger.Info("creating identity", "email", creds.Email)

	identity, err := g.kratosClient.CreateIdentity(ctx, creds.Email, creds.Password)
	if err != nil {
		g.logger.Error("failed to create identity", "email", creds.Email, "error", err)
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	g.logger.Info("identity created successfully", "identity_id", identity.ID)
	return identity, nil
}

// Authenticate signs in with the given credentials and returns a live
// session.
func (g *IdentityGateway) Authenticate(ctx context.Context, creds domain.Credentials) (*domain.AuthenticatedSession, error) {
	g.logger.Info("authenticating", "email", creds.Email)

	session, err := g.kratosClient.SubmitNativeLogin(ctx, creds.Email, creds.Password)
	if err != nil {
		g.logger.Error("authentication failed", "email", creds.Email, "error", err)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	g.logger.Info("authenticated successfully", "identity_id", session.Identity.ID)
	return session, nil
}

// GetCurrentSession resolves a session token to its identity
func (g *IdentityGateway) GetCurrentSession(ctx context.Context, token domain.SessionToken) (*domain.Identity, error) {
	identity, err := g.kratosClient.GetSession(ctx, string(token))
	if err != nil {
		g.logger.Error("failed to resolve session", "error", err)
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return identity, nil
}
