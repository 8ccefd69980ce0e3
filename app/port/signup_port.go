package port

//go:generate mockgen -source=signup_port.go -destination=../mocks/mock_signup_port.go

import (
	"context"

	"store-service/app/domain"
)

// HandleValidator checks a candidate store handle for syntax and
// availability. The availability check is advisory; the storage-layer
// uniqueness constraint is the authoritative tie-break.
type HandleValidator interface {
	// Validate returns whether the handle is available. A registry
	// query failure is reported as unavailable together with the error
	// (fail-closed).
	Validate(ctx context.Context, handle domain.StoreHandle) (bool, error)
}

// Provisioner orchestrates identity creation, store-record creation and
// post-creation session establishment.
type Provisioner interface {
	// Provision runs the full pipeline: reserve handle, create
	// identity, create store, establish session
	Provision(ctx context.Context, creds domain.Credentials, details domain.StoreDetails) (domain.RedirectTarget, error)

	// ProvisionAccount runs the lightweight variant that defers store
	// details to a later setup step
	ProvisionAccount(ctx context.Context, creds domain.Credentials) (domain.RedirectTarget, error)
}

// SignupUsecase drives the two-step onboarding form
type SignupUsecase interface {
	CreateFlow(ctx context.Context) (*domain.SignupFlow, error)
	GetFlow(ctx context.Context, flowID string) (*domain.SignupFlow, error)
	SubmitCredentials(ctx context.Context, flowID string, creds domain.Credentials) (*domain.SignupFlow, error)
	SubmitStoreDetails(ctx context.Context, flowID string, details domain.StoreDetails) (*domain.SignupFlow, error)
	GoBack(ctx context.Context, flowID string) (*domain.SignupFlow, error)
}
