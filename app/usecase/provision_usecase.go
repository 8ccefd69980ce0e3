package usecase

import (
	"context"
	"errors"
	"log/slog"

	"store-service/app/domain"
	"store-service/app/port"
)

// AccountProvisioner implements the ordered provisioning pipeline:
// reserve handle, create identity, create store record, establish
// session. Each step runs only if the previous one succeeded; the
// final sign-in step is deliberately non-fatal.
//
// The pipeline never rolls back a created identity when a later step
// fails. The user recovers by correcting the form and resubmitting;
// a compensating delete would add a second failure mode of its own.
type AccountProvisioner struct {
	handleValidator port.HandleValidator
	identityGateway port.IdentityGateway
	storeRepo       port.StoreRepository
	translator      *ErrorTranslator
	logger          *slog.Logger
}

// NewAccountProvisioner creates a new AccountProvisioner instance
func NewAccountProvisioner(
	handleValidator port.HandleValidator,
	identityGateway port.IdentityGateway,
	storeRepo port.StoreRepository,
	logger *slog.Logger,
) *AccountProvisioner {
	return &AccountProvisioner{
		handleValidator: handleValidator,
		identityGateway: identityGateway,
		storeRepo:       storeRepo,
		translator:      NewErrorTranslator(),
		logger:          logger.With("component", "account_provisioner"),
	}
}

// Provision runs the full signup pipeline and returns where the client
// should be redirected.
func (p *AccountProvisioner) Provision(ctx context.Context, creds domain.Credentials, details domain.StoreDetails) (domain.RedirectTarget, error) {
	// Step 1: advisory handle check. This reduces the chance of a
	// wasted identity-creation call; the insert in step 3 is the
	// authoritative uniqueness guarantee.
	available, err := p.handleValidator.Validate(ctx, details.Handle)
	if err != nil {
		// Inconclusive check: fail closed, do not reserve
		p.logger.Error("handle pre-check inconclusive", "handle", details.Handle, "error", err)
		return "", domain.NewProvisionError(domain.StageHandleCheck, domain.CategoryDuplicateHandle,
			"This handle is not available right now. Please try again.", err)
	}
	if !available {
		return "", domain.NewProvisionError(domain.StageHandleCheck, domain.CategoryDuplicateHandle,
			"This handle is already taken. Please choose another one.", domain.ErrHandleUnavailable)
	}

	// Step 2: create the identity. No store write is attempted on
	// failure.
	identity, err := p.identityGateway.CreateIdentity(ctx, creds)
	if err != nil {
		translated := p.translator.Translate(err)
		p.logger.Error("identity creation failed",
			"email", creds.Email,
			"category", translated.Category,
			"error", err)
		return "", domain.NewProvisionError(domain.StageIdentityCreate, translated.Category, translated.UserMessage, err)
	}

	p.logger.Info("identity created", "identity_id", identity.ID, "email", identity.Email)

	// Step 3: create the store record owned by the fresh identity.
	store, err := domain.NewStore(identity.ID, details)
	if err != nil {
		return "", domain.NewProvisionError(domain.StageStoreCreate, domain.CategoryUnknown,
			"Something went wrong. Please try again.", err)
	}

	if err := p.storeRepo.Insert(ctx, store); err != nil {
		// The identity from step 2 is intentionally left in place.
		if errors.Is(err, domain.ErrDuplicateHandle) {
			// Race loser: another signup reserved the handle between
			// the pre-check and this insert
			p.logger.Warn("handle taken at insert time",
				"handle", store.Handle,
				"identity_id", identity.ID)
			return "", domain.NewProvisionError(domain.StageStoreCreate, domain.CategoryDuplicateHandle,
				"This handle is already taken. Please choose another one.", err)
		}

		translated := p.translator.Translate(err)
		p.logger.Error("store creation failed",
			"handle", store.Handle,
			"identity_id", identity.ID,
			"error", err)
		return "", domain.NewProvisionError(domain.StageStoreCreate, translated.Category, translated.UserMessage, err)
	}

	p.logger.Info("store created",
		"store_id", store.ID,
		"handle", store.Handle,
		"owner_id", store.OwnerID)

	// Step 4: establish a session. The account and store exist at this
	// point, so a sign-in failure is not a provisioning failure.
	if _, err := p.identityGateway.Authenticate(ctx, creds); err != nil {
		p.logger.Warn("post-provisioning sign-in failed, routing to sign-in screen",
			"identity_id", identity.ID,
			"error", err)
		return domain.RedirectSignInRequired, nil
	}

	return domain.RedirectDashboard, nil
}

// ProvisionAccount runs the lightweight signup variant: the identity
// and session are created now and store details are deferred to the
// store-setup screen.
func (p *AccountProvisioner) ProvisionAccount(ctx context.Context, creds domain.Credentials) (domain.RedirectTarget, error) {
	identity, err := p.identityGateway.CreateIdentity(ctx, creds)
	if err != nil {
		translated := p.translator.Translate(err)
		p.logger.Error("identity creation failed",
			"email", creds.Email,
			"category", translated.Category,
			"error", err)
		return "", domain.NewProvisionError(domain.StageIdentityCreate, translated.Category, translated.UserMessage, err)
	}

	p.logger.Info("identity created", "identity_id", identity.ID, "email", identity.Email)

	if _, err := p.identityGateway.Authenticate(ctx, creds); err != nil {
		p.logger.Warn("post-provisioning sign-in failed, routing to sign-in screen",
			"identity_id", identity.ID,
			"error", err)
		return domain.RedirectSignInRequired, nil
	}

	return domain.RedirectStoreSetup, nil
}
