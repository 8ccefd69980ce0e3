package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"store-service/app/domain"
	"store-service/app/port"

	"github.com/google/uuid"
)

// SignupFlowUsecase drives the two-step onboarding form. Flows are
// ephemeral in-memory state keyed by flow ID; they are destroyed on
// expiry or completion and never persisted.
//
// State transitions:
//
//	credentials --(local validation passes)--> store_details
//	store_details --(submit)--> submitting
//	submitting --(provision ok)--> succeeded
//	submitting --(recoverable failure)--> store_details + field error
//	submitting --(unrecoverable failure)--> failed + notice
//	store_details --(back)--> credentials (entered data preserved)
type SignupFlowUsecase struct {
	provisioner port.Provisioner
	flows       map[uuid.UUID]*domain.SignupFlow
	mutex       sync.Mutex
	ttl         time.Duration
	logger      *slog.Logger
}

// NewSignupFlowUsecase creates a new SignupFlowUsecase instance
func NewSignupFlowUsecase(provisioner port.Provisioner, ttl time.Duration, logger *slog.Logger) *SignupFlowUsecase {
	uc := &SignupFlowUsecase{
		provisioner: provisioner,
		flows:       make(map[uuid.UUID]*domain.SignupFlow),
		ttl:         ttl,
		logger:      logger.With("component", "signup_flow"),
	}

	go uc.cleanupExpiredFlows()
	return uc
}

// CreateFlow starts a new signup flow in the credentials step
func (uc *SignupFlowUsecase) CreateFlow(ctx context.Context) (*domain.SignupFlow, error) {
	flow := domain.NewSignupFlow(uc.ttl)

	uc.mutex.Lock()
	uc.flows[flow.ID] = flow
	uc.mutex.Unlock()

	uc.logger.Info("signup flow created", "flow_id", flow.ID)
	return snapshot(flow), nil
}

// GetFlow returns the current state of a flow
func (uc *SignupFlowUsecase) GetFlow(ctx context.Context, flowID string) (*domain.SignupFlow, error) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	flow, err := uc.lookup(flowID)
	if err != nil {
		return nil, err
	}
	return snapshot(flow), nil
}

// SubmitCredentials handles the first form step. On validation failure
// the flow stays in the credentials step with per-field errors; no
// backend call is made.
func (uc *SignupFlowUsecase) SubmitCredentials(ctx context.Context, flowID string, creds domain.Credentials) (*domain.SignupFlow, error) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	flow, err := uc.lookup(flowID)
	if err != nil {
		return nil, err
	}

	switch flow.Step {
	case domain.StepCredentials:
		// expected
	case domain.StepSubmitting:
		return nil, domain.ErrFlowSubmitting
	default:
		// Re-editing credentials from a later step is allowed and does
		// not lose entered store details
		if flow.Terminal() {
			return snapshot(flow), nil
		}
	}

	if fieldErrs := creds.Validate(); fieldErrs != nil {
		flow.Step = domain.StepCredentials
		flow.Errors = fieldErrs
		return snapshot(flow), nil
	}

	flow.Credentials = creds
	flow.Step = domain.StepStoreDetails
	flow.Errors = nil
	flow.Notice = ""

	uc.logger.Info("credentials accepted", "flow_id", flow.ID)
	return snapshot(flow), nil
}

// SubmitStoreDetails handles the final form step and runs the
// provisioning pipeline. Re-invoking submit while the flow is already
// submitting is a no-op.
func (uc *SignupFlowUsecase) SubmitStoreDetails(ctx context.Context, flowID string, details domain.StoreDetails) (*domain.SignupFlow, error) {
	uc.mutex.Lock()

	flow, err := uc.lookup(flowID)
	if err != nil {
		uc.mutex.Unlock()
		return nil, err
	}

	switch flow.Step {
	case domain.StepSubmitting:
		// Double-click protection: the in-flight attempt wins
		state := snapshot(flow)
		uc.mutex.Unlock()
		return state, nil
	case domain.StepStoreDetails, domain.StepFailed:
		// StepFailed keeps the entered fields so the same submission
		// can be retried
	default:
		state := snapshot(flow)
		uc.mutex.Unlock()
		return state, nil
	}

	creds := flow.Credentials
	flow.Details = details
	flow.Step = domain.StepSubmitting
	flow.Errors = nil
	flow.Notice = ""
	uc.mutex.Unlock()

	uc.logger.Info("provisioning started", "flow_id", flow.ID, "handle", details.Handle)

	redirect, provErr := uc.provisioner.Provision(ctx, creds, details)

	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	// The flow may have been torn down while the calls were in flight;
	// in that case the result is discarded
	flow, err = uc.lookup(flowID)
	if err != nil {
		uc.logger.Warn("flow gone after provisioning, result discarded", "flow_id", flowID)
		return nil, err
	}

	if provErr == nil {
		flow.Step = domain.StepSucceeded
		flow.Redirect = redirect
		uc.logger.Info("signup flow succeeded", "flow_id", flow.ID, "redirect", redirect)
		return snapshot(flow), nil
	}

	var pErr *domain.ProvisionError
	if errors.As(provErr, &pErr) && pErr.Recoverable() {
		// Return to the form with the error attached to the offending
		// field so the user can correct and resubmit
		flow.Step = domain.StepStoreDetails
		flow.Errors = domain.FieldErrors{pErr.FieldFor(): pErr.Message}
		uc.logger.Info("signup flow returned to form",
			"flow_id", flow.ID,
			"field", pErr.FieldFor(),
			"category", pErr.Category)
		return snapshot(flow), nil
	}

	flow.Step = domain.StepFailed
	flow.Notice = userNotice(provErr)
	uc.logger.Error("signup flow failed", "flow_id", flow.ID, "error", provErr)
	return snapshot(flow), nil
}

// GoBack returns the flow to the credentials step without losing
// entered store details.
func (uc *SignupFlowUsecase) GoBack(ctx context.Context, flowID string) (*domain.SignupFlow, error) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	flow, err := uc.lookup(flowID)
	if err != nil {
		return nil, err
	}

	switch flow.Step {
	case domain.StepStoreDetails, domain.StepFailed:
		flow.Step = domain.StepCredentials
		flow.Errors = nil
		flow.Notice = ""
	case domain.StepSubmitting:
		return nil, domain.ErrFlowSubmitting
	}

	return snapshot(flow), nil
}

// lookup finds a live flow by ID; caller must hold the mutex
func (uc *SignupFlowUsecase) lookup(flowID string) (*domain.SignupFlow, error) {
	id, err := uuid.Parse(flowID)
	if err != nil {
		return nil, domain.ErrFlowNotFound
	}

	flow, ok := uc.flows[id]
	if !ok {
		return nil, domain.ErrFlowNotFound
	}

	if flow.Expired() {
		delete(uc.flows, id)
		return nil, domain.ErrFlowExpired
	}

	return flow, nil
}

// cleanupExpiredFlows periodically removes expired flows
func (uc *SignupFlowUsecase) cleanupExpiredFlows() {
	for {
		time.Sleep(time.Minute)

		uc.mutex.Lock()
		for id, flow := range uc.flows {
			if flow.Expired() || flow.Terminal() {
				delete(uc.flows, id)
			}
		}
		uc.mutex.Unlock()
	}
}

// snapshot copies a flow so callers never share the internal state
func snapshot(flow *domain.SignupFlow) *domain.SignupFlow {
	copied := *flow
	if flow.Errors != nil {
		copied.Errors = domain.FieldErrors{}
		copied.Errors.Merge(flow.Errors)
	}
	return &copied
}

// userNotice extracts the user-facing message from a provisioning error
func userNotice(err error) string {
	var pErr *domain.ProvisionError
	if errors.As(err, &pErr) {
		return pErr.Message
	}
	return "Something went wrong. Please try again."
}
