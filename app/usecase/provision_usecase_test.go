package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"store-service/app/domain"
	mock_port "store-service/app/mocks"
	"store-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCredentials() domain.Credentials {
	return domain.Credentials{
		Email:    "merchant@example.com",
		Password: "secret-password",
	}
}

func testStoreDetails() domain.StoreDetails {
	return domain.StoreDetails{
		Name:     "My Shop",
		Handle:   "@my-shop",
		Currency: "USD",
		Country:  "US",
	}
}

func newTestProvisioner(t *testing.T, ctrl *gomock.Controller) (*AccountProvisioner, *mock_port.MockHandleValidator, *mock_port.MockIdentityGateway, *mock_port.MockStoreRepository) {
	t.Helper()

	mockValidator := mock_port.NewMockHandleValidator(ctrl)
	mockGateway := mock_port.NewMockIdentityGateway(ctrl)
	mockRepo := mock_port.NewMockStoreRepository(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	provisioner := NewAccountProvisioner(mockValidator, mockGateway, mockRepo, testLogger)
	return provisioner, mockValidator, mockGateway, mockRepo
}

func TestAccountProvisioner_Provision_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provisioner, mockValidator, mockGateway, mockRepo := newTestProvisioner(t, ctrl)

	creds := testCredentials()
	details := testStoreDetails()
	identity := &domain.Identity{ID: uuid.New(), Email: creds.Email}

	// The pipeline is strictly ordered: handle check, identity create,
	// store insert, sign in
	gomock.InOrder(
		mockValidator.EXPECT().Validate(gomock.Any(), details.Handle).Return(true, nil),
		mockGateway.EXPECT().CreateIdentity(gomock.Any(), creds).Return(identity, nil),
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, store *domain.Store) error {
				assert.Equal(t, identity.ID, store.OwnerID)
				assert.Equal(t, domain.StoreHandle("@my-shop"), store.Handle)
				assert.True(t, store.SetupCompleted)
				assert.True(t, store.IsActive)
				return nil
			}),
		mockGateway.EXPECT().Authenticate(gomock.Any(), creds).Return(&domain.AuthenticatedSession{
			Token:    "session-token",
			Identity: *identity,
		}, nil),
	)

	redirect, err := provisioner.Provision(context.Background(), creds, details)

	assert.NoError(t, err)
	assert.Equal(t, domain.RedirectDashboard, redirect)
}

func TestAccountProvisioner_Provision_HandleTakenAtPrecheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provisioner, mockValidator, _, _ := newTestProvisioner(t, ctrl)

	creds := testCredentials()
	details := testStoreDetails()

	// No CreateIdentity or Insert expectations: the pipeline must stop
	// before creating anything
	mockValidator.EXPECT().Validate(gomock.Any(), details.Handle).Return(false, nil)

	redirect, err := provisioner.Provision(context.Background(), creds, details)

	assert.Empty(t, redirect)

	var pErr *domain.ProvisionError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, domain.StageHandleCheck, pErr.Stage)
	assert.Equal(t, domain.CategoryDuplicateHandle, pErr.Category)
	assert.True(t, pErr.Recoverable())
	assert.Equal(t, "handle", pErr.FieldFor())
}

func TestAccountProvisioner_Provision_PrecheckFailureFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provisioner, mockValidator, _, _ := newTestProvisioner(t, ctrl)

	creds := testCredentials()
	details := testStoreDetails()

	// An inconclusive availability check must not proceed to identity
	// creation
	mockValidator.EXPECT().Validate(gomock.Any(), details.Handle).Return(false, assert.AnError)

	redirect, err := provisioner.Provision(context.Background(), creds, details)

	assert.Empty(t, redirect)

	var pErr *domain.ProvisionError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, domain.StageHandleCheck, pErr.Stage)
}

func TestAccountProvisioner_Provision_IdentityCreationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provisioner, mockValidator, mockGateway, _ := newTestProvisioner(t, ctrl)

	creds := testCredentials()
	details := testStoreDetails()

	// No Insert expectation: no store write is attempted when identity
	// creation fails
	gomock.InOrder(
		mockValidator.EXPECT().Validate(gomock.Any(), details.Handle).Return(true, nil),
		mockGateway.EXPECT().CreateIdentity(gomock.Any(), creds).
			Return(nil, fmt.Errorf("%w: create identity", domain.ErrAlreadyRegistered)),
	)

	redirect, err := provisioner.Provision(context.Background(), creds, details)

	assert.Empty(t, redirect)

	var pErr *domain.ProvisionError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, domain.StageIdentityCreate, pErr.Stage)
	assert.Equal(t, domain.CategoryAlreadyRegistered, pErr.Category)
	assert.Equal(t, "email", pErr.FieldFor())
}

func TestAccountProvisioner_Provision_RaceLoserOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provisioner, mockValidator, mockGateway, mockRepo := newTestProvisioner(t, ctrl)

	creds := testCredentials()
	details := testStoreDetails()
	identity := &domain.Identity{ID: uuid.New(), Email: creds.Email}

	// The pre-check passed but another signup claimed the handle before
	// the insert. The identity stays in place and no sign-in happens.
	gomock.InOrder(
		mockValidator.EXPECT().Validate(gomock.Any(), details.Handle).Return(true, nil),
		mockGateway.EXPECT().CreateIdentity(gomock.Any(), creds).Return(identity, nil),
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: @my-shop", domain.ErrDuplicateHandle)),
	)

	redirect, err := provisioner.Provision(context.Background(), creds, details)

	assert.Empty(t, redirect)

	var pErr *domain.ProvisionError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, domain.StageStoreCreate, pErr.Stage)
	assert.Equal(t, domain.CategoryDuplicateHandle, pErr.Category)
	assert.True(t, pErr.Recoverable())
	assert.True(t, errors.Is(err, domain.ErrDuplicateHandle))
}

func TestAccountProvisioner_Provision_StoreInsertInfrastructureFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provisioner, mockValidator, mockGateway, mockRepo := newTestProvisioner(t, ctrl)

	creds := testCredentials()
	details := testStoreDetails()
	identity := &domain.Identity{ID: uuid.New(), Email: creds.Email}

	gomock.InOrder(
		mockValidator.EXPECT().Validate(gomock.Any(), details.Handle).Return(true, nil),
		mockGateway.EXPECT().CreateIdentity(gomock.Any(), creds).Return(identity, nil),
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")),
	)

	redirect, err := provisioner.Provision(context.Background(), creds, details)

	assert.Empty(t, redirect)

	var pErr *domain.ProvisionError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, domain.StageStoreCreate, pErr.Stage)
	assert.Equal(t, domain.CategoryUnknown, pErr.Category)
	assert.False(t, pErr.Recoverable())
}

func TestAccountProvisioner_Provision_SignInFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provisioner, mockValidator, mockGateway, mockRepo := newTestProvisioner(t, ctrl)

	creds := testCredentials()
	details := testStoreDetails()
	identity := &domain.Identity{ID: uuid.New(), Email: creds.Email}

	gomock.InOrder(
		mockValidator.EXPECT().Validate(gomock.Any(), details.Handle).Return(true, nil),
		mockGateway.EXPECT().CreateIdentity(gomock.Any(), creds).Return(identity, nil),
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		mockGateway.EXPECT().Authenticate(gomock.Any(), creds).Return(nil, domain.ErrInvalidCredentials),
	)

	redirect, err := provisioner.Provision(context.Background(), creds, details)

	// Account and store exist; the user just signs in manually
	assert.NoError(t, err)
	assert.Equal(t, domain.RedirectSignInRequired, redirect)
}

func TestAccountProvisioner_ProvisionAccount(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mock_port.MockIdentityGateway, domain.Credentials)
		wantRedirect domain.RedirectTarget
		wantErr      bool
	}{
		{
			name: "success routes to store setup",
			setupMocks: func(gateway *mock_port.MockIdentityGateway, creds domain.Credentials) {
				identity := &domain.Identity{ID: uuid.New(), Email: creds.Email}
				gateway.EXPECT().CreateIdentity(gomock.Any(), creds).Return(identity, nil)
				gateway.EXPECT().Authenticate(gomock.Any(), creds).Return(&domain.AuthenticatedSession{
					Token:    "session-token",
					Identity: *identity,
				}, nil)
			},
			wantRedirect: domain.RedirectStoreSetup,
			wantErr:      false,
		},
		{
			name: "sign-in failure routes to sign-in screen",
			setupMocks: func(gateway *mock_port.MockIdentityGateway, creds domain.Credentials) {
				identity := &domain.Identity{ID: uuid.New(), Email: creds.Email}
				gateway.EXPECT().CreateIdentity(gomock.Any(), creds).Return(identity, nil)
				gateway.EXPECT().Authenticate(gomock.Any(), creds).Return(nil, assert.AnError)
			},
			wantRedirect: domain.RedirectSignInRequired,
			wantErr:      false,
		},
		{
			name: "identity creation failure is fatal",
			setupMocks: func(gateway *mock_port.MockIdentityGateway, creds domain.Credentials) {
				gateway.EXPECT().CreateIdentity(gomock.Any(), creds).
					Return(nil, fmt.Errorf("%w: create identity", domain.ErrAlreadyRegistered))
			},
			wantRedirect: "",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provisioner, _, mockGateway, _ := newTestProvisioner(t, ctrl)

			creds := testCredentials()
			tt.setupMocks(mockGateway, creds)

			redirect, err := provisioner.ProvisionAccount(context.Background(), creds)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantRedirect, redirect)
		})
	}
}
