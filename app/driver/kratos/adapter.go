package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"store-service/app/domain"
	"store-service/app/port"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"
)

// identitySchemaID is the Kratos identity schema used for merchants
const identitySchemaID = "default"

// ClientAdapter adapts the Kratos client to implement port.KratosClient
type ClientAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewClientAdapter creates a new adapter
func NewClientAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &ClientAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// CreateIdentity creates a credential-holding identity through the
// Kratos admin API.
func (a *ClientAdapter) CreateIdentity(ctx context.Context, email, password string) (*domain.Identity, error) {
	a.logger.Info("creating identity in Kratos", "email", email)

	body := kratosclient.CreateIdentityBody{
		SchemaId: identitySchemaID,
		Traits: map[string]interface{}{
			"email": email,
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: kratosclient.PtrString(password),
				},
			},
		},
	}

	resp, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity creation failed",
			"email", email,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformKratosError(err, httpResp, "identity_create")
	}

	identityID, err := uuid.Parse(resp.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity id from Kratos: %w", err)
	}

	a.logger.Info("identity created successfully", "identity_id", identityID)

	return &domain.Identity{
		ID:    identityID,
		Email: email,
	}, nil
}

// SubmitNativeLogin creates a native login flow and submits it with the
// password method, returning the resulting session token.
func (a *ClientAdapter) SubmitNativeLogin(ctx context.Context, email, password string) (*domain.AuthenticatedSession, error) {
	a.logger.Info("starting native login flow", "email", email)

	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("kratos login flow creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformKratosError(err, httpResp, "login_flow_create")
	}

	method := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&method)).
		Execute()
	if err != nil {
		a.logger.Error("kratos login flow submission failed",
			"flow_id", flow.Id,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformKratosError(err, httpResp, "login_flow_submit")
	}

	if result.SessionToken == nil {
		return nil, fmt.Errorf("kratos login succeeded without a session token")
	}

	identity, err := transformIdentity(result.Session.Identity)
	if err != nil {
		return nil, err
	}

	a.logger.Info("native login succeeded", "identity_id", identity.ID)

	return &domain.AuthenticatedSession{
		Token:    domain.SessionToken(*result.SessionToken),
		Identity: *identity,
	}, nil
}

// GetSession introspects a session token via whoami
func (a *ClientAdapter) GetSession(ctx context.Context, token string) (*domain.Identity, error) {
	session, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		a.logger.Error("kratos session introspection failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformKratosError(err, httpResp, "session_get")
	}

	if session.Identity == nil {
		return nil, fmt.Errorf("kratos session has no identity")
	}

	return transformIdentity(session.Identity)
}

// transformIdentity converts a Kratos identity into the domain form
func transformIdentity(identity *kratosclient.Identity) (*domain.Identity, error) {
	identityID, err := uuid.Parse(identity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity id from Kratos: %w", err)
	}

	email := ""
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if v, ok := traits["email"].(string); ok {
			email = v
		}
	}

	return &domain.Identity{
		ID:    identityID,
		Email: email,
	}, nil
}

// getHTTPStatus safely extracts the status code from a response
func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
