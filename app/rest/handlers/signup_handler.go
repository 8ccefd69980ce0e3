package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"store-service/app/domain"
	"store-service/app/port"
	"store-service/app/utils/validator"
)

// SignupHandler handles the two-step signup form and the lightweight
// account-only signup
type SignupHandler struct {
	signupUsecase port.SignupUsecase
	provisioner   port.Provisioner
	validate      *validator.Validator
	logger        *slog.Logger
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(signupUsecase port.SignupUsecase, provisioner port.Provisioner, validate *validator.Validator, logger *slog.Logger) *SignupHandler {
	return &SignupHandler{
		signupUsecase: signupUsecase,
		provisioner:   provisioner,
		validate:      validate,
		logger:        logger,
	}
}

// CreateFlow starts a new signup flow
// @Summary Start signup flow
// @Description Create a new two-step signup flow in the credentials step
// @Tags signup
// @Accept json
// @Produce json
// @Success 201 {object} domain.SignupFlow
// @Failure 500 {object} ErrorResponse
// @Router /v1/signup/flows [post]
func (h *SignupHandler) CreateFlow(c echo.Context) error {
	ctx := c.Request().Context()

	flow, err := h.signupUsecase.CreateFlow(ctx)
	if err != nil {
		h.logger.Error("failed to create signup flow", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create signup flow",
		})
	}

	return c.JSON(http.StatusCreated, flow)
}

// GetFlow returns the current state of a signup flow
// @Summary Get signup flow
// @Description Retrieve the current state of a signup flow by its ID
// @Tags signup
// @Accept json
// @Produce json
// @Param flowId path string true "Flow ID"
// @Success 200 {object} domain.SignupFlow
// @Failure 404 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse "Flow expired"
// @Router /v1/signup/flows/{flowId} [get]
func (h *SignupHandler) GetFlow(c echo.Context) error {
	ctx := c.Request().Context()
	flowID := c.Param("flowId")

	flow, err := h.signupUsecase.GetFlow(ctx, flowID)
	if err != nil {
		return h.handleFlowError(c, flowID, err)
	}

	return c.JSON(http.StatusOK, flow)
}

// SubmitCredentials handles the first form step
// @Summary Submit signup credentials
// @Description Submit email and password for the first signup step
// @Tags signup
// @Accept json
// @Produce json
// @Param flowId path string true "Flow ID"
// @Param body body CredentialsRequest true "Signup credentials"
// @Success 200 {object} domain.SignupFlow
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Submission in progress"
// @Failure 410 {object} ErrorResponse "Flow expired"
// @Router /v1/signup/flows/{flowId}/credentials [post]
func (h *SignupHandler) SubmitCredentials(c echo.Context) error {
	ctx := c.Request().Context()
	flowID := c.Param("flowId")

	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind credentials request", "flow_id", flowID, "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	creds := domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	}

	flow, err := h.signupUsecase.SubmitCredentials(ctx, flowID, creds)
	if err != nil {
		return h.handleFlowError(c, flowID, err)
	}

	return c.JSON(http.StatusOK, flow)
}

// SubmitStoreDetails handles the final form step and runs provisioning
// @Summary Submit store details
// @Description Submit store details for the final signup step and provision the account
// @Tags signup
// @Accept json
// @Produce json
// @Param flowId path string true "Flow ID"
// @Param body body StoreDetailsRequest true "Store details"
// @Success 200 {object} domain.SignupFlow
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Submission in progress"
// @Failure 410 {object} ErrorResponse "Flow expired"
// @Router /v1/signup/flows/{flowId}/store [post]
func (h *SignupHandler) SubmitStoreDetails(c echo.Context) error {
	ctx := c.Request().Context()
	flowID := c.Param("flowId")

	var req StoreDetailsRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind store details request", "flow_id", flowID, "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validate.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Error:  "validation failed",
				Fields: vErr.Errors,
			})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	details := domain.StoreDetails{
		Name:        req.Name,
		Handle:      domain.StoreHandle(req.Handle),
		Description: req.Description,
		Currency:    req.Currency,
		Country:     req.Country,
	}

	flow, err := h.signupUsecase.SubmitStoreDetails(ctx, flowID, details)
	if err != nil {
		return h.handleFlowError(c, flowID, err)
	}

	return c.JSON(http.StatusOK, flow)
}

// GoBack returns the flow to the credentials step
// @Summary Go back to credentials step
// @Description Return the signup flow to the credentials step without losing entered data
// @Tags signup
// @Accept json
// @Produce json
// @Param flowId path string true "Flow ID"
// @Success 200 {object} domain.SignupFlow
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Submission in progress"
// @Failure 410 {object} ErrorResponse "Flow expired"
// @Router /v1/signup/flows/{flowId}/back [post]
func (h *SignupHandler) GoBack(c echo.Context) error {
	ctx := c.Request().Context()
	flowID := c.Param("flowId")

	flow, err := h.signupUsecase.GoBack(ctx, flowID)
	if err != nil {
		return h.handleFlowError(c, flowID, err)
	}

	return c.JSON(http.StatusOK, flow)
}

// SignupLite handles the single-step account-only signup. Store details
// are deferred to a later setup step.
// @Summary Account-only signup
// @Description Create an account without store details; the client is routed to store setup
// @Tags signup
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Signup credentials"
// @Success 201 {object} SignupLiteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/signup [post]
func (h *SignupHandler) SignupLite(c echo.Context) error {
	ctx := c.Request().Context()

	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind signup request", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	creds := domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	}

	if fieldErrs := creds.Validate(); fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: fieldErrs,
		})
	}

	redirect, err := h.provisioner.ProvisionAccount(ctx, creds)
	if err != nil {
		return h.handleProvisionError(c, err)
	}

	h.logger.Info("account-only signup completed", "redirect", redirect)

	return c.JSON(http.StatusCreated, SignupLiteResponse{
		Redirect: redirect,
	})
}

// handleFlowError maps flow lookup errors to HTTP responses
func (h *SignupHandler) handleFlowError(c echo.Context, flowID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrFlowNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "signup flow not found",
		})
	case errors.Is(err, domain.ErrFlowExpired):
		return c.JSON(http.StatusGone, ErrorResponse{
			Error: "signup flow has expired",
		})
	case errors.Is(err, domain.ErrFlowSubmitting):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error: "a submission is already in progress",
		})
	default:
		h.logger.Error("signup flow operation failed", "flow_id", flowID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
		})
	}
}

// handleProvisionError maps provisioning errors to HTTP responses for
// the account-only path
func (h *SignupHandler) handleProvisionError(c echo.Context, err error) error {
	var pErr *domain.ProvisionError
	if errors.As(err, &pErr) {
		status := http.StatusInternalServerError
		switch pErr.Category {
		case domain.CategoryAlreadyRegistered, domain.CategoryDuplicateHandle:
			status = http.StatusConflict
		case domain.CategoryRateLimited:
			status = http.StatusTooManyRequests
		case domain.CategoryPermissionDenied:
			status = http.StatusForbidden
		}
		return c.JSON(status, DetailedErrorResponse{
			Error:   pErr.Message,
			Code:    string(pErr.Category),
			Field:   pErr.FieldFor(),
			Details: "signup could not be completed",
		})
	}

	h.logger.Error("account provisioning failed", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "signup could not be completed",
	})
}

// Request/Response types

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type StoreDetailsRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Handle      string `json:"handle" validate:"required,handle"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Country     string `json:"country" validate:"required,len=2"`
}

type SignupLiteResponse struct {
	Redirect domain.RedirectTarget `json:"redirect"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type DetailedErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string             `json:"error"`
	Fields domain.FieldErrors `json:"fields"`
}
