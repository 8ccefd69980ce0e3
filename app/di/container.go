package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"store-service/app/config"
	"store-service/app/driver/kratos"
	"store-service/app/driver/postgres"
	"store-service/app/gateway"
	"store-service/app/port"
	"store-service/app/rest"
	"store-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways and repositories
	IdentityGateway port.IdentityGateway
	StoreRepository port.StoreRepository

	// Usecases
	HandleValidator port.HandleValidator
	Provisioner     port.Provisioner
	SignupUsecase   port.SignupUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Initialize database connection
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Kratos client
	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories
	container.StoreRepository = postgres.NewStoreRepository(container.DB.Pool(), logger)

	// Initialize gateways
	kratosAdapter := kratos.NewClientAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(kratosAdapter, logger)

	// Initialize usecases
	container.HandleValidator = usecase.NewHandleChecker(container.StoreRepository, logger)
	container.Provisioner = usecase.NewAccountProvisioner(
		container.HandleValidator,
		container.IdentityGateway,
		container.StoreRepository,
		logger,
	)
	container.SignupUsecase = usecase.NewSignupFlowUsecase(container.Provisioner, cfg.SignupFlowTTL, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:          c.Logger,
		SignupUsecase:   c.SignupUsecase,
		Provisioner:     c.Provisioner,
		HandleValidator: c.HandleValidator,
		DatabaseChecker: c.DB,
		KratosChecker:   c.KratosClient,
		EnableDebug:     c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	// The Kratos client holds no connections that need explicit cleanup

	c.Logger.Info("Container closed successfully")
	return nil
}
