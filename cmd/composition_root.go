package cmd

import (
	"fmt"
	"log/slog"
	"os"

	httpin "printery/internal/adapters/in/http"
	"printery/internal/adapters/out/botapi"
	"printery/internal/adapters/out/inmemory"
	"printery/internal/adapters/out/postgres/orderrepo"
	"printery/internal/core/application/usecases/commands"
	"printery/internal/core/application/usecases/queries"
	"printery/internal/core/domain/services"
	"printery/internal/core/ports"
	"printery/internal/jobs"
	"printery/internal/pkg/sessions"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires every adapter and handler from the configuration.
type CompositionRoot struct {
	server     *httpin.Server
	jobManager *jobs.JobManager
	logger     *slog.Logger
}

// NewCompositionRoot builds the full object graph. A configured DATABASE_DSN
// selects the postgres store and enables the pending-order view; otherwise
// orders live in memory for the lifetime of the process.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	repo, pendingOrdersHandler, err := buildStorage(config, logger)
	if err != nil {
		return nil, err
	}

	notifier := botapi.NewClient(
		config.TransportAPIURL,
		config.TransportToken,
		config.PaymentProviderToken,
		config.OperatorChatID,
		logger,
	)

	pricer := services.NewPriceCalculator()
	keeper := sessions.NewKeeper()

	server := httpin.NewServer(
		commands.NewStartOrderCommandHandler(repo, notifier, logger),
		commands.NewAdvanceOrderCommandHandler(repo, notifier, pricer, config.Currency, logger),
		commands.NewAttachFileCommandHandler(repo, notifier, logger),
		commands.NewCancelOrderCommandHandler(repo, notifier, logger),
		commands.NewEditOrderCommandHandler(repo, notifier, logger),
		commands.NewConfirmOrderCommandHandler(repo, notifier, pricer, config.Currency, logger),
		commands.NewAnswerPreCheckoutCommandHandler(repo, notifier, logger),
		commands.NewCompletePaymentCommandHandler(repo, notifier, pricer, config.Currency, logger),
		pendingOrdersHandler,
		notifier,
		keeper,
		logger,
	)

	return &CompositionRoot{
		server:     server,
		jobManager: jobs.NewJobManager(repo, notifier, keeper, config.OrderTTL, logger),
		logger:     logger,
	}, nil
}

// Server returns the inbound HTTP surface.
func (cr *CompositionRoot) Server() *httpin.Server {
	return cr.server
}

// JobManager returns the background job manager.
func (cr *CompositionRoot) JobManager() *jobs.JobManager {
	return cr.jobManager
}

// Logger returns the root logger.
func (cr *CompositionRoot) Logger() *slog.Logger {
	return cr.logger
}

func buildStorage(
	config Config, logger *slog.Logger,
) (ports.OrderRepository, *queries.GetPendingOrdersQueryHandler, error) {
	if config.DatabaseDSN == "" {
		logger.Warn("no database configured, orders are kept in memory")
		return inmemory.NewOrderRepository(), nil, nil
	}

	db, err := gorm.Open(postgres.Open(config.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate order schema: %w", err)
	}

	pendingOrdersHandler := queries.NewGetPendingOrdersQueryHandler(db)
	return orderrepo.NewGormOrderRepository(db), &pendingOrdersHandler, nil
}
