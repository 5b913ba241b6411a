package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/linkden/linkden/internal/billing"
	"github.com/linkden/linkden/internal/config"
	"github.com/linkden/linkden/internal/platform/filearea"
	"github.com/linkden/linkden/internal/platform/postgres"
	"github.com/linkden/linkden/internal/platform/stripebilling"
	"github.com/linkden/linkden/internal/service"
	"github.com/linkden/linkden/internal/service/auth"
	"github.com/linkden/linkden/internal/store"
)

// tokenLifetime is how long issued session tokens stay valid.
const tokenLifetime = 24 * time.Hour

// application holds the wired dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService        auth.JWTService
	accountService    *service.AccountService
	collectionService *service.CollectionService
}

// newApplication opens the database and wires all services. The billing
// capability is attached only when a provider credential is configured;
// the decision is made once here and never re-read mid-request.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	db, err := openDatabase(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	fileArea := filearea.NewLocalFileArea(cfg.Storage.Root, appLogger)

	var billingCapability billing.Billing
	if cfg.Billing.BillingEnabled() {
		billingCapability = stripebilling.New(cfg.Billing.StripeSecretKey, appLogger)
	}

	accountService, err := service.NewAccountService(
		postgres.NewUserStore(db, appLogger),
		postgres.NewCollectionStore(db, appLogger),
		postgres.NewLinkStore(db, appLogger),
		postgres.NewTagStore(db, appLogger),
		postgres.NewWhitelistStore(db, appLogger),
		store.NewTxRunner(db),
		auth.NewBcryptVerifier(),
		fileArea,
		billingCapability,
		appLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	collectionService, err := service.NewCollectionService(
		postgres.NewCollectionStore(db, appLogger),
		fileArea,
		appLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection service: %w", err)
	}

	return &application{
		config:            cfg,
		logger:            appLogger,
		db:                db,
		jwtService:        jwtService,
		accountService:    accountService,
		collectionService: collectionService,
	}, nil
}

// Close releases the application's resources.
func (app *application) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
