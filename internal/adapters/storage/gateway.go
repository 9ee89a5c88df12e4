// Package storage implements the persistence adapter backed by PostgreSQL
// via GORM. Repositories translate between storage records and domain
// entities and map driver errors to domain errors; business rules stay in
// the application layer. The instrumented wrappers add a shared circuit
// breaker and OpenTelemetry metrics around every store access.
package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
	"github.com/jsamuelsen11/task-manager-service/internal/platform/config"
)

// Gateway owns the database handle and its lifecycle. It satisfies
// ports.HealthChecker structurally for the readiness endpoint.
type Gateway struct {
	db *gorm.DB
}

// Open connects to PostgreSQL and configures the connection pool.
// TranslateError is enabled so that driver-specific failures surface as
// gorm sentinel errors, which translateError then maps to domain errors.
func Open(cfg *config.DatabaseConfig) (*Gateway, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Gateway{db: db}, nil
}

// NewGateway wraps an existing database handle. Used by tests that supply
// a mocked connection.
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Migrate creates or updates the users and tasks tables. Order matters:
// tasks carry a foreign key to users. After the schema is in place an
// admin user is seeded so a fresh deployment has a usable account.
func (g *Gateway) Migrate() error {
	if err := g.db.AutoMigrate(&userRecord{}, &taskRecord{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return g.seedAdminUser()
}

// seedAdminUser inserts the default admin account if it does not already
// exist. The insert is keyed on username so repeated migrations are
// idempotent.
func (g *Gateway) seedAdminUser() error {
	email := "admin@taskmanager.local"
	admin := userRecord{
		Username: "admin",
		Email:    &email,
		Role:     string(user.RoleAdmin),
	}

	err := g.db.
		Where(&userRecord{Username: admin.Username}).
		Attrs(admin).
		FirstOrCreate(&userRecord{}).Error
	if err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}
	return nil
}

// Ping verifies connectivity with a bounded round trip to the database.
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("accessing connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

// Name identifies this component in health check results.
func (g *Gateway) Name() string {
	return "database"
}

// HealthCheck reports database reachability for the readiness endpoint.
func (g *Gateway) HealthCheck(ctx context.Context) error {
	if err := g.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("accessing connection pool: %w", err)
	}
	return sqlDB.Close()
}
