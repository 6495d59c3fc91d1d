package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, config: cfg}, nil
}

// AutoMigrate creates the schema from the gorm models. Expenses and earnings share
// one model and get a table each.
func (db *DB) AutoMigrate() error {
	if err := db.DB.AutoMigrate(&models.User{}, &models.BlacklistedToken{}); err != nil {
		return fmt.Errorf("failed to migrate auth tables: %w", err)
	}

	for _, kind := range models.AllKinds() {
		if err := db.DB.Table(kind.TableName()).AutoMigrate(&models.Record{}); err != nil {
			return fmt.Errorf("failed to migrate %s table: %w", kind.TableName(), err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the composite indexes behind the per-user date-ordered reads.
// Failures are logged and skipped.
func (db *DB) CreateIndexes() {
	var queries []string
	for _, kind := range models.AllKinds() {
		table := kind.TableName()
		queries = append(queries,
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_user_date ON %s(user_id, date DESC)", table, table),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_user_category ON %s(user_id, category)", table, table),
		)
	}
	queries = append(queries, "CREATE INDEX IF NOT EXISTS idx_blacklisted_tokens_expires_at ON blacklisted_tokens(expires_at)")

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}
}

// Initialize connects and brings the schema up to date. Postgres deployments with
// AUTO_MIGRATE run the SQL migrations and fall back to gorm AutoMigrate on failure;
// SQLite always uses AutoMigrate.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	migrated := false
	if cfg.Database.Driver == config.DriverPostgres && cfg.Database.AutoMigrate {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		runner := NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath)
		if err := runner.Run(ctx); err != nil {
			slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		} else {
			migrated = true
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db.CreateIndexes()

	slog.Info("database initialized", "driver", cfg.Database.Driver)
	return db, nil
}
