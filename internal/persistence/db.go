package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"feedgraph/internal/config"
	"feedgraph/pkg/retry"
)

const (
	pingAttempts = 5
	pingDelay    = 500 * time.Millisecond
)

type DB struct {
	Logger *slog.Logger
	Config *config.Config

	db *gorm.DB
}

// New wraps an already opened gorm connection.
func New(gormDB *gorm.DB) *DB {
	return &DB{db: gormDB, Logger: slog.Default()}
}

// Open opens gorm with the settings every store relies on: translated driver errors and UTC timestamps.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

func (db *DB) Init(ctx context.Context) error {
	db.Logger = db.Logger.With("component", "persistence.DB")

	connConfig, err := pgx.ParseConfig(db.Config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("parse database url: %w", err)
	}
	connConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement
	connConfig.StatementCacheCapacity = 256

	sqlDB := stdlib.OpenDB(*connConfig)
	if db.Config.DatabaseMaxConns > 0 {
		sqlDB.SetMaxOpenConns(db.Config.DatabaseMaxConns)
	}

	gormDB, err := Open(postgres.New(postgres.Config{Conn: sqlDB}))
	if err != nil {
		return err
	}
	db.db = gormDB

	err = retry.WrapWithRetry(func(ctx context.Context) error {
		err := db.Ping(ctx)
		if err != nil {
			db.Logger.Warn("database is not reachable yet", "error", err)
		}
		return err
	}, retry.Always, pingAttempts, pingDelay)(ctx)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	db.Logger.Info("Connected to database", "host", connConfig.Host, "database", connConfig.Database)
	return nil
}

func (db *DB) Conn(ctx context.Context) *gorm.DB {
	return db.db.WithContext(ctx)
}

func (db *DB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return db.db.WithContext(ctx).Transaction(fn)
}

// EstimatedCount reads the planner's row estimate, cheap on large tables. Postgres only.
func (db *DB) EstimatedCount(ctx context.Context, tableName string) (int64, error) {
	var count int64
	return count, db.db.WithContext(ctx).Raw(
		`SELECT reltuples::bigint AS count
				FROM pg_class
				WHERE relname = ?`, tableName,
	).Scan(&count).Error
}

func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) DB() (*sql.DB, error) {
	return db.db.DB()
}

// AutoMigrate creates the schema from the gorm models. The service itself is migrated with the SQL migrations.
func (db *DB) AutoMigrate(ctx context.Context) error {
	return db.db.WithContext(ctx).AutoMigrate(Models()...)
}

func (db *DB) Shutdown(_ context.Context) error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
