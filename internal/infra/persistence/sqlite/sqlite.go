// Package sqlite contains the concrete implementation of the persistence layer
// using GORM over a single SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"usermgr/config"
	"usermgr/internal/domain/lifecycle"
	"usermgr/internal/domain/repository"
	"usermgr/internal/errors"

	driver "github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

const createUsersTable = `CREATE TABLE IF NOT EXISTS users (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT    NOT NULL UNIQUE,
	password TEXT    NOT NULL,
	email    TEXT    NOT NULL,
	role     TEXT    NOT NULL,
	active   INTEGER NOT NULL
)`

var _ repository.Store = (*Database)(nil)

// Database owns the single connection to the user store.
type Database struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	logger *slog.Logger

	cancelMonitor context.CancelFunc
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store and ties its initialization and release to the fx lifecycle.
// A failing InitDatabase aborts startup.
func New(params Params) (*Database, error) {
	database, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return database.InitDatabase(ctx)
		},
		OnStop: func(_ context.Context) error {
			return database.Close()
		},
	})

	return database, nil
}

// Open creates the database handle without touching the schema.
func Open(cfg *config.Config, logger *slog.Logger) (*Database, error) {
	if cfg == nil || cfg.SQLite == nil || cfg.SQLite.Path == "" {
		return nil, errors.New("sqlite path must be provided")
	}

	db, err := gorm.Open(driver.Open(dsn(cfg.SQLite)), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg.Env.Debug),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", cfg.SQLite.Path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	// SQLite serializes writers; one handle keeps every statement on the same connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return &Database{
		db:     db,
		sqlDB:  sqlDB,
		logger: logger,
	}, nil
}

// DB returns the GORM handle.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// InitDatabase checks the connection and creates the users table if it is absent.
func (d *Database) InitDatabase(ctx context.Context) error {
	if err := d.sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping sqlite")
	}

	if err := d.db.WithContext(ctx).Exec(createUsersTable).Error; err != nil {
		return errors.Wrap(err, "failed to create users table")
	}

	if d.cancelMonitor == nil {
		monitorCtx, cancel := context.WithCancel(context.Background())
		d.cancelMonitor = cancel
		go monitorDBPool(monitorCtx, d.logger, d.sqlDB, dbPoolMonitorInterval)
	}

	if d.logger != nil {
		d.logger.InfoContext(ctx, "User store ready")
	}

	return nil
}

// Close stops the pool monitor and releases the connection.
func (d *Database) Close() error {
	if d.cancelMonitor != nil {
		d.cancelMonitor()
		d.cancelMonitor = nil
	}

	return errors.WithStack(d.sqlDB.Close())
}

func dsn(cfg *config.SQLiteConfig) string {
	if cfg.BusyTimeout <= 0 {
		return cfg.Path
	}

	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", cfg.Path, cfg.BusyTimeout.Milliseconds())
}

// monitorDBPool reports callers queueing behind the single connection.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("inUseConns", cur.InUse),
					slog.Int64("waitCountTotal", cur.WaitCount),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "SQLite connection wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "SQLite connection wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
