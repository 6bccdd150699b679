// Package postgres persists storefront entries in PostgreSQL through GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Open connects to PostgreSQL, pings it and migrates the entries table.
// The returned stop function ends pool monitoring and closes the connection.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gorm.DB, func() error, error) {
	if cfg.Postgres == nil {
		return nil, nil, errors.New("postgres storage selected but no postgres section configured")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Each entry write is a single upsert; no implicit transaction is needed.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()

		return nil, nil, errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.EntryModel{}); err != nil {
		_ = sqlDB.Close()

		return nil, nil, errors.Wrap(err, "failed to migrate storefront_entries")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	go monitorDBPool(monitorCtx, logger, sqlDB, dbPoolMonitorInterval)

	stop := func() error {
		cancelMonitor()

		return errors.WithStack(sqlDB.Close())
	}

	return db, stop, nil
}

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
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}

			prev = cur
		}
	}
}
