package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/redis/go-redis/v9"
)

var (
	_ models.SlotStore = (*SlotRepository)(nil)
	_ models.SlotStore = (*RedisSlotStore)(nil)
	_ models.SlotStore = (*MemorySlotStore)(nil)
)

// Open builds the slot backend selected by cfg.Storage.Backend.
//
// The sqlite backend runs pending migrations before returning.
func Open(ctx context.Context, cfg *shared.Config, logger *log.Logger) (models.SlotStore, error) {
	switch cfg.Storage.Backend {
	case shared.BackendSQLite:
		db, err := shared.NewDatabase(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrSlotBackend, err)
		}
		shared.ConfigureDatabase(db, cfg.Storage.MaxOpenConns, cfg.Storage.MaxIdleConns)

		if err := shared.RunMigrations(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %v", shared.ErrSlotBackend, err)
		}

		logger.Debug("opened sqlite slot store", "path", cfg.Storage.Path)
		return NewSlotRepository(db), nil

	case shared.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("%w: redis ping: %v", shared.ErrSlotBackend, err)
		}

		logger.Debug("opened redis slot store", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.Prefix)
		return NewRedisSlotStore(client, cfg.Redis.Prefix), nil

	case shared.BackendMemory:
		logger.Debug("using in-memory slot store")
		return NewMemorySlotStore(), nil

	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", shared.ErrInvalidConfig, cfg.Storage.Backend)
	}
}

// DB exposes the SQLite handle behind a [SlotRepository], or nil for other backends.
func DB(store models.SlotStore) *sql.DB {
	if repo, ok := store.(*SlotRepository); ok {
		return repo.db
	}
	return nil
}
