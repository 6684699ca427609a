package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/config"
)

// Snapshot keys used by the repositories.
const (
	KeyReports = "reports"
	KeyUsers   = "users"
	KeySession = "auth_session"
	KeyTheme   = "theme"
)

// ErrKeyNotFound signals an absent snapshot key.
var ErrKeyNotFound = errors.New("persistence: key not found")

// Store is a durable key-value snapshot store. Values are opaque JSON blobs
// owned by the repositories.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open selects and connects a store driver based on configuration.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case "", "memory":
		logger.Info("using in-memory snapshot store")
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath, logger)
	case "redis":
		return NewRedisStore(cfg, logger), nil
	case "postgres":
		return NewPostgresStore(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
