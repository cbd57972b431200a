// Package storage provides the key-value backends the persisted document
// store writes through. Exactly two keys are ever used (see ports).
package storage

import (
	"fmt"

	"github.com/gospelarchive/core/internal/infrastructure/config"
	"github.com/gospelarchive/core/internal/ports"
)

// New builds the key-value store selected by cfg.Storage.Driver.
func New(cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		return NewPostgres(cfg.Storage)
	case "redis":
		return NewRedis(cfg.Redis)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
