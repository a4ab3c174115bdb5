package store

import (
	"fmt"

	"hawkoin/db"
)

// StoreType represents the type of store implementation
type StoreType string

const (
	// LevelDBStoreType uses the LevelDB implementation
	LevelDBStoreType StoreType = "leveldb"

	// BoltDBStoreType uses the single-file bbolt implementation
	BoltDBStoreType StoreType = "boltdb"

	// MemoryStoreType uses the in-memory implementation (not durable)
	MemoryStoreType StoreType = "memory"
)

// StoreConfig holds configuration for creating store instances
type StoreConfig struct {
	// Type specifies which store implementation to use
	Type StoreType `json:"type" yaml:"type"`

	// Directory is the database directory path (for file-based databases)
	Directory string `json:"directory" yaml:"directory"`
}

// Validate validates the store configuration
func (sc *StoreConfig) Validate() error {
	if sc.Type == "" {
		return fmt.Errorf("store type cannot be empty")
	}

	switch sc.Type {
	case MemoryStoreType:
		return nil
	case LevelDBStoreType, BoltDBStoreType:
		if sc.Directory == "" {
			return fmt.Errorf("directory cannot be empty")
		}
		return nil
	default:
		return fmt.Errorf("unsupported store type: %s", sc.Type)
	}
}

// StoreFactory takes responsibility to create store instances
type StoreFactory struct{}

// NewStoreFactory creates a new store factory
func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

// CreateProvider creates the database provider named by the config
func (f *StoreFactory) CreateProvider(cfg *StoreConfig) (db.DatabaseProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case LevelDBStoreType:
		return db.NewLevelDBProvider(cfg.Directory)
	case BoltDBStoreType:
		return db.NewBoltDBProvider(cfg.Directory)
	case MemoryStoreType:
		return db.NewMemDBProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}

// CreateParticipantStore creates a participant store backed by the
// configured provider
func (f *StoreFactory) CreateParticipantStore(cfg *StoreConfig) (ParticipantStore, error) {
	provider, err := f.CreateProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create db provider: %w", err)
	}
	return NewGenericParticipantStore(provider)
}
