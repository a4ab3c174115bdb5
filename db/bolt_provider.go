package db

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"
)

// participants, thresholds and contact records all live in one bucket;
// the store layer namespaces keys with prefixes.
var boltBucket = []byte("hawkoin")

// BoltDBProvider implements DatabaseProvider on a single-file bbolt
// database. Suited to single-node deployments where an external
// LevelDB directory is unwanted.
type BoltDBProvider struct {
	once sync.Once
	db   *bolt.DB
}

// NewBoltDBProvider opens (or creates) a bbolt database file under
// directory.
func NewBoltDBProvider(directory string) (DatabaseProvider, error) {
	bdb, err := bolt.Open(filepath.Join(directory, "hawkoin.db"), 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open BoltDB: %w", err)
	}

	err = bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltDBProvider{db: bdb}, nil
}

// Get retrieves a value by key
func (p *BoltDBProvider) Get(key []byte) ([]byte, error) {
	var value []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get(key)
		if v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// GetBatch retrieves multiple values in a single view transaction.
// Keys that do not exist are absent from the result.
func (p *BoltDBProvider) GetBatch(keys [][]byte) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	err := p.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)
		for _, key := range keys {
			if v := b.Get(key); v != nil {
				result[string(key)] = append([]byte(nil), v...)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Put stores a key-value pair
func (p *BoltDBProvider) Put(key, value []byte) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put(key, value)
	})
}

// Delete removes a key-value pair
func (p *BoltDBProvider) Delete(key []byte) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete(key)
	})
}

// Has checks if a key exists
func (p *BoltDBProvider) Has(key []byte) (bool, error) {
	var found bool
	err := p.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(boltBucket).Get(key) != nil
		return nil
	})
	return found, err
}

// Close closes the database connection
func (p *BoltDBProvider) Close() error {
	// avoid double close when shared by multiple stores
	var err error
	p.once.Do(func() {
		err = p.db.Close()
	})
	return err
}

// Batch returns a new batch; all operations commit in one bolt
// transaction on Write.
func (p *BoltDBProvider) Batch() DatabaseBatch {
	return &BoltDBBatch{db: p.db}
}

// IteratePrefix iterates over all key-value pairs with the given prefix
func (p *BoltDBProvider) IteratePrefix(prefix []byte, callback func(key, value []byte) bool) error {
	return p.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(boltBucket).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if !callback(k, v) {
				break
			}
		}
		return nil
	})
}

type boltOp struct {
	key    []byte
	value  []byte
	delete bool
}

// BoltDBBatch implements DatabaseBatch for bbolt
type BoltDBBatch struct {
	db  *bolt.DB
	ops []boltOp
}

func (b *BoltDBBatch) Put(key, value []byte) {
	b.ops = append(b.ops, boltOp{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	})
}

func (b *BoltDBBatch) Delete(key []byte) {
	b.ops = append(b.ops, boltOp{
		key:    append([]byte(nil), key...),
		delete: true,
	})
}

func (b *BoltDBBatch) Write() error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		for _, op := range b.ops {
			if op.delete {
				if err := bucket.Delete(op.key); err != nil {
					return err
				}
				continue
			}
			if err := bucket.Put(op.key, op.value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BoltDBBatch) Reset() {
	b.ops = b.ops[:0]
}

func (b *BoltDBBatch) Close() {
	b.ops = nil
}
