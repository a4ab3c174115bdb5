package db

import (
	"bytes"
	"sort"
	"sync"
)

// MemDBProvider implements DatabaseProvider with an in-process map.
// Used by tests and by embedders that want a ledger without any files
// on disk. Not durable.
type MemDBProvider struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemDBProvider creates an empty in-memory provider
func NewMemDBProvider() DatabaseProvider {
	return &MemDBProvider{data: make(map[string][]byte)}
}

// Get retrieves a value by key
func (p *MemDBProvider) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.data[string(key)]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

// GetBatch retrieves multiple values; missing keys are absent from the
// result.
func (p *MemDBProvider) GetBatch(keys [][]byte) (map[string][]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make(map[string][]byte, len(keys))
	for _, key := range keys {
		if value, ok := p.data[string(key)]; ok {
			result[string(key)] = append([]byte(nil), value...)
		}
	}
	return result, nil
}

// Put stores a key-value pair
func (p *MemDBProvider) Put(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.data[string(key)] = append([]byte(nil), value...)
	return nil
}

// Delete removes a key-value pair
func (p *MemDBProvider) Delete(key []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.data, string(key))
	return nil
}

// Has checks if a key exists
func (p *MemDBProvider) Has(key []byte) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.data[string(key)]
	return ok, nil
}

// Close clears the map
func (p *MemDBProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.data = make(map[string][]byte)
	return nil
}

// Batch returns a new batch applied atomically under the provider lock
func (p *MemDBProvider) Batch() DatabaseBatch {
	return &MemDBBatch{provider: p}
}

// IteratePrefix iterates key-value pairs under prefix in key order
func (p *MemDBProvider) IteratePrefix(prefix []byte, callback func(key, value []byte) bool) error {
	p.mu.RLock()
	keys := make([]string, 0, len(p.data))
	for k := range p.data {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	p.mu.RUnlock()

	sort.Strings(keys)
	for _, k := range keys {
		p.mu.RLock()
		v, ok := p.data[k]
		p.mu.RUnlock()
		if !ok {
			continue
		}
		if !callback([]byte(k), v) {
			break
		}
	}
	return nil
}

// memOp is one buffered write in a MemDBBatch
type memOp struct {
	key    []byte
	value  []byte
	delete bool
}

// MemDBBatch implements DatabaseBatch for the in-memory provider
type MemDBBatch struct {
	provider *MemDBProvider
	ops      []memOp
}

func (b *MemDBBatch) Put(key, value []byte) {
	b.ops = append(b.ops, memOp{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	})
}

func (b *MemDBBatch) Delete(key []byte) {
	b.ops = append(b.ops, memOp{
		key:    append([]byte(nil), key...),
		delete: true,
	})
}

func (b *MemDBBatch) Write() error {
	b.provider.mu.Lock()
	defer b.provider.mu.Unlock()

	for _, op := range b.ops {
		if op.delete {
			delete(b.provider.data, string(op.key))
			continue
		}
		b.provider.data[string(op.key)] = op.value
	}
	return nil
}

func (b *MemDBBatch) Reset() {
	b.ops = b.ops[:0]
}

func (b *MemDBBatch) Close() {
	b.ops = nil
}
