package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"hawkoin/db"
	"hawkoin/logx"
	"hawkoin/types"
)

// ParticipantStore is the ledger's persistent collaborator: point
// reads and writes of participant records keyed by id.
type ParticipantStore interface {
	Put(participant *types.Participant) error
	PutBatch(participants []*types.Participant) error
	GetByID(id string) (*types.Participant, error)
	GetBatch(ids []string) (map[string]*types.Participant, error)
	ExistsByID(id string) (bool, error)
	GetAll() ([]*types.Participant, error)
	MustClose()
}

// GenericParticipantStore implements ParticipantStore over any
// db.DatabaseProvider. Records are JSON-encoded under a key prefix.
type GenericParticipantStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewGenericParticipantStore(dbProvider db.DatabaseProvider) (*GenericParticipantStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericParticipantStore{
		dbProvider: dbProvider,
	}, nil
}

func (ps *GenericParticipantStore) Put(participant *types.Participant) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	return ps.putLocked(participant)
}

func (ps *GenericParticipantStore) putLocked(participant *types.Participant) error {
	data, err := json.Marshal(participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	if err := ps.dbProvider.Put(ps.getDbKey(participant.ID), data); err != nil {
		return fmt.Errorf("failed to write participant to db: %w", err)
	}

	return nil
}

// PutBatch writes all records in one atomic batch; either every
// participant is persisted or none is.
func (ps *GenericParticipantStore) PutBatch(participants []*types.Participant) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	batch := ps.dbProvider.Batch()
	defer batch.Close()

	for _, participant := range participants {
		data, err := json.Marshal(participant)
		if err != nil {
			return fmt.Errorf("failed to marshal participant %s: %w", participant.ID, err)
		}
		batch.Put(ps.getDbKey(participant.ID), data)
	}

	if err := batch.Write(); err != nil {
		return fmt.Errorf("failed to write participant batch: %w", err)
	}

	return nil
}

// GetByID returns the participant with id, or nil if it does not exist.
func (ps *GenericParticipantStore) GetByID(id string) (*types.Participant, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return ps.getLocked(id)
}

func (ps *GenericParticipantStore) getLocked(id string) (*types.Participant, error) {
	data, err := ps.dbProvider.Get(ps.getDbKey(id))
	if err != nil {
		return nil, fmt.Errorf("could not get participant %s from db: %w", id, err)
	}
	if data == nil {
		return nil, nil
	}

	var p types.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant %s: %w", id, err)
	}
	return &p, nil
}

// GetBatch retrieves multiple participants by id. Missing participants
// return as nil entries.
func (ps *GenericParticipantStore) GetBatch(ids []string) (map[string]*types.Participant, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	result := make(map[string]*types.Participant, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		p, err := ps.getLocked(id)
		if err != nil {
			return nil, err
		}
		result[id] = p
	}
	return result, nil
}

func (ps *GenericParticipantStore) ExistsByID(id string) (bool, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return ps.dbProvider.Has(ps.getDbKey(id))
}

// GetAll returns every participant record in the store.
func (ps *GenericParticipantStore) GetAll() ([]*types.Participant, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	iterable, ok := ps.dbProvider.(db.IterableProvider)
	if !ok {
		return nil, fmt.Errorf("provider does not support iteration")
	}

	var participants []*types.Participant
	var iterErr error
	err := iterable.IteratePrefix([]byte(PrefixParticipant), func(key, value []byte) bool {
		var p types.Participant
		if err := json.Unmarshal(value, &p); err != nil {
			iterErr = fmt.Errorf("failed to unmarshal participant %s: %w",
				strings.TrimPrefix(string(key), PrefixParticipant), err)
			return false
		}
		participants = append(participants, &p)
		return true
	})
	if err != nil {
		return nil, err
	}
	if iterErr != nil {
		return nil, iterErr
	}
	return participants, nil
}

func (ps *GenericParticipantStore) MustClose() {
	err := ps.dbProvider.Close()
	if err != nil {
		logx.Error("PARTICIPANT_STORE", "Failed to close db provider:", err.Error())
	}
}

func (ps *GenericParticipantStore) getDbKey(id string) []byte {
	return []byte(PrefixParticipant + id)
}
