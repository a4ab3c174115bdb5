package ledger

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	lederr "hawkoin/errors"
	"hawkoin/events"
	"hawkoin/logx"
	"hawkoin/store"
	"hawkoin/transaction"
	"hawkoin/types"
)

// EffectSummary is the result of an accepted transaction: the
// id/balance snapshot of every participant touched, and the events
// the threshold emitter produced.
type EffectSummary struct {
	Touched []types.Snapshot
	Events  []events.LedgerEvent
}

// Ledger is the validation-and-mutation engine. Each submission is
// validated and executed as one logical unit under the write lock, so
// no intermediate state is ever observable; reads proceed
// concurrently under the read lock.
type Ledger struct {
	mu           sync.RWMutex
	participants store.ParticipantStore
	eventBus     *events.EventBus
}

func NewLedger(participants store.ParticipantStore, eventBus *events.EventBus) *Ledger {
	return &Ledger{
		participants: participants,
		eventBus:     eventBus,
	}
}

// CreateParticipant stores a new participant record, returning a
// participant_existed fault if the id is already taken.
func (l *Ledger) CreateParticipant(p *types.Participant) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.createParticipantWithoutLocking(p)
}

// createParticipantWithoutLocking stores a participant without taking
// the ledger lock. Useful when the calling method already holds it.
func (l *Ledger) createParticipantWithoutLocking(p *types.Participant) error {
	if err := p.Validate(); err != nil {
		return lederr.NewFault(lederr.ErrCodeInvalidParticipant, err.Error())
	}

	existed, err := l.participants.ExistsByID(p.ID)
	if err != nil {
		return lederr.NewFault(lederr.ErrCodeStoreUnavailable, fmt.Sprintf("could not check existence of participant: %v", err))
	}
	if existed {
		return lederr.NewFault(lederr.ErrCodeParticipantExisted, fmt.Sprintf("participant %s already exists", p.ID))
	}

	if err := l.participants.Put(p); err != nil {
		return lederr.NewFault(lederr.ErrCodeStoreUnavailable, fmt.Sprintf("failed to store participant: %v", err))
	}

	return nil
}

// CreateParticipantsFromGenesis seeds the ledger from a bootstrap
// roster.
func (l *Ledger) CreateParticipantsFromGenesis(roster []*types.Participant) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range roster {
		if err := l.createParticipantWithoutLocking(p); err != nil {
			return fmt.Errorf("could not create genesis participant %s: %w", p.ID, err)
		}
	}
	return nil
}

// ParticipantExists checks if a participant exists
func (l *Ledger) ParticipantExists(id string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.participants.ExistsByID(id)
}

// Balance returns the current balance for id
func (l *Ledger) Balance(id string) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, err := l.participants.GetByID(id)
	if err != nil {
		return decimal.Zero, err
	}
	if p == nil {
		return decimal.Zero, lederr.NewFault(lederr.ErrCodeParticipantNotFound, fmt.Sprintf("participant %s does not exist", id))
	}
	return p.Balance, nil
}

// GetParticipant returns the participant with id (nil if not exist)
func (l *Ledger) GetParticipant(id string) (*types.Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.participants.GetByID(id)
}

// GetAllParticipants returns every participant record
func (l *Ledger) GetAllParticipants() ([]*types.Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.participants.GetAll()
}

// Submit validates and executes one transaction. On acceptance it
// persists the updated records, emits threshold events, and returns
// the effect summary. On rejection it returns the business reason and
// no state changes. Rejections happen strictly before any write, so
// there is never compensating rollback logic.
func (l *Ledger) Submit(tx transaction.Transaction) (*EffectSummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := checkAmounts(tx); err != nil {
		return nil, err
	}

	state, err := l.loadState(tx)
	if err != nil {
		return nil, err
	}

	if rej := Validate(tx, state); rej != nil {
		logx.Warn("LEDGER", fmt.Sprintf("Rejected %s: %s", tx.Kind(), rej.Message))
		return nil, rej
	}

	touched, err := apply(tx, state)
	if err != nil {
		return nil, err
	}

	if err := l.participants.PutBatch(touched); err != nil {
		return nil, lederr.NewFault(lederr.ErrCodeStoreUnavailable, fmt.Sprintf("failed to persist transaction effect: %v", err))
	}

	evts := emit(tx, touched)
	if l.eventBus != nil {
		for _, e := range evts {
			l.eventBus.Publish(e)
		}
	}

	summary := &EffectSummary{
		Touched: make([]types.Snapshot, 0, len(touched)),
		Events:  evts,
	}
	for _, p := range touched {
		summary.Touched = append(summary.Touched, p.Snapshot())
	}

	logx.Info("LEDGER", fmt.Sprintf("Applied %s touching %d participant(s), %d event(s)", tx.Kind(), len(touched), len(evts)))
	return summary, nil
}

// loadState reads every participant the transaction references. A
// missing participant is a fault (bad identifier), never a business
// rejection. Records are cloned so nothing mutates behind the store.
func (l *Ledger) loadState(tx transaction.Transaction) (map[string]*types.Participant, error) {
	ids := tx.Participants()
	records, err := l.participants.GetBatch(ids)
	if err != nil {
		return nil, lederr.NewFault(lederr.ErrCodeStoreUnavailable, fmt.Sprintf("could not load participants: %v", err))
	}

	state := make(map[string]*types.Participant, len(records))
	for _, id := range ids {
		p := records[id]
		if p == nil {
			return nil, lederr.NewFault(lederr.ErrCodeParticipantNotFound, fmt.Sprintf("participant %s does not exist", id))
		}
		if _, seen := state[id]; seen {
			continue
		}
		state[id] = p.Clone()
	}
	return state, nil
}
