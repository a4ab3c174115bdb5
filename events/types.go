package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType is an enum-like string type for ledger events
type EventType string

const (
	EventLowBalanceAlert    EventType = "LowBalanceAlert"
	EventTxnThresholdBreach EventType = "TxnThresholdBreach"
)

// LedgerEvent represents a notification produced by the threshold
// emitter after a transaction executes. Events are observational:
// they never block or reverse the transaction that produced them.
type LedgerEvent interface {
	Type() EventType
	Timestamp() time.Time
	ParticipantID() string
}

// LowBalanceAlert fires when a participant's balance falls to or below
// its configured low-balance threshold.
type LowBalanceAlert struct {
	participantID string
	balance       decimal.Decimal
	timestamp     time.Time
}

func NewLowBalanceAlert(participantID string, balance decimal.Decimal) *LowBalanceAlert {
	return &LowBalanceAlert{
		participantID: participantID,
		balance:       balance,
		timestamp:     time.Now(),
	}
}

func (e *LowBalanceAlert) Type() EventType {
	return EventLowBalanceAlert
}

func (e *LowBalanceAlert) Timestamp() time.Time {
	return e.timestamp
}

func (e *LowBalanceAlert) ParticipantID() string {
	return e.participantID
}

func (e *LowBalanceAlert) Balance() decimal.Decimal {
	return e.balance
}

// TxnThresholdBreach fires when a single transaction amount exceeds
// the initiating participant's per-transaction threshold. The breach
// does not block the transaction.
type TxnThresholdBreach struct {
	participantID string
	amount        decimal.Decimal
	timestamp     time.Time
}

func NewTxnThresholdBreach(participantID string, amount decimal.Decimal) *TxnThresholdBreach {
	return &TxnThresholdBreach{
		participantID: participantID,
		amount:        amount,
		timestamp:     time.Now(),
	}
}

func (e *TxnThresholdBreach) Type() EventType {
	return EventTxnThresholdBreach
}

func (e *TxnThresholdBreach) Timestamp() time.Time {
	return e.timestamp
}

func (e *TxnThresholdBreach) ParticipantID() string {
	return e.participantID
}

func (e *TxnThresholdBreach) Amount() decimal.Decimal {
	return e.amount
}
