package transaction

import (
	"github.com/shopspring/decimal"
)

// Kind tags the transaction variants.
type Kind int32

const (
	KindCreateFunds Kind = iota
	KindDeleteFunds
	KindTransferFunds
	KindChangeLowBalAlert
	KindChangeTxnBreach
	KindChangeContactInfo
)

func (k Kind) String() string {
	switch k {
	case KindCreateFunds:
		return "CreateFunds"
	case KindDeleteFunds:
		return "DeleteFunds"
	case KindTransferFunds:
		return "TransferFunds"
	case KindChangeLowBalAlert:
		return "ChangeLowBalAlert"
	case KindChangeTxnBreach:
		return "ChangeTxnBreach"
	case KindChangeContactInfo:
		return "ChangeContactInfo"
	default:
		return "Unknown"
	}
}

// Transaction is a request to mutate one or more participants' state.
// Transactions are immutable once submitted: constructed, validated,
// executed, and discarded. The core never stores them.
type Transaction interface {
	Kind() Kind

	// Participants returns the ids of every participant the
	// transaction references, sender first where a direction exists.
	Participants() []string

	sealed()
}

// CreateFunds mints funds into a participant.
type CreateFunds struct {
	Amount decimal.Decimal
	ToUser string
}

func (CreateFunds) Kind() Kind { return KindCreateFunds }
func (t CreateFunds) Participants() []string { return []string{t.ToUser} }
func (CreateFunds) sealed() {}

// DeleteFunds burns funds from a participant, clamped at zero.
type DeleteFunds struct {
	Amount   decimal.Decimal
	FromUser string
}

func (DeleteFunds) Kind() Kind { return KindDeleteFunds }
func (t DeleteFunds) Participants() []string { return []string{t.FromUser} }
func (DeleteFunds) sealed() {}

// TransferFunds moves funds between two participants subject to the
// role-pairing rules. AuthToken is supplied by the identity
// collaborator; the core trusts it as resolved.
type TransferFunds struct {
	Amount    decimal.Decimal
	FromUser  string
	ToUser    string
	AuthToken string
}

func (TransferFunds) Kind() Kind { return KindTransferFunds }
func (t TransferFunds) Participants() []string {
	return []string{t.FromUser, t.ToUser}
}
func (TransferFunds) sealed() {}

// ChangeLowBalAlert updates a participant's low-balance threshold.
type ChangeLowBalAlert struct {
	Thresh decimal.Decimal
	User   string
}

func (ChangeLowBalAlert) Kind() Kind { return KindChangeLowBalAlert }
func (t ChangeLowBalAlert) Participants() []string { return []string{t.User} }
func (ChangeLowBalAlert) sealed() {}

// ChangeTxnBreach updates a participant's per-transaction breach
// threshold.
type ChangeTxnBreach struct {
	Thresh decimal.Decimal
	User   string
}

func (ChangeTxnBreach) Kind() Kind { return KindChangeTxnBreach }
func (t ChangeTxnBreach) Participants() []string { return []string{t.User} }
func (ChangeTxnBreach) sealed() {}

// ChangeContactInfo updates only the non-empty fields supplied; an
// empty string leaves the existing value unchanged.
type ChangeContactInfo struct {
	NewFirst string
	NewLast  string
	NewEmail string
	NewAdd   string
	NewCity  string
	NewState string
	NewZip   string
	User     string
}

func (ChangeContactInfo) Kind() Kind { return KindChangeContactInfo }
func (t ChangeContactInfo) Participants() []string { return []string{t.User} }
func (ChangeContactInfo) sealed() {}
