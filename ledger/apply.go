package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	lederr "hawkoin/errors"
	"hawkoin/transaction"
	"hawkoin/types"
)

// apply executes an accepted transaction against the loaded state and
// returns the participants it touched, sender first. It mutates only
// the in-memory clones; persisting is the caller's job, which keeps
// apply trivially reversible up to the final write.
func apply(tx transaction.Transaction, state map[string]*types.Participant) ([]*types.Participant, error) {
	switch t := tx.(type) {
	case transaction.CreateFunds:
		to := state[t.ToUser]
		to.Balance = to.Balance.Add(t.Amount)
		return []*types.Participant{to}, nil

	case transaction.DeleteFunds:
		from := state[t.FromUser]
		// clamp at zero rather than rejecting
		from.Balance = from.Balance.Sub(t.Amount)
		if from.Balance.IsNegative() {
			from.Balance = decimal.Zero
		}
		return []*types.Participant{from}, nil

	case transaction.TransferFunds:
		// from and to alias the same clone on a self-transfer, so the
		// debit/credit pair nets to zero on one record.
		from := state[t.FromUser]
		to := state[t.ToUser]
		from.Balance = from.Balance.Sub(t.Amount)
		to.Balance = to.Balance.Add(t.Amount)
		if t.FromUser == t.ToUser {
			return []*types.Participant{from}, nil
		}
		return []*types.Participant{from, to}, nil

	case transaction.ChangeLowBalAlert:
		user := state[t.User]
		user.LowBalThreshold = t.Thresh
		return []*types.Participant{user}, nil

	case transaction.ChangeTxnBreach:
		user := state[t.User]
		user.TxnThreshold = t.Thresh
		return []*types.Participant{user}, nil

	case transaction.ChangeContactInfo:
		user := state[t.User]
		mergeContactInfo(&user.ContactInfo, t)
		return []*types.Participant{user}, nil

	default:
		return nil, lederr.NewFault(lederr.ErrCodeInternal, fmt.Sprintf("unknown transaction kind %v", tx.Kind()))
	}
}

// mergeContactInfo overwrites only the fields supplied: an empty
// string keeps the existing value. A deliberately blank value is not
// distinguishable from "no change"; that matches the observed network
// behavior.
func mergeContactInfo(ci *types.ContactInfo, t transaction.ChangeContactInfo) {
	if t.NewFirst != "" {
		ci.FirstName = t.NewFirst
	}
	if t.NewLast != "" {
		ci.LastName = t.NewLast
	}
	if t.NewEmail != "" {
		ci.Email = t.NewEmail
	}
	if t.NewAdd != "" {
		ci.Address = t.NewAdd
	}
	if t.NewCity != "" {
		ci.City = t.NewCity
	}
	if t.NewState != "" {
		ci.State = t.NewState
	}
	if t.NewZip != "" {
		ci.Zip = t.NewZip
	}
}
