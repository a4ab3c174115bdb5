package ledger

import (
	"fmt"

	lederr "hawkoin/errors"
	"hawkoin/transaction"
	"hawkoin/types"
)

// transferAllowed is the role-pairing matrix for TransferFunds:
// allowed iff transferAllowed[sender][receiver]. Vendors are the only
// sink for person-to-person movement; a vendor itself may send to any
// role (refunds and payouts). Relaxing a rule or adding a role is a
// data change here, not a control-flow change.
var transferAllowed = map[types.AccessLevel]map[types.AccessLevel]bool{
	types.AccessAdmin:   {types.AccessVendor: true},
	types.AccessFaculty: {types.AccessVendor: true},
	types.AccessStudent: {types.AccessVendor: true},
	types.AccessVendor: {
		types.AccessAdmin:   true,
		types.AccessFaculty: true,
		types.AccessVendor:  true,
		types.AccessStudent: true,
	},
}

// roleMismatchMsg names the initiating role in the rejection, per the
// published reason strings.
var roleMismatchMsg = map[types.AccessLevel]string{
	types.AccessStudent: lederr.MsgStudentTrade,
	types.AccessFaculty: lederr.MsgFacultyTrade,
	types.AccessAdmin:   lederr.MsgAdminTrade,
}

// Validate is the pure decision function: given a transaction and the
// current state of every participant it references, it returns nil
// (accept) or the rejection reason. It never mutates state, so
// resubmitting a rejected transaction against unchanged state yields
// the same rejection every time.
//
// Only TransferFunds carries business restrictions. CreateFunds and
// DeleteFunds apply to any participant, active or not, and the
// threshold/contact transactions are structurally accepted.
func Validate(tx transaction.Transaction, state map[string]*types.Participant) *lederr.Rejection {
	t, ok := tx.(transaction.TransferFunds)
	if !ok {
		return nil
	}

	sender := state[t.FromUser]
	receiver := state[t.ToUser]

	if !transferAllowed[sender.AccessLevel][receiver.AccessLevel] {
		return lederr.NewRejection(lederr.ErrCodeRoleMismatch, roleMismatchMsg[sender.AccessLevel])
	}

	// Sender activity is checked before receiver activity.
	if !sender.IsActive {
		return lederr.NewRejection(lederr.ErrCodeSenderInactive, lederr.MsgSenderInactive)
	}
	if !receiver.IsActive {
		return lederr.NewRejection(lederr.ErrCodeReceiverInactive, lederr.MsgReceiverInactive)
	}

	// Transfers are never clamped: an over-balance amount rejects the
	// whole transaction.
	if t.Amount.GreaterThan(sender.Balance) {
		return lederr.NewRejection(lederr.ErrCodeInsufficientFunds, lederr.MsgInsufficientFunds)
	}

	return nil
}

// checkAmounts rejects structurally impossible amounts. A negative
// amount is a programming error at the caller, not a business
// decision, so it faults rather than rejects.
func checkAmounts(tx transaction.Transaction) error {
	switch t := tx.(type) {
	case transaction.CreateFunds:
		if t.Amount.IsNegative() {
			return lederr.NewFault(lederr.ErrCodeInvalidAmount, fmt.Sprintf("CreateFunds amount cannot be negative: %s", t.Amount))
		}
	case transaction.DeleteFunds:
		if t.Amount.IsNegative() {
			return lederr.NewFault(lederr.ErrCodeInvalidAmount, fmt.Sprintf("DeleteFunds amount cannot be negative: %s", t.Amount))
		}
	case transaction.TransferFunds:
		if t.Amount.IsNegative() {
			return lederr.NewFault(lederr.ErrCodeInvalidAmount, fmt.Sprintf("TransferFunds amount cannot be negative: %s", t.Amount))
		}
	}
	return nil
}
