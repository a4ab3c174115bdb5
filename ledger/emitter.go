package ledger

import (
	"github.com/shopspring/decimal"

	"hawkoin/events"
	"hawkoin/transaction"
	"hawkoin/types"
)

// emit inspects the post-transaction state of every touched
// participant and produces the threshold events, as plain values. The
// two event kinds are independent and order-independent:
//
//   - LowBalanceAlert for each touched participant whose new balance
//     is at or below its lowBalThreshold.
//   - TxnThresholdBreach once per transaction, when the amount
//     exceeds the initiating participant's txnThreshold.
func emit(tx transaction.Transaction, touched []*types.Participant) []events.LedgerEvent {
	evts := make([]events.LedgerEvent, 0, len(touched)+1)

	for _, p := range touched {
		if p.Balance.LessThanOrEqual(p.LowBalThreshold) {
			evts = append(evts, events.NewLowBalanceAlert(p.ID, p.Balance))
		}
	}

	if id, amount, ok := initiator(tx); ok {
		for _, p := range touched {
			if p.ID == id && amount.GreaterThan(p.TxnThreshold) {
				evts = append(evts, events.NewTxnThresholdBreach(p.ID, amount))
				break
			}
		}
	}

	return evts
}

// initiator names the participant whose txnThreshold governs the
// breach check: the sender for transfers and burns, the receiver for
// mints (the only account a mint touches). Threshold and contact
// updates carry no amount.
func initiator(tx transaction.Transaction) (string, decimal.Decimal, bool) {
	switch t := tx.(type) {
	case transaction.CreateFunds:
		return t.ToUser, t.Amount, true
	case transaction.DeleteFunds:
		return t.FromUser, t.Amount, true
	case transaction.TransferFunds:
		return t.FromUser, t.Amount, true
	}
	return "", decimal.Zero, false
}
