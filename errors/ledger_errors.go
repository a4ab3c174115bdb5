package errors

import (
	stderrors "errors"
)

// LedgerErrorCode represents standardized error codes for ledger
// operations.
type LedgerErrorCode string

const (
	// General errors
	ErrCodeInternal LedgerErrorCode = "internal_error"

	// Faults: programming errors or infrastructure failures, never
	// business decisions
	ErrCodeParticipantNotFound LedgerErrorCode = "participant_not_found"
	ErrCodeParticipantExisted  LedgerErrorCode = "participant_existed"
	ErrCodeStoreUnavailable    LedgerErrorCode = "store_unavailable"
	ErrCodeInvalidAmount       LedgerErrorCode = "invalid_amount"
	ErrCodeInvalidParticipant  LedgerErrorCode = "invalid_participant"

	// Rejections: expected business-rule failures
	ErrCodeRoleMismatch      LedgerErrorCode = "role_mismatch"
	ErrCodeSenderInactive    LedgerErrorCode = "sender_inactive"
	ErrCodeReceiverInactive  LedgerErrorCode = "receiver_inactive"
	ErrCodeInsufficientFunds LedgerErrorCode = "insufficient_funds"
)

// Rejection reason strings. These are the exact human-readable
// messages returned to callers and asserted by the test suite; do not
// reword them.
const (
	MsgStudentTrade      = "Transaction Failed. Students cannot trade with Students, Faculty, or Administrators."
	MsgFacultyTrade      = "Transaction Failed. Faculty cannot trade with Students, Faculty, or Administrators."
	MsgAdminTrade        = "Transaction Failed. Administrator cannot trade with Students, Faculty, or Administrators."
	MsgSenderInactive    = "Transaction failed. The sending account is inactive."
	MsgReceiverInactive  = "Transaction failed. The receiving account is inactive."
	MsgInsufficientFunds = "Transaction failed. Insufficient funds."
)

// Rejection is an expected business-rule failure: role mismatch,
// inactive account, insufficient funds. It is returned to the caller
// with its exact reason string and is never a system fault.
type Rejection struct {
	Code    LedgerErrorCode
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

// NewRejection creates a Rejection with the given code and reason.
func NewRejection(code LedgerErrorCode, message string) *Rejection {
	return &Rejection{Code: code, Message: message}
}

// IsRejection reports whether err (or anything it wraps) is a
// business rejection rather than a fault.
func IsRejection(err error) bool {
	var r *Rejection
	return stderrors.As(err, &r)
}

// RejectionCode extracts the rejection code from err, or
// ErrCodeInternal if err is not a rejection.
func RejectionCode(err error) LedgerErrorCode {
	var r *Rejection
	if stderrors.As(err, &r) {
		return r.Code
	}
	return ErrCodeInternal
}

// Fault is a hard failure: a missing participant identifier, an
// unavailable store. Faults abort the transaction with no partial
// mutation and are logged as system errors.
type Fault struct {
	Code    LedgerErrorCode
	Message string
}

func (f *Fault) Error() string {
	return f.Message
}

// NewFault creates a Fault with the given code and message.
func NewFault(code LedgerErrorCode, message string) *Fault {
	return &Fault{Code: code, Message: message}
}

// IsFault reports whether err (or anything it wraps) is a fault.
func IsFault(err error) bool {
	var f *Fault
	return stderrors.As(err, &f)
}
