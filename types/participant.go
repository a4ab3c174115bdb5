package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccessLevel determines a participant's trading eligibility. It is
// fixed at creation and never changes.
type AccessLevel string

const (
	AccessAdmin   AccessLevel = "ADMIN"
	AccessFaculty AccessLevel = "FACULTY"
	AccessVendor  AccessLevel = "VENDOR"
	AccessStudent AccessLevel = "STUDENT"
)

// ContactInfo holds the seven free-text contact fields. Each field is
// independently updatable through a ChangeContactInfo transaction.
type ContactInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// Role-specific extensions. Exactly one of these is set on a
// participant, matching its AccessLevel.

type FacultyInfo struct {
	Dept string `json:"dept"`
}

type VendorInfo struct {
	VendorName string `json:"vendorName"`
	CCR        string `json:"ccr"` // billing cadence
}

type StudentInfo struct {
	IsAthlete bool   `json:"isAthlete"`
	Major     string `json:"major"`
}

// Participant is an account holder. The shared base fields are common
// to all four roles; AccessLevel tags which variant payload is set.
type Participant struct {
	ID              string          `json:"id"`
	Balance         decimal.Decimal `json:"balance"`
	IsActive        bool            `json:"isActive"`
	AccessLevel     AccessLevel     `json:"accessLevel"`
	LowBalThreshold decimal.Decimal `json:"lowBalThreshold"`
	TxnThreshold    decimal.Decimal `json:"txnThreshold"`
	ContactInfo     ContactInfo     `json:"contactInfo"`

	Faculty *FacultyInfo `json:"faculty,omitempty"`
	Vendor  *VendorInfo  `json:"vendor,omitempty"`
	Student *StudentInfo `json:"student,omitempty"`
}

// Snapshot is the id/balance pair reported in an effect summary.
type Snapshot struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

func newParticipant(id string, level AccessLevel, balance decimal.Decimal) *Participant {
	return &Participant{
		ID:          id,
		Balance:     balance,
		IsActive:    true,
		AccessLevel: level,
	}
}

func NewAdministrator(id string, balance decimal.Decimal) *Participant {
	return newParticipant(id, AccessAdmin, balance)
}

func NewFaculty(id string, balance decimal.Decimal, dept string) *Participant {
	p := newParticipant(id, AccessFaculty, balance)
	p.Faculty = &FacultyInfo{Dept: dept}
	return p
}

func NewVendor(id string, balance decimal.Decimal, vendorName, ccr string) *Participant {
	p := newParticipant(id, AccessVendor, balance)
	p.Vendor = &VendorInfo{VendorName: vendorName, CCR: ccr}
	return p
}

func NewStudent(id string, balance decimal.Decimal, major string, isAthlete bool) *Participant {
	p := newParticipant(id, AccessStudent, balance)
	p.Student = &StudentInfo{IsAthlete: isAthlete, Major: major}
	return p
}

// Validate checks structural consistency: a known access level, the
// matching variant payload (and only that one), and a non-negative
// balance.
func (p *Participant) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("participant id cannot be empty")
	}
	if p.Balance.IsNegative() {
		return fmt.Errorf("participant %s has negative balance %s", p.ID, p.Balance)
	}
	var want int
	switch p.AccessLevel {
	case AccessAdmin:
	case AccessFaculty:
		want = 1
		if p.Faculty == nil {
			return fmt.Errorf("participant %s: faculty payload missing", p.ID)
		}
	case AccessVendor:
		want = 1
		if p.Vendor == nil {
			return fmt.Errorf("participant %s: vendor payload missing", p.ID)
		}
	case AccessStudent:
		want = 1
		if p.Student == nil {
			return fmt.Errorf("participant %s: student payload missing", p.ID)
		}
	default:
		return fmt.Errorf("participant %s: unknown access level %q", p.ID, p.AccessLevel)
	}
	got := 0
	if p.Faculty != nil {
		got++
	}
	if p.Vendor != nil {
		got++
	}
	if p.Student != nil {
		got++
	}
	if got != want {
		return fmt.Errorf("participant %s: variant payload does not match access level %s", p.ID, p.AccessLevel)
	}
	return nil
}

// Snapshot returns the participant's current id/balance pair.
func (p *Participant) Snapshot() Snapshot {
	return Snapshot{ID: p.ID, Balance: p.Balance}
}

// Clone returns a deep copy. The engine mutates copies so a failed
// write never leaves corrupted state behind a shared pointer.
func (p *Participant) Clone() *Participant {
	cp := *p
	if p.Faculty != nil {
		f := *p.Faculty
		cp.Faculty = &f
	}
	if p.Vendor != nil {
		v := *p.Vendor
		cp.Vendor = &v
	}
	if p.Student != nil {
		s := *p.Student
		cp.Student = &s
	}
	return &cp
}
