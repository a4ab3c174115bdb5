package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"hawkoin/store"
	"hawkoin/types"
)

// Bootstrap defaults applied when a roster entry leaves its
// thresholds unset.
const (
	DefaultLowBalThreshold = "5"
	DefaultTxnThreshold    = "75"
)

// ConfigFile is the top-level YAML document
type ConfigFile struct {
	Config NetworkConfig `yaml:"config"`
}

// NetworkConfig describes a HawKoin deployment: where participant
// records live and which participants exist at bootstrap.
type NetworkConfig struct {
	Store        store.StoreConfig `yaml:"store"`
	Defaults     ThresholdDefaults `yaml:"defaults"`
	Participants []ParticipantSpec `yaml:"participants"`
}

// ThresholdDefaults are decimal strings; empty means the built-in
// constants apply.
type ThresholdDefaults struct {
	LowBalThreshold string `yaml:"low_bal_threshold"`
	TxnThreshold    string `yaml:"txn_threshold"`
}

// ContactSpec mirrors types.ContactInfo for the YAML roster.
type ContactSpec struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Address   string `yaml:"address"`
	City      string `yaml:"city"`
	State     string `yaml:"state"`
	Zip       string `yaml:"zip"`
}

// ParticipantSpec is one bootstrap roster entry. Balance and
// thresholds are decimal strings. Inactive defaults to false.
type ParticipantSpec struct {
	ID              string      `yaml:"id"`
	Role            string      `yaml:"role"`
	Balance         string      `yaml:"balance"`
	Inactive        bool        `yaml:"inactive"`
	LowBalThreshold string      `yaml:"low_bal_threshold"`
	TxnThreshold    string      `yaml:"txn_threshold"`
	Contact         ContactSpec `yaml:"contact"`

	// Role-specific fields
	Dept       string `yaml:"dept"`
	VendorName string `yaml:"vendor_name"`
	CCR        string `yaml:"ccr"`
	Major      string `yaml:"major"`
	IsAthlete  bool   `yaml:"is_athlete"`
}

// Participant builds the typed participant record from the spec,
// applying the config-level defaults.
func (s *ParticipantSpec) Participant(defaults ThresholdDefaults) (*types.Participant, error) {
	balance, err := parseAmount(s.Balance, "0")
	if err != nil {
		return nil, fmt.Errorf("participant %s: invalid balance %q: %w", s.ID, s.Balance, err)
	}

	var p *types.Participant
	switch types.AccessLevel(s.Role) {
	case types.AccessAdmin:
		p = types.NewAdministrator(s.ID, balance)
	case types.AccessFaculty:
		p = types.NewFaculty(s.ID, balance, s.Dept)
	case types.AccessVendor:
		p = types.NewVendor(s.ID, balance, s.VendorName, s.CCR)
	case types.AccessStudent:
		p = types.NewStudent(s.ID, balance, s.Major, s.IsAthlete)
	default:
		return nil, fmt.Errorf("participant %s: unknown role %q", s.ID, s.Role)
	}

	p.IsActive = !s.Inactive

	lowBalDefault := defaults.LowBalThreshold
	if lowBalDefault == "" {
		lowBalDefault = DefaultLowBalThreshold
	}
	if p.LowBalThreshold, err = parseAmount(s.LowBalThreshold, lowBalDefault); err != nil {
		return nil, fmt.Errorf("participant %s: invalid low_bal_threshold %q: %w", s.ID, s.LowBalThreshold, err)
	}

	txnDefault := defaults.TxnThreshold
	if txnDefault == "" {
		txnDefault = DefaultTxnThreshold
	}
	if p.TxnThreshold, err = parseAmount(s.TxnThreshold, txnDefault); err != nil {
		return nil, fmt.Errorf("participant %s: invalid txn_threshold %q: %w", s.ID, s.TxnThreshold, err)
	}

	p.ContactInfo = types.ContactInfo{
		FirstName: s.Contact.FirstName,
		LastName:  s.Contact.LastName,
		Email:     s.Contact.Email,
		Address:   s.Contact.Address,
		City:      s.Contact.City,
		State:     s.Contact.State,
		Zip:       s.Contact.Zip,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Roster builds all typed participant records from the config.
func (c *NetworkConfig) Roster() ([]*types.Participant, error) {
	roster := make([]*types.Participant, 0, len(c.Participants))
	for i := range c.Participants {
		p, err := c.Participants[i].Participant(c.Defaults)
		if err != nil {
			return nil, err
		}
		roster = append(roster, p)
	}
	return roster, nil
}

func parseAmount(raw, fallback string) (decimal.Decimal, error) {
	if raw == "" {
		raw = fallback
	}
	return decimal.NewFromString(raw)
}
