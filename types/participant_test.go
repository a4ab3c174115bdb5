package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsSetVariantPayload(t *testing.T) {
	balance := decimal.RequireFromString("100")

	admin := NewAdministrator("a1", balance)
	assert.Equal(t, AccessAdmin, admin.AccessLevel)
	assert.True(t, admin.IsActive)
	assert.NoError(t, admin.Validate())

	faculty := NewFaculty("f1", balance, "CS")
	require.NotNil(t, faculty.Faculty)
	assert.Equal(t, "CS", faculty.Faculty.Dept)
	assert.NoError(t, faculty.Validate())

	vendor := NewVendor("v1", balance, "Vendor1", "MONTHLY")
	require.NotNil(t, vendor.Vendor)
	assert.Equal(t, "MONTHLY", vendor.Vendor.CCR)
	assert.NoError(t, vendor.Validate())

	student := NewStudent("s1", balance, "CSB", true)
	require.NotNil(t, student.Student)
	assert.True(t, student.Student.IsAthlete)
	assert.NoError(t, student.Validate())
}

func TestValidateCatchesInconsistentVariant(t *testing.T) {
	p := NewAdministrator("a1", decimal.Zero)
	p.Student = &StudentInfo{Major: "CSB"}
	assert.Error(t, p.Validate())

	p = NewFaculty("f1", decimal.Zero, "CS")
	p.Faculty = nil
	assert.Error(t, p.Validate())

	p = NewStudent("s1", decimal.Zero, "CSB", false)
	p.AccessLevel = "JANITOR"
	assert.Error(t, p.Validate())
}

func TestValidateCatchesNegativeBalance(t *testing.T) {
	p := NewAdministrator("a1", decimal.RequireFromString("-1"))
	assert.Error(t, p.Validate())
}

func TestValidateCatchesEmptyID(t *testing.T) {
	p := NewAdministrator("", decimal.Zero)
	assert.Error(t, p.Validate())
}

func TestCloneIsDeep(t *testing.T) {
	p := NewVendor("v1", decimal.RequireFromString("10"), "Vendor1", "MONTHLY")
	p.ContactInfo.City = "Bethlehem"

	cp := p.Clone()
	cp.Balance = decimal.RequireFromString("99")
	cp.Vendor.CCR = "WEEKLY"
	cp.ContactInfo.City = "Easton"

	assert.True(t, p.Balance.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, "MONTHLY", p.Vendor.CCR)
	assert.Equal(t, "Bethlehem", p.ContactInfo.City)
}

func TestParticipantJSONRoundTrip(t *testing.T) {
	p := NewStudent("s1", decimal.RequireFromString("42.50"), "CSB", true)
	p.LowBalThreshold = decimal.RequireFromString("5")
	p.TxnThreshold = decimal.RequireFromString("75")

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got Participant
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, p.ID, got.ID)
	assert.True(t, got.Balance.Equal(p.Balance))
	assert.Equal(t, AccessStudent, got.AccessLevel)
	require.NotNil(t, got.Student)
	assert.Nil(t, got.Faculty)
	assert.Nil(t, got.Vendor)
	assert.NoError(t, got.Validate())
}
