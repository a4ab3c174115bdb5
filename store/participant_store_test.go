package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hawkoin/db"
	"hawkoin/types"
)

func newMemStore(t *testing.T) *GenericParticipantStore {
	t.Helper()
	ps, err := NewGenericParticipantStore(db.NewMemDBProvider())
	require.NoError(t, err)
	return ps
}

func TestParticipantStoreRoundTrip(t *testing.T) {
	ps := newMemStore(t)

	p := types.NewStudent("student1", decimal.RequireFromString("100"), "CSB", true)
	p.LowBalThreshold = decimal.RequireFromString("5")
	p.TxnThreshold = decimal.RequireFromString("75")
	p.ContactInfo.FirstName = "Ada"

	require.NoError(t, ps.Put(p))

	got, err := ps.GetByID("student1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "student1", got.ID)
	assert.Equal(t, types.AccessStudent, got.AccessLevel)
	assert.True(t, got.Balance.Equal(p.Balance))
	assert.True(t, got.TxnThreshold.Equal(p.TxnThreshold))
	assert.Equal(t, "Ada", got.ContactInfo.FirstName)
	require.NotNil(t, got.Student)
	assert.True(t, got.Student.IsAthlete)
	assert.Equal(t, "CSB", got.Student.Major)
	assert.Nil(t, got.Vendor)
}

func TestParticipantStoreMissingIsNil(t *testing.T) {
	ps := newMemStore(t)

	got, err := ps.GetByID("nobody")
	require.NoError(t, err)
	assert.Nil(t, got)

	exists, err := ps.ExistsByID("nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestParticipantStorePutBatch(t *testing.T) {
	ps := newMemStore(t)

	batch := []*types.Participant{
		types.NewAdministrator("a1", decimal.RequireFromString("1")),
		types.NewVendor("v1", decimal.RequireFromString("2"), "V", "MONTHLY"),
	}
	require.NoError(t, ps.PutBatch(batch))

	got, err := ps.GetBatch([]string{"a1", "v1", "missing"})
	require.NoError(t, err)
	require.NotNil(t, got["a1"])
	require.NotNil(t, got["v1"])
	assert.Nil(t, got["missing"])
	assert.True(t, got["v1"].Balance.Equal(decimal.RequireFromString("2")))
}

func TestParticipantStoreGetAll(t *testing.T) {
	ps := newMemStore(t)

	require.NoError(t, ps.Put(types.NewAdministrator("a1", decimal.Zero)))
	require.NoError(t, ps.Put(types.NewFaculty("f1", decimal.Zero, "CS")))
	require.NoError(t, ps.Put(types.NewStudent("s1", decimal.Zero, "CSB", false)))

	all, err := ps.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ids := make(map[string]bool)
	for _, p := range all {
		ids[p.ID] = true
	}
	assert.True(t, ids["a1"] && ids["f1"] && ids["s1"])
}

func TestParticipantStoreOverwrite(t *testing.T) {
	ps := newMemStore(t)

	p := types.NewAdministrator("a1", decimal.RequireFromString("10"))
	require.NoError(t, ps.Put(p))

	p.Balance = decimal.RequireFromString("60")
	require.NoError(t, ps.Put(p))

	got, err := ps.GetByID("a1")
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("60")))
}

func TestStoreFactory(t *testing.T) {
	factory := NewStoreFactory()

	t.Run("memory", func(t *testing.T) {
		ps, err := factory.CreateParticipantStore(&StoreConfig{Type: MemoryStoreType})
		require.NoError(t, err)
		require.NotNil(t, ps)
		ps.MustClose()
	})

	t.Run("boltdb", func(t *testing.T) {
		ps, err := factory.CreateParticipantStore(&StoreConfig{Type: BoltDBStoreType, Directory: t.TempDir()})
		require.NoError(t, err)
		require.NoError(t, ps.Put(types.NewAdministrator("a1", decimal.RequireFromString("5"))))
		got, err := ps.GetByID("a1")
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(decimal.RequireFromString("5")))
		ps.MustClose()
	})

	t.Run("leveldb", func(t *testing.T) {
		ps, err := factory.CreateParticipantStore(&StoreConfig{Type: LevelDBStoreType, Directory: t.TempDir()})
		require.NoError(t, err)
		require.NoError(t, ps.Put(types.NewAdministrator("a1", decimal.RequireFromString("5"))))
		exists, err := ps.ExistsByID("a1")
		require.NoError(t, err)
		assert.True(t, exists)
		ps.MustClose()
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := factory.CreateParticipantStore(&StoreConfig{Type: "cassandra"})
		assert.Error(t, err)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := factory.CreateParticipantStore(&StoreConfig{Type: LevelDBStoreType})
		assert.Error(t, err)
	})
}
