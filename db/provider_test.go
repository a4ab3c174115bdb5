package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providerUnderTest exercises the DatabaseProvider contract shared by
// all backends.
func providerUnderTest(t *testing.T, provider DatabaseProvider) {
	t.Helper()

	// missing key reads as nil, not error
	v, err := provider.Get([]byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, provider.Put([]byte("k1"), []byte("v1")))
	require.NoError(t, provider.Put([]byte("k2"), []byte("v2")))

	v, err = provider.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	has, err := provider.Has([]byte("k2"))
	require.NoError(t, err)
	assert.True(t, has)

	got, err := provider.GetBatch([][]byte{[]byte("k1"), []byte("k2"), []byte("missing")})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []byte("v2"), got["k2"])

	require.NoError(t, provider.Delete([]byte("k1")))
	has, err = provider.Has([]byte("k1"))
	require.NoError(t, err)
	assert.False(t, has)

	// batch commits atomically on Write
	batch := provider.Batch()
	batch.Put([]byte("b1"), []byte("x"))
	batch.Put([]byte("b2"), []byte("y"))
	batch.Delete([]byte("k2"))
	require.NoError(t, batch.Write())
	batch.Close()

	v, err = provider.Get([]byte("b1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), v)
	has, err = provider.Has([]byte("k2"))
	require.NoError(t, err)
	assert.False(t, has)

	// prefix iteration sees only matching keys
	iterable, ok := provider.(IterableProvider)
	require.True(t, ok)
	require.NoError(t, provider.Put([]byte("p:1"), []byte("a")))
	require.NoError(t, provider.Put([]byte("p:2"), []byte("b")))
	require.NoError(t, provider.Put([]byte("q:1"), []byte("c")))

	var seen []string
	err = iterable.IteratePrefix([]byte("p:"), func(key, value []byte) bool {
		seen = append(seen, string(key))
		return true
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p:1", "p:2"}, seen)

	require.NoError(t, provider.Close())
}

func TestMemDBProvider(t *testing.T) {
	providerUnderTest(t, NewMemDBProvider())
}

func TestLevelDBProvider(t *testing.T) {
	provider, err := NewLevelDBProvider(t.TempDir())
	require.NoError(t, err)
	providerUnderTest(t, provider)
}

func TestBoltDBProvider(t *testing.T) {
	provider, err := NewBoltDBProvider(t.TempDir())
	require.NoError(t, err)
	providerUnderTest(t, provider)
}

func TestProviderDoubleCloseIsSafe(t *testing.T) {
	provider, err := NewBoltDBProvider(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, provider.Close())
	assert.NoError(t, provider.Close())
}
