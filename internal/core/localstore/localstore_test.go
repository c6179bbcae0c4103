package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kv.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGet_AbsentKeyReturnsFalse(t *testing.T) {
	s := openTest(t)

	var v string
	assert.False(t, s.Get("nope", &v))
	assert.Empty(t, v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := openTest(t)

	type rec struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, s.Set("r", rec{Name: "Also & Partners", Count: 3}))

	var got rec
	require.True(t, s.Get("r", &got))
	assert.Equal(t, rec{Name: "Also & Partners", Count: 3}, got)
}

func TestSet_OverwritesExistingKey(t *testing.T) {
	s := openTest(t)

	require.NoError(t, s.Set("theme", "light"))
	require.NoError(t, s.Set("theme", "dark"))

	var theme string
	require.True(t, s.Get("theme", &theme))
	assert.Equal(t, "dark", theme)
}

func TestGet_CorruptValueReturnsFalse(t *testing.T) {
	s := openTest(t)

	require.NoError(t, s.PutRaw("bad", []byte("{broken json")))

	var v map[string]any
	assert.False(t, s.Get("bad", &v))
}

func TestDelete_ThenGetIsAbsent(t *testing.T) {
	s := openTest(t)

	require.NoError(t, s.Set("k", 1))
	require.NoError(t, s.Delete("k"))

	var v int
	assert.False(t, s.Get("k", &v))
	// 删不存在的键也不报错
	assert.NoError(t, s.Delete("k"))
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	s1, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s1.Set("k", "v"))
	require.NoError(t, s1.Close())

	s2, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()

	var v string
	require.True(t, s2.Get("k", &v))
	assert.Equal(t, "v", v)
}
