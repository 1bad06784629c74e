package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/suitopia/internal/storage"
)

type series struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "suitopia.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestStoreReadMissing(t *testing.T) {
	s := openTestStore(t)
	var out []series
	err := s.Read(context.Background(), storage.CharacterSeriesDocument, &out)
	assert.ErrorIs(t, err, storage.ErrDocumentMissing)
}

func TestStoreWriteOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, storage.CharacterSeriesDocument, []series{{ID: "s1", Name: "Stars"}}))
	require.NoError(t, s.Write(ctx, storage.CharacterSeriesDocument, []series{{ID: "s1", Name: "Stars"}, {ID: "s2", Name: "Moons"}}))

	var out []series
	require.NoError(t, s.Read(ctx, storage.CharacterSeriesDocument, &out))
	assert.Equal(t, []series{{ID: "s1", Name: "Stars"}, {ID: "s2", Name: "Moons"}}, out)
	assert.NoError(t, s.HealthCheck(ctx))
}

func TestStoreWriteEncodeError(t *testing.T) {
	s := openTestStore(t)
	err := s.Write(context.Background(), storage.OrdersDocument, make(chan int))
	assert.Error(t, err)
}

func TestCloseNilStore(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
