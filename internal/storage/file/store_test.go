package file

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/suitopia/internal/storage"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	s, err := New(dir, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s, dir
}

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestStoreWriteThenRead(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	in := []record{{ID: "a", Name: "Nova"}, {ID: "b", Name: "Ash"}}
	require.NoError(t, s.Write(ctx, storage.CharactersDocument, in))

	var out []record
	require.NoError(t, s.Read(ctx, storage.CharactersDocument, &out))
	assert.Equal(t, in, out)

	raw, err := os.ReadFile(filepath.Join(dir, storage.CharactersDocument))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {", "expected pretty-printed output")

	_, err = os.Stat(filepath.Join(dir, storage.CharactersDocument+".tmp"))
	assert.True(t, os.IsNotExist(err), "temporary file must not remain")
}

func TestStoreReadMissingDocument(t *testing.T) {
	s, dir := newTestStore(t)

	var out []record
	err := s.Read(context.Background(), storage.OrdersDocument, &out)
	assert.ErrorIs(t, err, storage.ErrDocumentMissing)

	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.OrdersDocument), []byte("  \n"), 0o644))
	err = s.Read(context.Background(), storage.OrdersDocument, &out)
	assert.ErrorIs(t, err, storage.ErrDocumentMissing)
}

func TestStoreReadCorruptDocument(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.OrdersDocument), []byte("{not json"), 0o644))

	var out []record
	err := s.Read(context.Background(), storage.OrdersDocument, &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrDocumentMissing)
	assert.Contains(t, err.Error(), storage.OrdersDocument)
}

func TestStoreRejectsPathNames(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Write(context.Background(), "../escape.json", []record{})
	assert.Error(t, err)
	err = s.Read(context.Background(), "", &[]record{})
	assert.Error(t, err)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	s, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Write(ctx, storage.OrdersDocument, []record{}), context.Canceled)
}

func TestNewRequiresDirectory(t *testing.T) {
	_, err := New("", slog.New(slog.NewJSONHandler(io.Discard, nil)))
	assert.Error(t, err)
}
