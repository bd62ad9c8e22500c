package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-setter/internal/scene"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "setups.json"))
}

func TestCreateAndList(t *testing.T) {
	s := tempStore(t)
	assert.Empty(t, s.List())

	sc := scene.Instantiate("standard")
	rec, err := s.Create("day one", sc)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "day one", rec.Name)
	assert.False(t, rec.CreatedAt.IsZero())

	records := s.List()
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Len(t, records[0].Scene.Tokens, 11)
}

func TestRoundTripPreservesScene(t *testing.T) {
	s := tempStore(t)

	sc := scene.Instantiate("attacking")
	sc = scene.ToggleMirror(sc)
	tok := sc.Tokens[3]
	sc = scene.MoveToken(sc, tok.ID, 20, 20)

	rec, err := s.Create("mirrored attack", sc)
	require.NoError(t, err)

	got, ok := s.Get(rec.ID)
	require.True(t, ok)
	assert.True(t, got.Scene.Mirrored)

	loaded := got.Scene.Find(tok.ID)
	require.NotNil(t, loaded)
	// Stored coordinates are canonical: display x=20 mirrored is x=80.
	assert.Equal(t, 80.0, loaded.X)
	assert.Equal(t, 20.0, loaded.Y)
}

func TestDelete(t *testing.T) {
	s := tempStore(t)
	a, err := s.Create("keep", scene.Instantiate("standard"))
	require.NoError(t, err)
	b, err := s.Create("drop", scene.Instantiate("defensive"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(b.ID))
	records := s.List()
	require.Len(t, records, 1)
	assert.Equal(t, a.ID, records[0].ID)

	// Deleting an unknown id is a no-op.
	require.NoError(t, s.Delete("bogus"))
	assert.Len(t, s.List(), 1)
}

func TestGetUnknown(t *testing.T) {
	s := tempStore(t)
	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestCorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setups.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	assert.Empty(t, s.List())

	// Saving over the corrupt file recovers it.
	_, err := s.Create("fresh", scene.Instantiate("standard"))
	require.NoError(t, err)
	assert.Len(t, s.List(), 1)
}
