package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-setter/internal/catalog"
)

func findByName(s *Scene, name string) *Token {
	for _, t := range s.Tokens {
		if t.DisplayName == name {
			return t
		}
	}
	return nil
}

func TestInstantiate(t *testing.T) {
	s := Instantiate("standard")
	require.Len(t, s.Tokens, 11)
	assert.False(t, s.Mirrored)

	seen := make(map[string]bool)
	for _, tok := range s.Tokens {
		assert.True(t, tok.Active)
		assert.NotEmpty(t, tok.ID)
		assert.False(t, seen[tok.ID], "token ids must be unique")
		seen[tok.ID] = true
	}

	require.NotNil(t, findByName(s, "Wicketkeeper"))
	require.NotNil(t, findByName(s, "Bowler"))
	require.NotNil(t, findByName(s, "Point"))
}

func TestInstantiateCopiesCatalog(t *testing.T) {
	// Tokens are copies; moving one must not disturb the reference table.
	s := Instantiate("standard")
	tok := findByName(s, "Point")
	require.NotNil(t, tok)

	MoveToken(s, tok.ID, 90, 90)

	ref := catalog.ByID("point")
	assert.Equal(t, 25.0, ref.X)
	assert.Equal(t, 47.0, ref.Y)
}

func TestInstantiateUnknownPreset(t *testing.T) {
	s := Instantiate("no-such-preset")
	assert.Empty(t, s.Tokens)
}

func TestMoveTokenClamps(t *testing.T) {
	s := Instantiate("standard")
	tok := findByName(s, "Point")

	next := MoveToken(s, tok.ID, -20, 150)
	moved := next.Find(tok.ID)
	assert.Equal(t, MinCoord, moved.X)
	assert.Equal(t, MaxCoord, moved.Y)

	next = MoveToken(s, tok.ID, 200, -5)
	moved = next.Find(tok.ID)
	assert.Equal(t, MaxCoord, moved.X)
	assert.Equal(t, MinCoord, moved.Y)
}

func TestMoveTokenRelabels(t *testing.T) {
	// Dragging point across the field to cover's spot renames the token.
	s := Instantiate("standard")
	tok := findByName(s, "Point")
	require.NotNil(t, tok)

	next := MoveToken(s, tok.ID, 30, 59)
	moved := next.Find(tok.ID)
	assert.Equal(t, "Cover", moved.DisplayName)
	assert.Equal(t, "C", moved.ShortLabel)
	assert.Equal(t, catalog.CategoryRing, moved.Category)

	// Input scene untouched.
	assert.Equal(t, "Point", s.Find(tok.ID).DisplayName)
}

func TestMoveTokenFixedRoleKeepsName(t *testing.T) {
	s := Instantiate("standard")
	keeper := findByName(s, "Wicketkeeper")
	require.NotNil(t, keeper)

	next := MoveToken(s, keeper.ID, 50, 20)
	moved := next.Find(keeper.ID)
	assert.Equal(t, "Wicketkeeper", moved.DisplayName)
	assert.Equal(t, catalog.CategoryKeeper, moved.Category)
	assert.Equal(t, 20.0, moved.Y)
}

func TestMoveTokenUnknownID(t *testing.T) {
	s := Instantiate("standard")
	assert.Same(t, s, MoveToken(s, "bogus", 10, 10))
}

func TestMoveTokenSharesUntouchedPointers(t *testing.T) {
	s := Instantiate("standard")
	tok := findByName(s, "Point")

	next := MoveToken(s, tok.ID, 60, 60)
	for i, old := range s.Tokens {
		if old.ID == tok.ID {
			assert.NotSame(t, old, next.Tokens[i])
		} else {
			assert.Same(t, old, next.Tokens[i])
		}
	}
}

func TestMoveTokenMirroredStoresCanonical(t *testing.T) {
	// With the field mirrored, a drop at display x=75 stores canonical
	// x=25 and is labelled from the canonical frame.
	s := ToggleMirror(Instantiate("standard"))
	require.True(t, s.Mirrored)
	tok := findByName(s, "Square Leg")
	require.NotNil(t, tok)

	next := MoveToken(s, tok.ID, 75, 47)
	moved := next.Find(tok.ID)
	assert.Equal(t, 25.0, moved.X)
	assert.Equal(t, "Point", moved.DisplayName)

	// Display round-trips back to where the user dropped it.
	assert.Equal(t, 75.0, next.DisplayPoint(moved).X)
}

func TestRenameToken(t *testing.T) {
	s := Instantiate("standard")
	tok := findByName(s, "Gully")
	require.NotNil(t, tok)

	next, err := RenameToken(s, tok.ID, "  Flying Gully  ")
	require.NoError(t, err)

	renamed := next.Find(tok.ID)
	assert.Equal(t, "Flying Gully", renamed.DisplayName)
	assert.Equal(t, "Flying Gully", renamed.ShortLabel)
	assert.Equal(t, tok.X, renamed.X)
	assert.Equal(t, tok.Category, renamed.Category)
}

func TestRenameTokenRejectsEmpty(t *testing.T) {
	s := Instantiate("standard")
	tok := s.Tokens[0]

	for _, bad := range []string{"", "   ", "\t\n"} {
		got, err := RenameToken(s, tok.ID, bad)
		require.Error(t, err)
		assert.Same(t, s, got)
	}
}

func TestRenameTokenUnknownID(t *testing.T) {
	s := Instantiate("standard")
	_, err := RenameToken(s, "bogus", "Name")
	require.Error(t, err)
}

func TestToggleMirror(t *testing.T) {
	s := Instantiate("standard")
	tok := findByName(s, "Point")

	m := ToggleMirror(s)
	assert.True(t, m.Mirrored)
	// Stored coordinates never change.
	assert.Equal(t, 25.0, m.Find(tok.ID).X)
	// Display coordinate is reflected.
	assert.Equal(t, 75.0, m.DisplayPoint(m.Find(tok.ID)).X)

	back := ToggleMirror(m)
	assert.False(t, back.Mirrored)
	assert.Equal(t, 25.0, back.DisplayPoint(back.Find(tok.ID)).X)
}
