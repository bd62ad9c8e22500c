package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragSession(t *testing.T) {
	s := Instantiate("standard")
	tok := findByName(s, "Cover")
	require.NotNil(t, tok)

	d := StartDrag(s, tok.ID)
	require.NotNil(t, d)
	assert.Equal(t, tok.ID, d.TokenID())

	mid := d.Move(40, 40)
	assert.NotEqual(t, tok.X, mid.Find(tok.ID).X)

	final, moved := d.End()
	assert.True(t, moved)
	assert.Equal(t, 40.0, final.Find(tok.ID).X)
	assert.Equal(t, 40.0, final.Find(tok.ID).Y)
}

func TestDragSessionUnknownToken(t *testing.T) {
	s := Instantiate("standard")
	assert.Nil(t, StartDrag(s, "bogus"))
}

func TestDragSessionNoMove(t *testing.T) {
	// Press and release without moving commits nothing.
	s := Instantiate("standard")
	d := StartDrag(s, s.Tokens[0].ID)
	require.NotNil(t, d)

	final, moved := d.End()
	assert.False(t, moved)
	assert.Same(t, s, final)
}

func TestDragSessionEndIdempotent(t *testing.T) {
	s := Instantiate("standard")
	d := StartDrag(s, s.Tokens[2].ID)
	d.Move(60, 60)

	first, moved := d.End()
	assert.True(t, moved)

	second, movedAgain := d.End()
	assert.False(t, movedAgain)
	assert.Same(t, first, second)

	// Moves after End are ignored.
	after := d.Move(10, 10)
	assert.Same(t, first, after)
}

func TestDragSessionOffCanvasRelease(t *testing.T) {
	// A pointer that leaves the canvas finalizes at the last clamped spot.
	s := Instantiate("standard")
	tok := findByName(s, "Mid-Off")
	require.NotNil(t, tok)

	d := StartDrag(s, tok.ID)
	d.Move(60, 60)
	d.Move(-500, 2000)

	final, moved := d.End()
	assert.True(t, moved)
	assert.Equal(t, MinCoord, final.Find(tok.ID).X)
	assert.Equal(t, MaxCoord, final.Find(tok.ID).Y)
}
