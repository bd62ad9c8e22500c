package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Point2D{X: 0, Y: 0}.Distance(Point2D{X: 3, Y: 4}), 1e-12)
	assert.Zero(t, Point2D{X: 7, Y: 7}.Distance(Point2D{X: 7, Y: 7}))
}

func TestAngle(t *testing.T) {
	origin := Point2D{}
	assert.InDelta(t, 0, origin.Angle(Point2D{X: 1, Y: 0}), 1e-12)
	assert.InDelta(t, math.Pi/2, origin.Angle(Point2D{X: 0, Y: 1}), 1e-12)
	assert.InDelta(t, math.Pi, math.Abs(origin.Angle(Point2D{X: -1, Y: 0})), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3.0, Clamp(-10, 3, 97))
	assert.Equal(t, 97.0, Clamp(200, 3, 97))
	assert.Equal(t, 50.0, Clamp(50, 3, 97))
}

func TestMirrorX(t *testing.T) {
	m := MirrorX(100)
	assert.Equal(t, Point2D{X: 75, Y: 47}, m.Apply(Point2D{X: 25, Y: 47}))

	// Mirroring twice is the identity.
	p := Point2D{X: 12, Y: 88}
	assert.Equal(t, p, m.Apply(m.Apply(p)))
}

func TestComposeAndInverse(t *testing.T) {
	tr := Translation(10, 20).Compose(Scaling(2, 3))

	got := tr.Apply(Point2D{X: 1, Y: 1})
	assert.Equal(t, Point2D{X: 12, Y: 23}, got)

	inv, ok := tr.Inverse()
	require.True(t, ok)
	back := inv.Apply(got)
	assert.InDelta(t, 1, back.X, 1e-12)
	assert.InDelta(t, 1, back.Y, 1e-12)
}

func TestInverseSingular(t *testing.T) {
	_, ok := Scaling(0, 0).Inverse()
	assert.False(t, ok)
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	assert.True(t, r.Contains(Point2D{X: 15, Y: 15}))
	assert.True(t, r.Contains(Point2D{X: 10, Y: 30}))
	assert.False(t, r.Contains(Point2D{X: 31, Y: 15}))
	assert.Equal(t, Point2D{X: 20, Y: 20}, r.Center())
}

func TestCentroid(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.Equal(t, Point2D{X: 5, Y: 5}, Centroid(pts))
	assert.Equal(t, Point2D{}, Centroid(nil))
}
