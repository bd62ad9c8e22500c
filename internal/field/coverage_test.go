package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"field-setter/pkg/geometry"
)

func ringPoint(bearingDeg, radius float64) geometry.Point2D {
	rad := bearingDeg * math.Pi / 180
	return geometry.Point2D{
		X: CenterX + radius*math.Cos(rad),
		Y: CenterY + radius*math.Sin(rad),
	}
}

func TestAnalyzeCoverageEvenRing(t *testing.T) {
	// Four fielders at 90-degree intervals: uniform spacing, no variance.
	points := []geometry.Point2D{
		ringPoint(0, 40), ringPoint(90, 40), ringPoint(180, 40), ringPoint(270, 40),
	}
	cov := AnalyzeCoverage(points)

	assert.Equal(t, 4, cov.FielderCount)
	assert.InDelta(t, 90, cov.MeanSpacing, 1e-9)
	assert.InDelta(t, 0, cov.SpacingStdDev, 1e-9)
	assert.InDelta(t, 90, cov.LargestGap, 1e-9)
}

func TestAnalyzeCoverageFindsGap(t *testing.T) {
	// Three fielders bunched on one side leave a wide arc open opposite.
	points := []geometry.Point2D{
		ringPoint(0, 40), ringPoint(30, 40), ringPoint(60, 40),
	}
	cov := AnalyzeCoverage(points)

	assert.InDelta(t, 300, cov.LargestGap, 1e-9)
	assert.InDelta(t, 210, cov.GapBearing, 1e-9)
	assert.Greater(t, cov.SpacingStdDev, 0.0)
}

func TestAnalyzeCoverageGapWrapsAroundZero(t *testing.T) {
	// The widest gap straddles the 0-degree seam.
	points := []geometry.Point2D{
		ringPoint(90, 40), ringPoint(120, 40), ringPoint(270, 40),
	}
	cov := AnalyzeCoverage(points)

	assert.InDelta(t, 180, cov.LargestGap, 1e-9)
	assert.InDelta(t, 0, cov.GapBearing, 1e-9)
}

func TestAnalyzeCoverageTooFew(t *testing.T) {
	cov := AnalyzeCoverage(nil)
	assert.Zero(t, cov.FielderCount)
	assert.InDelta(t, 360, cov.LargestGap, 1e-9)

	cov = AnalyzeCoverage([]geometry.Point2D{ringPoint(45, 40)})
	assert.Equal(t, 1, cov.FielderCount)
	assert.InDelta(t, 360, cov.LargestGap, 1e-9)
}

func TestAnalyzeCoverageGapZone(t *testing.T) {
	// Everyone on the off side: the open arc is on the leg side.
	points := []geometry.Point2D{
		ringPoint(150, 40), ringPoint(180, 40), ringPoint(210, 40),
	}
	cov := AnalyzeCoverage(points)
	assert.Equal(t, SideLeg, cov.GapZone.Side)
}
