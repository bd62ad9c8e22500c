package field

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"field-setter/pkg/geometry"
)

// Coverage summarises how evenly the catching and outfield positions are
// spread around the field centre. The keeper and bowler are pinned to the
// pitch and should be excluded by the caller.
type Coverage struct {
	FielderCount int

	// Angular spacing between neighbouring fielders, in degrees.
	MeanSpacing   float64
	SpacingStdDev float64

	// The widest undefended arc.
	LargestGap float64 // degrees
	GapBearing float64 // degrees, mid-point of the arc
	GapZone    Zone    // zone at the middle of the arc
}

// AnalyzeCoverage computes the angular-gap report for a set of fielder
// coordinates. Fewer than two fielders leaves the whole field open.
func AnalyzeCoverage(points []geometry.Point2D) Coverage {
	center := geometry.Point2D{X: CenterX, Y: CenterY}

	angles := make([]float64, 0, len(points))
	for _, p := range points {
		angles = append(angles, math.Mod(center.Angle(p)*180/math.Pi+360, 360))
	}
	sort.Float64s(angles)

	cov := Coverage{FielderCount: len(points)}
	if len(angles) < 2 {
		cov.LargestGap = 360
		return cov
	}

	gaps := make([]float64, len(angles))
	for i := 1; i < len(angles); i++ {
		gaps[i-1] = angles[i] - angles[i-1]
	}
	gaps[len(gaps)-1] = angles[0] + 360 - angles[len(angles)-1]

	cov.MeanSpacing = stat.Mean(gaps, nil)
	cov.SpacingStdDev = stat.StdDev(gaps, nil)

	widest := floats.MaxIdx(gaps)
	cov.LargestGap = gaps[widest]
	start := angles[widest]
	cov.GapBearing = math.Mod(start+cov.LargestGap/2, 360)

	// Sample a point partway to the boundary to name the open region.
	rad := cov.GapBearing * math.Pi / 180
	sampleX := CenterX + 40*math.Cos(rad)
	sampleY := CenterY + 40*math.Sin(rad)
	cov.GapZone = ClassifyZone(sampleX, sampleY)

	return cov
}
