// Package field implements the position-detection engine: geometric
// classification of a drop coordinate against the catalog of named
// fielding positions.
package field

import (
	"field-setter/pkg/geometry"
)

// Field geometry constants, on the 0-100 unit canvas.
const (
	// CenterX, CenterY locate the middle of the playing field.
	CenterX = 50.0
	CenterY = 50.0

	// CircleRadius is the radius of the inner fielding circle. Historical
	// revisions of this tool used values between 28 and 38; 30 matches the
	// rendered circle, so detection and the drawing agree.
	CircleRadius = 30.0

	// SnapDistance is the maximum distance at which a drop coordinate is
	// considered "at" a catalog position. Earlier revisions wavered between
	// 12 and 15; 12 keeps neighbouring ring positions distinguishable.
	SnapDistance = 12.0
)

// Side is the lateral half of the field relative to a right-handed batter.
type Side int

const (
	SideOff Side = iota
	SideLeg
)

func (s Side) String() string {
	if s == SideLeg {
		return "leg"
	}
	return "off"
}

// Band is the depth band of the field relative to the striker's crease.
type Band int

const (
	BandBehind Band = iota // behind square
	BandSquare
	BandForward // forward of square
	BandStraight
)

func (b Band) String() string {
	switch b {
	case BandBehind:
		return "behind square"
	case BandSquare:
		return "square"
	case BandForward:
		return "forward of square"
	default:
		return "straight"
	}
}

// Zone is a coarse directional classification: side crossed with depth band.
type Zone struct {
	Side Side
	Band Band
}

// bandTable maps y to a depth band. Evaluated top-down, first match wins.
// The striker's crease sits at y=44, so "square" straddles it.
var bandTable = []struct {
	yBelow float64
	band   Band
}{
	{38, BandBehind},
	{52, BandSquare},
	{72, BandForward},
	{101, BandStraight},
}

// InsideCircle reports whether the point lies inside the inner fielding
// circle.
func InsideCircle(x, y float64) bool {
	p := geometry.Point2D{X: x, Y: y}
	return p.Distance(geometry.Point2D{X: CenterX, Y: CenterY}) <= CircleRadius
}

// ClassifyZone partitions the canvas into side and depth band. Pure
// function of the input coordinate and the band table.
func ClassifyZone(x, y float64) Zone {
	z := Zone{Side: SideLeg, Band: BandStraight}
	if x < CenterX {
		z.Side = SideOff
	}
	for _, row := range bandTable {
		if y < row.yBelow {
			z.Band = row.band
			break
		}
	}
	return z
}
