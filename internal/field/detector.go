package field

import (
	"field-setter/internal/catalog"
	"field-setter/pkg/geometry"
)

// Result is the outcome of a detection call: the semantic label for a drop
// coordinate. It is a pure value produced fresh on every call.
type Result struct {
	DisplayName string
	ShortLabel  string
	Category    catalog.Category
}

// fallbackNames maps (side, band, inside-circle) to a synthesized position
// name for drops that are not close to any catalog entry. The vocabulary
// follows the convention that "deep" marks the outfield variant of a ring
// position.
var fallbackNames = map[Zone][2]Result{
	{SideOff, BandBehind}: {
		{DisplayName: "Backward Point", ShortLabel: "BP", Category: catalog.CategoryRing},
		{DisplayName: "Third Man", ShortLabel: "TM", Category: catalog.CategoryBoundary},
	},
	{SideOff, BandSquare}: {
		{DisplayName: "Point", ShortLabel: "PT", Category: catalog.CategoryRing},
		{DisplayName: "Deep Point", ShortLabel: "DP", Category: catalog.CategoryBoundary},
	},
	{SideOff, BandForward}: {
		{DisplayName: "Cover", ShortLabel: "C", Category: catalog.CategoryRing},
		{DisplayName: "Deep Cover", ShortLabel: "DC", Category: catalog.CategoryBoundary},
	},
	{SideOff, BandStraight}: {
		{DisplayName: "Mid-Off", ShortLabel: "MO", Category: catalog.CategoryRing},
		{DisplayName: "Long-Off", ShortLabel: "LO", Category: catalog.CategoryBoundary},
	},
	{SideLeg, BandBehind}: {
		{DisplayName: "Leg Gully", ShortLabel: "LG", Category: catalog.CategoryRing},
		{DisplayName: "Fine Leg", ShortLabel: "FL", Category: catalog.CategoryBoundary},
	},
	{SideLeg, BandSquare}: {
		{DisplayName: "Square Leg", ShortLabel: "SQ", Category: catalog.CategoryRing},
		{DisplayName: "Deep Square Leg", ShortLabel: "DSL", Category: catalog.CategoryBoundary},
	},
	{SideLeg, BandForward}: {
		{DisplayName: "Midwicket", ShortLabel: "MW", Category: catalog.CategoryRing},
		{DisplayName: "Deep Midwicket", ShortLabel: "DMW", Category: catalog.CategoryBoundary},
	},
	{SideLeg, BandStraight}: {
		{DisplayName: "Mid-On", ShortLabel: "MN", Category: catalog.CategoryRing},
		{DisplayName: "Long-On", ShortLabel: "LN", Category: catalog.CategoryBoundary},
	},
}

// Detect resolves an arbitrary drop coordinate to a semantic label. When
// mirrored, the x-coordinate is reflected before any other computation so
// that stored canonical coordinates and display coordinates agree.
//
// Keeper and bowler are never reassigned by proximity. Nearest-neighbour
// ties resolve to the first entry in catalog order; a deliberate linear
// scan keeps that ordering deterministic. Detection never fails: any point
// beyond SnapDistance of the catalog gets a name synthesized from its zone.
func Detect(x, y float64, mirrored bool) Result {
	if mirrored {
		x = 100 - x
	}
	p := geometry.Point2D{X: x, Y: y}

	var best *catalog.Position
	bestDist := 0.0
	for _, pos := range catalog.Positions() {
		if pos.Fixed() {
			continue
		}
		d := p.Distance(pos.Point())
		if best == nil || d < bestDist {
			pos := pos
			best = &pos
			bestDist = d
		}
	}

	if best != nil && bestDist < SnapDistance {
		return Result{
			DisplayName: best.DisplayName,
			ShortLabel:  best.ShortLabel,
			Category:    best.Category,
		}
	}

	zone := ClassifyZone(x, y)
	pair := fallbackNames[zone]
	if InsideCircle(x, y) {
		return pair[0]
	}
	return pair[1]
}
