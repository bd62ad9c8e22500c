// Package catalog provides the canonical fielding position table and preset
// field settings.
package catalog

import (
	"fmt"

	"field-setter/pkg/geometry"
)

// Category classifies a fielding position by its role on the field.
type Category int

const (
	CategoryKeeper Category = iota
	CategoryBowler
	CategorySlip
	CategoryClose
	CategoryRing
	CategoryBoundary
)

func (c Category) String() string {
	switch c {
	case CategoryKeeper:
		return "keeper"
	case CategoryBowler:
		return "bowler"
	case CategorySlip:
		return "slip"
	case CategoryClose:
		return "close"
	case CategoryRing:
		return "ring"
	case CategoryBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// CategoryFromString parses a category name. Unknown names map to ring.
func CategoryFromString(s string) Category {
	switch s {
	case "keeper":
		return CategoryKeeper
	case "bowler":
		return CategoryBowler
	case "slip":
		return CategorySlip
	case "close":
		return CategoryClose
	case "boundary":
		return CategoryBoundary
	default:
		return CategoryRing
	}
}

// Position is a canonical, named fielding position with fixed reference
// coordinates. Coordinates are percentages of the canvas (0-100), origin
// top-left, off side at x<50 for a right-handed batter, smaller y behind
// the striker. Positions are immutable reference data.
type Position struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	ShortLabel  string   `json:"short_label"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Category    Category `json:"category"`
}

// Point returns the position's reference coordinate.
func (p Position) Point() geometry.Point2D {
	return geometry.Point2D{X: p.X, Y: p.Y}
}

// Fixed reports whether the position is a fixed role (keeper or bowler)
// that is never reassigned by proximity.
func (p Position) Fixed() bool {
	return p.Category == CategoryKeeper || p.Category == CategoryBowler
}

// Positions returns the authoritative ordered position table.
// The returned slice must not be modified.
func Positions() []Position {
	return positions
}

// ByID returns the position with the given id, or nil if not found.
func ByID(id string) *Position {
	for i := range positions {
		if positions[i].ID == id {
			return &positions[i]
		}
	}
	return nil
}

// Validate checks the position table for internal consistency: unique ids,
// coordinates on the canvas, and every preset id resolvable.
func Validate() error {
	seen := make(map[string]bool, len(positions))
	for _, p := range positions {
		if p.ID == "" {
			return fmt.Errorf("position %q has empty id", p.DisplayName)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate position id %q", p.ID)
		}
		seen[p.ID] = true
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			return fmt.Errorf("position %q outside canvas: (%.1f, %.1f)", p.ID, p.X, p.Y)
		}
	}

	for _, name := range PresetNames() {
		preset := GetPreset(name)
		for _, id := range preset.PositionIDs {
			if ByID(id) == nil {
				return fmt.Errorf("preset %q references unknown position %q", name, id)
			}
		}
	}
	return nil
}
