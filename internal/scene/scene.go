// Package scene holds the mutable set of placed fielder tokens and the
// operations that transform it. Operations are pure: they return a new
// Scene and never modify the input, so a history collaborator can retain
// snapshots directly. Tokens that an operation does not touch keep their
// pointer identity for cheap change detection by the view layer.
package scene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"field-setter/internal/catalog"
	"field-setter/internal/field"
	"field-setter/pkg/geometry"
)

// Coordinate margin keeping tokens clear of the canvas edge.
const (
	MinCoord = 3.0
	MaxCoord = 97.0
)

// Token is a user-manipulable placement of a role on the canvas. It is
// seeded from a catalog position with copy semantics and may diverge from
// it through drags and renames. Stored coordinates are always in the
// canonical, unmirrored frame.
type Token struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"display_name"`
	ShortLabel  string           `json:"short_label"`
	X           float64          `json:"x"`
	Y           float64          `json:"y"`
	Category    catalog.Category `json:"category"`
	Active      bool             `json:"active"`
}

// Point returns the token's stored coordinate.
func (t *Token) Point() geometry.Point2D {
	return geometry.Point2D{X: t.X, Y: t.Y}
}

// Fixed reports whether the token holds a fixed role (keeper or bowler).
func (t *Token) Fixed() bool {
	return t.Category == catalog.CategoryKeeper || t.Category == catalog.CategoryBowler
}

// Scene is an ordered sequence of tokens plus the orientation flag. The
// mirror flag affects rendering and detection only; it is never baked into
// stored coordinates.
type Scene struct {
	Tokens   []*Token `json:"tokens"`
	Mirrored bool     `json:"mirrored"`
}

// Instantiate builds a scene from a preset, copying each referenced catalog
// position into a fresh token. An unknown preset yields an empty scene;
// callers must treat that as "preset not found".
func Instantiate(presetID string) *Scene {
	preset := catalog.GetPreset(presetID)
	if preset == nil {
		return &Scene{}
	}

	s := &Scene{Tokens: make([]*Token, 0, len(preset.PositionIDs))}
	for _, id := range preset.PositionIDs {
		pos := catalog.ByID(id)
		if pos == nil {
			continue
		}
		s.Tokens = append(s.Tokens, &Token{
			ID:          uuid.NewString(),
			DisplayName: pos.DisplayName,
			ShortLabel:  pos.ShortLabel,
			X:           geometry.Clamp(pos.X, MinCoord, MaxCoord),
			Y:           geometry.Clamp(pos.Y, MinCoord, MaxCoord),
			Category:    pos.Category,
			Active:      true,
		})
	}
	return s
}

// Find returns the token with the given id, or nil.
func (s *Scene) Find(tokenID string) *Token {
	for _, t := range s.Tokens {
		if t.ID == tokenID {
			return t
		}
	}
	return nil
}

// replace returns a copy of the scene with one token swapped out. All
// other token pointers are shared with the input scene.
func (s *Scene) replace(tokenID string, nt *Token) *Scene {
	out := &Scene{Tokens: make([]*Token, len(s.Tokens)), Mirrored: s.Mirrored}
	copy(out.Tokens, s.Tokens)
	for i, t := range out.Tokens {
		if t.ID == tokenID {
			out.Tokens[i] = nt
			break
		}
	}
	return out
}

// MoveToken places a token at a raw display-space coordinate. The
// coordinate is clamped to the canvas margin, un-mirrored into the
// canonical frame when the scene is flipped, and run through position
// detection to re-derive the token's name, label and category.
// An unknown token id leaves the scene unchanged.
func MoveToken(s *Scene, tokenID string, rawX, rawY float64) *Scene {
	t := s.Find(tokenID)
	if t == nil {
		return s
	}

	x := geometry.Clamp(rawX, MinCoord, MaxCoord)
	y := geometry.Clamp(rawY, MinCoord, MaxCoord)
	if s.Mirrored {
		x = 100 - x
	}

	nt := *t
	nt.X = x
	nt.Y = y
	if !t.Fixed() {
		res := field.Detect(x, y, false)
		nt.DisplayName = res.DisplayName
		nt.ShortLabel = res.ShortLabel
		nt.Category = res.Category
	}
	return s.replace(tokenID, &nt)
}

// RenameToken overwrites a token's display name and short label. The name
// is trimmed; an empty or whitespace-only name is rejected and the prior
// name kept. Coordinates and category are untouched.
func RenameToken(s *Scene, tokenID, newName string) (*Scene, error) {
	name := strings.TrimSpace(newName)
	if name == "" {
		return s, fmt.Errorf("rename: empty name")
	}
	t := s.Find(tokenID)
	if t == nil {
		return s, fmt.Errorf("rename: no token %q", tokenID)
	}

	nt := *t
	nt.DisplayName = name
	nt.ShortLabel = name
	return s.replace(tokenID, &nt), nil
}

// ToggleMirror flips the orientation flag. Stored coordinates stay in the
// canonical frame; mirroring is applied at render and detection time only.
func ToggleMirror(s *Scene) *Scene {
	out := &Scene{Tokens: make([]*Token, len(s.Tokens)), Mirrored: !s.Mirrored}
	copy(out.Tokens, s.Tokens)
	return out
}

// DisplayPoint returns the token's coordinate in display space, applying
// the scene's mirror flag.
func (s *Scene) DisplayPoint(t *Token) geometry.Point2D {
	if s.Mirrored {
		return geometry.MirrorX(100).Apply(t.Point())
	}
	return t.Point()
}
