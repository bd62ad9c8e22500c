package scene

// DragSession models one pointer-drag gesture as discrete start/move/end
// events. Move events update only the dragged token; the committed flag
// lets the caller push exactly one history snapshot per completed gesture
// rather than one per intermediate move. Releasing the pointer outside the
// canvas still finalizes at the last valid clamped coordinate, so a token
// is never left in an uncommitted state.
type DragSession struct {
	tokenID string
	scene   *Scene
	moved   bool
	done    bool
}

// StartDrag begins a gesture on the given token. Returns nil if the token
// does not exist in the scene.
func StartDrag(s *Scene, tokenID string) *DragSession {
	if s.Find(tokenID) == nil {
		return nil
	}
	return &DragSession{tokenID: tokenID, scene: s}
}

// Move updates the dragged token's transient position and returns the
// scene to render. No history commit happens here.
func (d *DragSession) Move(rawX, rawY float64) *Scene {
	if d.done {
		return d.scene
	}
	d.scene = MoveToken(d.scene, d.tokenID, rawX, rawY)
	d.moved = true
	return d.scene
}

// End finalizes the gesture. It returns the final scene and whether the
// gesture changed anything; the caller commits one snapshot when it did.
// Calling End more than once is a no-op.
func (d *DragSession) End() (*Scene, bool) {
	if d.done {
		return d.scene, false
	}
	d.done = true
	return d.scene, d.moved
}

// TokenID returns the id of the token being dragged.
func (d *DragSession) TokenID() string {
	return d.tokenID
}
