// Package app provides application state, lifecycle and events.
package app

import (
	"fmt"
	"sync"

	"field-setter/internal/catalog"
	"field-setter/internal/export"
	"field-setter/internal/field"
	"field-setter/internal/history"
	"field-setter/internal/scene"
	"field-setter/internal/store"
	"field-setter/pkg/geometry"
)

// EventType identifies different application events.
type EventType int

const (
	EventSceneReplaced EventType = iota // preset applied, setup loaded, undo/redo
	EventTokenMoved
	EventTokenRenamed
	EventMirrorToggled
	EventSelectionChanged
	EventSetupsChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the current scene, the drag in
// progress, undo history, selection and the saved-setup store. All
// mutations happen on the UI event loop; the mutex guards listener
// registration and incidental cross-goroutine reads.
type State struct {
	mu sync.RWMutex

	scene      *scene.Scene
	hist       *history.History
	setups     *store.Store
	drag       *scene.DragSession
	selectedID string
	presetName string

	listeners map[EventType][]EventListener
}

// NewState creates application state with the standard preset applied.
func NewState(setups *store.Store) *State {
	initial := scene.Instantiate("standard")
	return &State{
		scene:      initial,
		hist:       history.New(initial),
		setups:     setups,
		presetName: "standard",
		listeners:  make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Scene returns the current scene snapshot.
func (s *State) Scene() *scene.Scene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scene
}

// PresetName returns the name of the most recently applied preset.
func (s *State) PresetName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presetName
}

// SelectedID returns the id of the selected token, or "".
func (s *State) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// ApplyPreset replaces the scene wholesale from a preset. An unknown
// preset is an error and leaves the current scene in place.
func (s *State) ApplyPreset(name string) error {
	next := scene.Instantiate(name)
	if len(next.Tokens) == 0 {
		return fmt.Errorf("unknown preset %q", name)
	}

	s.mu.Lock()
	s.scene = next
	s.presetName = name
	s.selectedID = ""
	s.hist.Push(next)
	s.mu.Unlock()

	s.Emit(EventSceneReplaced, next)
	s.Emit(EventSelectionChanged, "")
	s.Emit(EventModified, true)
	return nil
}

// Select marks a token as selected.
func (s *State) Select(tokenID string) {
	s.mu.Lock()
	s.selectedID = tokenID
	s.mu.Unlock()
	s.Emit(EventSelectionChanged, tokenID)
}

// ClearSelection clears the selection. Not recorded in history.
func (s *State) ClearSelection() {
	s.Select("")
}

// BeginDrag starts a drag gesture on a token. Returns false if the token
// does not exist.
func (s *State) BeginDrag(tokenID string) bool {
	s.mu.Lock()
	d := scene.StartDrag(s.scene, tokenID)
	if d == nil {
		s.mu.Unlock()
		return false
	}
	s.drag = d
	s.selectedID = tokenID
	s.mu.Unlock()

	s.Emit(EventSelectionChanged, tokenID)
	return true
}

// DragMove updates the dragged token's transient position. Intermediate
// moves render but are not committed to history.
func (s *State) DragMove(x, y float64) {
	s.mu.Lock()
	if s.drag == nil {
		s.mu.Unlock()
		return
	}
	s.scene = s.drag.Move(x, y)
	s.mu.Unlock()

	s.Emit(EventTokenMoved, nil)
}

// EndDrag finalizes the gesture, committing one history snapshot when the
// token actually moved. Pointer release outside the canvas still ends up
// here with the last valid clamped coordinate.
func (s *State) EndDrag() {
	s.mu.Lock()
	if s.drag == nil {
		s.mu.Unlock()
		return
	}
	final, moved := s.drag.End()
	s.drag = nil
	s.scene = final
	if moved {
		s.hist.Push(final)
	}
	s.mu.Unlock()

	if moved {
		s.Emit(EventTokenMoved, nil)
		s.Emit(EventModified, true)
	}
}

// RenameToken renames a token; empty names are rejected.
func (s *State) RenameToken(tokenID, name string) error {
	s.mu.Lock()
	next, err := scene.RenameToken(s.scene, tokenID, name)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.scene = next
	s.hist.Push(next)
	s.mu.Unlock()

	s.Emit(EventTokenRenamed, tokenID)
	s.Emit(EventModified, true)
	return nil
}

// ToggleMirror flips the field orientation. Stored coordinates are left in
// the canonical frame.
func (s *State) ToggleMirror() {
	s.mu.Lock()
	next := scene.ToggleMirror(s.scene)
	s.scene = next
	s.hist.Push(next)
	s.mu.Unlock()

	s.Emit(EventMirrorToggled, next.Mirrored)
	s.Emit(EventModified, true)
}

// Undo steps back one committed snapshot.
func (s *State) Undo() bool {
	s.mu.Lock()
	prev, ok := s.hist.Undo()
	if ok {
		s.scene = prev
	}
	s.mu.Unlock()

	if ok {
		s.Emit(EventSceneReplaced, prev)
	}
	return ok
}

// Redo steps forward one snapshot.
func (s *State) Redo() bool {
	s.mu.Lock()
	next, ok := s.hist.Redo()
	if ok {
		s.scene = next
	}
	s.mu.Unlock()

	if ok {
		s.Emit(EventSceneReplaced, next)
	}
	return ok
}

// SaveSetup stores the current scene under the given name.
func (s *State) SaveSetup(name string) (store.Record, error) {
	rec, err := s.setups.Create(name, s.Scene())
	if err != nil {
		return store.Record{}, err
	}
	s.Emit(EventSetupsChanged, nil)
	return rec, nil
}

// ListSetups returns all saved setups.
func (s *State) ListSetups() []store.Record {
	return s.setups.List()
}

// LoadSetup replaces the scene from a saved record.
func (s *State) LoadSetup(id string) error {
	rec, ok := s.setups.Get(id)
	if !ok {
		return fmt.Errorf("no saved setup %q", id)
	}

	s.mu.Lock()
	s.scene = rec.Scene
	s.selectedID = ""
	s.hist.Push(rec.Scene)
	s.mu.Unlock()

	s.Emit(EventSceneReplaced, rec.Scene)
	s.Emit(EventSelectionChanged, "")
	return nil
}

// DeleteSetup removes a saved record.
func (s *State) DeleteSetup(id string) error {
	if err := s.setups.Delete(id); err != nil {
		return err
	}
	s.Emit(EventSetupsChanged, nil)
	return nil
}

// Coverage computes the angular-gap report for the current scene,
// excluding the fixed keeper and bowler roles.
func (s *State) Coverage() field.Coverage {
	sc := s.Scene()
	points := make([]geometry.Point2D, 0, len(sc.Tokens))
	for _, t := range sc.Tokens {
		if t.Active && !t.Fixed() {
			points = append(points, t.Point())
		}
	}
	return field.AnalyzeCoverage(points)
}

// ExportPNG writes the current scene to a PNG file.
func (s *State) ExportPNG(path string, size int) (string, error) {
	return export.WritePNG(s.Scene(), path, size)
}

// Detect exposes position detection for the UI status bar.
func (s *State) Detect(x, y float64) field.Result {
	return field.Detect(x, y, s.Scene().Mirrored)
}

// LoadCustomPresets registers user presets from the given YAML file.
func (s *State) LoadCustomPresets(path string) (int, error) {
	return catalog.LoadCustomPresets(path)
}
