// Package canvas provides the interactive field canvas widget: it renders
// the current scene and turns pointer gestures into drag events in the
// 0-100 unit coordinate space.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"field-setter/internal/export"
	"field-setter/internal/scene"
	"field-setter/pkg/geometry"
)

// hitRadiusPx is the minimum pick radius around a token, in pixels.
const hitRadiusPx = 10.0

// FieldCanvas displays the field and the placed tokens. Pointer and touch
// input are normalized here into unit-space {x, y} events before any model
// code sees them.
type FieldCanvas struct {
	widget.BaseWidget

	raster *fynecanvas.Raster

	sc         *scene.Scene
	selectedID string
	showLabels bool

	dragging bool

	// Callbacks, in unit coordinates.
	onDragStart func(tokenID string)
	onDragMove  func(x, y float64)
	onDragEnd   func()
	onTapToken  func(tokenID string)
	onTapEmpty  func()
}

// NewFieldCanvas creates the canvas widget.
func NewFieldCanvas() *FieldCanvas {
	fc := &FieldCanvas{showLabels: true}
	fc.raster = fynecanvas.NewRaster(fc.draw)
	fc.raster.SetMinSize(fyne.NewSize(420, 420))
	fc.ExtendBaseWidget(fc)
	return fc
}

// SetScene sets the scene to display.
func (fc *FieldCanvas) SetScene(sc *scene.Scene) {
	fc.sc = sc
	fc.Refresh()
}

// SetSelected highlights a token by id ("" clears the highlight).
func (fc *FieldCanvas) SetSelected(tokenID string) {
	fc.selectedID = tokenID
	fc.Refresh()
}

// SetShowLabels toggles the short labels under each token.
func (fc *FieldCanvas) SetShowLabels(show bool) {
	fc.showLabels = show
	fc.Refresh()
}

// OnDragStart sets the callback fired when a drag picks up a token.
func (fc *FieldCanvas) OnDragStart(cb func(tokenID string)) { fc.onDragStart = cb }

// OnDragMove sets the callback fired for every drag move, in unit coords.
func (fc *FieldCanvas) OnDragMove(cb func(x, y float64)) { fc.onDragMove = cb }

// OnDragEnd sets the callback fired when the pointer is released. It fires
// even when the release happens outside the canvas bounds, so the gesture
// always finalizes.
func (fc *FieldCanvas) OnDragEnd(cb func()) { fc.onDragEnd = cb }

// OnTapToken sets the callback fired when a token is clicked.
func (fc *FieldCanvas) OnTapToken(cb func(tokenID string)) { fc.onTapToken = cb }

// OnTapEmpty sets the callback fired when empty field is clicked.
func (fc *FieldCanvas) OnTapEmpty(cb func()) { fc.onTapEmpty = cb }

// Refresh redraws the canvas.
func (fc *FieldCanvas) Refresh() {
	if fc.raster != nil {
		fc.raster.Refresh()
	}
	fc.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (fc *FieldCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(fc.raster)
}

// Snapshot renders the canvas contents at the current widget size, for
// handing to the export path.
func (fc *FieldCanvas) Snapshot() *image.RGBA {
	size := fc.Size()
	return export.Render(fc.sc, export.Options{
		Width:      int(size.Width),
		Height:     int(size.Height),
		SelectedID: fc.selectedID,
		ShowLabels: fc.showLabels,
	})
}

// draw is the raster drawing function.
func (fc *FieldCanvas) draw(w, h int) image.Image {
	return export.Render(fc.sc, export.Options{
		Width:      w,
		Height:     h,
		SelectedID: fc.selectedID,
		ShowLabels: fc.showLabels,
	})
}

// Dragged implements fyne.Draggable. The first event of a gesture
// hit-tests the gesture origin; subsequent events move the picked token.
func (fc *FieldCanvas) Dragged(ev *fyne.DragEvent) {
	if !fc.dragging {
		start := fyne.NewPos(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY)
		tokenID := fc.hitTest(start)
		if tokenID == "" {
			return
		}
		fc.dragging = true
		if fc.onDragStart != nil {
			fc.onDragStart(tokenID)
		}
	}

	p := fc.toUnit(ev.Position)
	if fc.onDragMove != nil {
		fc.onDragMove(p.X, p.Y)
	}
}

// DragEnd implements fyne.Draggable.
func (fc *FieldCanvas) DragEnd() {
	if !fc.dragging {
		return
	}
	fc.dragging = false
	if fc.onDragEnd != nil {
		fc.onDragEnd()
	}
}

// Tapped implements fyne.Tappable.
func (fc *FieldCanvas) Tapped(ev *fyne.PointEvent) {
	tokenID := fc.hitTest(ev.Position)
	if tokenID == "" {
		if fc.onTapEmpty != nil {
			fc.onTapEmpty()
		}
		return
	}
	if fc.onTapToken != nil {
		fc.onTapToken(tokenID)
	}
}

// toUnit converts a widget position to unit coordinates.
func (fc *FieldCanvas) toUnit(pos fyne.Position) geometry.Point2D {
	size := fc.Size()
	toPixel := export.UnitTransform(int(size.Width), int(size.Height))
	inv, ok := toPixel.Inverse()
	if !ok {
		return geometry.Point2D{X: 50, Y: 50}
	}
	return inv.Apply(geometry.Point2D{X: float64(pos.X), Y: float64(pos.Y)})
}

// hitTest returns the id of the topmost token at a widget position, or "".
func (fc *FieldCanvas) hitTest(pos fyne.Position) string {
	if fc.sc == nil {
		return ""
	}
	size := fc.Size()
	toPixel := export.UnitTransform(int(size.Width), int(size.Height))

	radius := export.TokenRadius*toPixel.A + 2
	if radius < hitRadiusPx {
		radius = hitRadiusPx
	}
	click := geometry.Point2D{X: float64(pos.X), Y: float64(pos.Y)}

	// Last drawn is topmost.
	for i := len(fc.sc.Tokens) - 1; i >= 0; i-- {
		t := fc.sc.Tokens[i]
		if !t.Active {
			continue
		}
		p := toPixel.Apply(fc.sc.DisplayPoint(t))
		if p.Distance(click) <= radius {
			return t.ID
		}
	}
	return ""
}
