// Package export renders a scene to a raster image and writes PNG files.
// The same renderer backs the interactive canvas and the exported image,
// so what is exported is exactly what is on screen.
package export

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"field-setter/internal/catalog"
	"field-setter/internal/scene"
	"field-setter/pkg/geometry"
)

// Field drawing geometry in unit (0-100) space.
const (
	boundaryRadius = 48.0
	pitchHalfWidth = 3.0
	pitchTop       = 40.0
	pitchBottom    = 67.0
)

// TokenRadius is the drawn token disc radius in unit space; the canvas
// widget derives its pick radius from it.
const TokenRadius = 2.2

var (
	colBackground = color.RGBA{24, 60, 33, 255}
	colOutfield   = color.RGBA{46, 110, 58, 255}
	colInfield    = color.RGBA{56, 128, 68, 255}
	colLine       = color.RGBA{235, 235, 225, 255}
	colPitch      = color.RGBA{208, 180, 132, 255}
	colCrease     = color.RGBA{245, 245, 235, 255}
	colKeeper     = color.RGBA{250, 210, 60, 255}
	colBowler     = color.RGBA{220, 70, 60, 255}
	colFielder    = color.RGBA{245, 245, 245, 255}
	colOutline    = color.RGBA{20, 30, 22, 255}
	colSelected   = color.RGBA{90, 170, 250, 255}
	colLabel      = color.RGBA{240, 240, 235, 255}
)

// Options controls rendering.
type Options struct {
	Width      int
	Height     int
	SelectedID string // token to highlight, if any
	ShowLabels bool
}

// Render draws the scene into a fresh RGBA image. The unit canvas is
// mapped onto the shorter image dimension and centred; mirroring is
// applied here at render time, never to stored coordinates.
func Render(sc *scene.Scene, opts Options) *image.RGBA {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(out, out.Bounds(), colBackground)

	toPixel := UnitTransform(w, h)
	scale := toPixel.A // uniform

	center := toPixel.Apply(geometry.Point2D{X: 50, Y: 50})

	// Outfield inside the boundary rope, infield inside the circle.
	fillCircle(out, center, boundaryRadius*scale, colOutfield)
	fillCircle(out, center, 30*scale, colInfield)
	strokeCircle(out, center, boundaryRadius*scale, scale*0.4, colLine)
	strokeCircle(out, center, 30*scale, scale*0.18, colLine)

	drawPitch(out, toPixel)

	if sc == nil {
		return out
	}
	for _, t := range sc.Tokens {
		if !t.Active {
			continue
		}
		p := toPixel.Apply(sc.DisplayPoint(t))
		r := TokenRadius * scale

		if t.ID == opts.SelectedID {
			fillCircle(out, p, r*1.6, colSelected)
		}
		fillCircle(out, p, r*1.15, colOutline)
		fillCircle(out, p, r, tokenColor(t.Category))

		if opts.ShowLabels {
			drawLabel(out, t.ShortLabel, int(p.X), int(p.Y+r)+12)
		}
	}

	return out
}

// UnitTransform maps the 0-100 unit canvas onto an image of the given
// size, preserving aspect ratio and centring the field. The canvas widget
// inverts it to turn pointer positions back into unit coordinates.
func UnitTransform(w, h int) geometry.AffineTransform {
	side := float64(w)
	if float64(h) < side {
		side = float64(h)
	}
	scale := side / 100.0
	offX := (float64(w) - side) / 2
	offY := (float64(h) - side) / 2
	return geometry.Translation(offX, offY).Compose(geometry.Scaling(scale, scale))
}

func tokenColor(c catalog.Category) color.RGBA {
	switch c {
	case catalog.CategoryKeeper:
		return colKeeper
	case catalog.CategoryBowler:
		return colBowler
	default:
		return colFielder
	}
}

func drawPitch(out *image.RGBA, toPixel geometry.AffineTransform) {
	tl := toPixel.Apply(geometry.Point2D{X: 50 - pitchHalfWidth, Y: pitchTop})
	br := toPixel.Apply(geometry.Point2D{X: 50 + pitchHalfWidth, Y: pitchBottom})
	fillRect(out, image.Rect(int(tl.X), int(tl.Y), int(br.X), int(br.Y)), colPitch)

	// Creases at both ends.
	scale := toPixel.A
	for _, y := range []float64{pitchTop + 4, pitchBottom - 4} {
		a := toPixel.Apply(geometry.Point2D{X: 50 - pitchHalfWidth, Y: y})
		b := toPixel.Apply(geometry.Point2D{X: 50 + pitchHalfWidth, Y: y})
		fillRect(out, image.Rect(int(a.X), int(a.Y), int(b.X), int(a.Y+scale*0.3)+1), colCrease)
	}
}

// fillRect fills a rectangle clipped to the image bounds.
func fillRect(out *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Intersect(out.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out.SetRGBA(x, y, col)
		}
	}
}

// fillCircle draws a filled disc.
func fillCircle(out *image.RGBA, c geometry.Point2D, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	box := image.Rect(int(c.X-radius)-1, int(c.Y-radius)-1, int(c.X+radius)+2, int(c.Y+radius)+2)
	box = box.Intersect(out.Bounds())
	r2 := radius * radius
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := float64(x) + 0.5 - c.X
			dy := float64(y) + 0.5 - c.Y
			if dx*dx+dy*dy <= r2 {
				out.SetRGBA(x, y, col)
			}
		}
	}
}

// strokeCircle draws a circle outline of the given line width.
func strokeCircle(out *image.RGBA, c geometry.Point2D, radius, width float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	outer := radius + width/2
	inner := radius - width/2
	box := image.Rect(int(c.X-outer)-1, int(c.Y-outer)-1, int(c.X+outer)+2, int(c.Y+outer)+2)
	box = box.Intersect(out.Bounds())
	o2 := outer * outer
	i2 := inner * inner
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := float64(x) + 0.5 - c.X
			dy := float64(y) + 0.5 - c.Y
			d2 := dx*dx + dy*dy
			if d2 <= o2 && d2 >= i2 {
				out.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLabel draws text centred on x at baseline y.
func drawLabel(out *image.RGBA, text string, x, y int) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(colLabel),
		Face: face,
		Dot:  fixed.P(x-width/2, y),
	}
	d.DrawString(text)
}
