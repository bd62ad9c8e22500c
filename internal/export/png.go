package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"field-setter/internal/scene"
)

// supersample renders at twice the target size and downscales, which
// smooths the hand-drawn circle edges.
const supersample = 2

// WritePNG renders the scene at the given square size and writes it to
// path. A missing .png extension is appended.
func WritePNG(sc *scene.Scene, path string, size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("export: invalid size %d", size)
	}
	if filepath.Ext(path) == "" || !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}

	big := Render(sc, Options{
		Width:      size * supersample,
		Height:     size * supersample,
		ShowLabels: true,
	})

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return "", fmt.Errorf("export: encode: %w", err)
	}
	return path, nil
}
