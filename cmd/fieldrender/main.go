// Command fieldrender renders a field setup to a PNG file without the GUI.
// It can render a named preset or a setup saved from the app.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"field-setter/internal/catalog"
	"field-setter/internal/export"
	"field-setter/internal/scene"
	"field-setter/internal/store"
)

func main() {
	preset := flag.String("preset", "", "Preset name to render (see -list)")
	setup := flag.String("setup", "", "Saved setup name or id to render")
	out := flag.String("out", "field.png", "Output PNG path")
	size := flag.Int("size", 1024, "Output image size in pixels")
	mirror := flag.Bool("mirror", false, "Mirror for a left-handed striker")
	list := flag.Bool("list", false, "List available presets and saved setups")
	flag.Parse()

	if *list {
		fmt.Println("Presets:")
		for _, name := range catalog.PresetNames() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("Saved setups:")
		for _, rec := range store.New(store.DefaultPath()).List() {
			fmt.Printf("  %s  (%s)\n", rec.Name, rec.ID)
		}
		return
	}

	sc, err := resolveScene(*preset, *setup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *mirror {
		sc = scene.ToggleMirror(sc)
	}

	written, err := export.WritePNG(sc, *out, *size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, %d fielders)\n", written, *size, *size, len(sc.Tokens))
}

func resolveScene(preset, setup string) (*scene.Scene, error) {
	switch {
	case preset != "" && setup != "":
		return nil, fmt.Errorf("use either -preset or -setup, not both")
	case setup != "":
		setups := store.New(store.DefaultPath())
		if rec, ok := setups.Get(setup); ok {
			return rec.Scene, nil
		}
		for _, rec := range setups.List() {
			if strings.EqualFold(rec.Name, setup) {
				return rec.Scene, nil
			}
		}
		return nil, fmt.Errorf("no saved setup %q", setup)
	case preset != "":
		sc := scene.Instantiate(preset)
		if len(sc.Tokens) == 0 {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return sc, nil
	default:
		return scene.Instantiate("standard"), nil
	}
}
