// Field Setter is a cricket field placement planner. Drag fielders around
// a schematic ground and the app names the position under each token.
package main

import (
	"log"
	"os"
	"path/filepath"

	fyneapp "fyne.io/fyne/v2/app"

	"field-setter/internal/app"
	"field-setter/internal/catalog"
	"field-setter/internal/store"
	"field-setter/ui/mainwindow"
	"field-setter/ui/prefs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := catalog.Validate(); err != nil {
		log.Fatalf("position catalog: %v", err)
	}

	state := app.NewState(store.New(store.DefaultPath()))

	// User presets live next to the setup store.
	if dir, err := os.UserConfigDir(); err == nil {
		presetPath := filepath.Join(dir, "field-setter", "presets.yaml")
		if n, err := state.LoadCustomPresets(presetPath); err != nil {
			log.Printf("custom presets: %v", err)
		} else if n > 0 {
			log.Printf("loaded %d custom presets from %s", n, presetPath)
		}
	}

	fyneApp := fyneapp.NewWithID("field-setter")
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, state, appPrefs)
	win.SetOnClosed(win.SavePreferences)
	win.ShowAndRun()
}
