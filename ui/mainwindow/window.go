// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"field-setter/internal/app"
	"field-setter/internal/catalog"
	"field-setter/internal/version"
	"field-setter/ui/canvas"
	"field-setter/ui/panels"
	"field-setter/ui/prefs"
)

const exportSize = 1024

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.FieldCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	showLabels bool
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Field Setter")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.restorePreferences()

	win.Resize(fyne.NewSize(960, 640))
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.showLabels = mw.prefs.Bool(prefs.KeyShowLabels, true)

	mw.canvas = canvas.NewFieldCanvas()
	mw.canvas.SetScene(mw.state.Scene())
	mw.canvas.SetShowLabels(mw.showLabels)

	mw.canvas.OnDragStart(func(tokenID string) {
		mw.state.BeginDrag(tokenID)
	})
	mw.canvas.OnDragMove(func(x, y float64) {
		mw.state.DragMove(x, y)
		res := mw.state.Detect(x, y)
		mw.updateStatus(fmt.Sprintf("%s  (%s)", res.DisplayName, res.Category))
	})
	mw.canvas.OnDragEnd(func() {
		mw.state.EndDrag()
	})
	mw.canvas.OnTapToken(func(tokenID string) {
		mw.state.Select(tokenID)
	})
	mw.canvas.OnTapEmpty(func() {
		mw.state.ClearSelection()
	})

	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		mw.canvas,
	)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		split,
	)
	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Setup…", mw.onSaveSetup),
		fyne.NewMenuItem("Export PNG…", mw.onExportPNG),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mw.onUndo),
		fyne.NewMenuItem("Redo", mw.onRedo),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Mirror Field", mw.onToggleMirror),
		fyne.NewMenuItem("Toggle Labels", mw.onToggleLabels),
	)

	var presetItems []*fyne.MenuItem
	for _, name := range catalog.PresetNames() {
		name := name
		presetItems = append(presetItems, fyne.NewMenuItem(name, func() {
			if err := mw.state.ApplyPreset(name); err != nil {
				dialog.ShowError(err, mw.Window)
			}
		}))
	}
	presetsMenu := fyne.NewMenu("Presets", presetItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, presetsMenu, helpMenu))
}

// setupShortcuts registers the global key bindings: undo, redo, and escape
// to clear the selection.
func (mw *MainWindow) setupShortcuts() {
	c := mw.Canvas()

	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		mw.onUndo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		mw.onRedo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift}, func(fyne.Shortcut) {
		mw.onRedo()
	})

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mw.state.ClearSelection()
		}
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventSceneReplaced, func(interface{}) {
		mw.canvas.SetScene(mw.state.Scene())
		mw.updateStatus("Scene: " + mw.state.PresetName())
	})
	mw.state.On(app.EventTokenMoved, func(interface{}) {
		mw.canvas.SetScene(mw.state.Scene())
	})
	mw.state.On(app.EventTokenRenamed, func(interface{}) {
		mw.canvas.SetScene(mw.state.Scene())
	})
	mw.state.On(app.EventMirrorToggled, func(data interface{}) {
		mw.canvas.SetScene(mw.state.Scene())
		if mirrored, ok := data.(bool); ok {
			mw.prefs.SetBool(prefs.KeyMirrored, mirrored)
			if mirrored {
				mw.updateStatus("Mirrored for left-hander")
			} else {
				mw.updateStatus("Right-hand orientation")
			}
		}
	})
	mw.state.On(app.EventSelectionChanged, func(data interface{}) {
		id, _ := data.(string)
		mw.canvas.SetSelected(id)
	})
	mw.state.On(app.EventModified, func(interface{}) {
		mw.prefs.SetString(prefs.KeyLastPreset, mw.state.PresetName())
	})
}

// restorePreferences applies the last session's preset and orientation.
func (mw *MainWindow) restorePreferences() {
	if last := mw.prefs.String(prefs.KeyLastPreset, ""); last != "" && last != mw.state.PresetName() {
		if err := mw.state.ApplyPreset(last); err == nil {
			mw.updateStatus("Restored preset: " + last)
		}
	}
	if mw.prefs.Bool(prefs.KeyMirrored, false) != mw.state.Scene().Mirrored {
		mw.state.ToggleMirror()
	}
}

// SavePreferences flushes preferences to disk.
func (mw *MainWindow) SavePreferences() {
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Could not save preferences: " + err.Error())
	}
}

func (mw *MainWindow) onUndo() {
	if !mw.state.Undo() {
		mw.updateStatus("Nothing to undo")
	}
}

func (mw *MainWindow) onRedo() {
	if !mw.state.Redo() {
		mw.updateStatus("Nothing to redo")
	}
}

func (mw *MainWindow) onToggleMirror() {
	mw.state.ToggleMirror()
}

func (mw *MainWindow) onToggleLabels() {
	mw.showLabels = !mw.showLabels
	mw.canvas.SetShowLabels(mw.showLabels)
	mw.prefs.SetBool(prefs.KeyShowLabels, mw.showLabels)
}

func (mw *MainWindow) onSaveSetup() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("e.g. day one, second new ball")
	dialog.ShowForm("Save Setup", "Save", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", entry)},
		func(ok bool) {
			if !ok || entry.Text == "" {
				return
			}
			if _, err := mw.state.SaveSetup(entry.Text); err != nil {
				dialog.ShowError(err, mw.Window)
				return
			}
			mw.updateStatus("Saved setup: " + entry.Text)
		}, mw.Window)
}

func (mw *MainWindow) onExportPNG() {
	d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if uc == nil {
			return
		}
		path := uc.URI().Path()
		_ = uc.Close()

		written, err := mw.state.ExportPNG(path, exportSize)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.SetString(prefs.KeyLastExportDir, filepath.Dir(written))
		mw.updateStatus("Exported " + written)
	}, mw.Window)
	d.SetFileName("field.png")
	if dir := mw.prefs.String(prefs.KeyLastExportDir, ""); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("Field Setter",
		fmt.Sprintf("Field Setter v%s\nCricket field placement planner", version.Version),
		mw.Window)
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}
