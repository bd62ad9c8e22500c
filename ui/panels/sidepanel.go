// Package panels provides the side panel with preset, fielder and saved
// setup controls.
package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"field-setter/internal/app"
	"field-setter/internal/catalog"
	"field-setter/internal/store"
)

// SidePanel holds the preset picker, the fielder list with rename, the
// saved setups and the coverage readout.
type SidePanel struct {
	state *app.State
	win   fyne.Window

	presetSelect  *widget.Select
	fielderList   *widget.List
	renameEntry   *widget.Entry
	coverageLabel *widget.Label

	setupName  *widget.Entry
	setupsList *widget.List
	records    []store.Record
	setupIdx   int // selected row, -1 when none

	container fyne.CanvasObject
}

// NewSidePanel creates the side panel bound to the application state.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{state: state, setupIdx: -1}
	sp.buildFieldTab()
	sp.buildSetupsTab()

	tabs := container.NewAppTabs(
		container.NewTabItem("Field", sp.fieldTab()),
		container.NewTabItem("Setups", sp.setupsTab()),
	)
	sp.container = tabs

	sp.subscribe()
	sp.refreshCoverage()
	return sp
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(win fyne.Window) {
	sp.win = win
}

// Container returns the panel for embedding in layouts.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

func (sp *SidePanel) buildFieldTab() {
	sp.presetSelect = widget.NewSelect(catalog.PresetNames(), func(name string) {
		if name == sp.state.PresetName() {
			return
		}
		if err := sp.state.ApplyPreset(name); err != nil {
			sp.showError(err)
		}
	})
	sp.presetSelect.SetSelected(sp.state.PresetName())

	sp.fielderList = widget.NewList(
		func() int { return len(sp.state.Scene().Tokens) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			tokens := sp.state.Scene().Tokens
			if i >= len(tokens) {
				return
			}
			t := tokens[i]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s  (%s)", t.DisplayName, t.Category))
		},
	)
	sp.fielderList.OnSelected = func(i widget.ListItemID) {
		tokens := sp.state.Scene().Tokens
		if i < len(tokens) {
			sp.state.Select(tokens[i].ID)
		}
	}

	sp.renameEntry = widget.NewEntry()
	sp.renameEntry.SetPlaceHolder("New name…")

	sp.coverageLabel = widget.NewLabel("")
	sp.coverageLabel.Wrapping = fyne.TextWrapWord
}

func (sp *SidePanel) fieldTab() fyne.CanvasObject {
	renameBtn := widget.NewButton("Rename", func() {
		id := sp.state.SelectedID()
		if id == "" {
			sp.showError(fmt.Errorf("select a fielder first"))
			return
		}
		if err := sp.state.RenameToken(id, sp.renameEntry.Text); err != nil {
			sp.showError(err)
			return
		}
		sp.renameEntry.SetText("")
	})

	top := container.NewVBox(
		widget.NewLabel("Preset"),
		sp.presetSelect,
	)
	bottom := container.NewVBox(
		container.NewBorder(nil, nil, nil, renameBtn, sp.renameEntry),
		widget.NewSeparator(),
		sp.coverageLabel,
	)
	return container.NewBorder(top, bottom, nil, nil, sp.fielderList)
}

func (sp *SidePanel) buildSetupsTab() {
	sp.records = sp.state.ListSetups()

	sp.setupName = widget.NewEntry()
	sp.setupName.SetPlaceHolder("Setup name…")

	sp.setupsList = widget.NewList(
		func() int { return len(sp.records) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(sp.records) {
				return
			}
			r := sp.records[i]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s  %s", r.Name, r.CreatedAt.Local().Format("2006-01-02 15:04")))
		},
	)
	sp.setupsList.OnSelected = func(i widget.ListItemID) {
		sp.setupIdx = i
	}
	sp.setupsList.OnUnselected = func(widget.ListItemID) {
		sp.setupIdx = -1
	}
}

func (sp *SidePanel) setupsTab() fyne.CanvasObject {
	saveBtn := widget.NewButton("Save", func() {
		name := sp.setupName.Text
		if name == "" {
			sp.showError(fmt.Errorf("setup name is required"))
			return
		}
		if _, err := sp.state.SaveSetup(name); err != nil {
			sp.showError(err)
			return
		}
		sp.setupName.SetText("")
	})
	loadBtn := widget.NewButton("Load", func() {
		if rec, ok := sp.selectedRecord(); ok {
			if err := sp.state.LoadSetup(rec.ID); err != nil {
				sp.showError(err)
			}
		}
	})
	deleteBtn := widget.NewButton("Delete", func() {
		rec, ok := sp.selectedRecord()
		if !ok {
			return
		}
		if err := sp.state.DeleteSetup(rec.ID); err != nil {
			sp.showError(err)
		}
	})

	top := container.NewBorder(nil, nil, nil, saveBtn, sp.setupName)
	bottom := container.NewHBox(loadBtn, deleteBtn)
	return container.NewBorder(top, bottom, nil, nil, sp.setupsList)
}

func (sp *SidePanel) selectedRecord() (store.Record, bool) {
	if sp.setupIdx < 0 || sp.setupIdx >= len(sp.records) {
		return store.Record{}, false
	}
	return sp.records[sp.setupIdx], true
}

func (sp *SidePanel) subscribe() {
	refresh := func(interface{}) {
		sp.fielderList.Refresh()
		sp.refreshCoverage()
	}
	sp.state.On(app.EventSceneReplaced, func(data interface{}) {
		sp.presetSelect.Selected = sp.state.PresetName()
		sp.presetSelect.Refresh()
		refresh(data)
	})
	sp.state.On(app.EventTokenMoved, refresh)
	sp.state.On(app.EventTokenRenamed, refresh)
	sp.state.On(app.EventMirrorToggled, refresh)

	sp.state.On(app.EventSetupsChanged, func(interface{}) {
		sp.records = sp.state.ListSetups()
		sp.setupIdx = -1
		sp.setupsList.UnselectAll()
		sp.setupsList.Refresh()
	})

	sp.state.On(app.EventSelectionChanged, func(data interface{}) {
		id, _ := data.(string)
		if id == "" {
			sp.fielderList.UnselectAll()
			return
		}
		for i, t := range sp.state.Scene().Tokens {
			if t.ID == id {
				sp.fielderList.Select(i)
				return
			}
		}
	})
}

func (sp *SidePanel) refreshCoverage() {
	cov := sp.state.Coverage()
	if cov.FielderCount < 2 {
		sp.coverageLabel.SetText("Coverage: too few fielders out")
		return
	}
	sp.coverageLabel.SetText(fmt.Sprintf(
		"Largest gap %.0f° — %s side, %s (spacing %.0f° ± %.0f°)",
		cov.LargestGap, cov.GapZone.Side, cov.GapZone.Band,
		cov.MeanSpacing, cov.SpacingStdDev,
	))
}

func (sp *SidePanel) showError(err error) {
	if sp.win != nil {
		dialog.ShowError(err, sp.win)
	}
}
