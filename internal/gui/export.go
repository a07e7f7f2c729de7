package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/flashcards/internal/anki"
)

// onExportToAnki asks for a format and directory and exports the current set
func (a *Application) onExportToAnki() {
	set, ok := a.machine.CurrentSet()
	if !ok || set.IsEmpty() {
		return
	}

	formatOptions := []string{"APKG (Recommended)", "CSV"}
	formatSelect := widget.NewSelect(formatOptions, nil)
	if a.config.ExportFormat == anki.FormatCSV {
		formatSelect.SetSelected(formatOptions[1])
	} else {
		formatSelect.SetSelected(formatOptions[0])
	}

	selectedDir := a.config.ExportDir
	dirLabel := widget.NewLabel(selectedDir)
	dirLabel.Truncation = fyne.TextTruncateEllipsis

	dirButton := widget.NewButton("Browse...", func() {
		folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			selectedDir = dir.Path()
			dirLabel.SetText(selectedDir)
		}, a.window)

		if uri, err := storage.ParseURI("file://" + selectedDir); err == nil {
			if listableURI, err := storage.ListerForURI(uri); err == nil {
				folderDialog.SetLocation(listableURI)
			}
		}

		folderDialog.Show()
	})

	content := container.NewVBox(
		widget.NewLabel(fmt.Sprintf("Export %q (%d cards)", set.Name(), set.Len())),
		widget.NewSeparator(),
		widget.NewLabel("Export Format:"),
		formatSelect,
		widget.NewLabel("Export Directory:"),
		container.NewBorder(nil, nil, nil, dirButton, dirLabel),
	)

	exportDialog := dialog.NewCustomConfirm("Export to Anki", "Export", "Cancel", content, func(export bool) {
		if !export {
			return
		}

		format := anki.FormatAPKG
		if strings.HasPrefix(formatSelect.Selected, "CSV") {
			format = anki.FormatCSV
		}

		path, err := anki.ExportSetToDir(set, selectedDir, format)
		if err != nil {
			a.showError(fmt.Errorf("Export failed: %w", err))
			return
		}

		a.config.ExportDir = selectedDir
		a.config.ExportFormat = format
		a.logger.Info("exported set", "set", set.Name(), "cards", set.Len(), "path", path)
		a.updateStatus(fmt.Sprintf("Exported %d cards to %s", set.Len(), path))
	}, a.window)

	exportDialog.Resize(fyne.NewSize(a.config.Width*0.9, 300))
	exportDialog.Show()
}
