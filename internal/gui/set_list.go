package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// buildSetList creates the set list surface: a toolbar with share and add
// buttons above the list of set names in insertion order.
func (a *Application) buildSetList() fyne.CanvasObject {
	store := a.machine.Store()

	a.setList = widget.NewList(
		func() int { return store.Len() },
		func() fyne.CanvasObject {
			label := widget.NewLabel("Flashcard set")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			set, ok := store.At(id)
			if !ok {
				return
			}
			item.(*widget.Label).SetText(set.Name())
		},
	)
	a.setList.OnSelected = a.onSelectSet

	a.listEmpty = widget.NewLabel("No flashcard sets yet")
	a.listEmpty.Alignment = fyne.TextAlignCenter

	a.shareBtn = ttwidget.NewButtonWithIcon("", theme.MailForwardIcon(), a.onShare)
	a.addSetBtn = ttwidget.NewButtonWithIcon("", theme.ContentAddIcon(), a.onAddSet)

	a.listHeader = widget.NewLabelWithStyle("Flashcard Sets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	toolbar := container.NewBorder(nil, nil, a.shareBtn, a.addSetBtn, a.listHeader)

	return container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		nil, nil, nil,
		container.NewStack(a.setList, container.NewCenter(a.listEmpty)),
	)
}

func (a *Application) refreshSetList() {
	if a.machine.Store().Len() == 0 {
		a.listEmpty.Show()
	} else {
		a.listEmpty.Hide()
	}
	a.setList.Refresh()
}

// onSelectSet opens the tapped set. The selection is cleared right away so
// the same row can be tapped again after coming back.
func (a *Application) onSelectSet(id widget.ListItemID) {
	a.setList.UnselectAll()

	set, ok := a.machine.Store().At(id)
	if !ok {
		return
	}
	if err := a.machine.SelectSet(set.ID()); err != nil {
		a.showError(err)
	}
}

func (a *Application) onAddSet() {
	a.machine.OpenAddSet()
}
