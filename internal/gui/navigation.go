package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// buildDetail creates the set detail surface. It holds two bodies: the card
// browser and, for sets without cards, a placeholder with only the add
// button.
func (a *Application) buildDetail() fyne.CanvasObject {
	a.backBtn = ttwidget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.onBack)
	a.exportBtn = ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExportToAnki)

	a.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.titleLabel.Truncation = fyne.TextTruncateEllipsis

	header := container.NewBorder(nil, nil, a.backBtn, a.exportBtn, a.titleLabel)

	a.cardFace = NewCardFace(a.onFlip)
	a.positionLabel = widget.NewLabel("")
	a.positionLabel.Alignment = fyne.TextAlignCenter

	a.prevBtn = ttwidget.NewButtonWithIcon("Previous", theme.NavigateBackIcon(), a.onPrevCard)
	a.nextBtn = ttwidget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), a.onNextCard)
	a.nextBtn.IconPlacement = widget.ButtonIconTrailingText
	a.addCardBtn = ttwidget.NewButtonWithIcon("Add Flashcard", theme.ContentAddIcon(), a.onAddCard)
	a.addCardBtn.Importance = widget.SuccessImportance

	controls := container.NewVBox(
		container.NewHBox(a.prevBtn, layout.NewSpacer(), a.positionLabel, layout.NewSpacer(), a.nextBtn),
		container.NewCenter(a.addCardBtn),
	)
	a.browser = container.NewBorder(nil, controls, nil, nil, container.NewPadded(a.cardFace))

	emptyLabel := widget.NewLabel("No flashcards available")
	emptyLabel.Alignment = fyne.TextAlignCenter
	a.emptyAddBtn = widget.NewButtonWithIcon("Add Flashcard", theme.ContentAddIcon(), a.onAddCard)
	a.emptyAddBtn.Importance = widget.SuccessImportance
	a.emptyView = container.NewCenter(container.NewVBox(emptyLabel, a.emptyAddBtn))

	return container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		container.NewStack(a.browser, a.emptyView),
	)
}

// refreshDetail redraws the detail surface from the machine.
func (a *Application) refreshDetail() {
	set, ok := a.machine.CurrentSet()
	if !ok {
		return
	}
	a.titleLabel.SetText(set.Name())

	face, text, ok := a.machine.Face()
	if !ok {
		a.browser.Hide()
		a.emptyView.Show()
		a.exportBtn.Disable()
		return
	}

	a.emptyView.Hide()
	a.browser.Show()
	a.exportBtn.Enable()
	a.cardFace.SetFace(face, text)

	pos, total := a.machine.Position()
	a.positionLabel.SetText(fmt.Sprintf("%d / %d", pos, total))

	a.updateNavigation()
}

// updateNavigation updates the navigation button states
func (a *Application) updateNavigation() {
	if a.machine.CanPrev() {
		a.prevBtn.Enable()
	} else {
		a.prevBtn.Disable()
	}
	if a.machine.CanNext() {
		a.nextBtn.Enable()
	} else {
		a.nextBtn.Disable()
	}
}

// onPrevCard shows the previous card
func (a *Application) onPrevCard() {
	a.machine.Prev()
}

// onNextCard shows the next card
func (a *Application) onNextCard() {
	a.machine.Next()
}

func (a *Application) onFlip() {
	a.machine.Flip()
}

func (a *Application) onBack() {
	a.machine.Back()
}

func (a *Application) onAddCard() {
	a.machine.OpenAddCard()
}
