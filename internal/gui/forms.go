package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showAddSetForm presents the add-set form. The confirm button stays
// disabled until the name is non-empty.
func (a *Application) showAddSetForm() {
	if a.formDialog != nil {
		return
	}

	a.nameEntry = NewCustomEntry()
	a.nameEntry.SetPlaceHolder("Set Name")
	a.nameEntry.Validator = requiredValidator
	a.nameEntry.OnChanged = a.machine.SetNameInput
	a.nameEntry.SetOnEscape(func() { a.machine.Cancel() })

	items := []*widget.FormItem{
		widget.NewFormItem("Name", a.nameEntry),
	}
	items[0].HintText = "New Flashcard Set"

	a.openForm("Add Flashcard Set", items, func() error {
		_, err := a.machine.SubmitSet()
		return err
	}, a.nameEntry)
}

// showAddCardForm presents the add-card form over the detail surface.
func (a *Application) showAddCardForm() {
	if a.formDialog != nil {
		return
	}

	a.termEntry = NewCustomEntry()
	a.termEntry.SetPlaceHolder("Term")
	a.termEntry.Validator = requiredValidator
	a.termEntry.OnChanged = a.machine.SetTermInput
	a.termEntry.SetOnEscape(func() { a.machine.Cancel() })

	a.definitionEntry = NewCustomMultiLineEntry()
	a.definitionEntry.SetPlaceHolder("Definition")
	a.definitionEntry.Validator = requiredValidator
	a.definitionEntry.OnChanged = a.machine.SetDefinitionInput
	a.definitionEntry.SetOnEscape(func() { a.machine.Cancel() })

	items := []*widget.FormItem{
		widget.NewFormItem("Term", a.termEntry),
		widget.NewFormItem("Definition", a.definitionEntry),
	}

	a.openForm("Add Flashcard", items, func() error {
		_, err := a.machine.SubmitCard()
		return err
	}, a.termEntry)
}

// openForm shows a form dialog. A confirmed form calls submit, any other
// dismissal cancels the form in the machine. Once the machine leaves the
// form screen, render closes the dialog through closeForm. A rejected
// submit leaves the machine on the form, so the dialog is shown again.
func (a *Application) openForm(title string, items []*widget.FormItem, submit func() error, focus fyne.Focusable) {
	var d dialog.Dialog
	d = dialog.NewForm(title, title, "Cancel", items, func(confirmed bool) {
		if a.formDialog != d {
			return
		}
		if confirmed {
			if err := submit(); err != nil {
				a.logger.Debug("form rejected", "form", title, "err", err)
				d.Show()
			}
			return
		}
		a.machine.Cancel()
	}, a.window)

	a.formDialog = d
	d.Resize(fyne.NewSize(a.config.Width*0.9, d.MinSize().Height))
	d.Show()
	a.window.Canvas().Focus(focus)
}

// closeForm hides the open form dialog, if any.
func (a *Application) closeForm() {
	d := a.formDialog
	if d == nil {
		return
	}
	a.formDialog = nil
	d.Hide()
}
