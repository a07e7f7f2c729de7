package gui

import (
	"fyne.io/fyne/v2"

	"codeberg.org/snonux/flashcards/internal/nav"
)

// setupKeyboardShortcuts sets up keyboard shortcuts for the application.
// They only fire while no entry has focus.
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		a.handleShortcutKey(ev.Name)
	})

	a.window.Canvas().SetOnTypedRune(func(r rune) {
		a.handleShortcutRune(r)
	})
}

// handleShortcutKey handles navigation keys
func (a *Application) handleShortcutKey(key fyne.KeyName) {
	if a.machine.Screen() != nav.ScreenSetDetail {
		return
	}

	switch key {
	case fyne.KeyLeft:
		a.machine.Prev()
	case fyne.KeyRight:
		a.machine.Next()
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		a.machine.Flip()
	case fyne.KeyEscape, fyne.KeyBackspace:
		a.machine.Back()
	}
}

// handleShortcutRune handles letter shortcuts
func (a *Application) handleShortcutRune(r rune) {
	switch r {
	case 'a', 'A', '+':
		switch a.machine.Screen() {
		case nav.ScreenSetList:
			a.machine.OpenAddSet()
		case nav.ScreenSetDetail:
			a.machine.OpenAddCard()
		}
	case 'x', 'X':
		if a.machine.Screen() == nav.ScreenSetDetail {
			a.onExportToAnki()
		}
	}
}
