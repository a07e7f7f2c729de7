// Package gui is the fyne front end of the flashcards app. It renders the
// navigation state machine from package nav: a set list, a set detail
// surface with a flippable card, and the add-set and add-card forms shown
// as dialogs. Widgets never mutate the store directly; every user action is
// forwarded to the machine and the window is redrawn from its state.
package gui
