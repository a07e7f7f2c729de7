// Package nav is the view-state machine of the study app. It decides which
// screen is active, which set and card are shown and what the open form
// holds. All mutations of the deck store go through it.
package nav
