package gui

import (
	"testing"

	"fyne.io/fyne/v2"

	"codeberg.org/snonux/flashcards/internal/nav"
	"codeberg.org/snonux/flashcards/internal/testutil"
)

func TestKeyboardShortcuts(t *testing.T) {
	a := newTestApplication(t, testutil.NewTestSet(t, "Spanish",
		testutil.Pair{"uno", "one"}, testutil.Pair{"dos", "two"},
	))

	// Navigation keys do nothing on the set list
	a.handleShortcutKey(fyne.KeyRight)
	if a.machine.Screen() != nav.ScreenSetList {
		t.Fatal("Expected to stay on set list")
	}

	a.onSelectSet(0)

	tests := []struct {
		name      string
		key       fyne.KeyName
		wantIndex int
		wantFlip  bool
	}{
		{"right", fyne.KeyRight, 1, false},
		{"right at end", fyne.KeyRight, 1, false},
		{"space flips", fyne.KeySpace, 1, true},
		{"left resets flip", fyne.KeyLeft, 0, false},
		{"left at start", fyne.KeyLeft, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.handleShortcutKey(tt.key)
			st := a.machine.State()
			if st.CardIndex != tt.wantIndex || st.Flipped != tt.wantFlip {
				t.Errorf("state = (%d, %v), want (%d, %v)", st.CardIndex, st.Flipped, tt.wantIndex, tt.wantFlip)
			}
		})
	}

	a.handleShortcutKey(fyne.KeyEscape)
	if a.machine.Screen() != nav.ScreenSetList {
		t.Errorf("Screen = %v, want SetList", a.machine.Screen())
	}
}

func TestRuneShortcutsOpenForms(t *testing.T) {
	a := newTestApplication(t, testutil.NewTestSet(t, "Biology"))

	a.handleShortcutRune('a')
	if a.machine.Screen() != nav.ScreenAddSet {
		t.Fatalf("Screen = %v, want AddSetForm", a.machine.Screen())
	}
	a.machine.Cancel()

	a.onSelectSet(0)
	a.handleShortcutRune('a')
	if a.machine.Screen() != nav.ScreenAddCard {
		t.Errorf("Screen = %v, want AddCardForm", a.machine.Screen())
	}
}
