package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

// findObject walks obj depth-first, descending into containers and widget
// renderers, and returns the first object match accepts.
func findObject(obj fyne.CanvasObject, match func(fyne.CanvasObject) bool) fyne.CanvasObject {
	if obj == nil {
		return nil
	}
	if match(obj) {
		return obj
	}

	var children []fyne.CanvasObject
	switch o := obj.(type) {
	case *fyne.Container:
		children = o.Objects
	case fyne.Widget:
		children = test.WidgetRenderer(o).Objects()
	}
	for _, child := range children {
		if found := findObject(child, match); found != nil {
			return found
		}
	}
	return nil
}

// topOverlay returns the dialog currently shown over the window.
func topOverlay(t *testing.T, a *Application) fyne.CanvasObject {
	t.Helper()

	top := a.window.Canvas().Overlays().Top()
	if top == nil {
		t.Fatal("Expected a dialog to be shown")
	}
	return top
}

// dialogButton returns the button labelled text in the shown dialog.
func dialogButton(t *testing.T, a *Application, text string) *widget.Button {
	t.Helper()

	found := findObject(topOverlay(t, a), func(o fyne.CanvasObject) bool {
		b, ok := o.(*widget.Button)
		return ok && b.Text == text
	})
	if found == nil {
		t.Fatalf("No %q button in the shown dialog", text)
	}
	return found.(*widget.Button)
}
