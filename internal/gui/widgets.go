package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/flashcards/internal/nav"
)

// CardFace is a tappable widget showing one side of a flashcard
type CardFace struct {
	widget.BaseWidget

	container  *fyne.Container
	background *canvas.Rectangle
	sideLabel  *widget.Label
	textLabel  *widget.Label

	face     nav.Face
	onTapped func()
}

// NewCardFace creates a new card face; onTapped runs on every tap
func NewCardFace(onTapped func()) *CardFace {
	c := &CardFace{onTapped: onTapped}

	c.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	c.background.CornerRadius = 10
	c.background.StrokeColor = theme.Color(theme.ColorNameShadow)
	c.background.StrokeWidth = 1
	c.background.SetMinSize(fyne.NewSize(260, 200))

	c.sideLabel = widget.NewLabel("")
	c.sideLabel.Alignment = fyne.TextAlignCenter
	c.sideLabel.Importance = widget.LowImportance

	c.textLabel = widget.NewLabel("")
	c.textLabel.Alignment = fyne.TextAlignCenter
	c.textLabel.Wrapping = fyne.TextWrapWord
	c.textLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.textLabel.SizeName = theme.SizeNameSubHeadingText

	c.container = container.NewStack(
		c.background,
		container.NewBorder(c.sideLabel, nil, nil, nil,
			container.NewVBox(layout.NewSpacer(), c.textLabel, layout.NewSpacer())),
	)

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *CardFace) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.container)
}

// Tapped implements fyne.Tappable
func (c *CardFace) Tapped(*fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

// SetFace shows text as the given side of the card
func (c *CardFace) SetFace(face nav.Face, text string) {
	c.face = face
	if face == nav.FaceDefinition {
		c.sideLabel.SetText("Definition")
		c.textLabel.SizeName = theme.SizeNameText
	} else {
		c.sideLabel.SetText("Term")
		c.textLabel.SizeName = theme.SizeNameSubHeadingText
	}
	c.textLabel.SetText(text)
}

// Face returns the side currently shown
func (c *CardFace) Face() nav.Face {
	return c.face
}

// Text returns the text currently shown
func (c *CardFace) Text() string {
	return c.textLabel.Text
}
