package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	textColor   = color.RGBA{255, 255, 255, 255}
	mutedColor  = color.RGBA{180, 180, 200, 255}
	panelColor  = color.RGBA{20, 20, 30, 230}
	shadeColor  = color.RGBA{0, 0, 0, 160}
	winColor    = color.RGBA{120, 230, 120, 255}
	failedColor = color.RGBA{255, 110, 100, 255}
)

// faces holds the ebitenui font faces; stored as text.Face for the widget
// options that take a pointer to the interface.
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() (faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load bold font: %w", err)
	}
	return faces{
		title:  &text.GoTextFace{Source: bold, Size: 30},
		normal: &text.GoTextFace{Source: regular, Size: 18},
		small:  &text.GoTextFace{Source: regular, Size: 13},
	}, nil
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    textColor,
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}

// modal builds a shaded full-screen root with a centered panel and returns
// both.
func modal() (*widget.Container, *widget.Container) {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(shadeColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(panel)
	return root, panel
}

func newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

// setLines replaces the children of box with one label per line of s.
func setLines(box *widget.Container, s string, face *text.Face, c color.Color) {
	box.RemoveChildren()
	for _, line := range splitLines(s) {
		box.AddChild(newLabel(line, face, c))
	}
}
