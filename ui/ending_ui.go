package ui

import (
	cfg "github.com/automoto/lab-escape/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// EndingUI is the modal shown when a run ends. It is drawn through an
// offscreen layer so it can fade in.
type EndingUI struct {
	UI *ebitenui.UI

	// OnRestart is called when the button is clicked.
	OnRestart func()

	successTitle *widget.Label
	failureTitle *widget.Label
	body         *widget.Container
	faces        faces
	layer        *ebiten.Image
	drawOp       ebiten.DrawImageOptions

	outcome   cfg.OutcomeID
	collected int
	total     int
}

// NewEndingUI builds the ending modal.
func NewEndingUI(onRestart func()) (*EndingUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	u := &EndingUI{OnRestart: onRestart, faces: f, collected: -1}
	u.buildUI()
	return u, nil
}

func (u *EndingUI) buildUI() {
	root, panel := modal()

	// one title per outcome so each keeps its colour; the unused one is
	// hidden
	u.successTitle = newLabel(cfg.Ending.SuccessTitle, &u.faces.title, winColor)
	u.failureTitle = newLabel(cfg.Ending.FailureTitle, &u.faces.title, failedColor)
	panel.AddChild(u.successTitle)
	panel.AddChild(u.failureTitle)

	u.body = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	panel.AddChild(u.body)

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 32)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Play again", &u.faces.normal, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if u.OnRestart != nil {
				u.OnRestart()
			}
		}),
	))

	u.UI = &ebitenui.UI{Container: root}
}

// SetResult updates the modal for a finished run.
func (u *EndingUI) SetResult(outcome cfg.OutcomeID, collected, total int) {
	if outcome == u.outcome && collected == u.collected && total == u.total {
		return
	}
	u.outcome, u.collected, u.total = outcome, collected, total

	_, body := endingText(outcome, collected, total)
	win := outcome == cfg.OutcomeSuccess
	u.successTitle.GetWidget().Visibility = visibility(win)
	u.failureTitle.GetWidget().Visibility = visibility(!win)
	setLines(u.body, body, &u.faces.normal, textColor)
}

func visibility(shown bool) widget.Visibility {
	if shown {
		return widget.Visibility_Show
	}
	return widget.Visibility_Hide
}

func (u *EndingUI) Update() {
	u.UI.Update()
}

// Draw renders the modal at the given opacity.
func (u *EndingUI) Draw(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	if u.layer == nil || u.layer.Bounds().Dx() != b.Dx() || u.layer.Bounds().Dy() != b.Dy() {
		if u.layer != nil {
			u.layer.Deallocate()
		}
		u.layer = ebiten.NewImage(b.Dx(), b.Dy())
	}
	u.layer.Clear()
	u.UI.Draw(u.layer)

	u.drawOp.GeoM.Reset()
	u.drawOp.ColorScale.Reset()
	u.drawOp.ColorScale.ScaleAlpha(min(alpha, 1))
	screen.DrawImage(u.layer, &u.drawOp)
}
