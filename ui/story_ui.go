package ui

import (
	cfg "github.com/automoto/lab-escape/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// StoryUI is the modal that pages through the intro story.
type StoryUI struct {
	UI *ebitenui.UI

	// OnAdvance is called when the button is clicked.
	OnAdvance func()

	title   *widget.Label
	body    *widget.Container
	counter *widget.Label
	button  *widget.Button
	faces   faces
	page    int
}

// NewStoryUI builds the story modal showing the first page.
func NewStoryUI(onAdvance func()) (*StoryUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	s := &StoryUI{OnAdvance: onAdvance, faces: f, page: -1}
	s.buildUI()
	s.SetPage(0)
	return s, nil
}

func (s *StoryUI) buildUI() {
	root, panel := modal()

	s.title = newLabel("", &s.faces.title, textColor)
	panel.AddChild(s.title)

	s.body = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	panel.AddChild(s.body)

	footer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	s.counter = newLabel("", &s.faces.small, mutedColor)
	footer.AddChild(s.counter)

	s.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 32)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Next", &s.faces.normal, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.OnAdvance != nil {
				s.OnAdvance()
			}
		}),
	)
	footer.AddChild(s.button)
	panel.AddChild(footer)

	s.UI = &ebitenui.UI{Container: root}
}

// SetPage shows a story page. Out of range pages are ignored.
func (s *StoryUI) SetPage(page int) {
	pages := cfg.Story.Pages
	if page == s.page || page < 0 || page >= len(pages) {
		return
	}
	s.page = page
	s.title.Label = pages[page].Title
	setLines(s.body, pages[page].Body, &s.faces.normal, textColor)
	s.counter.Label = storyCounter(page, len(pages))
	if t := s.button.Text(); t != nil {
		t.Label = storyButton(page, len(pages))
	}
}

func (s *StoryUI) Update() {
	s.UI.Update()
}

func (s *StoryUI) Draw(screen *ebiten.Image) {
	s.UI.Draw(screen)
}
