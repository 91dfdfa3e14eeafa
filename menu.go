package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// menuScreen shows the idle animation behind a Play / Quit panel.
type menuScreen struct {
	ui    *ebitenui.UI
	bound []anim.Marker
}

func (s *menuScreen) Enter(g *Game) error {
	bound, err := spawnAnimated(g, component.OnMenuScreenComponent, g.cfg.Screens.Menu.Bindings)
	s.bound = bound
	if err != nil {
		return err
	}
	s.ui = newMenuUI(g)
	return nil
}

func (s *menuScreen) Exit(g *Game) {
	despawnAnimated(g, component.OnMenuScreenComponent, s.bound)
	s.bound = nil
	s.ui = nil
}

func (s *menuScreen) Update(g *Game) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.goTo(StateGame)
	}
	if s.ui != nil {
		s.ui.Update()
	}
	return nil
}

func (s *menuScreen) Draw(g *Game, screen *ebiten.Image) {
	if s.ui != nil {
		s.ui.Draw(screen)
	}
}

// newMenuUI builds the menu panel from colored nine-slices and the built-in
// basic font so no theme assets are needed.
func newMenuUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})

	title := widget.NewText(
		widget.TextOpts.Text(g.cfg.Window.Title, &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.cfg.Window.Width/4, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionEnd}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(button("Play", func() { g.goTo(StateGame) }))
	panel.AddChild(button("Quit", func() { g.quit = true }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
