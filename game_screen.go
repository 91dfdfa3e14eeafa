package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/ecs/component"
)

// gameScreen shows the loading animation. Escape returns to the menu.
type gameScreen struct {
	bound []anim.Marker
}

func (s *gameScreen) Enter(g *Game) error {
	bound, err := spawnAnimated(g, component.OnGameScreenComponent, g.cfg.Screens.Game.Bindings)
	s.bound = bound
	return err
}

func (s *gameScreen) Exit(g *Game) {
	despawnAnimated(g, component.OnGameScreenComponent, s.bound)
	s.bound = nil
}

func (s *gameScreen) Update(g *Game) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.goTo(StateMenu)
	}
	return nil
}

func (s *gameScreen) Draw(*Game, *ebiten.Image) {}
