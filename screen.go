package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/config"
	"github.com/milk9111/flipbook/ecs"
	"github.com/milk9111/flipbook/ecs/component"
)

// MainState selects the active screen.
type MainState int

const (
	StateMenu MainState = iota
	StateGame
)

func (s MainState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateGame:
		return "game"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Screen is one state of the app. Enter spawns its elements and registers its
// bindings; Exit must undo both.
type Screen interface {
	Enter(g *Game) error
	Exit(g *Game)
	Update(g *Game) error
	Draw(g *Game, screen *ebiten.Image)
}

// markers maps config marker names to marker components.
var markers = map[string]anim.Marker{
	"load_screen": anim.MarkerOf("load_screen", component.LoadScreenComponent),
	"idle_screen": anim.MarkerOf("idle_screen", component.IdleScreenComponent),
}

// spawnAnimated creates one image element per binding, tags it with screenTag
// and the binding's marker, and registers the binding. The initial frame must
// exist: a missing one means the config and the assets disagree.
func spawnAnimated[T any](g *Game, screenTag component.ComponentHandle[T], bindings []config.BindingConfig) ([]anim.Marker, error) {
	var bound []anim.Marker
	for i, b := range bindings {
		m, ok := markers[b.Marker]
		if !ok {
			return bound, fmt.Errorf("screen: unknown marker %q", b.Marker)
		}
		policy, err := g.policy(b)
		if err != nil {
			return bound, fmt.Errorf("screen: %s: %w", b.Marker, err)
		}
		first, err := g.animator.Store().Get(b.Sequence, b.InitialFrame)
		if err != nil {
			return bound, fmt.Errorf("screen: %s initial frame: %w", b.Marker, err)
		}

		e := ecs.CreateEntity(g.world)
		alpha := 1.0
		if b.FadeIn > 0 {
			fade, err := component.NewEasedFadeIn(float32(b.FadeIn), b.FadeEase)
			if err != nil {
				ecs.DestroyEntity(g.world, e)
				return bound, fmt.Errorf("screen: %s: %w", b.Marker, err)
			}
			alpha = 0
			if err := ecs.Add(g.world, e, component.FadeComponent.Kind(), fade); err != nil {
				return bound, err
			}
		}
		if err := ecs.Add(g.world, e, component.UIImageComponent.Kind(), &component.UIImage{Frame: first, Alpha: alpha}); err != nil {
			return bound, err
		}
		scale := b.Scale
		if scale == 0 {
			scale = 1
		}
		if err := ecs.Add(g.world, e, component.TransformComponent.Kind(), &component.Transform{X: b.X, Y: b.Y, ScaleX: scale, ScaleY: scale}); err != nil {
			return bound, err
		}
		if err := ecs.Add(g.world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: i}); err != nil {
			return bound, err
		}
		var tag T
		if err := ecs.Add(g.world, e, screenTag.Kind(), &tag); err != nil {
			return bound, err
		}
		if err := m.Tag(g.world, e); err != nil {
			return bound, err
		}

		if err := m.Register(g.animator, b.Sequence, policy, b.Interval); err != nil {
			return bound, fmt.Errorf("screen: %w", err)
		}
		bound = append(bound, m)
	}
	return bound, nil
}

// despawnAnimated unregisters bound and destroys every entity tagged with
// screenTag.
func despawnAnimated[T any](g *Game, screenTag component.ComponentHandle[T], bound []anim.Marker) {
	for _, m := range bound {
		m.Unregister(g.animator)
	}
	ecs.DespawnTagged(g.world, screenTag.Kind())
}

func (g *Game) policy(b config.BindingConfig) (anim.Policy, error) {
	var src []byte
	if b.Policy == "script" {
		data, err := os.ReadFile(g.cfg.Resolve(b.Script))
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		src = data
	}
	return anim.ParsePolicy(b.Policy, src)
}
