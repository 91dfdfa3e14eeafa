package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/assets"
	"github.com/milk9111/flipbook/config"
	"github.com/milk9111/flipbook/ecs"
	"github.com/milk9111/flipbook/ecs/component"
	"github.com/milk9111/flipbook/ecs/system"
	"github.com/milk9111/flipbook/frames"
	"github.com/milk9111/flipbook/trigger"
	"github.com/milk9111/flipbook/watch"
)

type fpsSample struct {
	TPS float64
	FPS float64
}

type Game struct {
	cfg        *config.Config
	debug      bool
	background color.Color

	world    *ecs.World
	animator *anim.Animator
	systems  *ecs.Scheduler
	render   *system.RenderSystem

	screens map[MainState]Screen
	current Screen
	state   MainState
	next    MainState
	pending bool
	quit    bool

	watcher *watch.Watcher
	stats   *trigger.Trigger[fpsSample]
	last    time.Time
}

// NewGame builds the frame store from the configured asset root, falling back
// to the embedded frames when allowed, and starts on the menu screen.
func NewGame(cfg *config.Config, debug bool) (*Game, error) {
	root := cfg.Resolve(cfg.Assets.Root)
	store, err := frames.Build(root)
	if err != nil {
		if !cfg.Assets.EmbeddedFallback {
			return nil, err
		}
		log.Printf("game: %v; using embedded frames", err)
		if store, err = assets.LoadStore(); err != nil {
			return nil, err
		}
	}

	g := newGame(cfg, store, debug)
	if cfg.Assets.Watch && store.Root() == root {
		w, err := watch.New(root)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	g.goTo(StateMenu)
	return g, nil
}

func newGame(cfg *config.Config, store *frames.Store, debug bool) *Game {
	g := &Game{
		cfg:        cfg,
		debug:      debug,
		background: cfg.Window.BackgroundColor(),
		world:      ecs.NewWorld(),
		animator:   anim.NewAnimator(store),
		systems:    ecs.NewScheduler(system.NewFadeSystem()),
		render:     system.NewRenderSystem(),
		screens: map[MainState]Screen{
			StateMenu: &menuScreen{},
			StateGame: &gameScreen{},
		},
		stats: trigger.New(1, func() fpsSample {
			return fpsSample{TPS: ebiten.ActualTPS(), FPS: ebiten.ActualFPS()}
		}),
	}
	return g
}

// goTo schedules a screen switch for the start of the next update.
func (g *Game) goTo(state MainState) {
	g.next = state
	g.pending = true
}

func (g *Game) switchScreen() error {
	if !g.pending {
		return nil
	}
	g.pending = false

	if g.current != nil {
		g.current.Exit(g)
	}
	next, ok := g.screens[g.next]
	if !ok {
		return fmt.Errorf("game: no screen for %s", g.next)
	}
	g.state = g.next
	g.current = next
	if err := next.Enter(g); err != nil {
		return fmt.Errorf("game: enter %s: %w", g.state, err)
	}
	if g.debug {
		log.Printf("game: entered %s, active bindings %v", g.state, g.animator.Active())
	}
	return nil
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
drain:
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				break drain
			}
			log.Printf("game: watch: %v", err)
		default:
			break drain
		}
	}
	if !g.watcher.Changed() {
		return
	}
	store, err := frames.Build(g.animator.Store().Root())
	if err != nil {
		log.Printf("game: reload frames: %v", err)
		return
	}
	g.animator.SetStore(store)
	log.Printf("game: reloaded frames from %s", store.Root())
}

func (g *Game) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	if g.quit {
		return ebiten.Termination
	}
	g.reload()
	if err := g.switchScreen(); err != nil {
		return err
	}
	if g.current != nil {
		if err := g.current.Update(g); err != nil {
			return err
		}
	}

	// A failed binding is already unbound and its image keeps the last frame.
	if err := g.animator.Update(g.world, dt); err != nil {
		log.Printf("game: %v", err)
	}
	g.systems.Update(g.world, dt)

	if g.stats.Tick(dt) {
		for _, s := range g.stats.Drain() {
			if g.debug {
				log.Printf("game: tps %.1f fps %.1f", s.TPS, s.FPS)
			}
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.render.Draw(g.world, screen)
	if g.current != nil {
		g.current.Draw(g, screen)
	}
	if g.debug {
		images := ecs.Count(g.world, component.UIImageComponent.Kind())
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  %s  images: %d  [%s]", ebiten.ActualFPS(), g.state, images, strings.Join(g.animator.Active(), " ")))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops the asset watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
