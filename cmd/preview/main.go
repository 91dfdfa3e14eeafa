// Command preview plays one frame sequence from an asset root so frames can be
// checked without the full app. Left and Right switch sequences.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/frames"
	"github.com/milk9111/flipbook/trigger"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 512
	screenHeight = 512
)

type previewGame struct {
	store   *frames.Store
	keys    []string
	key     int
	policy  anim.Policy
	tick    *trigger.Trigger[struct{}]
	current int
	last    time.Time
}

func (g *previewGame) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.key = (g.key + 1) % len(g.keys)
		g.current = 0
		g.tick.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.key = (g.key + len(g.keys) - 1) % len(g.keys)
		g.current = 0
		g.tick.Reset()
	}

	if !g.tick.Tick(dt) {
		return nil
	}
	g.tick.Drain()
	n, err := g.store.Len(g.keys[g.key])
	if err != nil || n == 0 {
		return nil
	}
	next, err := g.policy.Next(g.current, n)
	if err != nil {
		return err
	}
	g.current = next
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	key := g.keys[g.key]
	f, err := g.store.Get(key, g.current)
	if err != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s: %v", key, err))
		return
	}
	fw := f.Image.Bounds().Dx()
	fh := f.Image.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screenWidth-fw)/2, float64(screenHeight-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(f.Image, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %s every %v", f, g.policy, g.tick.Interval()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// frameInterval converts -interval to a duration, rejecting values that
// round to zero.
func frameInterval(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("interval must be finite, got %v", seconds)
	}
	d := trigger.Seconds(seconds)
	if d <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %v", seconds)
	}
	return d, nil
}

func main() {
	root := flag.String("root", "assets/images", "asset root")
	seq := flag.String("seq", "", "sequence to start on (default: first)")
	policyName := flag.String("policy", "sequential", "sequential or random")
	interval := flag.Float64("interval", 0.2, "seconds between frames")
	flag.Parse()

	store, err := frames.Build(*root)
	if err != nil {
		log.Fatal(err)
	}
	keys := store.Keys()
	if len(keys) == 0 {
		log.Fatalf("no sequences under %s", *root)
	}
	policy, err := anim.ParsePolicy(*policyName, nil)
	if err != nil {
		log.Fatal(err)
	}
	every, err := frameInterval(*interval)
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{
		store:  store,
		keys:   keys,
		policy: policy,
		tick:   trigger.NewDuration(every, func() struct{} { return struct{}{} }),
	}
	for i, k := range keys {
		if k == *seq {
			g.key = i
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Frame Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
