package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flipbook/ecs"
	"github.com/milk9111/flipbook/ecs/component"
)

// RenderSystem draws every UIImage that has a Transform, centered on the
// transform, lowest RenderLayer first.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, e := range drawOrder(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		img, ok := ecs.Get(w, e, component.UIImageComponent.Kind())
		if !ok || img.Frame == nil || img.Frame.Image == nil || img.Alpha <= 0 {
			continue
		}

		src := img.Frame.Image
		b := src.Bounds()
		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleAlpha(float32(min(img.Alpha, 1)))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(src, op)
	}
}

// drawOrder returns the drawable entities sorted by render layer, then by
// entity ID so equal layers stay stable.
func drawOrder(w *ecs.World) []ecs.Entity {
	entities := ecs.Query(w, component.UIImageComponent.Kind())
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return entities[i].ID < entities[j].ID
	})
	return entities
}
