package system

import (
	"time"

	"github.com/milk9111/flipbook/ecs"
	"github.com/milk9111/flipbook/ecs/component"
)

// FadeSystem advances Fade tweens and writes the value into UIImage.Alpha.
// Finished fades are removed.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem {
	return &FadeSystem{}
}

func (s *FadeSystem) Update(w *ecs.World, dt time.Duration) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.FadeComponent.Kind(), component.UIImageComponent.Kind(), func(e ecs.Entity, fade *component.Fade, img *component.UIImage) {
		if fade.Tween == nil {
			_ = ecs.Remove(w, e, component.FadeComponent.Kind())
			return
		}
		v, done := fade.Tween.Update(float32(dt.Seconds()))
		img.Alpha = float64(v)
		if done {
			_ = ecs.Remove(w, e, component.FadeComponent.Kind())
		}
	})
}
