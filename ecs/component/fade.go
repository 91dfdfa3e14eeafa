package component

import (
	"errors"
	"fmt"

	easing "github.com/fogleman/ease"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var ErrUnknownEasing = errors.New("component: unknown easing")

// Fade drives UIImage.Alpha from a tween. The component is removed once the
// tween finishes.
type Fade struct {
	Tween *gween.Tween
}

var FadeComponent = NewComponent[Fade]()

var easings = map[string]func(float64) float64{
	"linear":       easing.Linear,
	"in_quad":      easing.InQuad,
	"out_quad":     easing.OutQuad,
	"in_out_quad":  easing.InOutQuad,
	"in_cubic":     easing.InCubic,
	"out_cubic":    easing.OutCubic,
	"in_out_cubic": easing.InOutCubic,
	"in_sine":      easing.InSine,
	"out_sine":     easing.OutSine,
	"in_out_sine":  easing.InOutSine,
}

// NewFadeIn fades from transparent to opaque over seconds.
func NewFadeIn(seconds float32) *Fade {
	return &Fade{Tween: gween.New(0, 1, seconds, ease.OutQuad)}
}

// NewEasedFadeIn is NewFadeIn along a named curve such as "in_out_sine". An
// empty name uses the NewFadeIn curve.
func NewEasedFadeIn(seconds float32, name string) (*Fade, error) {
	if name == "" {
		return NewFadeIn(seconds), nil
	}
	curve, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return &Fade{Tween: gween.New(0, 1, seconds, tweenFunc(curve))}, nil
}

// tweenFunc adapts a normalized curve to gween's (t, begin, change, duration)
// form.
func tweenFunc(curve func(float64) float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(curve(float64(t/d)))
	}
}
