package system

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/milk9111/flipbook/ecs"
	"github.com/milk9111/flipbook/ecs/component"
)

func TestFadeSystemReachesOpaque(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.UIImageComponent.Kind(), &component.UIImage{})
	_ = ecs.Add(w, e, component.FadeComponent.Kind(), component.NewFadeIn(0.5))

	s := NewFadeSystem()
	s.Update(w, 250*time.Millisecond)

	img, _ := ecs.Get(w, e, component.UIImageComponent.Kind())
	if img.Alpha <= 0 || img.Alpha >= 1 {
		t.Fatalf("alpha halfway = %f, want between 0 and 1", img.Alpha)
	}
	if !ecs.Has(w, e, component.FadeComponent.Kind()) {
		t.Fatal("fade removed before finishing")
	}

	s.Update(w, 250*time.Millisecond)
	if math.Abs(img.Alpha-1) > 0.01 {
		t.Fatalf("alpha = %f, want ~1", img.Alpha)
	}
	if ecs.Has(w, e, component.FadeComponent.Kind()) {
		t.Fatal("finished fade should be removed")
	}
}

func TestEasedFadeIn(t *testing.T) {
	cases := []struct {
		name    string
		easing  string
		wantErr error
	}{
		{name: "default", easing: ""},
		{name: "linear", easing: "linear"},
		{name: "sine", easing: "in_out_sine"},
		{name: "unknown", easing: "wobble", wantErr: component.ErrUnknownEasing},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fade, err := component.NewEasedFadeIn(1, c.easing)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("err = %v, want %v", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEasedFadeIn: %v", err)
			}

			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			_ = ecs.Add(w, e, component.UIImageComponent.Kind(), &component.UIImage{})
			_ = ecs.Add(w, e, component.FadeComponent.Kind(), fade)

			NewFadeSystem().Update(w, 1100*time.Millisecond)
			img, _ := ecs.Get(w, e, component.UIImageComponent.Kind())
			if math.Abs(img.Alpha-1) > 0.01 {
				t.Fatalf("alpha after fade = %f, want ~1", img.Alpha)
			}
		})
	}
}

func TestLinearFadeMidpoint(t *testing.T) {
	fade, err := component.NewEasedFadeIn(1, "linear")
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.UIImageComponent.Kind(), &component.UIImage{})
	_ = ecs.Add(w, e, component.FadeComponent.Kind(), fade)

	NewFadeSystem().Update(w, 500*time.Millisecond)
	img, _ := ecs.Get(w, e, component.UIImageComponent.Kind())
	if math.Abs(img.Alpha-0.5) > 0.01 {
		t.Fatalf("alpha at midpoint = %f, want 0.5", img.Alpha)
	}
}
