package anim

import (
	"fmt"

	"github.com/milk9111/flipbook/ecs"
	"github.com/milk9111/flipbook/ecs/component"
	"github.com/milk9111/flipbook/frames"
)

// Binding ties one sequence to a set of UI elements. The Animator calls OnFire
// when the binding's trigger fires, then Apply with the current Subscribers.
type Binding interface {
	Key() string
	OnFire(store *frames.Store) (*frames.Frame, error)
	Subscribers(w *ecs.World) []ecs.Entity
	Apply(w *ecs.World, frame *frames.Frame, subscribers []ecs.Entity)
}

// Animation is the Binding for every element tagged with marker M that also
// has a UIImage.
type Animation[M any] struct {
	marker component.ComponentHandle[M]
	key    string
	policy Policy
	index  int
}

func NewAnimation[M any](marker component.ComponentHandle[M], key string, policy Policy) *Animation[M] {
	if policy == nil {
		policy = Sequential{}
	}
	return &Animation[M]{marker: marker, key: key, policy: policy}
}

func (a *Animation[M]) Key() string {
	return a.key
}

// OnFire runs the policy and resolves the chosen frame. Store errors are
// returned as-is (wrapped) so callers can match them with errors.Is.
func (a *Animation[M]) OnFire(store *frames.Store) (*frames.Frame, error) {
	n, err := store.Len(a.key)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return store.Get(a.key, 0)
	}

	next, err := a.policy.Next(a.index, n)
	if err != nil {
		return nil, err
	}
	f, err := store.Get(a.key, next)
	if err != nil {
		return nil, fmt.Errorf("policy %v chose %d: %w", a.policy, next, err)
	}
	a.index = next
	return f, nil
}

// Subscribers is recomputed on every call so elements spawned or destroyed
// since the last fire are picked up.
func (a *Animation[M]) Subscribers(w *ecs.World) []ecs.Entity {
	tagged := ecs.Query(w, a.marker.Kind())
	out := tagged[:0]
	for _, e := range tagged {
		if ecs.Has(w, e, component.UIImageComponent.Kind()) {
			out = append(out, e)
		}
	}
	return out
}

// Apply writes the same frame into every subscriber.
func (a *Animation[M]) Apply(w *ecs.World, frame *frames.Frame, subscribers []ecs.Entity) {
	for _, e := range subscribers {
		img, ok := ecs.Get(w, e, component.UIImageComponent.Kind())
		if !ok {
			continue
		}
		img.Frame = frame
	}
}
