package anim

import (
	"github.com/milk9111/flipbook/ecs"
	"github.com/milk9111/flipbook/ecs/component"
)

// Marker hides a marker component's type so screens can pick markers by
// config name.
type Marker interface {
	Name() string
	Tag(w *ecs.World, e ecs.Entity) error
	Register(a *Animator, key string, policy Policy, seconds float64) error
	Unregister(a *Animator) bool
	State(a *Animator) State
}

type marker[M any] struct {
	name   string
	handle component.ComponentHandle[M]
}

func MarkerOf[M any](name string, handle component.ComponentHandle[M]) Marker {
	return marker[M]{name: name, handle: handle}
}

func (m marker[M]) Name() string {
	return m.name
}

func (m marker[M]) Tag(w *ecs.World, e ecs.Entity) error {
	var tag M
	return ecs.Add(w, e, m.handle.Kind(), &tag)
}

func (m marker[M]) Register(a *Animator, key string, policy Policy, seconds float64) error {
	return register(a, m.handle, m.name, key, policy, seconds)
}

func (m marker[M]) Unregister(a *Animator) bool {
	return Unregister(a, m.handle)
}

func (m marker[M]) State(a *Animator) State {
	return StateOf(a, m.handle)
}
