// Package anim drives frame sequences into UI elements. Screens register a
// Binding per marker component when they activate and unregister it when they
// tear down; the Animator ticks each active binding's trigger once per pass.
package anim

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/milk9111/flipbook/ecs"
	"github.com/milk9111/flipbook/ecs/component"
	"github.com/milk9111/flipbook/frames"
	"github.com/milk9111/flipbook/trigger"
)

var ErrNilBinding = errors.New("anim: nil binding")

// Fire is the payload emitted by a binding's trigger.
type Fire struct {
	Binding string
	Seq     uint64
}

// State is a binding's lifecycle state.
type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

type entry struct {
	id      component.ComponentID
	name    string
	binding Binding
	trigger *trigger.Trigger[Fire]
}

// Animator owns the active bindings and the Store they read from. It is not
// safe for concurrent use; call it from the update pass only.
type Animator struct {
	store   *frames.Store
	entries []*entry
	logger  *log.Logger
}

type Option func(*Animator)

func WithLogger(l *log.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

func NewAnimator(store *frames.Store, opts ...Option) *Animator {
	a := &Animator{store: store, logger: log.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store returns the Store bindings currently read from.
func (a *Animator) Store() *frames.Store {
	return a.store
}

// SetStore swaps in a rebuilt Store. Bindings keep their index; a binding whose
// key disappeared fails on its next fire.
func (a *Animator) SetStore(store *frames.Store) {
	a.store = store
	for _, e := range a.entries {
		if !store.Has(e.binding.Key()) {
			a.logger.Printf("anim: %s: sequence %q missing after store swap", e.name, e.binding.Key())
		}
	}
}

// Register binds every element tagged with marker to sequence key. A nil policy
// means Sequential. Registering a marker again replaces its binding.
func Register[M any](a *Animator, marker component.ComponentHandle[M], key string, policy Policy, seconds float64) error {
	return register(a, marker, marker.Kind().Name(), key, policy, seconds)
}

// Unregister removes the binding for marker. It reports whether one existed and
// is safe to call repeatedly.
func Unregister[M any](a *Animator, marker component.ComponentHandle[M]) bool {
	return a.Unbind(marker.Kind().ID())
}

// StateOf reports whether marker currently has an active binding.
func StateOf[M any](a *Animator, marker component.ComponentHandle[M]) State {
	return a.State(marker.Kind().ID())
}

func register[M any](a *Animator, marker component.ComponentHandle[M], name, key string, policy Policy, seconds float64) error {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Errorf("%w: %s got %v", ErrInvalidInterval, name, seconds)
	}
	return a.Bind(marker.Kind().ID(), name, NewAnimation(marker, key, policy), trigger.Seconds(seconds))
}

// Bind registers a custom Binding under id. The binding's key must exist in
// the Store.
func (a *Animator) Bind(id component.ComponentID, name string, b Binding, interval time.Duration) error {
	if b == nil {
		return ErrNilBinding
	}
	if interval <= 0 {
		return fmt.Errorf("%w: %s got %v", ErrInvalidInterval, name, interval)
	}
	if _, err := a.store.Len(b.Key()); err != nil {
		return fmt.Errorf("anim: bind %s: %w", name, err)
	}

	var seq uint64
	e := &entry{
		id:      id,
		name:    name,
		binding: b,
		trigger: trigger.NewDuration(interval, func() Fire {
			seq++
			return Fire{Binding: name, Seq: seq}
		}),
	}

	if i := a.find(id); i >= 0 {
		a.entries[i].trigger.Reset()
		a.entries[i] = e
	} else {
		a.entries = append(a.entries, e)
	}
	a.logger.Printf("anim: %s bound to %q every %v", name, b.Key(), interval)
	return nil
}

// Unbind removes the binding under id and drops any fires it had queued.
func (a *Animator) Unbind(id component.ComponentID) bool {
	i := a.find(id)
	if i < 0 {
		return false
	}
	e := a.entries[i]
	e.trigger.Reset()
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	a.logger.Printf("anim: %s unbound", e.name)
	return true
}

func (a *Animator) State(id component.ComponentID) State {
	if a.find(id) >= 0 {
		return Active
	}
	return Inactive
}

// Active returns the names of the active bindings in registration order.
func (a *Animator) Active() []string {
	names := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		names = append(names, e.name)
	}
	return names
}

func (a *Animator) find(id component.ComponentID) int {
	for i, e := range a.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

// Update advances every active binding by dt. A binding whose fire fails is
// deactivated so its elements keep the last good frame; the failures of the
// pass are returned joined.
func (a *Animator) Update(w *ecs.World, dt time.Duration) error {
	var errs []error
	for _, e := range append([]*entry(nil), a.entries...) {
		e.trigger.Tick(dt)
		for _, fire := range e.trigger.Drain() {
			frame, err := e.binding.OnFire(a.store)
			if err != nil {
				err = fmt.Errorf("anim: %s fire %d: %w", e.name, fire.Seq, err)
				a.logger.Printf("%v; binding halted", err)
				a.Unbind(e.id)
				errs = append(errs, err)
				break
			}
			e.binding.Apply(w, frame, e.binding.Subscribers(w))
		}
	}
	return errors.Join(errs...)
}
