package ecs

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/flipbook/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestWorldReusedIDKeepsOldHandleDead(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.ID != old.ID {
		t.Fatalf("expected id reuse, got %v after %v", fresh, old)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle %v should be dead", old)
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("reused entity must not inherit components")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := Query(w, h2.Kind()); len(got) != 2 || got[0] != e1 || got[1] != e2 {
					t.Fatalf("expected query [e1 e2], got %v", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		*v *= 10
		ents = append(ents, e)
	})
	if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
		t.Fatalf("expected [e1 e3], got %v (e2=%v)", ents, e2)
	}
	if v, _ := Get(w, e3, h.Kind()); *v != 30 {
		t.Fatalf("expected in-place write 30, got %d", *v)
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), h.Kind(), intPtr(i))
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if len(Query(w, h.Kind())) != 0 || Count(w, h.Kind()) != 0 {
		t.Fatalf("expected empty store after destroying all")
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("b"))
	_ = Add(w, e3, kb, stringPtr("c"))

	var res []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { res = append(res, e) })
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
}

func TestDespawnTagged(t *testing.T) {
	type screenTag struct{}
	tag := component.NewComponent[screenTag]()

	w := NewWorld()
	tagged := []Entity{CreateEntity(w), CreateEntity(w)}
	other := CreateEntity(w)
	for _, e := range tagged {
		_ = Add(w, e, tag.Kind(), &screenTag{})
	}

	if n := DespawnTagged(w, tag.Kind()); n != 2 {
		t.Fatalf("expected 2 despawned, got %d", n)
	}
	for _, e := range tagged {
		if IsAlive(w, e) {
			t.Fatalf("tagged entity %v still alive", e)
		}
	}
	if !IsAlive(w, other) {
		t.Fatalf("untagged entity should survive")
	}
	if n := DespawnTagged(w, tag.Kind()); n != 0 {
		t.Fatalf("second despawn should be a no-op, got %d", n)
	}
}

func TestEventQueue(t *testing.T) {
	var q EventQueue[string]
	q.Push("a")
	q.Push("b")
	if q.Len() != 2 {
		t.Fatalf("expected 2 pending, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Drain() != nil {
		t.Fatalf("expected nil after drain")
	}
	q.Push("c")
	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("expected empty after clear")
	}
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	var seen time.Duration
	s := NewScheduler(
		SystemFunc(func(_ *World, dt time.Duration) { order = append(order, "a"); seen = dt }),
		nil,
	)
	s.Add(SystemFunc(func(*World, time.Duration) { order = append(order, "b") }))
	s.Add(nil)

	s.Update(NewWorld(), 16*time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if seen != 16*time.Millisecond {
		t.Fatalf("expected dt to be passed through, got %v", seen)
	}
}

func TestComponentKindNames(t *testing.T) {
	if got := component.UIImageComponent.Kind().Name(); got != "UIImage" {
		t.Fatalf("Name() = %q, want UIImage", got)
	}
	a := component.NewComponent[float64]().Kind()
	b := component.NewComponent[float64]().Kind()
	if a.ID() == b.ID() {
		t.Fatalf("kinds share id %d", a.ID())
	}
	if a.Name() != "float64" || b.Name() != "float64" {
		t.Fatalf("names = %q, %q, want float64", a.Name(), b.Name())
	}
}
