package ecs

import "time"

// System updates a world once per pass. dt is the wall-clock time since the
// previous pass.
type System interface {
	Update(w *World, dt time.Duration)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World, dt time.Duration)

func (f SystemFunc) Update(w *World, dt time.Duration) {
	f(w, dt)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, dt time.Duration) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}
