package anim

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script is a Policy backed by a tengo script. Before each run the globals
// frame and length are set and next is undefined; the script must assign next
// on every run:
//
//	next = (frame + 2) % length
//
// The stdlib modules are importable, e.g. rand := import("rand").
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// NewScript compiles src once. name is only used in error messages.
func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("length", 0)
	_ = script.Add("next", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: compile %s: %w", ErrScript, name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Next(current, length int) (int, error) {
	if err := s.compiled.Set("frame", current); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrScript, s.name, err)
	}
	if err := s.compiled.Set("length", length); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrScript, s.name, err)
	}
	// next starts undefined so a run that never assigns it is an error.
	if err := s.compiled.Set("next", nil); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrScript, s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("%w: run %s: %w", ErrScript, s.name, err)
	}

	next := s.compiled.Get("next")
	if next.ValueType() != "int" {
		return 0, fmt.Errorf("%w: %s: next is %s, want int", ErrScript, s.name, next.ValueType())
	}
	return next.Int(), nil
}

func (s *Script) String() string { return "script:" + s.name }
