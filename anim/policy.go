package anim

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	ErrInvalidInterval = errors.New("anim: interval must be positive")
	ErrUnknownPolicy   = errors.New("anim: unknown frame selection policy")
	ErrScript          = errors.New("anim: script policy failed")
)

// Policy picks the next frame index. length is always positive; current is the
// index chosen by the previous fire (0 for a fresh binding).
type Policy interface {
	Next(current, length int) (int, error)
}

// Sequential advances by one and wraps, so a fresh binding shows 1, 2, ...
type Sequential struct{}

func (Sequential) Next(current, length int) (int, error) {
	return (current + 1) % length, nil
}

func (Sequential) String() string { return "sequential" }

// Random draws a uniform index in [0, length) on every fire, independent of
// earlier draws.
type Random struct {
	rng *rand.Rand
}

// NewRandom uses src for draws; nil uses the process-wide generator.
func NewRandom(src rand.Source) *Random {
	if src == nil {
		return &Random{}
	}
	return &Random{rng: rand.New(src)}
}

func (r *Random) Next(_, length int) (int, error) {
	if r == nil || r.rng == nil {
		return rand.IntN(length), nil
	}
	return r.rng.IntN(length), nil
}

func (*Random) String() string { return "random" }

// ParsePolicy maps a config name to a Policy. script is the tengo source used
// by the "script" policy and ignored otherwise.
func ParsePolicy(name string, script []byte) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sequential":
		return Sequential{}, nil
	case "random":
		return NewRandom(nil), nil
	case "script":
		if len(script) == 0 {
			return nil, fmt.Errorf("%w: empty script source", ErrScript)
		}
		return NewScript("config", script)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
