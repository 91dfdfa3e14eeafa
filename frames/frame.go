package frames

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one loaded image of a sequence. Frames are shared by pointer: the
// Store keeps the canonical list and UI elements hold the same *Frame while
// displaying it.
type Frame struct {
	Key   string
	Index int
	Path  string
	Image *ebiten.Image
}

func (f *Frame) String() string {
	if f == nil {
		return "<nil frame>"
	}
	return fmt.Sprintf("%s[%d]", f.Key, f.Index)
}
