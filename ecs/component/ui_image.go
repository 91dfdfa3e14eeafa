package component

import "github.com/milk9111/flipbook/frames"

// UIImage is a screen-space image element. Animation bindings overwrite Frame
// on every fire; the render system draws whatever Frame currently holds.
type UIImage struct {
	Frame *frames.Frame
	// Alpha multiplies the frame's opacity, 0..1.
	Alpha float64
}

var UIImageComponent = NewComponent[UIImage]()

// RenderLayer orders UIImage drawing; lower layers draw first. Elements
// without one draw on layer 0.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
