package component

// Transform places a screen-space element. X and Y are the element's center
// in layout pixels.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
