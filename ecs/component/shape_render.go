package component

import "image/color"

// ShapeRender draws an entity as a primitive at its transform. Radius > 0
// draws a circle, otherwise a Width x Height rectangle centred on the
// position.
type ShapeRender struct {
	Radius float64
	Width  float64
	Height float64
	Color  color.Color
	Hidden bool
}

var ShapeRenderComponent = NewComponent[ShapeRender]()
