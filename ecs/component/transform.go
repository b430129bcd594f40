package component

import "github.com/jakecoffman/cp"

// Transform is an agent's position in world space.
type Transform struct {
	X float64
	Y float64
}

func (t *Transform) Vec() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) SetVec(v cp.Vector) {
	t.X = v.X
	t.Y = v.Y
}

var TransformComponent = NewComponent[Transform]("transform")
