package system

import (
	"github.com/jakecoffman/cp"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/steering"
)

// IntegrateSystem is the single physical update every behaviour feeds into.
type IntegrateSystem struct{}

func NewIntegrateSystem() *IntegrateSystem {
	return &IntegrateSystem{}
}

func (s *IntegrateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BoidComponent.Kind(), func(e ecs.Entity, t *component.Transform, b *component.Boid) {
		pos, vel := steering.Integrate(t.Vec(), b.Velocity, b.Acceleration, b.MaxSpeed)
		t.SetVec(pos)
		b.Velocity = vel
		b.Acceleration = cp.Vector{}
	})
}
