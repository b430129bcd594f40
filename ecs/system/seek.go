package system

import (
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/steering"
)

// SeekSystem turns Seek intents into forces on the agent's Boid.
type SeekSystem struct{}

func NewSeekSystem() *SeekSystem {
	return &SeekSystem{}
}

func (s *SeekSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.SeekComponent.Kind(), component.TransformComponent.Kind(), component.BoidComponent.Kind(), func(e ecs.Entity, seek *component.Seek, t *component.Transform, b *component.Boid) {
		if seek.SlowingRadius > 0 {
			b.ApplyForce(steering.Arrive(t.Vec(), b.Velocity, seek.Target, b.MaxSpeed, b.MaxForce, seek.SlowingRadius))
			return
		}
		b.ApplyForce(steering.Seek(t.Vec(), b.Velocity, seek.Target, b.MaxSpeed, b.MaxForce))
	})
}
