package system

import (
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/steering"
)

const restingSpeed = 1e-6

// FollowPathSystem decides each tick whether an agent on a FollowPath needs
// a corrective Seek, and finishes the path once the agent is at its end.
type FollowPathSystem struct {
	params *SteeringParams
}

func NewFollowPathSystem(params *SteeringParams) *FollowPathSystem {
	return &FollowPathSystem{params: params}
}

func (s *FollowPathSystem) Update(w *ecs.World) {
	if s == nil || s.params == nil || w == nil {
		return
	}
	p := *s.params

	ecs.ForEach3(w, component.FollowPathComponent.Kind(), component.TransformComponent.Kind(), component.BoidComponent.Kind(), func(e ecs.Entity, fp *component.FollowPath, t *component.Transform, b *component.Boid) {
		pos := t.Vec()
		end := fp.End()

		if pos.Distance(end) <= p.ArriveTolerance {
			s.arrive(w, e)
			return
		}

		path := fp.Remaining()
		future := steering.Anticipate(pos, b.Velocity, fp.Lookahead)
		closest, seg, dist := steering.ClosestPoint(path, future)
		if seg > 0 {
			fp.Segment += seg
			path = fp.Remaining()
			closest, seg, dist = steering.ClosestPoint(path, future)
		}

		if p.ArrivalRadius > 0 && steering.Remaining(path, seg, closest) <= p.ArrivalRadius {
			addSeek(w, e, component.Seek{Target: end, SlowingRadius: p.ArrivalRadius})
			return
		}

		// A resting agent always gets a seek, or it would never start moving.
		if b.Velocity.Length() > restingSpeed && steering.OnPath(fp.Width, dist) {
			ecs.Remove(w, e, component.SeekComponent.Kind())
			return
		}

		target := steering.Advance(path, seg, closest, p.TargetAhead)
		addSeek(w, e, component.Seek{Target: target})
	})
}

func (s *FollowPathSystem) arrive(w *ecs.World, e ecs.Entity) {
	stopAgent(w, e)
	if nav, ok := ecs.Get(w, e, component.NavigationComponent.Kind()); ok && nav.State == component.NavHasPath {
		nav.State = component.NavIdle
		nav.IdleTicks = 0
	}
	w.Events().PushNavigation(ecs.NavigationEvent{Entity: e, Kind: ecs.NavigationEventArrived})
}

func addSeek(w *ecs.World, e ecs.Entity, seek component.Seek) {
	if cur, ok := ecs.Get(w, e, component.SeekComponent.Kind()); ok {
		*cur = seek
		return
	}
	_ = ecs.Add(w, e, component.SeekComponent.Kind(), &seek)
}
