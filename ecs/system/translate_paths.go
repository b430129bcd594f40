package system

import (
	"github.com/jakecoffman/cp"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
)

// TranslatePathsSystem turns found grid paths into world-space FollowPaths.
type TranslatePathsSystem struct {
	nav    *Navigation
	params *SteeringParams
}

func NewTranslatePathsSystem(nav *Navigation, params *SteeringParams) *TranslatePathsSystem {
	return &TranslatePathsSystem{nav: nav, params: params}
}

func (s *TranslatePathsSystem) Update(w *ecs.World) {
	if s == nil || s.nav == nil || s.params == nil || w == nil {
		return
	}
	geo := s.nav.geometry

	ecs.ForEach2(w, component.NavigationComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, nav *component.Navigation, t *component.Transform) {
		if nav.State != component.NavHasPath || len(nav.Path) == 0 {
			return
		}

		points := make([]cp.Vector, 0, len(nav.Path)+1)
		if len(nav.Path) == 1 {
			// Already on the goal tile: walk from where we stand to its centre.
			points = append(points, t.Vec())
		}
		for _, c := range nav.Path {
			points = append(points, geo.GridToWorld(c))
		}
		nav.Path = nil

		fp := component.NewFollowPath(points, s.params.PathWidth, s.params.Lookahead)
		_ = ecs.Add(w, e, component.FollowPathComponent.Kind(), fp)
	})
}
