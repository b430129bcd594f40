package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/navigation"
)

func followingAgent(t *testing.T, w *ecs.World, pos, vel cp.Vector, path []cp.Vector) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}))
	require.NoError(t, ecs.Add(w, e, component.BoidComponent.Kind(), &component.Boid{Velocity: vel, MaxSpeed: 1, MaxForce: 0.5}))
	require.NoError(t, ecs.Add(w, e, component.NavigationComponent.Kind(), &component.Navigation{State: component.NavHasPath}))
	require.NoError(t, ecs.Add(w, e, component.FollowPathComponent.Kind(), component.NewFollowPath(path, 2, 4)))
	return e
}

func testParams() *SteeringParams {
	return &SteeringParams{PathWidth: 2, Lookahead: 4, TargetAhead: 4, ArrivalRadius: 5, ArriveTolerance: 1}
}

func TestFollowPathOnPathNoCorrection(t *testing.T) {
	w := ecs.NewWorld()
	e := followingAgent(t, w, vec(5, 0), vec(1, 0), []cp.Vector{vec(0, 0), vec(10, 0), vec(10, 10)})
	require.NoError(t, ecs.Add(w, e, component.SeekComponent.Kind(), &component.Seek{Target: vec(0, 50)}))

	NewFollowPathSystem(testParams()).Update(w)
	NewSeekSystem().Update(w)

	assert.False(t, ecs.Has(w, e, component.SeekComponent.Kind()), "an agent on its path gets no seek")
	b, _ := ecs.Get(w, e, component.BoidComponent.Kind())
	assert.Equal(t, vec(0, 0), b.Acceleration)
}

func TestFollowPathOffPathSeeksAhead(t *testing.T) {
	w := ecs.NewWorld()
	e := followingAgent(t, w, vec(50, 10), vec(1, 0), []cp.Vector{vec(0, 0), vec(100, 0)})

	NewFollowPathSystem(testParams()).Update(w)

	seek, ok := ecs.Get(w, e, component.SeekComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 58, seek.Target.X, 1e-9)
	assert.InDelta(t, 0, seek.Target.Y, 1e-9)
	assert.Zero(t, seek.SlowingRadius)

	NewSeekSystem().Update(w)
	b, _ := ecs.Get(w, e, component.BoidComponent.Kind())
	assert.Less(t, b.Acceleration.Y, 0.0, "pulled back toward the path")
}

func TestFollowPathRestingAgentSeeks(t *testing.T) {
	w := ecs.NewWorld()
	e := followingAgent(t, w, vec(0, 0), vec(0, 0), []cp.Vector{vec(0, 0), vec(100, 0)})

	NewFollowPathSystem(testParams()).Update(w)
	seek, ok := ecs.Get(w, e, component.SeekComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 4, seek.Target.X, 1e-9)
}

func TestFollowPathCullsPassedSegments(t *testing.T) {
	w := ecs.NewWorld()
	e := followingAgent(t, w, vec(10, 20), vec(0, 1), []cp.Vector{vec(0, 0), vec(10, 0), vec(10, 100)})

	NewFollowPathSystem(testParams()).Update(w)

	fp, _ := ecs.Get(w, e, component.FollowPathComponent.Kind())
	assert.Equal(t, 1, fp.Segment)
	assert.Equal(t, []cp.Vector{vec(10, 0), vec(10, 100)}, fp.Remaining())
	assert.False(t, ecs.Has(w, e, component.SeekComponent.Kind()))
}

func TestFollowPathArrivalSlowsDown(t *testing.T) {
	w := ecs.NewWorld()
	e := followingAgent(t, w, vec(97, 0), vec(1, 0), []cp.Vector{vec(0, 0), vec(100, 0)})

	NewFollowPathSystem(testParams()).Update(w)
	seek, ok := ecs.Get(w, e, component.SeekComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, vec(100, 0), seek.Target)
	assert.Equal(t, 5.0, seek.SlowingRadius)
}

func TestFollowPathCompletes(t *testing.T) {
	w := ecs.NewWorld()
	e := followingAgent(t, w, vec(99.5, 0), vec(0.2, 0), []cp.Vector{vec(0, 0), vec(100, 0)})
	require.NoError(t, ecs.Add(w, e, component.SeekComponent.Kind(), &component.Seek{}))

	NewFollowPathSystem(testParams()).Update(w)

	assert.False(t, ecs.Has(w, e, component.FollowPathComponent.Kind()))
	assert.False(t, ecs.Has(w, e, component.SeekComponent.Kind()))
	nav, _ := ecs.Get(w, e, component.NavigationComponent.Kind())
	assert.Equal(t, component.NavIdle, nav.State)
	b, _ := ecs.Get(w, e, component.BoidComponent.Kind())
	assert.Equal(t, vec(0, 0), b.Velocity)

	evts := w.Events().Drain()
	require.Len(t, evts, 1)
	got, ok := evts[0].AsNavigation()
	require.True(t, ok)
	assert.Equal(t, ecs.NavigationEventArrived, got.Kind)
	assert.Equal(t, e, got.Entity)
}

func TestIntegrateSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 1, Y: 1}))
	require.NoError(t, ecs.Add(w, e, component.BoidComponent.Kind(), &component.Boid{
		Velocity:     vec(0.5, 0),
		Acceleration: vec(0.25, 0),
		MaxSpeed:     1,
	}))

	NewIntegrateSystem().Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	b, _ := ecs.Get(w, e, component.BoidComponent.Kind())
	assert.Equal(t, 1.75, tr.X)
	assert.Equal(t, vec(0.75, 0), b.Velocity)
	assert.Equal(t, vec(0, 0), b.Acceleration)
}

func TestAgentWalksToDestination(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})
	telemetry := NewTelemetrySystem(h.nav, nil, 0)

	for _, s := range []ecs.System{
		NewScheduleSearchesSystem(h.nav),
		NewPollSearchesSystem(h.nav),
		NewTranslatePathsSystem(h.nav, h.params),
		NewFollowPathSystem(h.params),
		NewSeekSystem(),
		NewIntegrateSystem(),
		telemetry,
	} {
		h.w.AddSystem(s)
	}

	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 7, Y: 7}))
	nav := h.navOf(t, e)

	arrived := false
	for tick := 0; tick < 2000; tick++ {
		h.w.Update()
		h.nav.Wait()
		if tick > 0 && nav.State == component.NavIdle {
			arrived = true
			break
		}
	}
	require.True(t, arrived, "agent should reach its destination")

	tr, _ := ecs.Get(h.w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 120, tr.X, h.params.ArriveTolerance+0.5)
	assert.InDelta(t, 120, tr.Y, h.params.ArriveTolerance+0.5)

	stats := telemetry.Stats()
	assert.Equal(t, 1, stats.PathsFound)
	assert.Equal(t, 1, stats.Arrived)
	assert.Equal(t, 1, stats.States[component.NavIdle])
	assert.Positive(t, stats.Explored)
}
