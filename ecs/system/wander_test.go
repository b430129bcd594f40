package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/navigation"
)

func TestWanderAfterIdleTicks(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})
	ds, err := NewDestinationScript([]byte(`destination := [5, 6]`))
	require.NoError(t, err)
	wander := NewWanderSystem(h.nav, ds, 3, nil)

	nav := h.navOf(t, e)
	for i := 0; i < 2; i++ {
		wander.Update(h.w)
		assert.Equal(t, component.NavIdle, nav.State)
	}
	wander.Update(h.w)
	assert.Equal(t, component.NavRequested, nav.State)
	assert.Equal(t, navigation.Cell{X: 5, Y: 6}, nav.Destination)
	assert.Zero(t, nav.IdleTicks)

	wander.Update(h.w)
	assert.Zero(t, nav.IdleTicks, "busy agents do not count idle ticks")
	assert.Equal(t, uint64(1), nav.Generation)
}

func TestWanderDisabled(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})
	ds, err := NewDestinationScript([]byte(`destination := [5, 6]`))
	require.NoError(t, err)

	wander := NewWanderSystem(h.nav, ds, 0, nil)
	for i := 0; i < 10; i++ {
		wander.Update(h.w)
	}
	assert.Equal(t, component.NavIdle, h.navOf(t, e).State)
}

func TestSpawnSystem(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	ds, err := NewDestinationScript([]byte(`destination := [7, 7]`))
	require.NoError(t, err)
	params := AgentParams{MaxSpeed: 2, MaxForce: 1, InitialSpeed: 0.5}
	spawn := NewSpawnSystem(h.nav, ds, &params, 1, nil)

	spawn.Request(vec(8, 8))
	spawn.RequestRandom(3)
	assert.Equal(t, 4, spawn.Pending())
	spawn.Update(h.w)
	assert.Zero(t, spawn.Pending())

	assert.Equal(t, 4, ecs.Count(h.w, component.BoidComponent.Kind()))
	assert.Equal(t, 4, h.nav.Pending())

	seeds := map[uint64]bool{}
	ecs.ForEach2(h.w, component.BoidComponent.Kind(), component.DnaComponent.Kind(), func(e ecs.Entity, b *component.Boid, dna *component.Dna) {
		assert.Equal(t, 2.0, b.MaxSpeed)
		assert.InDelta(t, 0.5, b.Velocity.Length(), 1e-9)
		seeds[dna.Seed] = true

		tr, ok := ecs.Get(h.w, e, component.TransformComponent.Kind())
		require.True(t, ok)
		assert.True(t, h.nav.Grid().IsWalkable(h.nav.Geometry().WorldToGrid(tr.Vec())))
	})
	assert.Len(t, seeds, 4)

	h.resolve()
	ecs.ForEach(h.w, component.NavigationComponent.Kind(), func(_ ecs.Entity, nav *component.Navigation) {
		assert.Equal(t, component.NavHasPath, nav.State)
	})
}

func TestTelemetryCountsEvents(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.NavigationComponent.Kind(), &component.Navigation{State: component.NavSearching}))

	w.Events().PushNavigation(ecs.NavigationEvent{Entity: e, Kind: ecs.NavigationEventPathFound})
	w.Events().PushNavigation(ecs.NavigationEvent{Entity: e, Kind: ecs.NavigationEventStale})
	w.Events().PushNavigation(ecs.NavigationEvent{Kind: ecs.NavigationEventDeferred, Count: 5})
	w.Events().Push(ecs.Event{Type: "other"})

	tel := NewTelemetrySystem(nil, nil, 1)
	tel.Update(w)

	stats := tel.Stats()
	assert.Equal(t, 1, stats.PathsFound)
	assert.Equal(t, 1, stats.Stale)
	assert.Equal(t, 5, stats.Deferred)
	assert.Equal(t, 1, stats.States[component.NavSearching])
	assert.Zero(t, w.Events().Len())
}
