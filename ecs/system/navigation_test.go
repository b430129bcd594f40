package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/navigation"
)

func TestSubmitAndResolvePath(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})

	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 7, Y: 7}))
	nav := h.navOf(t, e)
	assert.Equal(t, component.NavRequested, nav.State)
	assert.Equal(t, uint64(1), nav.Generation)
	assert.Equal(t, 1, h.nav.Pending())

	NewScheduleSearchesSystem(h.nav).Update(h.w)
	assert.Equal(t, component.NavSearching, nav.State)
	assert.NotNil(t, nav.Search)
	assert.Zero(t, h.nav.Pending())

	h.nav.Wait()
	NewPollSearchesSystem(h.nav).Update(h.w)
	require.Equal(t, component.NavHasPath, nav.State)
	assert.Nil(t, nav.Search)
	assert.Len(t, nav.Path, 8)
	assert.Equal(t, []ecs.NavigationEventKind{ecs.NavigationEventPathFound}, h.events())

	NewTranslatePathsSystem(h.nav, h.params).Update(h.w)
	fp, ok := ecs.Get(h.w, e, component.FollowPathComponent.Kind())
	require.True(t, ok)
	require.Len(t, fp.Path, 8)
	assert.Equal(t, vec(8, 8), fp.Path[0])
	assert.Equal(t, vec(120, 120), fp.End())
	assert.Equal(t, h.params.PathWidth, fp.Width)
	assert.Nil(t, nav.Path, "the found path is consumed once")
}

func TestStaleResultIsDiscarded(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})

	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 7, Y: 0}))
	NewScheduleSearchesSystem(h.nav).Update(h.w)
	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 0, Y: 7}))

	nav := h.navOf(t, e)
	assert.Equal(t, component.NavRequested, nav.State)
	h.nav.Wait()
	NewPollSearchesSystem(h.nav).Update(h.w)

	assert.Equal(t, component.NavRequested, nav.State, "the newer request is still queued")
	assert.Nil(t, nav.Path)
	assert.Equal(t, []ecs.NavigationEventKind{ecs.NavigationEventStale}, h.events())

	h.resolve()
	require.Equal(t, component.NavHasPath, nav.State)
	assert.Equal(t, navigation.Cell{X: 0, Y: 7}, nav.Path[len(nav.Path)-1])
}

func TestSupersededInFlightSearchIsReplaced(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})

	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 7, Y: 0}))
	NewScheduleSearchesSystem(h.nav).Update(h.w)
	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 0, Y: 7}))
	NewScheduleSearchesSystem(h.nav).Update(h.w)

	nav := h.navOf(t, e)
	assert.Equal(t, uint64(2), nav.SearchGeneration)
	h.nav.Wait()
	NewPollSearchesSystem(h.nav).Update(h.w)
	require.Equal(t, component.NavHasPath, nav.State)
	assert.Equal(t, navigation.Cell{X: 0, Y: 7}, nav.Path[len(nav.Path)-1])
}

func TestUnreachableDestination(t *testing.T) {
	grid := openGrid(8, 8)
	for y := uint32(0); y < 8; y++ {
		require.NoError(t, grid.SetTile(navigation.Cell{X: 4, Y: y}, navigation.TileWall))
	}
	h := newHarness(t, grid)
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})
	require.NoError(t, ecs.Add(h.w, e, component.SeekComponent.Kind(), &component.Seek{Target: vec(1, 1)}))
	b, _ := ecs.Get(h.w, e, component.BoidComponent.Kind())
	b.Velocity = vec(1, 0)

	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 7, Y: 7}))
	h.resolve()

	nav := h.navOf(t, e)
	assert.Equal(t, component.NavUnreachable, nav.State)
	assert.False(t, ecs.Has(h.w, e, component.SeekComponent.Kind()))
	assert.False(t, ecs.Has(h.w, e, component.FollowPathComponent.Kind()))
	assert.Equal(t, vec(0, 0), b.Velocity)
	assert.Equal(t, []ecs.NavigationEventKind{ecs.NavigationEventUnreachable}, h.events())

	// Terminal: nothing is retried.
	h.resolve()
	assert.Equal(t, component.NavUnreachable, nav.State)
	assert.Empty(t, h.events())
}

func TestOutOfBoundsResolvesWithoutSearch(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})

	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 3, Y: 3}))
	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 100, Y: 3}))
	assert.Zero(t, h.nav.Pending(), "the earlier request is withdrawn")

	nav := h.navOf(t, e)
	assert.Equal(t, component.NavSearching, nav.State)
	NewPollSearchesSystem(h.nav).Update(h.w)
	assert.Equal(t, component.NavUnreachable, nav.State)
	assert.Zero(t, h.nav.Solver().Pool().Started())
}

func TestSubmitDestinationErrors(t *testing.T) {
	h := newHarness(t, openGrid(4, 4))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})
	ecs.DestroyEntity(h.w, e)
	require.ErrorIs(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 1, Y: 1}), component.ErrEntityNotAlive)

	bare := ecs.CreateEntity(h.w)
	require.Error(t, h.nav.SubmitDestination(h.w, bare, navigation.Cell{X: 1, Y: 1}))
}

func TestSingleCellPathGetsTwoPoints(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 3, Y: 3})
	tr, _ := ecs.Get(h.w, e, component.TransformComponent.Kind())
	tr.X += 3

	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 3, Y: 3}))
	h.resolve()
	NewTranslatePathsSystem(h.nav, h.params).Update(h.w)

	fp, ok := ecs.Get(h.w, e, component.FollowPathComponent.Kind())
	require.True(t, ok)
	require.Len(t, fp.Path, 2)
	assert.Equal(t, vec(59, 56), fp.Path[0], "starts where the agent stands")
	assert.Equal(t, vec(56, 56), fp.Path[1])
}

func TestReplaceGridKeepsRunningSearches(t *testing.T) {
	h := newHarness(t, openGrid(8, 8))
	e := h.agentAt(t, navigation.Cell{X: 0, Y: 0})
	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 7, Y: 0}))
	NewScheduleSearchesSystem(h.nav).Update(h.w)

	walled := openGrid(8, 8)
	for y := uint32(0); y < 8; y++ {
		require.NoError(t, walled.SetTile(navigation.Cell{X: 4, Y: y}, navigation.TileWall))
	}
	old := h.nav.Mesh()
	h.nav.ReplaceGrid(walled)
	assert.NotSame(t, old, h.nav.Mesh())

	h.nav.Wait()
	NewPollSearchesSystem(h.nav).Update(h.w)
	assert.Equal(t, component.NavHasPath, h.navOf(t, e).State, "search started on the old mesh")

	require.NoError(t, h.nav.SubmitDestination(h.w, e, navigation.Cell{X: 7, Y: 0}))
	h.resolve()
	assert.Equal(t, component.NavUnreachable, h.navOf(t, e).State)
}
