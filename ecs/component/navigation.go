package component

import "github.com/waaghals/sim-something/navigation"

// NavigationState is where an agent is in the request/search/follow cycle.
type NavigationState uint8

const (
	// NavIdle has no destination.
	NavIdle NavigationState = iota
	// NavRequested has a request queued but no search started.
	NavRequested
	// NavSearching has a search in flight.
	NavSearching
	// NavHasPath holds a found path waiting to be turned into steering, or already following it.
	NavHasPath
	// NavUnreachable is terminal for the current destination.
	NavUnreachable
)

func (s NavigationState) String() string {
	switch s {
	case NavIdle:
		return "idle"
	case NavRequested:
		return "requested"
	case NavSearching:
		return "searching"
	case NavHasPath:
		return "has_path"
	case NavUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Navigation is the per-agent navigation record.
//
// Generation is bumped on every destination submit. SearchGeneration is the
// generation the in-flight Search was started for; a result whose generation
// no longer matches Generation belongs to a superseded destination.
type Navigation struct {
	State       NavigationState
	Destination navigation.Cell

	Generation       uint64
	Search           *navigation.Search
	SearchGeneration uint64

	// Path is the found grid path, consumed once by the translator.
	Path []navigation.Cell
	Cost uint32

	// IdleTicks counts ticks spent Idle or Unreachable.
	IdleTicks int
}

var NavigationComponent = NewComponent[Navigation]("navigation")
