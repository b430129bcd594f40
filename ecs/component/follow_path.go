package component

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// FollowPath is a world-space polyline an agent steers along.
// Width is the corridor half-width; Lookahead is how far ahead of the agent
// the closest-point query is made.
type FollowPath struct {
	Path      []cp.Vector
	Width     float64
	Lookahead float64
	// Segment is the first segment not yet passed. Segments before it are culled.
	Segment int
}

// NewFollowPath panics when given fewer than two points.
func NewFollowPath(points []cp.Vector, width, lookahead float64) *FollowPath {
	if len(points) < 2 {
		panic(fmt.Sprintf("component: follow path needs at least 2 points, got %d", len(points)))
	}
	return &FollowPath{
		Path:      points,
		Width:     width,
		Lookahead: lookahead,
	}
}

// Remaining returns the uncut tail of the path, starting at Segment.
func (f *FollowPath) Remaining() []cp.Vector {
	if f.Segment <= 0 {
		return f.Path
	}
	if f.Segment >= len(f.Path)-1 {
		return f.Path[len(f.Path)-2:]
	}
	return f.Path[f.Segment:]
}

// End is the final point of the path.
func (f *FollowPath) End() cp.Vector {
	return f.Path[len(f.Path)-1]
}

var FollowPathComponent = NewComponent[FollowPath]("follow_path")
