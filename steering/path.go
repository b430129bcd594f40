// Package steering turns a polyline into per-tick forces for a point-mass agent.
package steering

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ClosestPoint returns the point of path nearest to from, the index of the
// segment it lies on and its distance. Each segment contributes its scalar
// projection clamped to the segment. The scan stops at the first segment that
// is farther than the previous one, so on a winding path it finds the nearest
// point of the stretch starting at path[0] rather than the global minimum.
func ClosestPoint(path []cp.Vector, from cp.Vector) (cp.Vector, int, float64) {
	if len(path) == 0 {
		return from, -1, math.Inf(1)
	}
	if len(path) == 1 {
		return path[0], 0, path[0].Distance(from)
	}

	best := path[0]
	bestSeg := 0
	bestDist := math.MaxFloat64
	last := math.MaxFloat64
	for i := 0; i < len(path)-1; i++ {
		p := projectOnSegment(path[i], path[i+1], from)
		d := p.Distance(from)
		if last < d {
			break
		}
		last = d
		if d < bestDist {
			best, bestSeg, bestDist = p, i, d
		}
	}
	return best, bestSeg, bestDist
}

// OnPath reports whether a point at distance from the path is within width.
func OnPath(width, distance float64) bool {
	return distance <= width
}

// Advance walks ahead along path from point, which lies on segment seg,
// spilling into later segments. It stops at the final point.
func Advance(path []cp.Vector, seg int, point cp.Vector, ahead float64) cp.Vector {
	if len(path) == 0 {
		return point
	}
	if seg < 0 {
		seg = 0
	}
	for ; seg < len(path)-1 && ahead > 0; seg++ {
		end := path[seg+1]
		remaining := end.Distance(point)
		if ahead <= remaining {
			return point.Add(direction(point, end).Mult(ahead))
		}
		ahead -= remaining
		point = end
	}
	if ahead > 0 {
		return path[len(path)-1]
	}
	return point
}

// Remaining returns the path length from point on segment seg to the end.
func Remaining(path []cp.Vector, seg int, point cp.Vector) float64 {
	if seg < 0 || seg >= len(path)-1 {
		if len(path) == 0 {
			return 0
		}
		return point.Distance(path[len(path)-1])
	}
	total := point.Distance(path[seg+1])
	for i := seg + 1; i < len(path)-1; i++ {
		total += path[i].Distance(path[i+1])
	}
	return total
}

func projectOnSegment(a, b, p cp.Vector) cp.Vector {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a.Add(ab.Mult(t))
}

func direction(from, to cp.Vector) cp.Vector {
	return normalize(to.Sub(from))
}

func normalize(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

func truncate(v cp.Vector, max float64) cp.Vector {
	if max <= 0 {
		return cp.Vector{}
	}
	l := v.Length()
	if l <= max {
		return v
	}
	return v.Mult(max / l)
}
