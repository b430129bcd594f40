package navigation

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/waaghals/sim-something/common"
)

// DefaultTieBreak is the upper bound of the per-edge perturbation.
const DefaultTieBreak uint32 = 10

// Octile is the A* heuristic for eight-connected moves with integer costs.
func Octile(from, to Cell) uint32 {
	dx := common.AbsDiff(from.X, to.X)
	dy := common.AbsDiff(from.Y, to.Y)
	hi, lo := dx, dy
	if lo > hi {
		hi, lo = lo, hi
	}
	return common.StraightCost*hi + (common.DiagonalCost-common.StraightCost)*lo
}

// TieBreaker returns a stable value in [0, max] for (c, seed). The same inputs
// give the same value across runs and processes.
func TieBreaker(c Cell, seed uint64, max uint32) uint32 {
	if max == 0 {
		return 0
	}
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:4], c.X)
	binary.LittleEndian.PutUint32(buf[4:8], c.Y)
	binary.LittleEndian.PutUint64(buf[8:16], seed)
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return uint32(h.Sum64() % uint64(max+1))
}
