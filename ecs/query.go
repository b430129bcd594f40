package ecs

// intersectIDs returns ids present in both stores, iterating the smaller one.
func intersectIDs(a, b store) []int {
	ai, bi := a.ids(), b.ids()
	if len(ai) > len(bi) {
		ai, b = bi, a
	}
	out := make([]int, 0, len(ai))
	for _, id := range ai {
		if b.has(id) {
			out = append(out, id)
		}
	}
	return out
}
