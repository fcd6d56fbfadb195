package pycore

// recursionGuard tracks the identities of inputs currently being validated by
// recursive validators in one top-level call. Inputs without a stable
// reference identity never enter the guard.
//
// Membership before descent means the input cycles back through the schema:
// the descent is replaced by a recursion_loop error instead of recursing
// unboundedly. Insert and remove are kept symmetric on every exit path so
// sibling branches see the pre-call state.
type recursionGuard map[uintptr]struct{}

func (g recursionGuard) contains(id uintptr) bool {
	_, ok := g[id]
	return ok
}

func (g recursionGuard) insert(id uintptr) { g[id] = struct{}{} }

func (g recursionGuard) remove(id uintptr) { delete(g, id) }
