package traversal

import "sync/atomic"

// VisitedSet holds one visited flag per vertex. Flags only ever move from
// unvisited to visited and the move is performed with an atomic
// compare-and-swap, so exactly one caller wins the claim on each vertex.
type VisitedSet struct {
	flags  []uint32
	claims int64
}

// NewVisitedSet returns a set of n unvisited vertices.
func NewVisitedSet(n int) *VisitedSet {
	return &VisitedSet{flags: make([]uint32, n)}
}

// Claim marks v as visited. It returns true only for the single caller that
// performed the transition.
func (s *VisitedSet) Claim(v int) bool {
	if atomic.CompareAndSwapUint32(&s.flags[v], 0, 1) {
		atomic.AddInt64(&s.claims, 1)

		return true
	}

	return false
}

// IsVisited reports whether v has been claimed.
func (s *VisitedSet) IsVisited(v int) bool {
	return atomic.LoadUint32(&s.flags[v]) == 1
}

// Claims returns the number of successful claims.
func (s *VisitedSet) Claims() int64 { return atomic.LoadInt64(&s.claims) }

// Len returns the number of vertices tracked by the set.
func (s *VisitedSet) Len() int { return len(s.flags) }

// Snapshot copies the visited flags into a bool slice.
func (s *VisitedSet) Snapshot() []bool {
	out := make([]bool, len(s.flags))
	for v := range s.flags {
		out[v] = atomic.LoadUint32(&s.flags[v]) == 1
	}

	return out
}
