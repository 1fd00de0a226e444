package traversal

import "sync"

// Static and compile-time checks to ensure Queue and Stack implement the
// Frontier interface.
var (
	_ Frontier = (*Queue)(nil)
	_ Frontier = (*Stack)(nil)
)

// Frontier is implemented by the shared collections that hold vertices which
// have been discovered but not yet expanded. Implementations must be safe for
// concurrent use.
type Frontier interface {
	// Push adds a vertex to the frontier.
	Push(v int)

	// PushAll adds a batch of vertices to the frontier under a single lock
	// acquisition.
	PushAll(vs []int)

	// Pop removes the next vertex from the frontier. It returns false when
	// the frontier is empty.
	Pop() (int, bool)

	// Len returns the number of pending vertices.
	Len() int
}

// Queue is a FIFO frontier used by breadth-first traversals.
type Queue struct {
	mu    sync.Mutex
	items []int
	head  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Push appends v at the back of the queue.
func (q *Queue) Push(v int) {
	q.mu.Lock()

	q.items = append(q.items, v)

	q.mu.Unlock()
}

// PushAll appends vs at the back of the queue, preserving their order.
func (q *Queue) PushAll(vs []int) {
	if len(vs) == 0 {
		return
	}

	q.mu.Lock()

	q.items = append(q.items, vs...)

	q.mu.Unlock()
}

// Pop removes the vertex at the front of the queue.
func (q *Queue) Pop() (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == len(q.items) {
		return 0, false
	}

	v := q.items[q.head]
	q.head++

	// Once drained, rewind so the backing array gets re-used by the next
	// level instead of growing forever.
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	return v, true
}

// Len returns the number of queued vertices.
func (q *Queue) Len() int {
	q.mu.Lock()

	n := len(q.items) - q.head

	q.mu.Unlock()

	return n
}

// Stack is a LIFO frontier used by depth-first traversals.
type Stack struct {
	mu    sync.Mutex
	items []int
}

// NewStack returns an empty stack.
func NewStack() *Stack { return &Stack{} }

// Push places v on top of the stack.
func (s *Stack) Push(v int) {
	s.mu.Lock()

	s.items = append(s.items, v)

	s.mu.Unlock()
}

// PushAll places vs on top of the stack; the last element of vs ends up on
// top.
func (s *Stack) PushAll(vs []int) {
	if len(vs) == 0 {
		return
	}

	s.mu.Lock()

	s.items = append(s.items, vs...)

	s.mu.Unlock()
}

// Pop removes the vertex on top of the stack.
func (s *Stack) Pop() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := len(s.items)
	if size == 0 {
		return 0, false
	}

	v := s.items[size-1]
	s.items = s.items[:size-1]

	return v, true
}

// Len returns the number of stacked vertices.
func (s *Stack) Len() int {
	s.mu.Lock()

	n := len(s.items)

	s.mu.Unlock()

	return n
}
