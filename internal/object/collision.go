package object

// Phase marks whether a contact started or ended.
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseEnd
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	if p == PhaseEnd {
		return "end"
	}
	return "begin"
}

// Collision is a notification about an unordered pair of entities whose
// contact state changed.
type Collision struct {
	A, B  ID
	Phase Phase
}

// Involves reports whether id is one of the two parties.
func (c Collision) Involves(id ID) bool {
	return c.A == id || c.B == id
}

// CollisionQueue carries notifications from the contact detector to the
// frame core. The producer fills it before a frame; the core drains it
// during that frame. Nothing is carried over to the next frame.
type CollisionQueue struct {
	events []Collision
	spare  []Collision
}

// Push appends notifications to the queue.
func (q *CollisionQueue) Push(c ...Collision) {
	q.events = append(q.events, c...)
}

// Len returns the number of pending notifications.
func (q *CollisionQueue) Len() int {
	return len(q.events)
}

// Drain removes and returns every pending notification in push order.
// The returned slice is only valid until the next call to Drain.
func (q *CollisionQueue) Drain() []Collision {
	out := q.events
	q.events = q.spare[:0]
	q.spare = out
	return out
}
