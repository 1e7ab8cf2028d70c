package sim

// trailDepth is how many recent operations a violation report carries.
const trailDepth = 8

// opTrail is a ring of the most recent operations in an episode.
type opTrail struct {
	buf  []Op
	next int
	full bool
}

func newTrail(depth int) *opTrail {
	return &opTrail{buf: make([]Op, depth)}
}

func (t *opTrail) push(op Op) {
	t.buf[t.next] = op
	t.next = (t.next + 1) % len(t.buf)
	if t.next == 0 {
		t.full = true
	}
}

// ops returns the recorded operations, oldest first.
func (t *opTrail) ops() []Op {
	if !t.full {
		return append([]Op{}, t.buf[:t.next]...)
	}
	out := make([]Op, 0, len(t.buf))
	out = append(out, t.buf[t.next:]...)
	out = append(out, t.buf[:t.next]...)
	return out
}
