package mode

// Rung maps every count up to and including Max to Value.
type Rung[T any] struct {
	Max   int
	Value T
}

// Ladder is an ordered threshold table: the first rung whose Max is at least
// the count wins, and counts past the last rung get Above.
type Ladder[T any] struct {
	Rungs []Rung[T]
	Above T
}

// Lookup returns the value for count. Negative counts read as 0.
func (l Ladder[T]) Lookup(count int) T {
	if count < 0 {
		count = 0
	}
	for _, r := range l.Rungs {
		if count <= r.Max {
			return r.Value
		}
	}
	return l.Above
}
