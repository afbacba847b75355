package stamp

// AtomicClock is a thin façade over any TimeSource, giving callers a
// stable now/try-now surface independent of which concrete clock is
// plugged in. "Atomic" means one instant per call; it carries no
// counter and no thread-safety beyond what the wrapped source provides.
type AtomicClock[T TimeSource] struct {
	source T
}

// WithSource wraps an already-constructed TimeSource.
func WithSource[T TimeSource](source T) *AtomicClock[T] {
	return &AtomicClock[T]{source: source}
}

// NewAtomicClock wires the façade to a fresh MonotonicClock.
func NewAtomicClock() (*AtomicClock[*MonotonicClock], error) {
	source, err := NewMonotonicClock()
	if err != nil {
		return nil, err
	}
	return WithSource(source), nil
}

// MustAtomicClock panics if the monotonic clock cannot be constructed.
func MustAtomicClock() *AtomicClock[*MonotonicClock] {
	clock, err := NewAtomicClock()
	if err != nil {
		panic(err)
	}
	return clock
}

// Source returns the wrapped TimeSource.
func (c *AtomicClock[T]) Source() T {
	return c.source
}

// TryNow delegates to the wrapped source's Tick.
func (c *AtomicClock[T]) TryNow() (Inst, error) {
	return c.source.Tick()
}

// Now delegates to the wrapped source and panics on failure.
func (c *AtomicClock[T]) Now() Inst {
	return MustTick(c.source)
}
