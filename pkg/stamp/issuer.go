package stamp

import "sync"

// tickKey identifies one sub-second tick: a second plus the nanosecond
// reading collapsed to tick units of 2^TimeShiftBits nanoseconds.
type tickKey struct {
	secs uint64
	unit uint64
}

func keyOf(inst Inst) tickKey {
	return tickKey{secs: inst.Secs, unit: inst.Nanos >> TimeShiftBits}
}

func (k tickKey) before(other tickKey) bool {
	return k.secs < other.secs || (k.secs == other.secs && k.unit < other.unit)
}

// Issuer hands out unique stamps by populating the 16 counter bits
// that Encode leaves at zero. Calls within the same tick get an
// incremented counter; when the counter is exhausted the issuer waits
// for the source to advance to the next tick. Safe for concurrent use.
//
// Same-tick ordering comes from the counter; cross-tick ordering is
// whatever the layout gives the underlying instants.
type Issuer struct {
	mu      sync.Mutex
	source  TimeSource
	last    tickKey
	counter uint64
	primed  bool
}

// NewIssuer wraps a TimeSource. A nil source defaults to a fresh
// MonotonicClock; constructing that default can fail.
func NewIssuer(source TimeSource) (*Issuer, error) {
	if source == nil {
		clock, err := NewMonotonicClock()
		if err != nil {
			return nil, err
		}
		source = clock
	}
	return &Issuer{source: source}, nil
}

// Next returns the next unique stamp.
//
// Fails with ErrClockMovedBack if the source reports an instant
// earlier than one it already reported; a monotonic source never
// does, but wall and Redis sources can.
func (iss *Issuer) Next() (Stamp, error) {
	iss.mu.Lock()
	defer iss.mu.Unlock()

	inst, err := iss.source.Tick()
	if err != nil {
		return 0, err
	}
	key := keyOf(inst)

	if iss.primed && key.before(iss.last) {
		return 0, ErrClockMovedBack
	}

	if iss.primed && key == iss.last {
		iss.counter = (iss.counter + 1) & CounterMask
		if iss.counter == 0 {
			// Counter exhausted for this tick; spin until the
			// source reaches the next one.
			for !iss.last.before(key) {
				inst, err = iss.source.Tick()
				if err != nil {
					return 0, err
				}
				key = keyOf(inst)
			}
		}
	} else {
		iss.counter = 0
	}

	iss.last = key
	iss.primed = true
	return inst.Stamp() | Stamp(iss.counter), nil
}
