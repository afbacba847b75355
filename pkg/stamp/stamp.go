package stamp

import "fmt"

// Stamp is a packed 64-bit identifier. Stamps produced from in-range
// instants sort by creation order without decoding.
type Stamp uint64

// Generation returns the 6-bit generation tag.
func (s Stamp) Generation() uint64 {
	return uint64(s) >> (TimeBits + CounterBits)
}

// TimeField returns the 42-bit time field.
func (s Stamp) TimeField() uint64 {
	return (uint64(s) & TimeMask) >> CounterBits
}

// Counter returns the 16-bit counter field. Stamps from Encode always
// carry zero here; only Issuer-produced stamps populate it.
func (s Stamp) Counter() uint64 {
	return uint64(s) & CounterMask
}

func (s Stamp) String() string {
	return fmt.Sprintf("%016x", uint64(s))
}

// Inst is a point in monotonic time. Clock sources are the sole
// guarantors that both components were non-negative at the boundary;
// an Inst in hand is always valid to encode.
type Inst struct {
	Secs  uint64
	Nanos uint64
}

// NewInst builds an Inst from already-validated components.
func NewInst(secs, nanos uint64) Inst {
	return Inst{Secs: secs, Nanos: nanos}
}

// Stamp packs the instant into the stamp layout with the fixed
// generation and a zero counter.
func (i Inst) Stamp() Stamp {
	return Stamp(Encode(i.Secs, i.Nanos))
}
