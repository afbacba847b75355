package stamp

import "golang.org/x/sys/unix"

// WallClock reads CLOCK_REALTIME and reports seconds relative to
// EpochSeconds, so the 42-bit time field covers time since 2020
// instead of burning range on the five decades before it. Unlike
// MonotonicClock it is subject to NTP corrections and manual time
// changes; prefer the monotonic source unless stamps must be
// comparable across hosts.
type WallClock struct{}

func NewWallClock() *WallClock {
	return &WallClock{}
}

func (c *WallClock) Tick() (Inst, error) {
	secs, nanos, err := readClock(unix.CLOCK_REALTIME)
	if err != nil {
		return Inst{}, &ClockReadError{Err: err}
	}
	if secs < 0 || nanos < 0 {
		return Inst{}, &NegativeTimeReadingError{Secs: secs, Nanos: nanos}
	}
	// A wall clock sitting before the stamp epoch would go negative
	// after adjustment; surface it as the reading being negative.
	if uint64(secs) < EpochSeconds {
		return Inst{}, &NegativeTimeReadingError{Secs: secs - int64(EpochSeconds), Nanos: nanos}
	}
	return NewInst(uint64(secs)-EpochSeconds, uint64(nanos)), nil
}
