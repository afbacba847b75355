package stamp

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	ErrClockRead           = errors.New("clock read failed")
	ErrNegativeTimeReading = errors.New("clock returned a negative reading")
	ErrClockMovedBack      = errors.New("clock moved backwards")
)

// ClockReadError reports a failed read of the underlying clock and
// carries the OS error untouched.
type ClockReadError struct {
	Err error
}

func (e *ClockReadError) Error() string {
	return fmt.Sprintf("%v: %v", ErrClockRead, e.Err)
}

func (e *ClockReadError) Unwrap() error {
	return e.Err
}

func (e *ClockReadError) Is(target error) bool {
	return target == ErrClockRead
}

// NegativeTimeReadingError carries the raw reading that came back with a
// negative component. A monotonic clock must never report a negative
// offset from boot, so this is a platform anomaly, not something to
// clamp or retry.
type NegativeTimeReadingError struct {
	Secs  int64
	Nanos int64
}

func (e *NegativeTimeReadingError) Error() string {
	return fmt.Sprintf("%v: secs=%d nanos=%d", ErrNegativeTimeReading, e.Secs, e.Nanos)
}

func (e *NegativeTimeReadingError) Is(target error) bool {
	return target == ErrNegativeTimeReading
}

//go:generate mockgen -destination=mocks/time_source_mock.go -package=mocks -source=clock.go

// TimeSource abstracts the clock feeding the stamp layout.
type TimeSource interface {
	// Tick returns the current instant from the underlying clock.
	Tick() (Inst, error)
}

// MustTick reads the source and panics if the clock cannot be read.
// For call sites that have decided a clock failure is unrecoverable;
// everything else handles the error from Tick.
func MustTick(source TimeSource) Inst {
	inst, err := source.Tick()
	if err != nil {
		panic(err)
	}
	return inst
}

// readClock is the syscall boundary. It passes errno and the raw,
// possibly negative timespec through uncorrected so the sources below
// stay the single point of validation. Tests swap it to simulate
// platform failures.
var readClock = func(clockID int32) (secs int64, nanos int64, err error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockID, &ts); err != nil {
		return 0, 0, err
	}
	return int64(ts.Sec), int64(ts.Nsec), nil
}

// MonotonicClock reads CLOCK_BOOTTIME, which never moves backward and
// is immune to NTP corrections and manual wall-clock changes.
type MonotonicClock struct {
	// init is the instant at which this clock was constructed.
	init Inst
}

// NewMonotonicClock reads the clock once and keeps that instant as the
// construction point. Fails if the initial read fails.
func NewMonotonicClock() (*MonotonicClock, error) {
	c := &MonotonicClock{}
	init, err := c.Tick()
	if err != nil {
		return nil, err
	}
	c.init = init
	return c, nil
}

// MustNewMonotonicClock panics if the initial clock read fails.
func MustNewMonotonicClock() *MonotonicClock {
	c, err := NewMonotonicClock()
	if err != nil {
		panic(err)
	}
	return c
}

// Init returns the instant recorded at construction.
func (c *MonotonicClock) Init() Inst {
	return c.init
}

// ElapsedNanos returns the nanoseconds elapsed since construction.
func (c *MonotonicClock) ElapsedNanos() (uint64, error) {
	now, err := c.Tick()
	if err != nil {
		return 0, err
	}
	return (now.Secs-c.init.Secs)*NanosPerSecond + now.Nanos - c.init.Nanos, nil
}

func (c *MonotonicClock) Tick() (Inst, error) {
	secs, nanos, err := readClock(unix.CLOCK_BOOTTIME)
	if err != nil {
		return Inst{}, &ClockReadError{Err: err}
	}
	if secs < 0 || nanos < 0 {
		return Inst{}, &NegativeTimeReadingError{Secs: secs, Nanos: nanos}
	}
	return NewInst(uint64(secs), uint64(nanos)), nil
}
