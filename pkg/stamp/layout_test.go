package stamp

import "testing"

func TestEncode_Deterministic(t *testing.T) {
	cases := [][2]uint64{
		{0, 0},
		{1, 0},
		{12345, 999_999_999},
		{1_700_000_000, 500_000_000},
	}
	for _, c := range cases {
		if Encode(c[0], c[1]) != Encode(c[0], c[1]) {
			t.Errorf("Encode(%d, %d) not deterministic", c[0], c[1])
		}
	}
}

func TestEncode_MonotonicWithinSecond(t *testing.T) {
	const secs = 12345
	// One tick unit is 1<<TimeShiftBits nanoseconds. Start above the
	// point where the one-second adjustment term stops wrapping.
	prev := Encode(secs, 1_000_000)
	for nanos := uint64(1_000_000 + 1<<TimeShiftBits); nanos < 1_000_000_000; nanos += 50_000_000 {
		cur := Encode(secs, nanos)
		if cur <= prev {
			t.Fatalf("Encode(%d, %d) = %d, not greater than previous %d", secs, nanos, cur, prev)
		}
		prev = cur
	}
}

func TestEncode_MonotonicAcrossSecondsAtFixedNanos(t *testing.T) {
	const nanos = 500_000_000
	prev := Encode(100, nanos)
	for secs := uint64(101); secs < 200; secs++ {
		cur := Encode(secs, nanos)
		if cur <= prev {
			t.Fatalf("Encode(%d, %d) = %d, not greater than previous %d", secs, nanos, cur, prev)
		}
		prev = cur
	}
}

func TestEncode_GenerationFieldFixed(t *testing.T) {
	for _, c := range [][2]uint64{{0, 0}, {42, 123_456}, {1_700_000_000, 500_000_000}} {
		s := Stamp(Encode(c[0], c[1]))
		if s.Generation() != CurrentGeneration {
			t.Errorf("Encode(%d, %d) generation = %d, want %d", c[0], c[1], s.Generation(), CurrentGeneration)
		}
	}
}

func TestEncode_CounterBitsAlwaysZero(t *testing.T) {
	for _, c := range [][2]uint64{{0, 0}, {1, 999_999_999}, {1_700_000_000, 500_000_000}} {
		s := Stamp(Encode(c[0], c[1]))
		if s.Counter() != 0 {
			t.Errorf("Encode(%d, %d) counter = %d, want 0", c[0], c[1], s.Counter())
		}
	}
}

func TestEncode_ZeroInputsWrapAround(t *testing.T) {
	// secs=0, nanos=0 drives the adjustment term through uint64
	// wraparound before the mask truncates it. The result must be
	// well-defined, not a panic.
	got := Encode(0, 0)

	var zero uint64
	want := GenerationInPosition | (((zero - NanosPerSecond) << CounterBits) & TimeMask)
	if got != want {
		t.Errorf("Encode(0, 0) = %#x, want %#x", got, want)
	}
}

func TestEncode_RealisticReadingFitsTimeField(t *testing.T) {
	const secs, nanos = 1_700_000_000, 500_000_000
	const combined = secs<<TimeShiftBits + nanos<<TimeShiftBits - 1_000_000_000

	if combined >= 1<<TimeBits {
		t.Fatalf("test input overflows the time field: %d", uint64(combined))
	}

	tf := Stamp(Encode(secs, nanos)).TimeField()
	if tf == 0 {
		t.Fatal("expected nonzero time field")
	}
	if tf != combined {
		t.Errorf("time field = %d, want %d", tf, uint64(combined))
	}
}

func TestLayout_FieldWidthsTileStamp(t *testing.T) {
	if GenerationBits+TimeBits+CounterBits != 64 {
		t.Fatalf("field widths sum to %d, want 64", GenerationBits+TimeBits+CounterBits)
	}
}
