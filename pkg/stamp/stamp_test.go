package stamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStamp_FieldAccessors(t *testing.T) {
	const (
		gen     = uint64(0b101010)
		tf      = uint64(0x2AB_BCDE_F012)
		counter = uint64(0xBEEF)
	)
	s := Stamp(gen<<(TimeBits+CounterBits) | tf<<CounterBits | counter)

	assert.Equal(t, gen, s.Generation())
	assert.Equal(t, tf, s.TimeField())
	assert.Equal(t, counter, s.Counter())
}

func TestStamp_String(t *testing.T) {
	assert.Equal(t, "0000000000000000", Stamp(0).String())
	assert.Equal(t, "00000000deadbeef", Stamp(0xdeadbeef).String())
	assert.Len(t, Stamp(1<<63).String(), 16)
}

func TestInst_StampMatchesEncode(t *testing.T) {
	inst := NewInst(1_700_000_000, 500_000_000)
	assert.Equal(t, Stamp(Encode(1_700_000_000, 500_000_000)), inst.Stamp())

	var zero Inst
	assert.Equal(t, Stamp(Encode(0, 0)), zero.Stamp())
}
