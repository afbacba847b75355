package stamp

const (
	// Configuration for the 64-bit stamp, most significant field first:
	// 6 bits: Generation - disjoint ID spaces for independent issuers
	// 42 bits: Time - monotonic seconds/nanoseconds folded to sub-second ticks
	// 16 bits: Counter - reserved for per-tick disambiguation (see Issuer)

	GenerationBits = 6
	TimeBits       = 42
	CounterBits    = 16

	// CurrentGeneration identifies this deployment. Single-deployment
	// setups keep it at zero; independent issuers vary it per build.
	CurrentGeneration uint64 = 0

	// TimeShiftBits is the sub-second resolution shift applied to both
	// the seconds and nanoseconds components before they are combined.
	TimeShiftBits = 10

	NanosPerSecond uint64 = 1_000_000_000

	// EpochSeconds is the difference between 2020-01-01T00:00:00Z and the
	// Unix epoch. Wall-clock sources subtract it before packing so the
	// 42-bit time field spends its range on time since 2020, not 1970.
	// Boot-relative sources report small offsets already and skip it.
	EpochSeconds uint64 = 1_577_836_800

	TimeMask             uint64 = ((1 << TimeBits) - 1) << CounterBits
	CounterMask          uint64 = (1 << CounterBits) - 1
	GenerationInPosition uint64 = CurrentGeneration << (TimeBits + CounterBits)
)

// The three fields must tile the stamp exactly. Either line fails to
// compile (negative constant converted to uint) if the widths drift.
const (
	_ = uint(GenerationBits + TimeBits + CounterBits - 64)
	_ = uint(64 - GenerationBits - TimeBits - CounterBits)
)

// Encode packs a (seconds, nanoseconds) reading into the stamp layout.
//
// Both components are shifted by TimeShiftBits, then combined as
// shiftedSecs + (shiftedNanos - NanosPerSecond): the nanosecond
// contribution is an adjustment term offset by one full second of
// shifted units, folded additively into the seconds contribution.
// The arithmetic is unsigned and wraps; for nanos below ~977k the
// intermediate goes "negative" and relies on uint64 wraparound before
// the mask discards the overflow. That is intentional: Encode has no
// error path and truncates anything beyond the 42-bit time field.
//
// The counter bits are always emitted as zero. Callers that need
// per-tick uniqueness go through an Issuer instead.
func Encode(secs, nanos uint64) uint64 {
	shiftedSecs := secs << TimeShiftBits
	shiftedNanos := nanos << TimeShiftBits
	inPosition := (shiftedSecs + (shiftedNanos - NanosPerSecond)) << CounterBits
	return GenerationInPosition | (inPosition & TimeMask)
}
