package g723dec

// Frame geometry and codec-wide constants (spec.md §3).
const (
	FrameLen    = 240 // samples per decoded frame (30ms @ 8kHz)
	SubframeLen = 60  // samples per subframe
	Subframes   = 4   // subframes per frame
	LPCOrder    = 10
	PitchMax    = 145
	PitchMin    = 18
	GridSize    = 2
	PulseMax    = 6
	GainLevels  = 24
	LSPBands    = 3
	PitchOrder  = 5 // adaptive codebook FIR tap count

	cngRandomSeed = 12345
)

// frameType tags the decoded-per-packet frame category.
type frameType int

const (
	frameActive frameType = iota
	frameSID
	frameUntransmitted
)

func (t frameType) String() string {
	switch t {
	case frameActive:
		return "active"
	case frameSID:
		return "sid"
	case frameUntransmitted:
		return "untransmitted"
	default:
		return "unknown"
	}
}

// bitrate distinguishes the two ACTIVE-frame coding rates.
type bitrate int

const (
	rate6300 bitrate = iota
	rate5300
)

// frameSizeBytes is indexed by the 2-bit dec_mode field of byte 0.
var frameSizeBytes = [4]int{24, 20, 4, 1}

// subframeParams holds the decoded per-subframe fields (spec.md §3).
type subframeParams struct {
	adCBLag    int
	adCBGain   int
	diracTrain int
	pulseSign  int
	gridIndex  int
	ampIndex   int
	pulsePos   int
}

// frameParams is the decoded-per-frame parameter bundle; consumed and
// discarded once the frame driver has acted on it.
type frameParams struct {
	kind     frameType
	rate     bitrate
	lspIndex [LSPBands + 1]uint8 // index 3 unused; bands map to indices 0..2
	pitchLag [2]int
	subframe [Subframes]subframeParams

	bad bool // true if unpacking hit a reserved/out-of-range field
}

// decoderState is the persistent mutable state bundle that survives across
// frames (spec.md §3). A Decoder owns exactly one of these; nothing here is
// shared or aliased across Decoder instances.
type decoderState struct {
	prevLSP [LPCOrder]int16
	sidLSP  [LPCOrder]int16

	prevExcitation [PitchMax]int16

	// firMem/iirMem carry the formant postfilter's zero/pole-filter memory
	// across frame boundaries (spec.md §4.6): firMem is plain signal
	// history, iirMem the filter's own Q16 fixed-point state (so that
	// iirFilter's feedback tap reads back the same accumulator precision
	// it wrote, not a rounded int16 copy of it).
	firMem [LPCOrder]int16
	iirMem [LPCOrder]int32

	pastFrameType frameType
	lastRate      bitrate
	erasedFrames  int

	interpGain     int32
	interpIndex    int
	sidGain        int32
	curGain        int32
	reflectionCoef int32
	pfGain         int32

	randomSeed    int32
	cngRandomSeed int32

	// lastLPC holds the four subframes' worth of synthesis LPC
	// coefficients computed this frame, reused by the postfilter so it
	// filters with the exact same coefficients synthesis used.
	lastLPC [Subframes * LPCOrder]int16

	// audio is the working synthesis scratch: LPCOrder history samples
	// followed by FrameLen freshly synthesized samples.
	audio [FrameLen + LPCOrder]int16
}

func newDecoderState() *decoderState {
	st := &decoderState{
		pastFrameType: frameSID,
		pfGain:        1 << 12,
		cngRandomSeed: cngRandomSeed,
	}
	copy(st.prevLSP[:], dcLSP[:])
	copy(st.sidLSP[:], dcLSP[:])
	return st
}

func (st *decoderState) reset() {
	*st = *newDecoderState()
}
