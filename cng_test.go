package g723dec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCngRandIsDeterministicFromSeed(t *testing.T) {
	seedA := int32(cngRandomSeed)
	seedB := int32(cngRandomSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, cngRand(&seedA, 1000), cngRand(&seedB, 1000))
	}
}

func TestCngRandStaysWithinBaseScale(t *testing.T) {
	seed := int32(cngRandomSeed)
	for i := 0; i < 50; i++ {
		v := cngRand(&seed, 123)
		assert.GreaterOrEqual(t, v, int32(0))
		assert.Less(t, v, int32(123))
	}
}

func TestSidGainToLSPIndexPiecewise(t *testing.T) {
	assert.Equal(t, int32(0), sidGainToLSPIndex(0))
	assert.Equal(t, int32(15<<6), sidGainToLSPIndex(15))
	assert.Equal(t, int32((16-8)<<7), sidGainToLSPIndex(16))
	assert.Equal(t, int32((31-8)<<7), sidGainToLSPIndex(31))
	assert.Equal(t, int32((32-20)<<8), sidGainToLSPIndex(32))
	assert.Equal(t, int32((63-20)<<8), sidGainToLSPIndex(63))
}

func TestEstimateSIDGainStaysNonNegative(t *testing.T) {
	st := newDecoderState()
	for i := range st.prevExcitation {
		st.prevExcitation[i] = int16((i * 37) % 2000)
	}
	st.curGain = 5000
	assert.GreaterOrEqual(t, estimateSIDGain(st), int32(0))
}

func TestGenerateNoiseStaysInInt16Range(t *testing.T) {
	st := newDecoderState()
	st.curGain = 20000
	var out [PitchMax + FrameLen]int16
	generateNoise(st, out[:])
	for _, v := range out {
		assert.GreaterOrEqual(t, int32(v), int32(-32768))
		assert.LessOrEqual(t, int32(v), int32(32767))
	}
}

func TestGenerateNoiseAdvancesRandomSeed(t *testing.T) {
	st := newDecoderState()
	before := st.cngRandomSeed
	var out [PitchMax + FrameLen]int16
	generateNoise(st, out[:])
	assert.NotEqual(t, before, st.cngRandomSeed)
	assert.Equal(t, st.cngRandomSeed, st.randomSeed)
}

func TestGenerateNoiseUpdatesPrevExcitationFromTail(t *testing.T) {
	st := newDecoderState()
	st.curGain = 8000
	var out [PitchMax + FrameLen]int16
	generateNoise(st, out[:])
	assert.Equal(t, out[FrameLen:FrameLen+PitchMax], st.prevExcitation[:])
}
