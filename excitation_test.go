package g723dec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGenFCBExcitationOutOfRangePulsePosIsZero(t *testing.T) {
	vector := make([]int16, SubframeLen)
	sub := &subframeParams{pulsePos: maxPos[0] + 1000}
	genFCBExcitation(vector, sub, rate6300, 50, 0)
	for _, v := range vector {
		assert.Equal(t, int16(0), v)
	}
}

func TestGenACBExcitationNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var prevExc [PitchMax]int16
		for i := range prevExc {
			prevExc[i] = int16(rapid.IntRange(-1000, 1000).Draw(t, "exc"))
		}
		// pitchLag + adCBLag - 1 must stay within the PitchMax-sized
		// prevExcitation history window (see excitation.go's bounds
		// analysis); unpackBitstream never decodes a pitchLag above 141.
		pitchLag := rapid.IntRange(PitchMin, 141).Draw(t, "lag")
		sub := &subframeParams{adCBLag: rapid.IntRange(0, 3).Draw(t, "adcblag"), adCBGain: 0}
		rate := rate6300
		if rapid.Bool().Draw(t, "rate5300") {
			rate = rate5300
		}

		vector := make([]int16, SubframeLen)
		genACBExcitation(vector, prevExc[:], pitchLag, sub, rate)
		for _, v := range vector {
			assert.GreaterOrEqual(t, int32(v), int32(-32768))
			assert.LessOrEqual(t, int32(v), int32(32767))
		}
	})
}

func TestGenDiracTrainAddsPeriodicCopies(t *testing.T) {
	vector := make([]int16, SubframeLen)
	vector[0] = 100
	genDiracTrain(vector, 20)
	assert.Equal(t, int16(100), vector[0])
	assert.Equal(t, int16(100), vector[20])
	assert.Equal(t, int16(100), vector[40])
}
