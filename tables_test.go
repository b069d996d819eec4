package g723dec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxPosMatchesCombinatorialTableTopRow(t *testing.T) {
	for i := 0; i < Subframes; i++ {
		// C(30, p) = C(29, p) + C(29, p-1) by Pascal's rule.
		want := combinatorialTable[pulses[i]][SubframeLen/GridSize-1] +
			combinatorialTable[pulses[i]-1][SubframeLen/GridSize-1]
		assert.Equal(t, want, int32(maxPos[i]))
	}
}

func TestCosTabEndpoints(t *testing.T) {
	assert.InDelta(t, 16384, cosTab[0], 1)
	assert.InDelta(t, -16384, cosTab[256], 1)
}

func TestCosTabMonotonicDecreasing(t *testing.T) {
	for i := 1; i < len(cosTab); i++ {
		assert.LessOrEqual(t, cosTab[i], cosTab[i-1])
	}
}

func TestFixedCBGainNonNegativeAndIncreasing(t *testing.T) {
	for i := 1; i < GainLevels; i++ {
		assert.GreaterOrEqual(t, fixedCBGain[i-1], int16(0))
		assert.GreaterOrEqual(t, fixedCBGain[i], fixedCBGain[i-1])
	}
}

func TestAdaptiveCBGainTablesSizedPerLevelCount(t *testing.T) {
	assert.Len(t, adaptiveCBGain85, 85*PitchOrder)
	assert.Len(t, adaptiveCBGain170, 170*PitchOrder)
}

func TestBinomialMatchesPascalIdentity(t *testing.T) {
	for n := 1; n < 10; n++ {
		for k := 1; k < n; k++ {
			assert.Equal(t, binomial(n, k), binomial(n-1, k-1)+binomial(n-1, k))
		}
	}
}

func TestPostfilterTblDecaysBelowUnity(t *testing.T) {
	for k := 0; k < LPCOrder; k++ {
		assert.Less(t, int32(postfilterTbl[0][k]), int32(32768))
		assert.Less(t, int32(postfilterTbl[1][k]), int32(32768))
		if k > 0 {
			assert.LessOrEqual(t, postfilterTbl[0][k], postfilterTbl[0][k-1])
			assert.LessOrEqual(t, postfilterTbl[1][k], postfilterTbl[1][k-1])
		}
	}
}

func TestCngBsegIsIncreasing(t *testing.T) {
	for i := 1; i < len(cngBseg); i++ {
		assert.Greater(t, cngBseg[i], cngBseg[i-1])
	}
}
