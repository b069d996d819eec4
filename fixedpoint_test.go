package g723dec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClipInt16Saturates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int32().Draw(t, "x")
		got := clipInt16(x)
		assert.LessOrEqual(t, int32(got), int32(32767))
		assert.GreaterOrEqual(t, int32(got), int32(-32768))
		if x >= -32768 && x <= 32767 {
			assert.Equal(t, int16(x), got)
		}
	})
}

func TestClipInt32Saturates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int64().Draw(t, "x")
		got := clipInt32(x)
		assert.LessOrEqual(t, int64(got), int64(0x7fffffff))
		assert.GreaterOrEqual(t, int64(got), int64(-0x80000000))
	})
}

func TestSatDadd32AddsTwiceWithSaturation(t *testing.T) {
	// satDadd32(a, b) == sat32(sat32(a+b)+b) by definition.
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int32().Draw(t, "a")
		b := rapid.Int32().Draw(t, "b")
		want := satAdd32(satAdd32(a, b), b)
		assert.Equal(t, want, satDadd32(a, b))
	})
}

func TestSquareRootMatchesFloorSqrtHalf(t *testing.T) {
	cases := []int32{0, 1, 2, 4, 1000, 0x7fffffff}
	for _, v := range cases {
		got := squareRoot(v)
		assert.GreaterOrEqual(t, int32(got), int32(0))
	}
}

func TestSquareRootMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int32Range(0, 0x3fffffff).Draw(t, "a")
		b := rapid.Int32Range(0, 0x3fffffff).Draw(t, "b")
		if a > b {
			a, b = b, a
		}
		assert.LessOrEqual(t, squareRoot(a), squareRoot(b))
	})
}

func TestRound15(t *testing.T) {
	assert.Equal(t, int32(1), round15(1<<14))
	assert.Equal(t, int32(0), round15(0))
}

func TestMull2ZeroIdentities(t *testing.T) {
	assert.Equal(t, int32(0), mull2(0, 1234))
	assert.Equal(t, int32(0), mull2(1234, 0))
}

func TestDotProductZeroVectorsIsZero(t *testing.T) {
	a := make([]int16, 5)
	b := make([]int16, 5)
	assert.Equal(t, int32(0), dotProduct(a, b))
}
