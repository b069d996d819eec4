package g723dec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestReadBitsLSBFirst(t *testing.T) {
	// byte 0 = 0b10110010: bit0=0, bit1=1, bit2=0, bit3=0, bit4=1, bit5=1, bit6=0, bit7=1
	r := newBitReader([]byte{0b10110010})
	assert.Equal(t, uint32(0), r.readBits(1))
	assert.Equal(t, uint32(1), r.readBits(1))
	assert.Equal(t, uint32(0), r.readBits(1))
	assert.Equal(t, uint32(0), r.readBits(1))
	assert.Equal(t, uint32(1), r.readBits(1))
}

func TestReadBitsAcrossByteBoundary(t *testing.T) {
	r := newBitReader([]byte{0xff, 0x00})
	got := r.readBits(12)
	assert.Equal(t, uint32(0x0ff), got)
}

func TestReadBitsPastEndReturnsZero(t *testing.T) {
	r := newBitReader([]byte{0x01})
	r.readBits(8)
	assert.Equal(t, uint32(0), r.readBits(8))
}

func TestSkipBitsAdvancesPosition(t *testing.T) {
	r := newBitReader([]byte{0xff})
	r.skipBits(4)
	assert.Equal(t, uint32(0x0f), r.readBits(4))
}

func TestBitsLeft(t *testing.T) {
	r := newBitReader([]byte{0x00, 0x00})
	assert.Equal(t, 16, r.bitsLeft())
	r.readBits(3)
	assert.Equal(t, 13, r.bitsLeft())
}

func TestReadBitsNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "data")
		r := newBitReader(data)
		n := rapid.IntRange(0, 64).Draw(t, "n")
		_ = r.readBits(n)
	})
}
