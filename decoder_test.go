package g723dec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDecoderDefaults(t *testing.T) {
	d := NewDecoder()
	assert.True(t, d.postfilter)
	assert.NotNil(t, d.log)
}

func TestWithPostfilterOption(t *testing.T) {
	d := NewDecoder(WithPostfilter(false))
	assert.False(t, d.postfilter)
}

func TestDecodeFrameRejectsUndersizedOutputBuffer(t *testing.T) {
	d := NewDecoder()
	pcm := make([]int16, FrameLen-1)
	n, err := d.DecodeFrame([]byte{0x03}, pcm)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestDecodeFrameRejectsEmptyPacket(t *testing.T) {
	d := NewDecoder()
	pcm := make([]int16, FrameLen)
	n, err := d.DecodeFrame(nil, pcm)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrEmptyPacket)
}

func TestDecodeFrameUntransmittedSingleByte(t *testing.T) {
	d := NewDecoder()
	pcm := make([]int16, FrameLen)
	n, err := d.DecodeFrame([]byte{0x03}, pcm)
	assert.NoError(t, err)
	assert.Equal(t, FrameLen, n)
}

// A packet shorter than its declared dec_mode's frame size is the TooSmall
// case: it must be consumed without error and without writing any samples,
// and must leave decoder state untouched.
func TestDecodeFrameTooSmallPacketEmitsNoSamples(t *testing.T) {
	d := NewDecoder()
	before := *d.st
	pcm := make([]int16, FrameLen)
	for i := range pcm {
		pcm[i] = 42
	}

	// dec_mode=0 (R6300) declares a 24-byte frame; supply only 2 bytes.
	n, err := d.DecodeFrame([]byte{0x00, 0x01}, pcm)

	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	for _, v := range pcm {
		assert.Equal(t, int16(42), v)
	}
	assert.Equal(t, before, *d.st)
}

func TestDecodeFrameActiveR6300RoundTrip(t *testing.T) {
	d := NewDecoder()
	packet := make([]byte, 24)
	packet[0] = 0x00
	pcm := make([]int16, FrameLen)
	n, err := d.DecodeFrame(packet, pcm)
	assert.NoError(t, err)
	assert.Equal(t, FrameLen, n)
}

func TestResetRestoresInitialState(t *testing.T) {
	d := NewDecoder()
	packet := make([]byte, 24)
	pcm := make([]int16, FrameLen)
	_, _ = d.DecodeFrame(packet, pcm)

	d.Reset()
	fresh := newDecoderState()
	assert.Equal(t, *fresh, *d.st)
}
