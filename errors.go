package g723dec

import "errors"

// Sentinel errors returned by Decoder.DecodeFrame (spec.md §7 "Error
// handling design").
var (
	// ErrBufferTooSmall is returned when the caller's pcm buffer cannot
	// hold FrameLen samples. Checked before any state mutation, so a
	// decode that returns this error never touches decoder state
	// (spec.md §7 "OutputBufferUnavailable").
	ErrBufferTooSmall = errors.New("g723dec: output buffer smaller than one decoded frame")

	// ErrEmptyPacket is returned for a zero-length packet, which carries no
	// dec_mode field to dispatch on.
	ErrEmptyPacket = errors.New("g723dec: empty packet")
)
