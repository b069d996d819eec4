package g723dec

import "log/slog"

// Decoder holds the persistent state of one independent G.723.1 decode
// stream. Create one per logical call/stream; a Decoder must not be shared
// across concurrent goroutines without external synchronization (spec.md
// §5 "Concurrency & resource model": one Decoder, one goroutine at a time).
type Decoder struct {
	st *decoderState

	postfilter bool
	log        *slog.Logger
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithPostfilter enables or disables the cascaded pitch/formant postfilter
// (spec.md §4.6). Enabled by default, matching the reference decoder's
// default behavior.
func WithPostfilter(enabled bool) Option {
	return func(d *Decoder) {
		d.postfilter = enabled
	}
}

// WithLogger overrides the Decoder's logger. The default is slog.Default().
// No third-party logging library is pulled in for this: DESIGN.md records
// why (none of the retrieval pack's example repos exercise a logging
// dependency their other code actually imports, so log/slog — the stdlib's
// own structured logger — is the grounded choice here rather than guessing
// at an unused one).
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.log = logger
	}
}

// NewDecoder constructs a Decoder with its own freshly initialized
// persistent state.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		st:         newDecoderState(),
		postfilter: true,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Reset restores the decoder to its initial post-construction state,
// discarding all pitch/LPC/comfort-noise history.
func (d *Decoder) Reset() {
	d.st.reset()
}

// DecodeFrame decodes one packet into pcm, which must have room for at
// least FrameLen samples. On success n == FrameLen. A packet shorter than
// its declared frame size is the spec's TooSmall case: it is consumed with
// a logged warning and no samples are written (n == 0, err == nil) — this
// is not a Go error because the caller has nothing malformed in its own
// usage, only a short/corrupt wire packet (spec.md §7).
func (d *Decoder) DecodeFrame(packet []byte, pcm []int16) (n int, err error) {
	if len(pcm) < FrameLen {
		return 0, ErrBufferTooSmall
	}
	if len(packet) == 0 {
		return 0, ErrEmptyPacket
	}

	decMode := packet[0] & 0x03
	want := frameSizeBytes[decMode]
	if len(packet) < want {
		d.log.Warn("g723dec: packet shorter than its frame type requires",
			"dec_mode", decMode, "want", want, "got", len(packet))
		return 0, nil
	}

	fp := unpackBitstream(packet[:want])
	decodeFrame(d.st, &fp, pcm[:FrameLen], d.postfilter)
	return FrameLen, nil
}
