// Package g723dec implements an ITU-T G.723.1 narrowband speech decoder in
// pure Go.
//
// G.723.1 is a dual-rate speech codec (5.3 and 6.3 kbit/s) built around
// adaptive/fixed-codebook ACELP-style excitation and LSP-quantized LPC
// synthesis. This implementation decodes only — encoding is out of scope.
//
// Every arithmetic step is bit-exact fixed-point: saturating 16/32-bit
// integer math, a specific rounding rule set, a bit-exact square root, and a
// bit-exact LSP-to-LPC polynomial expansion. Deviating from any of these
// desynchronizes decoder state (pitch history, excitation buffer, filter
// memories, comfort-noise RNG) from every other conforming decoder, so
// nothing here uses floating point on the decode path.
//
// # Frame types
//
// Each input packet carries one of four frame types, selected by the low 2
// bits of its first byte:
//   - 24-byte packets: ACTIVE frame at 6.3 kbit/s
//   - 20-byte packets: ACTIVE frame at 5.3 kbit/s
//   - 4-byte packets: SID (comfort-noise) frame
//   - 1-byte packets: untransmitted (silence) frame
//
// # Output
//
// Every successful call to Decoder.DecodeFrame produces exactly 240 signed
// 16-bit PCM samples (30ms at 8kHz, mono).
package g723dec
