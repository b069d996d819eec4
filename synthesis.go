package g723dec

// weightedVectorSum and lpSynthesisFilter are the two ACELP utility
// primitives spec.md §6 treats as "borrowed" from an external ACELP
// helper layer. No such layer exists as a standalone importable Go
// library (this pair of functions is specific enough, and small enough,
// that no third-party package in the retrieval pack or the wider Go
// ecosystem supplies it — see DESIGN.md), so they are implemented here as
// small internal helpers matching the contracts given in spec.md §6
// exactly, in the same "one function per fixed-point primitive" style as
// the rest of this package.

// weightedVectorSum computes dst[i] = clipInt16((a[i]*wa + b[i]*wb + rnd)
// >> shift) for i in [0, len(dst)).
func weightedVectorSum(dst, a, b []int16, wa, wb, rnd int32, shift uint) {
	n := len(dst)
	for i := 0; i < n; i++ {
		v := int32(a[i])*wa + int32(b[i])*wb + rnd
		dst[i] = clipInt16(v >> shift)
	}
}

// lpSynthesisFilter runs the all-pole LP synthesis recursion
//
//	y[i] = src[i] - sum_{k=0}^{order-1} lpc[k]*y[i-k-1] / (1<<12)
//
// where y[i] is dst[order+i]: dst starts with `order` already-populated
// history samples and the n output samples follow them, matching the
// reference's in-place history-prefixed buffer convention.
func lpSynthesisFilter(dst []int16, lpc *[LPCOrder]int16, src []int16, n int) {
	for i := 0; i < n; i++ {
		var acc int64
		for k := 0; k < LPCOrder; k++ {
			acc += int64(lpc[k]) * int64(dst[LPCOrder+i-k-1])
		}
		v := int64(src[i])<<12 - acc
		dst[LPCOrder+i] = clipInt16(clipInt32((v + (1 << 11)) >> 12))
	}
}
