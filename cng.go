package g723dec

// cng.go implements comfort-noise generation for SID and untransmitted
// frames (spec.md §4.8): converting the coded SID amplitude index (or, for
// an untransmitted frame following an ACTIVE one, a gain re-estimated from
// the synthesis history) into a smoothed noise-energy target, then
// synthesizing a sparse pseudo-random excitation whose energy is solved to
// match that target in place of a real fixed/adaptive-codebook
// contribution.

// cngRand advances the comfort-noise PRNG and returns base scaled pseudo-
// random bits: seed = seed*521 + 259 (wrapped to 16 bits), result =
// (seed & 0x7fff) * base >> 15.
func cngRand(seed *int32, base int32) int32 {
	*seed = (*seed*521 + 259) & 0xffff
	return (*seed & 0x7fff) * base >> 15
}

// sidGainToLSPIndex converts a SID frame's 6-bit coded amplitude index into
// a linear gain level via the standard's piecewise ladder.
func sidGainToLSPIndex(gain int32) int32 {
	switch {
	case gain < 0x10:
		return gain << 6
	case gain < 0x20:
		return (gain - 8) << 7
	default:
		return (gain - 20) << 8
	}
}

// estimateSIDGain re-derives the comfort-noise gain for an UNTRANSMITTED
// frame immediately following an ACTIVE one: it takes a normalized RMS
// energy estimate of the synthesis history in st.prevExcitation (via
// squareRoot, scaled by cngFilt into sidGainToLSPIndex's output domain)
// and bisects the 6-bit amplitude-index range 0..63 for the largest index
// whose sidGainToLSPIndex value does not exceed it, returning that value
// (spec.md §4.8 "estimate_sid_gain ... bisection for
// UNTRANSMITTED-after-ACTIVE").
func estimateSIDGain(st *decoderState) int32 {
	var sumSq int32
	for _, v := range st.prevExcitation {
		sumSq = satDadd32(sumSq, int32(v)*int32(v)>>10)
	}

	shift := normalizeBits(sumSq, 31)
	scaled := (sumSq << uint(shift)) >> 16
	energy := int32(squareRoot(scaled << 16))
	if shift >= 0 {
		energy = (energy * cngFilt) >> uint(16+(shift+1)/2)
	} else {
		energy = (energy * cngFilt) << uint((-shift+1)/2) >> 16
	}

	lo, hi := int32(0), int32(63)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if sidGainToLSPIndex(mid) <= energy {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return sidGainToLSPIndex(lo)
}

// generateNoise fills excitation (FrameLen+PitchMax samples, history
// followed by this frame's new samples) with comfort noise and advances
// st.randomSeed/st.cngRandomSeed, following the standard's generate_noise:
// draw per-subframe adaptive-codebook lag/gain, scatter eleven
// non-repeating pulse positions with random signs per half-frame, and
// solve a quadratic for the pulse amplitude that drives the resulting
// sparse vector's energy to st.curGain's target (spec.md §4.8, §9 "Division
// by 11 ... do not substitute true division").
func generateNoise(st *decoderState, excitation []int16) {
	copy(excitation[:PitchMax], st.prevExcitation[:])
	newPart := excitation[PitchMax:]

	pitchLag := [2]int32{
		cngRand(&st.cngRandomSeed, 21) + 123,
		cngRand(&st.cngRandomSeed, 19) + 123,
	}

	for half := 0; half < 2; half++ {
		lag := int(pitchLag[half])

		t := cngRand(&st.cngRandomSeed, 1<<13)
		var signs [11]int32
		for k := 0; k < 11; k++ {
			if (t>>uint(k))&1 != 0 {
				signs[k] = 1 << 14
			} else {
				signs[k] = -(1 << 14)
			}
		}

		pool := make([]int, 2*SubframeLen)
		for i := range pool {
			pool[i] = i
		}
		poolLen := len(pool)
		var positions [11]int
		for k := 0; k < 11; k++ {
			pick := int(cngRand(&st.cngRandomSeed, int32(poolLen)))
			if pick >= poolLen {
				pick = poolLen - 1
			}
			positions[k] = pool[pick]
			poolLen--
			pool[pick] = pool[poolLen]
		}

		base := half * 2 * SubframeLen
		window := newPart[base : base+2*SubframeLen]
		for i := range window {
			window[i] = 0
		}

		var tmp [2 * SubframeLen]int32
		for sf := 0; sf < 2; sf++ {
			var acb [SubframeLen]int16
			var sub subframeParams
			sub.adCBGain = int(cngRand(&st.cngRandomSeed, 50)) + 1
			sub.adCBLag = cngAdaptiveCBLag[(half*2+sf)%Subframes]
			pos := PitchMax + base + sf*SubframeLen
			history := excitation[pos-PitchMax : pos]
			genACBExcitation(acb[:], history, lag, &sub, rate6300)
			for i, v := range acb {
				tmp[sf*SubframeLen+i] = int32(v)
			}
		}

		var sumSq int32
		for _, v := range tmp {
			sumSq = satDadd32(sumSq, v*v>>10)
		}
		shift := normalizeBits(sumSq, 31)

		// b0 is about (2*scaled/11) >> 15 (2*2979/2^15 is close to 2/11),
		// computed without a division, per spec.md §9.
		scaled := (sumSq << uint(shift)) >> 16
		b0 := (scaled*2*2979 + (1 << 29)) >> 30

		c := (st.curGain * st.curGain) >> uint(maxInt32(0, 22-2*int32(shift)))
		delta := satSub32(2*((b0*b0)>>15), c)
		if delta < 0 {
			delta = 0
		}

		x := int32(squareRoot(delta)) - b0
		if shift > 0 {
			x >>= uint(shift)
		} else {
			x <<= uint(-shift)
		}
		if x > 10000 {
			x = 10000
		} else if x < -10000 {
			x = -10000
		}

		for k := 0; k < 11; k++ {
			pos := positions[k]
			contrib := (x * signs[k]) >> 15
			window[pos] = clipInt16(satAdd32(int32(window[pos]), contrib))
		}
	}

	st.randomSeed = st.cngRandomSeed
	copy(st.prevExcitation[:], excitation[FrameLen:FrameLen+PitchMax])
}
