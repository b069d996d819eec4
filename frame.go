package g723dec

// frame.go is the top-level per-frame decode driver (spec.md §4 "Component
// design"): it dispatches ACTIVE/SID/UNTRANSMITTED frames, drives LSP
// inverse quantization and interpolation, excitation synthesis, frame-erasure
// concealment, LP synthesis filtering, and the two-stage postfilter, in the
// same per-frame sequencing the reference's decode_frame uses.

// decodeFrame synthesizes one 240-sample frame into pcm from the unpacked
// frame parameters, advancing st in place.
func decodeFrame(st *decoderState, fp *frameParams, pcm []int16, usePostfilter bool) {
	// A bad ACTIVE frame is only treated as erasure when the previous frame
	// was itself ACTIVE; otherwise there is no voiced history worth
	// concealing and it is promoted to UNTRANSMITTED (spec.md §7 "BadFrame").
	if fp.kind == frameActive && fp.bad && st.pastFrameType != frameActive {
		fp.kind = frameUntransmitted
	}

	var excitation [PitchMax + FrameLen]int16

	switch fp.kind {
	case frameActive:
		if !fp.bad {
			st.erasedFrames = 0
		} else if st.erasedFrames != 3 {
			st.erasedFrames++
		}
		decodeActive(st, fp, excitation[:], usePostfilter)
		st.cngRandomSeed = cngRandomSeed
	default:
		decodeComfortNoise(st, fp, excitation[:])
	}

	if fp.kind == frameActive && st.erasedFrames == 3 {
		// The third consecutive erased frame is silent outright (spec.md
		// §8 "three-in-a-row erasure idempotence"): forcing the output
		// directly avoids any lingering formant-postfilter IIR ringing
		// from before the erasure run started.
		for i := range pcm[:FrameLen] {
			pcm[i] = 0
		}
	} else if usePostfilter {
		formantPostfilter(st, &st.lastLPC, st.audio[LPCOrder:LPCOrder+FrameLen], pcm)
	} else {
		// Bypassing the postfilter still applies its final int16 output
		// scale (spec.md §4.6 "When postfiltering is disabled, the output
		// is clip_int16(synth[i] << 1)"): the postfilter's own lattice
		// math folds this doubling in internally, so the raw synthesis
		// path must apply it explicitly to match.
		for i := 0; i < FrameLen; i++ {
			pcm[i] = clipInt16(int32(st.audio[LPCOrder+i]) << 1)
		}
	}

	copy(st.audio[:LPCOrder], st.audio[FrameLen:FrameLen+LPCOrder])
	st.pastFrameType = fp.kind
}

// synthesizeFrame runs the LP synthesis filter over all four subframes
// using lpc and src as the excitation, writing into st.audio's FrameLen
// synthesis region (spec.md §4.5). src must hold exactly FrameLen samples.
func synthesizeFrame(st *decoderState, lpc *[Subframes * LPCOrder]int16, src []int16) {
	for j := 0; j < Subframes; j++ {
		subLPC := (*[LPCOrder]int16)(lpc[j*LPCOrder : (j+1)*LPCOrder])
		dst := st.audio[j*SubframeLen : LPCOrder+(j+1)*SubframeLen]
		lpSynthesisFilter(dst, subLPC, src[j*SubframeLen:(j+1)*SubframeLen], SubframeLen)
	}
}

// decodeActive synthesizes an ACTIVE (6300/5300bps) frame, or conceals it
// via residual interpolation if unpackBitstream flagged it bad, following
// the standard's decode_frame ACTIVE_FRAME branch (spec.md §4.1, §4.7).
// excitation is the PitchMax+FrameLen scratch buffer: history followed by
// this frame's new samples, both read by the pitch postfilter. The pitch
// postfilter itself only ever runs for a cleanly synthesized (non-erased)
// frame, exactly as the standard's decode_frame nests comp_interp_index and
// the pitch-postfilter loop inside its "!erased_frames" branch.
func decodeActive(st *decoderState, fp *frameParams, excitation []int16, usePostfilter bool) {
	var curLSP [LPCOrder]int16
	inverseQuantize(&curLSP, &st.prevLSP, &fp.lspIndex, fp.bad)
	st.lastRate = fp.rate
	lspInterpolate(&st.lastLPC, &curLSP, &st.prevLSP)
	st.prevLSP = curLSP

	copy(excitation[:PitchMax], st.prevExcitation[:])
	newPart := excitation[PitchMax:]

	if st.erasedFrames == 0 {
		st.interpGain = int32(fixedCBGain[(fp.subframe[2].ampIndex+fp.subframe[3].ampIndex)>>1])

		for i := 0; i < Subframes; i++ {
			sub := &fp.subframe[i]
			pitchLag := fp.pitchLag[i>>1]

			var acb, fcb [SubframeLen]int16
			history := excitation[i*SubframeLen : i*SubframeLen+PitchMax]
			genACBExcitation(acb[:], history, pitchLag, sub, fp.rate)
			genFCBExcitation(fcb[:], sub, fp.rate, pitchLag, i)

			dst := newPart[i*SubframeLen : (i+1)*SubframeLen]
			for k := range dst {
				dst[k] = clipInt16(int32(clipInt16(int32(fcb[k])<<1)) + int32(acb[k]))
			}
		}

		st.interpIndex = compInterpIndex(excitation, fp.pitchLag[1])
		copy(st.prevExcitation[:], excitation[FrameLen:FrameLen+PitchMax])

		copy(st.audio[:LPCOrder], st.audio[FrameLen:FrameLen+LPCOrder])
		if usePostfilter {
			mixed := pitchPostfilterMix(excitation, fp, st.lastRate)
			synthesizeFrame(st, &st.lastLPC, mixed[:])
		} else {
			synthesizeFrame(st, &st.lastLPC, newPart)
		}
		return
	}

	st.interpGain = (st.interpGain*3 + 2) >> 2

	if st.erasedFrames == 3 {
		for i := range excitation {
			excitation[i] = 0
		}
		for i := range st.prevExcitation {
			st.prevExcitation[i] = 0
		}
	} else {
		residualInterp(excitation, PitchMax, st.interpIndex, st.interpGain, &st.randomSeed)
		copy(st.prevExcitation[:], excitation[FrameLen:FrameLen+PitchMax])
	}

	copy(st.audio[:LPCOrder], st.audio[FrameLen:FrameLen+LPCOrder])
	synthesizeFrame(st, &st.lastLPC, newPart)

	if st.erasedFrames == 3 {
		for i := 0; i < FrameLen+LPCOrder; i++ {
			st.audio[i] = 0
		}
	}
}

// decodeComfortNoise implements the standard's shared SID/UNTRANSMITTED
// branch: a SID frame re-quantizes sid_lsp and derives sid_gain from its
// coded amplitude index via sidGainToLSPIndex; an UNTRANSMITTED frame
// following an ACTIVE one instead re-estimates it via estimateSIDGain;
// cur_gain is then either snapped to sid_gain (coming out of an ACTIVE
// frame) or smoothed into it by (7*cur_gain+sid_gain)>>3 (spec.md §4.8).
// The pitch postfilter never runs for comfort-noise frames.
func decodeComfortNoise(st *decoderState, fp *frameParams, excitation []int16) {
	if fp.kind == frameSID {
		st.sidGain = sidGainToLSPIndex(int32(fp.subframe[0].ampIndex))
		inverseQuantize(&st.sidLSP, &st.prevLSP, &fp.lspIndex, false)
	} else if st.pastFrameType == frameActive {
		st.sidGain = estimateSIDGain(st)
	}

	if st.pastFrameType == frameActive {
		st.curGain = st.sidGain
	} else {
		st.curGain = (7*st.curGain + st.sidGain) >> 3
	}

	generateNoise(st, excitation)
	lspInterpolate(&st.lastLPC, &st.sidLSP, &st.prevLSP)
	st.prevLSP = st.sidLSP

	copy(st.audio[:LPCOrder], st.audio[FrameLen:FrameLen+LPCOrder])
	synthesizeFrame(st, &st.lastLPC, excitation[PitchMax:])
}

// compInterpIndex classifies the just-synthesized frame as voiced or
// unvoiced for later erasure concealment: it normalizes the whole
// PitchMax+FrameLen excitation via scaleVector, searches backward from two
// subframes into the new frame for the best-correlated lag, and returns it
// only if the correlation is strong enough relative to the target/residual
// energy (0 otherwise, meaning "treat as unvoiced"). Grounded on the
// standard's comp_interp_index.
func compInterpIndex(excitation []int16, pitchLag int) int {
	var scaled [PitchMax + FrameLen]int16
	scaleVector(scaled[:], excitation)

	offset := PitchMax + 2*SubframeLen
	var ccr int32
	index := autocorrMax(scaled[:], offset, 2*SubframeLen, pitchLag, -1, &ccr)
	if ccr <= 0 || index == 0 {
		return 0
	}

	tgtEng := dotProduct(scaled[offset:offset+2*SubframeLen], scaled[offset:offset+2*SubframeLen])

	bestPos := offset - index
	bestEng := dotProduct(scaled[bestPos:bestPos+2*SubframeLen], scaled[bestPos:bestPos+2*SubframeLen])

	if (bestEng*tgtEng)>>3 < ccr*ccr {
		return index
	}
	return 0
}

// residualInterp fills excitation[historyLen:] (FrameLen samples) by
// concealment: if lag != 0 (voiced), it attenuates the first lag samples
// by 3/4 from the excitation history at that lag and then periodically
// repeats that pattern to fill the frame; if lag == 0 (unvoiced), it fills
// the frame with interpGain-scaled LCG noise (a different, unmasked LCG from
// cngRand's) and zeroes the excitation history that precedes it.
func residualInterp(excitation []int16, historyLen, lag int, gain int32, rseed *int32) {
	out := excitation[historyLen:]

	if lag != 0 {
		history := excitation[:historyLen]
		for i := 0; i < lag && i < len(out); i++ {
			out[i] = clipInt16((int32(history[historyLen-lag+i]) * 3) >> 2)
		}
		for i := lag; i < len(out); i++ {
			out[i] = out[i-lag]
		}
		return
	}

	for i := range out {
		*rseed = *rseed*521 + 259
		out[i] = clipInt16((gain * *rseed) >> 15)
	}
	for i := range excitation[:historyLen] {
		excitation[i] = 0
	}
}

// pitchPostfilterMix runs the pitch postfilter over every subframe of
// excitation (PitchMax history followed by FrameLen new samples) and
// returns the FrameLen blended result that synthesizeFrame should use in
// place of the raw excitation (spec.md §4.5/§4.6).
func pitchPostfilterMix(excitation []int16, fp *frameParams, rate bitrate) [FrameLen]int16 {
	var ppf [Subframes]ppfParam
	for j := 0; j < Subframes; j++ {
		offset := PitchMax + j*SubframeLen
		ppf[j] = compPPFCoeff(excitation, offset, fp.pitchLag[j>>1], rate)
	}

	var mixed [FrameLen]int16
	for j := 0; j < Subframes; j++ {
		i := j * SubframeLen
		pos := PitchMax + i
		a := excitation[pos : pos+SubframeLen]
		b := excitation[pos+ppf[j].index : pos+ppf[j].index+SubframeLen]
		weightedVectorSum(mixed[i:i+SubframeLen], a, b, int32(ppf[j].scGain), int32(ppf[j].optGain), 1<<14, 15)
	}
	return mixed
}
