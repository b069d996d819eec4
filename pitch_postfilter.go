package g723dec

// pitch_postfilter.go implements the first of the two cascaded postfilter
// stages (spec.md §4.6): a pitch-synchronous comb filter that searches,
// independently forward and backward from the coded pitch lag, for the
// delayed copy of the excitation that best predicts the current subframe,
// then blends it back in with a gain solved from the target/residual
// energy ratio. Grounded one helper per named standard function:
// autocorr_max, comp_ppf_gains, comp_ppf_coeff.

// ppfParam carries one subframe's pitch-postfilter mix parameters: the lag
// offset to blend in (negative for backward, positive for forward, 0 for
// disabled) and the two weights fed to weightedVectorSum.
type ppfParam struct {
	index   int
	optGain int16
	scGain  int16
}

// autocorrMax searches buf[pos-3-pitchLag .. pos+3-pitchLag] (clamped to
// the frame/history boundary for forward searches) in the given direction
// (dir=+1 forward, dir=-1 backward) for the lag maximizing
// dot(buf[pos:pos+length], buf[pos+dir*lag:pos+dir*lag+length]), writing
// that peak correlation into *ccrMax and returning the winning lag (0 if
// none beats the caller's running maximum).
func autocorrMax(buf []int16, pos, length, pitchLag, dir int, ccrMax *int32) int {
	if pitchLag > PitchMax-3 {
		pitchLag = PitchMax - 3
	}

	limit := pitchLag + 3
	if dir > 0 {
		fwd := len(buf) - pos - length
		if fwd < limit {
			limit = fwd
		}
	}

	lag := 0
	for i := pitchLag - 3; i <= limit; i++ {
		if i <= 0 {
			continue
		}
		ccr := dotProduct(buf[pos:pos+length], buf[pos+dir*i:pos+dir*i+length])
		if ccr > *ccrMax {
			*ccrMax = ccr
			lag = i
		}
	}
	return lag
}

// compPPFGains derives ppf.optGain/ppf.scGain for a chosen lag from the
// target/cross/residual energies (tgtEng, ccr, resEng), following the
// standard's comp_ppf_gains: the postfilter contributes nothing unless
// 2*ccr^2 exceeds tgtEng*resEng/2, in which case the optimal gain is solved
// from the energy ratio (clamped to unity when ccr alone already exceeds
// resEng) and the scale gain via squareRoot of the ratio of the target
// energy to the resulting filtered-residual energy.
func compPPFGains(lag int, ppf *ppfParam, rate bitrate, tgtEng, ccr, resEng int32) {
	ppf.index = lag

	t1 := (tgtEng * resEng) >> 1
	t2 := (ccr * ccr) << 1
	if t2 <= t1 {
		ppf.optGain = 0
		ppf.scGain = 0x7fff
		return
	}

	var optGain int32
	if ccr >= resEng {
		optGain = int32(ppfGainWeight[rate])
	} else {
		optGain = ((ccr << 15) / resEng) * int32(ppfGainWeight[rate]) >> 15
	}

	t1 = (tgtEng << 15) + (ccr*optGain)<<1
	t2 = (optGain * optGain >> 15) * resEng
	pfResidual := satAdd32(t1, t2) >> 16
	if pfResidual < 1 {
		pfResidual = 1
	}

	var scaleNum int32
	if tgtEng >= pfResidual<<1 {
		scaleNum = 0x7fff
	} else {
		scaleNum = (tgtEng << 14) / pfResidual
	}
	scGain := squareRoot(scaleNum << 16)

	ppf.scGain = scGain
	ppf.optGain = clipInt16((optGain * int32(scGain)) >> 15)
}

// compPPFCoeff runs the full pitch-postfilter analysis for one subframe of
// buf (the whole-frame excitation, PitchMax history samples followed by
// FrameLen new samples) starting at offset, dispatching on which of the
// forward/backward searches (or both) found a usable lag exactly as the
// standard's comp_ppf_coeff does.
func compPPFCoeff(buf []int16, offset, pitchLag int, rate bitrate) ppfParam {
	var ppf ppfParam
	ppf.scGain = 0x7fff

	var fwdCcr, backCcr int32
	fwdLag := autocorrMax(buf, offset, SubframeLen, pitchLag, 1, &fwdCcr)
	backLag := autocorrMax(buf, offset, SubframeLen, pitchLag, -1, &backCcr)

	if fwdLag == 0 && backLag == 0 {
		return ppf
	}

	var energy [5]int32
	energy[0] = dotProduct(buf[offset:offset+SubframeLen], buf[offset:offset+SubframeLen])
	energy[1] = fwdCcr
	energy[3] = backCcr
	if fwdLag != 0 {
		energy[2] = dotProduct(buf[offset+fwdLag:offset+fwdLag+SubframeLen], buf[offset+fwdLag:offset+fwdLag+SubframeLen])
	}
	if backLag != 0 {
		energy[4] = dotProduct(buf[offset-backLag:offset-backLag+SubframeLen], buf[offset-backLag:offset-backLag+SubframeLen])
	}

	maxEnergy := energy[0]
	for _, e := range energy[1:] {
		if e > maxEnergy {
			maxEnergy = e
		}
	}
	scale := normalizeBits(maxEnergy, 31)
	for i := range energy {
		energy[i] = (energy[i] << uint(scale)) >> 16
	}

	switch {
	case fwdLag != 0 && backLag == 0:
		compPPFGains(fwdLag, &ppf, rate, energy[0], energy[1], energy[2])
	case fwdLag == 0:
		compPPFGains(-backLag, &ppf, rate, energy[0], energy[3], energy[4])
	default:
		t1 := energy[4] * round15(energy[1]*energy[1])
		t2 := energy[2] * round15(energy[3]*energy[3])
		if t1 >= t2 {
			compPPFGains(fwdLag, &ppf, rate, energy[0], energy[1], energy[2])
		} else {
			compPPFGains(-backLag, &ppf, rate, energy[0], energy[3], energy[4])
		}
	}
	return ppf
}
