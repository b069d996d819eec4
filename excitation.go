package g723dec

// genDiracTrain convolves vector with a periodic impulse train of period
// pitchLag, used by the 6300bps fixed-codebook path when diracTrain==1
// (spec.md §4.4).
func genDiracTrain(vector []int16, pitchLag int) {
	var tmp [SubframeLen]int16
	copy(tmp[:], vector)
	for i := pitchLag; i < SubframeLen; i += pitchLag {
		for j := 0; j < SubframeLen-i; j++ {
			vector[i+j] = clipInt16(int32(vector[i+j]) + int32(tmp[j]))
		}
	}
}

// genFCBExcitation decodes the fixed-codebook (algebraic) excitation for
// one subframe (spec.md §4.4).
func genFCBExcitation(vector []int16, sub *subframeParams, rate bitrate, pitchLag, subIdx int) {
	for i := range vector {
		vector[i] = 0
	}

	if rate == rate6300 {
		if sub.pulsePos >= maxPos[subIdx] {
			return
		}

		j := PulseMax - pulses[subIdx]
		temp := sub.pulsePos
		for i := 0; i < SubframeLen/GridSize; i++ {
			temp -= int(combinatorialTable[j][i])
			if temp >= 0 {
				continue
			}
			temp += int(combinatorialTable[j][i])
			j++
			pos := sub.gridIndex + GridSize*i
			if sub.pulseSign&(1<<uint(PulseMax-j)) != 0 {
				vector[pos] = -fixedCBGain[sub.ampIndex]
			} else {
				vector[pos] = fixedCBGain[sub.ampIndex]
			}
			if j == PulseMax {
				break
			}
		}
		if sub.diracTrain == 1 {
			genDiracTrain(vector, pitchLag)
		}
	} else {
		cbGain := fixedCBGain[sub.ampIndex]
		cbShift := sub.gridIndex
		cbSign := sub.pulseSign
		cbPos := sub.pulsePos

		for i := 0; i < 8; i += 2 {
			// Positions past the end of the subframe are dropped.
			offset := ((cbPos & 7) << 3) + cbShift + i
			if offset < SubframeLen {
				if cbSign&1 != 0 {
					vector[offset] = cbGain
				} else {
					vector[offset] = -cbGain
				}
			}
			cbPos >>= 3
			cbSign >>= 1
		}

		lag := int(pitchContrib[sub.adCBGain<<1]) + pitchLag + sub.adCBLag - 1
		beta := int32(pitchContrib[(sub.adCBGain<<1)+1])

		if lag < SubframeLen-2 {
			for i := lag; i < SubframeLen; i++ {
				vector[i] = clipInt16(int32(vector[i]) + (beta*int32(vector[i-lag])>>15))
			}
		}
	}
}

// getResidual extracts the PITCH_ORDER-1-padded residual window from the
// previous excitation history needed to run the adaptive-codebook FIR
// (spec.md §4.4).
func getResidual(residual []int16, prevExcitation []int16, lag int) {
	offset := PitchMax - PitchOrder/2 - lag
	residual[0] = prevExcitation[offset]
	residual[1] = prevExcitation[offset+1]

	offset += 2
	for i := 2; i < SubframeLen+PitchOrder-1; i++ {
		residual[i] = prevExcitation[offset+(i-2)%lag]
	}
}

// genACBExcitation builds the adaptive-codebook (long-term prediction)
// excitation vector for one subframe (spec.md §4.4).
func genACBExcitation(vector []int16, prevExcitation []int16, pitchLag int, sub *subframeParams, rate bitrate) {
	var residual [SubframeLen + PitchOrder - 1]int16
	lag := pitchLag + sub.adCBLag - 1

	getResidual(residual[:], prevExcitation, lag)

	var cb []int16
	if rate == rate6300 && pitchLag < SubframeLen-2 {
		cb = adaptiveCBGain85
	} else {
		cb = adaptiveCBGain170
	}
	cb = cb[sub.adCBGain*PitchOrder:]

	for i := 0; i < SubframeLen; i++ {
		sum := dotProduct(residual[i:i+PitchOrder], cb[:PitchOrder])
		vector[i] = clipInt16(satDadd32(1<<15, sum) >> 16)
	}
}
