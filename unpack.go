package g723dec

// unpackBitstream decodes a single packet's bitstream into frameParams
// (spec.md §4.1). The caller has already verified len(buf) matches
// frameSizeBytes[decMode]; this function never needs to bounds-check bit
// reads against packet length.
//
// Per spec.md §9's Open Question resolution, subframe fields are zeroed on
// entry so a frame that fails partway through parsing never leaks stale
// field values into the frame driver — callers must still honor the `bad`
// flag rather than rely on whatever was written before the failure.
func unpackBitstream(buf []byte) frameParams {
	var fp frameParams
	r := newBitReader(buf)

	decMode := r.readBits(2)
	switch decMode {
	case 3:
		fp.kind = frameUntransmitted
		return fp
	case 2:
		fp.kind = frameSID
		fp.lspIndex[2] = uint8(r.readBits(8))
		fp.lspIndex[1] = uint8(r.readBits(8))
		fp.lspIndex[0] = uint8(r.readBits(8))
		fp.subframe[0].ampIndex = int(r.readBits(6))
		return fp
	}

	fp.kind = frameActive
	if decMode == 0 {
		fp.rate = rate6300
	} else {
		fp.rate = rate5300
	}

	fp.lspIndex[2] = uint8(r.readBits(8))
	fp.lspIndex[1] = uint8(r.readBits(8))
	fp.lspIndex[0] = uint8(r.readBits(8))

	fp.pitchLag[0] = int(r.readBits(7))
	if fp.pitchLag[0] > 123 {
		fp.bad = true
		return fp
	}
	fp.pitchLag[0] += PitchMin
	fp.subframe[1].adCBLag = int(r.readBits(2))

	fp.pitchLag[1] = int(r.readBits(7))
	if fp.pitchLag[1] > 123 {
		fp.bad = true
		return fp
	}
	fp.pitchLag[1] += PitchMin
	fp.subframe[3].adCBLag = int(r.readBits(2))
	fp.subframe[0].adCBLag = 1
	fp.subframe[2].adCBLag = 1

	for i := 0; i < Subframes; i++ {
		temp := int(r.readBits(12))
		adCBLen := 170
		fp.subframe[i].diracTrain = 0
		if fp.rate == rate6300 && fp.pitchLag[i>>1] < SubframeLen-2 {
			fp.subframe[i].diracTrain = temp >> 11
			temp &= 0x7FF
			adCBLen = 85
		}
		fp.subframe[i].adCBGain = temp / GainLevels
		if fp.subframe[i].adCBGain < adCBLen {
			fp.subframe[i].ampIndex = temp - fp.subframe[i].adCBGain*GainLevels
		} else {
			fp.bad = true
			return fp
		}
	}

	for i := 0; i < Subframes; i++ {
		fp.subframe[i].gridIndex = int(r.readBits(1))
	}

	if fp.rate == rate6300 {
		r.skipBits(1) // reserved

		temp := int(r.readBits(13))
		p0 := temp / 810
		temp -= p0 * 810
		p1 := temp / 90
		temp -= p1 * 90
		p2 := temp / 9
		p3 := temp - p2*9

		fp.subframe[0].pulsePos = (p0 << 16) + int(r.readBits(16))
		fp.subframe[1].pulsePos = (p1 << 14) + int(r.readBits(14))
		fp.subframe[2].pulsePos = (p2 << 16) + int(r.readBits(16))
		fp.subframe[3].pulsePos = (p3 << 14) + int(r.readBits(14))

		fp.subframe[0].pulseSign = int(r.readBits(6))
		fp.subframe[1].pulseSign = int(r.readBits(5))
		fp.subframe[2].pulseSign = int(r.readBits(6))
		fp.subframe[3].pulseSign = int(r.readBits(5))
	} else {
		fp.subframe[0].pulsePos = int(r.readBits(12))
		fp.subframe[1].pulsePos = int(r.readBits(12))
		fp.subframe[2].pulsePos = int(r.readBits(12))
		fp.subframe[3].pulsePos = int(r.readBits(12))

		fp.subframe[0].pulseSign = int(r.readBits(4))
		fp.subframe[1].pulseSign = int(r.readBits(4))
		fp.subframe[2].pulseSign = int(r.readBits(4))
		fp.subframe[3].pulseSign = int(r.readBits(4))
	}

	return fp
}
