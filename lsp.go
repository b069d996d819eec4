package g723dec

// inverseQuantize reconstructs curLSP from the three band VQ indices and
// the previous frame's LSP vector, enforcing minimum inter-coefficient
// spacing (spec.md §4.2).
func inverseQuantize(curLSP *[LPCOrder]int16, prevLSP *[LPCOrder]int16, lspIndex *[LSPBands + 1]uint8, badFrame bool) {
	var minDist, pred int32
	idx := *lspIndex

	if !badFrame {
		minDist = 0x100
		pred = 12288
	} else {
		minDist = 0x200
		pred = 23552
		idx[0], idx[1], idx[2] = 0, 0, 0
	}

	b0 := lspBand0[idx[0]]
	b1 := lspBand1[idx[1]]
	b2 := lspBand2[idx[2]]
	curLSP[0], curLSP[1], curLSP[2] = b0[0], b0[1], b0[2]
	curLSP[3], curLSP[4], curLSP[5] = b1[0], b1[1], b1[2]
	curLSP[6], curLSP[7], curLSP[8], curLSP[9] = b2[0], b2[1], b2[2], b2[3]

	for i := 0; i < LPCOrder; i++ {
		temp := (int32(prevLSP[i]-dcLSP[i])*pred + (1 << 14)) >> 15
		curLSP[i] = clipInt16(int32(curLSP[i]) + int32(dcLSP[i]) + temp)
	}

	stable := false
	for pass := 0; pass < LPCOrder; pass++ {
		curLSP[0] = clipInt16(maxInt32(int32(curLSP[0]), 0x180))
		curLSP[LPCOrder-1] = clipInt16(minInt32(int32(curLSP[LPCOrder-1]), 0x7e00))

		for j := 1; j < LPCOrder; j++ {
			temp := minDist + int32(curLSP[j-1]) - int32(curLSP[j])
			if temp > 0 {
				temp >>= 1
				curLSP[j-1] = clipInt16(int32(curLSP[j-1]) - temp)
				curLSP[j] = clipInt16(int32(curLSP[j]) + temp)
			}
		}

		stable = true
		for j := 1; j < LPCOrder; j++ {
			temp := int32(curLSP[j-1]) + minDist - int32(curLSP[j]) - 4
			if temp > 0 {
				stable = false
				break
			}
		}
		if stable {
			break
		}
	}
	if !stable {
		*curLSP = *prevLSP
	}
}
