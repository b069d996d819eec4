package g723dec

// lsp2lpc performs the bit-exact LSP→LPC polynomial expansion (spec.md
// §4.3). lpc holds the 10 Q-format LSP frequencies on entry and the 10
// Q12 LPC coefficients on return.
func lsp2lpc(lpc *[LPCOrder]int16) {
	var f1, f2 [LPCOrder/2 + 1]int32

	// Negative-cosine conversion via table lookup with 7-bit fractional
	// interpolation.
	for j := 0; j < LPCOrder; j++ {
		index := int32(lpc[j]) >> 7
		offset := int32(lpc[j]) & 0x7f
		temp1 := cosTab[index] << 16
		temp2 := (cosTab[index+1] - cosTab[index]) * ((offset << 8) + 0x80) << 1
		lpc[j] = clipInt16(-(satDadd32(1<<15, temp1+temp2) >> 16))
	}

	f1[0] = 1 << 28
	f1[1] = (int32(lpc[0]) << 14) + (int32(lpc[2]) << 14)
	f1[2] = int32(lpc[0])*int32(lpc[2]) + (2 << 28)

	f2[0] = 1 << 28
	f2[1] = (int32(lpc[1]) << 14) + (int32(lpc[3]) << 14)
	f2[2] = int32(lpc[1])*int32(lpc[3]) + (2 << 28)

	for i := 2; i < LPCOrder/2; i++ {
		f1[i+1] = f1[i-1] + mull2(f1[i], lpc[2*i])
		f2[i+1] = f2[i-1] + mull2(f2[i], lpc[2*i+1])

		for j := i; j >= 2; j-- {
			f1[j] = mull2(f1[j-1], lpc[2*i]) + (f1[j] >> 1) + (f1[j-2] >> 1)
			f2[j] = mull2(f2[j-1], lpc[2*i+1]) + (f2[j] >> 1) + (f2[j-2] >> 1)
		}

		f1[0] >>= 1
		f2[0] >>= 1
		f1[1] = ((int32(lpc[2*i])<<16)>>uint(i) + f1[1]) >> 1
		f2[1] = ((int32(lpc[2*i+1])<<16)>>uint(i) + f2[1]) >> 1
	}

	for i := 0; i < LPCOrder/2; i++ {
		ff1 := int64(f1[i+1]) + int64(f1[i])
		ff2 := int64(f2[i+1]) - int64(f2[i])

		lpc[i] = int16(clipInt32((ff1+ff2)<<3+(1<<15)) >> 16)
		lpc[LPCOrder-i-1] = int16(clipInt32((ff1-ff2)<<3+(1<<15)) >> 16)
	}
}

// lspInterpolate produces the 4 subframe LPC sets for a frame by
// interpolating curLSP against prevLSP at weights (0.25,0.75), (0.5,0.5),
// (0.75,0.25), (1,0), then running lsp2lpc on each (spec.md §4.3).
func lspInterpolate(lpc *[Subframes * LPCOrder]int16, curLSP, prevLSP *[LPCOrder]int16) {
	weightedVectorSum(lpc[0:LPCOrder], curLSP[:], prevLSP[:], 4096, 12288, 1<<13, 14)
	weightedVectorSum(lpc[LPCOrder:2*LPCOrder], curLSP[:], prevLSP[:], 8192, 8192, 1<<13, 14)
	weightedVectorSum(lpc[2*LPCOrder:3*LPCOrder], curLSP[:], prevLSP[:], 12288, 4096, 1<<13, 14)
	copy(lpc[3*LPCOrder:4*LPCOrder], curLSP[:])

	for i := 0; i < Subframes; i++ {
		sub := (*[LPCOrder]int16)(lpc[i*LPCOrder : (i+1)*LPCOrder])
		lsp2lpc(sub)
	}
}
