package rvk

import "math/bits"

// The 32-bit AES instructions operate on one byte of one
// column per call. Byte bs of rs2 is substituted, optionally
// expanded to its (Inv)MixColumns contribution, rotated into
// row bs and XORed into rs1.

func aes32esiGeneric(rs1, rs2 uint32, bs int) uint32 {
	shamt := uint(bs&3) * 8
	x := uint32(aesSbox[byte(rs2>>shamt)])
	return rs1 ^ bits.RotateLeft32(x, int(shamt))
}

func aes32esmiGeneric(rs1, rs2 uint32, bs int) uint32 {
	shamt := uint(bs&3) * 8
	x := aesMixFwd[aesSbox[byte(rs2>>shamt)]]
	return rs1 ^ bits.RotateLeft32(x, int(shamt))
}

func aes32dsiGeneric(rs1, rs2 uint32, bs int) uint32 {
	shamt := uint(bs&3) * 8
	x := uint32(aesInvSbox[byte(rs2>>shamt)])
	return rs1 ^ bits.RotateLeft32(x, int(shamt))
}

func aes32dsmiGeneric(rs1, rs2 uint32, bs int) uint32 {
	shamt := uint(bs&3) * 8
	x := aesMixInv[aesInvSbox[byte(rs2>>shamt)]]
	return rs1 ^ bits.RotateLeft32(x, int(shamt))
}

// The 64-bit AES instructions see the 128-bit state as
// rs2:rs1, columns 0 and 1 in rs1, and produce columns 0
// and 1 of the result. Swapping rs1 and rs2 produces columns
// 2 and 3.

// aesShiftRowsFwd returns the low half of ShiftRows(rs2:rs1).
func aesShiftRowsFwd(rs1, rs2 uint64) uint64 {
	return rs1&0x000000ff000000ff |
		rs2&0x00ff000000ff0000 |
		(rs1>>32)&0x000000000000ff00 |
		(rs2>>32)&0x00000000ff000000 |
		(rs2<<32)&0x0000ff0000000000 |
		(rs1<<32)&0xff00000000000000
}

// aesShiftRowsInv returns the low half of InvShiftRows(rs2:rs1).
func aesShiftRowsInv(rs1, rs2 uint64) uint64 {
	return rs1&0x000000ff000000ff |
		rs2&0x00ff000000ff0000 |
		(rs2>>32)&0x000000000000ff00 |
		(rs1>>32)&0x00000000ff000000 |
		(rs1<<32)&0x0000ff0000000000 |
		(rs2<<32)&0xff00000000000000
}

func aesSubBytes64(x uint64, box *[256]byte) uint64 {
	var r uint64
	for i := uint(0); i < 64; i += 8 {
		r |= uint64(box[byte(x>>i)]) << i
	}
	return r
}

func aesSubWord(x uint32) uint32 {
	return uint32(aesSbox[byte(x)]) |
		uint32(aesSbox[byte(x>>8)])<<8 |
		uint32(aesSbox[byte(x>>16)])<<16 |
		uint32(aesSbox[byte(x>>24)])<<24
}

// aesMixColumn multiplies a single column by the circulant
// matrix whose first column is tab[1].
func aesMixColumn(x uint32, tab *[256]uint32) uint32 {
	return tab[byte(x)] ^
		bits.RotateLeft32(tab[byte(x>>8)], 8) ^
		bits.RotateLeft32(tab[byte(x>>16)], 16) ^
		bits.RotateLeft32(tab[byte(x>>24)], 24)
}

func aesMixColumns64(x uint64, tab *[256]uint32) uint64 {
	lo := aesMixColumn(uint32(x), tab)
	hi := aesMixColumn(uint32(x>>32), tab)
	return uint64(hi)<<32 | uint64(lo)
}

func aes64esGeneric(rs1, rs2 uint64) uint64 {
	return aesSubBytes64(aesShiftRowsFwd(rs1, rs2), &aesSbox)
}

func aes64esmGeneric(rs1, rs2 uint64) uint64 {
	return aesMixColumns64(aes64esGeneric(rs1, rs2), &aesMixFwd)
}

func aes64dsGeneric(rs1, rs2 uint64) uint64 {
	return aesSubBytes64(aesShiftRowsInv(rs1, rs2), &aesInvSbox)
}

func aes64dsmGeneric(rs1, rs2 uint64) uint64 {
	return aesMixColumns64(aes64dsGeneric(rs1, rs2), &aesMixInv)
}

func aes64imGeneric(rs1 uint64) uint64 {
	return aesMixColumns64(rs1, &aesMixInv)
}

// aes64ks1iGeneric computes SubWord(RotWord(w)) ^ rcon for
// the upper word w of rs1. Round number 10 is the AES-256
// even-step case: no rotation and no round constant.
func aes64ks1iGeneric(rs1 uint64, rnum int) uint64 {
	t := uint32(rs1 >> 32)
	var rc uint32
	if rnum != 10 {
		t = bits.RotateLeft32(t, -8)
		rc = aesRcon[rnum]
	}
	t = aesSubWord(t) ^ rc
	return uint64(t)<<32 | uint64(t)
}

func aes64ks2Generic(rs1, rs2 uint64) uint64 {
	w0 := uint32(rs1>>32) ^ uint32(rs2)
	w1 := w0 ^ uint32(rs2>>32)
	return uint64(w1)<<32 | uint64(w0)
}
