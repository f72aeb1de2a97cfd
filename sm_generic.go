package rvk

import "math/bits"

func sm3p0Generic(rs1 uint32) uint32 {
	return rs1 ^ bits.RotateLeft32(rs1, 9) ^ bits.RotateLeft32(rs1, 17)
}

func sm3p1Generic(rs1 uint32) uint32 {
	return rs1 ^ bits.RotateLeft32(rs1, 15) ^ bits.RotateLeft32(rs1, 23)
}

// sm4L is the linear transform of the SM4 round function.
func sm4L(x uint32) uint32 {
	return x ^
		bits.RotateLeft32(x, 2) ^
		bits.RotateLeft32(x, 10) ^
		bits.RotateLeft32(x, 18) ^
		bits.RotateLeft32(x, 24)
}

// sm4LKey is the linear transform of the SM4 key schedule.
func sm4LKey(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 13) ^ bits.RotateLeft32(x, 23)
}

// Both transforms are built from rotations, so transforming
// the substituted byte and then rotating it into slot bs is
// the same as transforming the whole word. Four calls, one
// per byte, compute rs1 ^ T(rs2).

func sm4edGeneric(rs1, rs2 uint32, bs int) uint32 {
	shamt := uint(bs&3) * 8
	x := uint32(sm4Sbox[byte(rs2>>shamt)])
	return rs1 ^ bits.RotateLeft32(sm4L(x), int(shamt))
}

func sm4ksGeneric(rs1, rs2 uint32, bs int) uint32 {
	shamt := uint(bs&3) * 8
	x := uint32(sm4Sbox[byte(rs2>>shamt)])
	return rs1 ^ bits.RotateLeft32(sm4LKey(x), int(shamt))
}
