package rvk

import "math/bits"

func sha256sig0Generic(rs1 uint32) uint32 {
	return bits.RotateLeft32(rs1, -7) ^ bits.RotateLeft32(rs1, -18) ^ rs1>>3
}

func sha256sig1Generic(rs1 uint32) uint32 {
	return bits.RotateLeft32(rs1, -17) ^ bits.RotateLeft32(rs1, -19) ^ rs1>>10
}

func sha256sum0Generic(rs1 uint32) uint32 {
	return bits.RotateLeft32(rs1, -2) ^ bits.RotateLeft32(rs1, -13) ^ bits.RotateLeft32(rs1, -22)
}

func sha256sum1Generic(rs1 uint32) uint32 {
	return bits.RotateLeft32(rs1, -6) ^ bits.RotateLeft32(rs1, -11) ^ bits.RotateLeft32(rs1, -25)
}

func sha512sig0Generic(rs1 uint64) uint64 {
	return bits.RotateLeft64(rs1, -1) ^ bits.RotateLeft64(rs1, -8) ^ rs1>>7
}

func sha512sig1Generic(rs1 uint64) uint64 {
	return bits.RotateLeft64(rs1, -19) ^ bits.RotateLeft64(rs1, -61) ^ rs1>>6
}

func sha512sum0Generic(rs1 uint64) uint64 {
	return bits.RotateLeft64(rs1, -28) ^ bits.RotateLeft64(rs1, -34) ^ bits.RotateLeft64(rs1, -39)
}

func sha512sum1Generic(rs1 uint64) uint64 {
	return bits.RotateLeft64(rs1, -14) ^ bits.RotateLeft64(rs1, -18) ^ bits.RotateLeft64(rs1, -41)
}

// The RV32 SHA-512 instructions compute one 32-bit half of
// the 64-bit functions above with x = hi:lo. For a 64-bit
// rotate right by n < 32,
//
//	hi(ror(x, n)) = hi>>n | lo<<(32-n)
//	lo(ror(x, n)) = lo>>n | hi<<(32-n)
//
// and for n >= 32 the halves trade places and n drops by 32.
// A logical shift right by n < 32 is the same with the hi<<
// term removed from the high half. The OR becomes XOR since
// the two terms never overlap.

// sha512sig0hGeneric returns hi(sig0(rs1:rs2)).
//
//	ror 1: hi>>1 ^ lo<<31
//	ror 8: hi>>8 ^ lo<<24
//	shr 7: hi>>7
func sha512sig0hGeneric(rs1, rs2 uint32) uint32 {
	return rs1>>1 ^ rs1>>7 ^ rs1>>8 ^ rs2<<31 ^ rs2<<24
}

// sha512sig0lGeneric returns lo(sig0(rs2:rs1)).
//
//	ror 1: lo>>1 ^ hi<<31
//	ror 8: lo>>8 ^ hi<<24
//	shr 7: lo>>7 ^ hi<<25
func sha512sig0lGeneric(rs1, rs2 uint32) uint32 {
	return rs1>>1 ^ rs1>>7 ^ rs1>>8 ^ rs2<<31 ^ rs2<<25 ^ rs2<<24
}

// sha512sig1hGeneric returns hi(sig1(rs1:rs2)).
//
//	ror 19: hi>>19 ^ lo<<13
//	ror 61: hi<<3 ^ lo>>29 (ror 29 of the swapped halves)
//	shr 6:  hi>>6
func sha512sig1hGeneric(rs1, rs2 uint32) uint32 {
	return rs1<<3 ^ rs1>>6 ^ rs1>>19 ^ rs2>>29 ^ rs2<<13
}

// sha512sig1lGeneric returns lo(sig1(rs2:rs1)).
//
//	ror 19: lo>>19 ^ hi<<13
//	ror 61: lo<<3 ^ hi>>29
//	shr 6:  lo>>6 ^ hi<<26
func sha512sig1lGeneric(rs1, rs2 uint32) uint32 {
	return rs1<<3 ^ rs1>>6 ^ rs1>>19 ^ rs2>>29 ^ rs2<<26 ^ rs2<<13
}

// sha512sum0rGeneric returns lo(sum0(rs2:rs1)). Every term
// of sum0 is a rotation, so swapping the operands yields
// the high half.
//
//	ror 28: lo>>28 ^ hi<<4
//	ror 34: hi>>2 ^ lo<<30
//	ror 39: hi>>7 ^ lo<<25
func sha512sum0rGeneric(rs1, rs2 uint32) uint32 {
	return rs1<<25 ^ rs1<<30 ^ rs1>>28 ^ rs2>>7 ^ rs2>>2 ^ rs2<<4
}

// sha512sum1rGeneric returns lo(sum1(rs2:rs1)).
//
//	ror 14: lo>>14 ^ hi<<18
//	ror 18: lo>>18 ^ hi<<14
//	ror 41: hi>>9 ^ lo<<23
func sha512sum1rGeneric(rs1, rs2 uint32) uint32 {
	return rs1<<23 ^ rs1>>14 ^ rs1>>18 ^ rs2>>9 ^ rs2<<18 ^ rs2<<14
}
