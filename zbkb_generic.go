package rvk

import "math/bits"

func ror32Generic(rs1, rs2 uint32) uint32 {
	return bits.RotateLeft32(rs1, -int(rs2&31))
}

func rol32Generic(rs1, rs2 uint32) uint32 {
	return bits.RotateLeft32(rs1, int(rs2&31))
}

func ror64Generic(rs1, rs2 uint64) uint64 {
	return bits.RotateLeft64(rs1, -int(rs2&63))
}

func rol64Generic(rs1, rs2 uint64) uint64 {
	return bits.RotateLeft64(rs1, int(rs2&63))
}

func andn32Generic(rs1, rs2 uint32) uint32 { return rs1 &^ rs2 }
func andn64Generic(rs1, rs2 uint64) uint64 { return rs1 &^ rs2 }
func orn32Generic(rs1, rs2 uint32) uint32  { return rs1 | ^rs2 }
func orn64Generic(rs1, rs2 uint64) uint64  { return rs1 | ^rs2 }
func xnor32Generic(rs1, rs2 uint32) uint32 { return ^(rs1 ^ rs2) }
func xnor64Generic(rs1, rs2 uint64) uint64 { return ^(rs1 ^ rs2) }

func pack32Generic(rs1, rs2 uint32) uint32 {
	return rs1&0xffff | rs2<<16
}

func pack64Generic(rs1, rs2 uint64) uint64 {
	return rs1&0xffffffff | rs2<<32
}

func packh32Generic(rs1, rs2 uint32) uint32 {
	return rs1&0xff | (rs2&0xff)<<8
}

func packh64Generic(rs1, rs2 uint64) uint64 {
	return rs1&0xff | (rs2&0xff)<<8
}

// brev8 reverses the bits of each byte by swapping ever
// smaller fields, the same ladder a GREVI with shamt 7 runs.
func brev8x32Generic(rs1 uint32) uint32 {
	x := rs1
	x = (x&0x55555555)<<1 | (x>>1)&0x55555555
	x = (x&0x33333333)<<2 | (x>>2)&0x33333333
	x = (x&0x0f0f0f0f)<<4 | (x>>4)&0x0f0f0f0f
	return x
}

func brev8x64Generic(rs1 uint64) uint64 {
	x := rs1
	x = (x&0x5555555555555555)<<1 | (x>>1)&0x5555555555555555
	x = (x&0x3333333333333333)<<2 | (x>>2)&0x3333333333333333
	x = (x&0x0f0f0f0f0f0f0f0f)<<4 | (x>>4)&0x0f0f0f0f0f0f0f0f
	return x
}

func rev8x32Generic(rs1 uint32) uint32 {
	return bits.ReverseBytes32(rs1)
}

func rev8x64Generic(rs1 uint64) uint64 {
	return bits.ReverseBytes64(rs1)
}

// shuffleStage swaps the bit fields selected by mask with
// the fields shift positions above them.
func shuffleStage(x, mask uint32, shift uint) uint32 {
	t := (x ^ x>>shift) & mask
	return x ^ t ^ t<<shift
}

// zip32Generic moves bit i to bit 2i and bit i+16 to bit
// 2i+1.
func zip32Generic(rs1 uint32) uint32 {
	x := rs1
	x = shuffleStage(x, 0x0000ff00, 8)
	x = shuffleStage(x, 0x00f000f0, 4)
	x = shuffleStage(x, 0x0c0c0c0c, 2)
	x = shuffleStage(x, 0x22222222, 1)
	return x
}

// unzip32Generic is the inverse of zip32Generic: it runs
// the same stages in the opposite order.
func unzip32Generic(rs1 uint32) uint32 {
	x := rs1
	x = shuffleStage(x, 0x22222222, 1)
	x = shuffleStage(x, 0x0c0c0c0c, 2)
	x = shuffleStage(x, 0x00f000f0, 4)
	x = shuffleStage(x, 0x0000ff00, 8)
	return x
}
