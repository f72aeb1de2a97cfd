package rvk

import "math/bits"

// gfMul returns a*b in GF(2⁸) reduced by the AES polynomial
// x⁸ + x⁴ + x³ + x + 1.
func gfMul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		p ^= a & -(b & 1)
		a = a<<1 ^ 0x1b&-(a>>7)
		b >>= 1
	}
	return p
}

// gfInv returns the multiplicative inverse of a in GF(2⁸).
//
// The inverse of zero is defined to be zero.
func gfInv(a byte) byte {
	// a⁻¹ = a²⁵⁴
	x := a
	p := byte(1)
	for e := 254; e > 0; e >>= 1 {
		if e&1 != 0 {
			p = gfMul(p, x)
		}
		x = gfMul(x, x)
	}
	return p
}

// aesAffine is the FIPS-197 affine transformation that
// follows inversion in SubBytes.
func aesAffine(x byte) byte {
	return x ^
		bits.RotateLeft8(x, 1) ^
		bits.RotateLeft8(x, 2) ^
		bits.RotateLeft8(x, 3) ^
		bits.RotateLeft8(x, 4) ^
		0x63
}

var aesSbox, aesInvSbox = makeAESSboxes()

func makeAESSboxes() (fwd, inv [256]byte) {
	for i := range fwd {
		s := aesAffine(gfInv(byte(i)))
		fwd[i] = s
		inv[s] = byte(i)
	}
	return
}

// aesMixFwd and aesMixInv hold the MixColumns and
// InvMixColumns contribution of a single byte placed in row
// zero of a column: {2, 1, 1, 3} and {e, 9, d, b}, least
// significant byte first.
var aesMixFwd, aesMixInv = makeAESMix()

func makeAESMix() (fwd, inv [256]uint32) {
	for i := range fwd {
		b := byte(i)
		fwd[i] = uint32(gfMul(b, 2)) |
			uint32(b)<<8 |
			uint32(b)<<16 |
			uint32(gfMul(b, 3))<<24
		inv[i] = uint32(gfMul(b, 0x0e)) |
			uint32(gfMul(b, 0x09))<<8 |
			uint32(gfMul(b, 0x0d))<<16 |
			uint32(gfMul(b, 0x0b))<<24
	}
	return
}

// aesRcon holds the AES key schedule round constants.
var aesRcon = [10]uint32{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36,
}

// sm4Sbox is the SM4 S-box from GB/T 32907-2016.
var sm4Sbox = [256]byte{
	0xd6, 0x90, 0xe9, 0xfe, 0xcc, 0xe1, 0x3d, 0xb7, 0x16, 0xb6, 0x14, 0xc2, 0x28, 0xfb, 0x2c, 0x05,
	0x2b, 0x67, 0x9a, 0x76, 0x2a, 0xbe, 0x04, 0xc3, 0xaa, 0x44, 0x13, 0x26, 0x49, 0x86, 0x06, 0x99,
	0x9c, 0x42, 0x50, 0xf4, 0x91, 0xef, 0x98, 0x7a, 0x33, 0x54, 0x0b, 0x43, 0xed, 0xcf, 0xac, 0x62,
	0xe4, 0xb3, 0x1c, 0xa9, 0xc9, 0x08, 0xe8, 0x95, 0x80, 0xdf, 0x94, 0xfa, 0x75, 0x8f, 0x3f, 0xa6,
	0x47, 0x07, 0xa7, 0xfc, 0xf3, 0x73, 0x17, 0xba, 0x83, 0x59, 0x3c, 0x19, 0xe6, 0x85, 0x4f, 0xa8,
	0x68, 0x6b, 0x81, 0xb2, 0x71, 0x64, 0xda, 0x8b, 0xf8, 0xeb, 0x0f, 0x4b, 0x70, 0x56, 0x9d, 0x35,
	0x1e, 0x24, 0x0e, 0x5e, 0x63, 0x58, 0xd1, 0xa2, 0x25, 0x22, 0x7c, 0x3b, 0x01, 0x21, 0x78, 0x87,
	0xd4, 0x00, 0x46, 0x57, 0x9f, 0xd3, 0x27, 0x52, 0x4c, 0x36, 0x02, 0xe7, 0xa0, 0xc4, 0xc8, 0x9e,
	0xea, 0xbf, 0x8a, 0xd2, 0x40, 0xc7, 0x38, 0xb5, 0xa3, 0xf7, 0xf2, 0xce, 0xf9, 0x61, 0x15, 0xa1,
	0xe0, 0xae, 0x5d, 0xa4, 0x9b, 0x34, 0x1a, 0x55, 0xad, 0x93, 0x32, 0x30, 0xf5, 0x8c, 0xb1, 0xe3,
	0x1d, 0xf6, 0xe2, 0x2e, 0x82, 0x66, 0xca, 0x60, 0xc0, 0x29, 0x23, 0xab, 0x0d, 0x53, 0x4e, 0x6f,
	0xd5, 0xdb, 0x37, 0x45, 0xde, 0xfd, 0x8e, 0x2f, 0x03, 0xff, 0x6a, 0x72, 0x6d, 0x6c, 0x5b, 0x51,
	0x8d, 0x1b, 0xaf, 0x92, 0xbb, 0xdd, 0xbc, 0x7f, 0x11, 0xd9, 0x5c, 0x41, 0x1f, 0x10, 0x5a, 0xd8,
	0x0a, 0xc1, 0x31, 0x88, 0xa5, 0xcd, 0x7b, 0xbd, 0x2d, 0x74, 0xd0, 0x12, 0xb8, 0xe5, 0xb4, 0xb0,
	0x89, 0x69, 0x97, 0x4a, 0x0c, 0x96, 0x77, 0x7e, 0x65, 0xb9, 0xf1, 0x09, 0xc5, 0x6e, 0xc6, 0x84,
	0x18, 0xf0, 0x7d, 0xec, 0x3a, 0xdc, 0x4d, 0x20, 0x79, 0xee, 0x5f, 0x3e, 0xd7, 0xcb, 0x39, 0x48,
}
