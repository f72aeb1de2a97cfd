package rvk

// Aes64ES performs ShiftRows and SubBytes on the 128-bit
// state rs2:rs1 and returns the low 64 bits of the result.
//
// Aes64ES(rs2, rs1) returns the high 64 bits. Together with
// the round key XOR this is the final encryption round.
func Aes64ES(rs1, rs2 uint64) uint64 { return aes64es(rs1, rs2) }

// Aes64ESM is Aes64ES followed by MixColumns on both
// columns of the result: a middle encryption round without
// AddRoundKey.
func Aes64ESM(rs1, rs2 uint64) uint64 { return aes64esm(rs1, rs2) }

// Aes64DS performs InvShiftRows and InvSubBytes on the
// 128-bit state rs2:rs1 and returns the low 64 bits of the
// result.
//
// Aes64DS(rs2, rs1) returns the high 64 bits.
func Aes64DS(rs1, rs2 uint64) uint64 { return aes64ds(rs1, rs2) }

// Aes64DSM is Aes64DS followed by InvMixColumns on both
// columns of the result.
//
// This is the equivalent inverse cipher (FIPS-197 5.3.5):
// the decryption round keys must have been transformed with
// Aes64IM.
func Aes64DSM(rs1, rs2 uint64) uint64 { return aes64dsm(rs1, rs2) }

// Aes64IM applies InvMixColumns to the two columns in rs1.
func Aes64IM(rs1 uint64) uint64 { return aes64im(rs1) }

// Aes64KS1I computes SubWord(RotWord(w)) ^ rcon[rnum] of the
// upper word w of rs1 and returns it in both halves of the
// result.
//
// rnum must be in [0, 10]. Round number 10 skips both the
// rotation and the round constant, as needed by the AES-256
// key schedule. Aes64KS1I panics if rnum is out of range.
func Aes64KS1I(rs1 uint64, rnum int) uint64 {
	checkRoundNumber(rnum)
	return aes64ks1i(rs1, rnum)
}

// Aes64KS2 finishes a step of the AES key schedule: the low
// word of the result is w0 = hi(rs1) ^ lo(rs2) and the high
// word is w0 ^ hi(rs2).
func Aes64KS2(rs1, rs2 uint64) uint64 { return aes64ks2(rs1, rs2) }
