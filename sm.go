package rvk

// Sm3P0 returns the SM3 permutation P0(rs1).
func Sm3P0(rs1 uint32) uint32 { return sm3p0(rs1) }

// Sm3P1 returns the SM3 permutation P1(rs1).
func Sm3P1(rs1 uint32) uint32 { return sm3p1(rs1) }

// Sm4ED substitutes byte bs of rs2 with the SM4 S-box,
// applies the round function's linear transform L to the
// result in byte slot bs and XORs it into rs1.
//
// Calling it for bs = 0, 1, 2, 3 with the same rs2 computes
// rs1 ^ T(rs2), one SM4 round. Sm4ED panics if bs is not in
// [0, 3].
func Sm4ED(rs1, rs2 uint32, bs int) uint32 {
	checkByteSelect(bs)
	return sm4ed(rs1, rs2, bs)
}

// Sm4KS is Sm4ED with the key schedule's linear transform
// L' in place of L.
func Sm4KS(rs1, rs2 uint32, bs int) uint32 {
	checkByteSelect(bs)
	return sm4ks(rs1, rs2, bs)
}
