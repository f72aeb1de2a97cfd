package rvk

// clmulFull64 returns the 128-bit carry-less product of a and b.
func clmulFull64(a, b uint64) (hi, lo uint64) {
	for i := uint(0); i < 64; i++ {
		m := -(b >> i & 1)
		lo ^= a << i & m
		// a>>64 is zero, so i == 0 contributes nothing to hi.
		hi ^= a >> (64 - i) & m
	}
	return hi, lo
}

// clmulFull32 returns the 64-bit carry-less product of a and b.
func clmulFull32(a, b uint32) uint64 {
	x := uint64(a)
	var p uint64
	for i := uint(0); i < 32; i++ {
		p ^= x << i & -(uint64(b) >> i & 1)
	}
	return p
}

func clmul32Generic(rs1, rs2 uint32) uint32 {
	return uint32(clmulFull32(rs1, rs2))
}

func clmulh32Generic(rs1, rs2 uint32) uint32 {
	return uint32(clmulFull32(rs1, rs2) >> 32)
}

func clmul64Generic(rs1, rs2 uint64) uint64 {
	_, lo := clmulFull64(rs1, rs2)
	return lo
}

func clmulh64Generic(rs1, rs2 uint64) uint64 {
	hi, _ := clmulFull64(rs1, rs2)
	return hi
}
