package rvk

// The crossbar permutations rely on Go's shift semantics:
// shifting an unsigned lane by its width or more yields zero,
// which is exactly the result required for an out of range
// index.

func xperm4x32Generic(rs1, rs2 uint32) uint32 {
	var r uint32
	for i := uint(0); i < 32; i += 4 {
		j := rs2 >> i & 0xf
		r |= (rs1 >> (4 * j) & 0xf) << i
	}
	return r
}

func xperm4x64Generic(rs1, rs2 uint64) uint64 {
	var r uint64
	for i := uint(0); i < 64; i += 4 {
		j := rs2 >> i & 0xf
		r |= (rs1 >> (4 * j) & 0xf) << i
	}
	return r
}

func xperm8x32Generic(rs1, rs2 uint32) uint32 {
	var r uint32
	for i := uint(0); i < 32; i += 8 {
		j := rs2 >> i & 0xff
		r |= (rs1 >> (8 * j) & 0xff) << i
	}
	return r
}

func xperm8x64Generic(rs1, rs2 uint64) uint64 {
	var r uint64
	for i := uint(0); i < 64; i += 8 {
		j := rs2 >> i & 0xff
		r |= (rs1 >> (8 * j) & 0xff) << i
	}
	return r
}
