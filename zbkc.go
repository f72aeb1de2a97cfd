package rvk

// Clmul32 returns the low 32 bits of the carry-less product
// of rs1 and rs2.
func Clmul32(rs1, rs2 uint32) uint32 { return clmul32(rs1, rs2) }

// Clmulh32 returns the high 32 bits of the carry-less
// product of rs1 and rs2.
func Clmulh32(rs1, rs2 uint32) uint32 { return clmulh32(rs1, rs2) }

// Clmul64 returns the low 64 bits of the carry-less product
// of rs1 and rs2.
func Clmul64(rs1, rs2 uint64) uint64 { return clmul64(rs1, rs2) }

// Clmulh64 returns the high 64 bits of the carry-less
// product of rs1 and rs2.
func Clmulh64(rs1, rs2 uint64) uint64 { return clmulh64(rs1, rs2) }
