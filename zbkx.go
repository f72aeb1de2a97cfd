package rvk

// Xperm4x32 uses each nibble of rs2 as an index into the
// nibbles of rs1. Indices past the last nibble select zero.
func Xperm4x32(rs1, rs2 uint32) uint32 { return xperm4x32(rs1, rs2) }

// Xperm4x64 uses each nibble of rs2 as an index into the
// nibbles of rs1.
func Xperm4x64(rs1, rs2 uint64) uint64 { return xperm4x64(rs1, rs2) }

// Xperm8x32 uses each byte of rs2 as an index into the bytes
// of rs1. Indices past the last byte select zero.
func Xperm8x32(rs1, rs2 uint32) uint32 { return xperm8x32(rs1, rs2) }

// Xperm8x64 uses each byte of rs2 as an index into the bytes
// of rs1. Indices past the last byte select zero.
func Xperm8x64(rs1, rs2 uint64) uint64 { return xperm8x64(rs1, rs2) }
