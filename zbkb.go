package rvk

// Ror32 rotates rs1 right by rs2 mod 32 bits.
//
// It corresponds to ror on RV32 and rorw on RV64.
func Ror32(rs1, rs2 uint32) uint32 { return ror32(rs1, rs2) }

// Rol32 rotates rs1 left by rs2 mod 32 bits.
//
// It corresponds to rol on RV32 and rolw on RV64.
func Rol32(rs1, rs2 uint32) uint32 { return rol32(rs1, rs2) }

// Ror64 rotates rs1 right by rs2 mod 64 bits.
func Ror64(rs1, rs2 uint64) uint64 { return ror64(rs1, rs2) }

// Rol64 rotates rs1 left by rs2 mod 64 bits.
func Rol64(rs1, rs2 uint64) uint64 { return rol64(rs1, rs2) }

// Andn32 returns rs1 & ^rs2.
func Andn32(rs1, rs2 uint32) uint32 { return andn32(rs1, rs2) }

// Andn64 returns rs1 & ^rs2.
func Andn64(rs1, rs2 uint64) uint64 { return andn64(rs1, rs2) }

// Orn32 returns rs1 | ^rs2.
func Orn32(rs1, rs2 uint32) uint32 { return orn32(rs1, rs2) }

// Orn64 returns rs1 | ^rs2.
func Orn64(rs1, rs2 uint64) uint64 { return orn64(rs1, rs2) }

// Xnor32 returns ^(rs1 ^ rs2).
func Xnor32(rs1, rs2 uint32) uint32 { return xnor32(rs1, rs2) }

// Xnor64 returns ^(rs1 ^ rs2).
func Xnor64(rs1, rs2 uint64) uint64 { return xnor64(rs1, rs2) }

// Pack32 packs the low halves of rs1 and rs2 into the low
// and high halves of the result.
//
// It corresponds to pack on RV32 and packw on RV64.
func Pack32(rs1, rs2 uint32) uint32 { return pack32(rs1, rs2) }

// Pack64 packs the low halves of rs1 and rs2 into the low
// and high halves of the result.
func Pack64(rs1, rs2 uint64) uint64 { return pack64(rs1, rs2) }

// PackH32 packs the least significant byte of rs1 and rs2
// into bits 0-7 and 8-15 of the result. The remaining bits
// are zero.
func PackH32(rs1, rs2 uint32) uint32 { return packh32(rs1, rs2) }

// PackH64 is the 64-bit form of PackH32.
func PackH64(rs1, rs2 uint64) uint64 { return packh64(rs1, rs2) }

// Brev8x32 reverses the order of the bits in each byte of
// rs1.
func Brev8x32(rs1 uint32) uint32 { return brev8x32(rs1) }

// Brev8x64 reverses the order of the bits in each byte of
// rs1.
func Brev8x64(rs1 uint64) uint64 { return brev8x64(rs1) }

// Rev8x32 reverses the order of the bytes in rs1.
func Rev8x32(rs1 uint32) uint32 { return rev8x32(rs1) }

// Rev8x64 reverses the order of the bytes in rs1.
func Rev8x64(rs1 uint64) uint64 { return rev8x64(rs1) }
