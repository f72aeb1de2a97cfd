//go:build riscv64 && gc && !purego && rvk_native

package rvk

// Selected is the backend chosen for this build.
const Selected = BackendNative

// The round number and byte select are immediates, so each
// value has its own instruction.

var aes64ks1iAsm = [11]func(rs1 uint64) uint64{
	aes64ks1i0Asm, aes64ks1i1Asm, aes64ks1i2Asm, aes64ks1i3Asm, aes64ks1i4Asm, aes64ks1i5Asm,
	aes64ks1i6Asm, aes64ks1i7Asm, aes64ks1i8Asm, aes64ks1i9Asm, aes64ks1i10Asm,
}

var sm4edAsm = [4]func(rs1, rs2 uint32) uint32{
	sm4ed0Asm, sm4ed1Asm, sm4ed2Asm, sm4ed3Asm,
}

var sm4ksAsm = [4]func(rs1, rs2 uint32) uint32{
	sm4ks0Asm, sm4ks1Asm, sm4ks2Asm, sm4ks3Asm,
}

func ror32(rs1, rs2 uint32) uint32 {
	return ror32Asm(rs1, rs2)
}

func rol32(rs1, rs2 uint32) uint32 {
	return rol32Asm(rs1, rs2)
}

func ror64(rs1, rs2 uint64) uint64 {
	return ror64Asm(rs1, rs2)
}

func rol64(rs1, rs2 uint64) uint64 {
	return rol64Asm(rs1, rs2)
}

func andn32(rs1, rs2 uint32) uint32 {
	return andn32Asm(rs1, rs2)
}

func andn64(rs1, rs2 uint64) uint64 {
	return andn64Asm(rs1, rs2)
}

func orn32(rs1, rs2 uint32) uint32 {
	return orn32Asm(rs1, rs2)
}

func orn64(rs1, rs2 uint64) uint64 {
	return orn64Asm(rs1, rs2)
}

func xnor32(rs1, rs2 uint32) uint32 {
	return xnor32Asm(rs1, rs2)
}

func xnor64(rs1, rs2 uint64) uint64 {
	return xnor64Asm(rs1, rs2)
}

func pack32(rs1, rs2 uint32) uint32 {
	return pack32Asm(rs1, rs2)
}

func pack64(rs1, rs2 uint64) uint64 {
	return pack64Asm(rs1, rs2)
}

func packh32(rs1, rs2 uint32) uint32 {
	return packh32Asm(rs1, rs2)
}

func packh64(rs1, rs2 uint64) uint64 {
	return packh64Asm(rs1, rs2)
}

func brev8x32(rs1 uint32) uint32 {
	return brev8x32Asm(rs1)
}

func brev8x64(rs1 uint64) uint64 {
	return brev8x64Asm(rs1)
}

func rev8x32(rs1 uint32) uint32 {
	return rev8x32Asm(rs1)
}

func rev8x64(rs1 uint64) uint64 {
	return rev8x64Asm(rs1)
}

func clmul32(rs1, rs2 uint32) uint32 {
	return clmul32Asm(rs1, rs2)
}

func clmulh32(rs1, rs2 uint32) uint32 {
	return clmulh32Asm(rs1, rs2)
}

func clmul64(rs1, rs2 uint64) uint64 {
	return clmul64Asm(rs1, rs2)
}

func clmulh64(rs1, rs2 uint64) uint64 {
	return clmulh64Asm(rs1, rs2)
}

func xperm4x32(rs1, rs2 uint32) uint32 {
	return xperm4x32Asm(rs1, rs2)
}

func xperm4x64(rs1, rs2 uint64) uint64 {
	return xperm4x64Asm(rs1, rs2)
}

func xperm8x32(rs1, rs2 uint32) uint32 {
	return xperm8x32Asm(rs1, rs2)
}

func xperm8x64(rs1, rs2 uint64) uint64 {
	return xperm8x64Asm(rs1, rs2)
}

func aes64es(rs1, rs2 uint64) uint64 {
	return aes64esAsm(rs1, rs2)
}

func aes64esm(rs1, rs2 uint64) uint64 {
	return aes64esmAsm(rs1, rs2)
}

func aes64ds(rs1, rs2 uint64) uint64 {
	return aes64dsAsm(rs1, rs2)
}

func aes64dsm(rs1, rs2 uint64) uint64 {
	return aes64dsmAsm(rs1, rs2)
}

func aes64im(rs1 uint64) uint64 {
	return aes64imAsm(rs1)
}

func aes64ks1i(rs1 uint64, rnum int) uint64 {
	return aes64ks1iAsm[rnum](rs1)
}

func aes64ks2(rs1, rs2 uint64) uint64 {
	return aes64ks2Asm(rs1, rs2)
}

func sha256sig0(rs1 uint32) uint32 {
	return sha256sig0Asm(rs1)
}

func sha256sig1(rs1 uint32) uint32 {
	return sha256sig1Asm(rs1)
}

func sha256sum0(rs1 uint32) uint32 {
	return sha256sum0Asm(rs1)
}

func sha256sum1(rs1 uint32) uint32 {
	return sha256sum1Asm(rs1)
}

func sha512sig0(rs1 uint64) uint64 {
	return sha512sig0Asm(rs1)
}

func sha512sig1(rs1 uint64) uint64 {
	return sha512sig1Asm(rs1)
}

func sha512sum0(rs1 uint64) uint64 {
	return sha512sum0Asm(rs1)
}

func sha512sum1(rs1 uint64) uint64 {
	return sha512sum1Asm(rs1)
}

func sm3p0(rs1 uint32) uint32 {
	return sm3p0Asm(rs1)
}

func sm3p1(rs1 uint32) uint32 {
	return sm3p1Asm(rs1)
}

func sm4ed(rs1, rs2 uint32, bs int) uint32 {
	return sm4edAsm[bs&3](rs1, rs2)
}

func sm4ks(rs1, rs2 uint32, bs int) uint32 {
	return sm4ksAsm[bs&3](rs1, rs2)
}
