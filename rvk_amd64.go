//go:build amd64 && gc && !purego && rvk_native

package rvk

import "golang.org/x/sys/cpu"

// Selected is the backend chosen for this build.
const Selected = BackendSequence

func init() {
	if !cpu.X86.HasAES || !cpu.X86.HasPCLMULQDQ || !cpu.X86.HasSSE41 {
		panic("rvk: built with rvk_native, but the CPU lacks AES-NI, PCLMULQDQ or SSE4.1")
	}
}

func ror32(rs1, rs2 uint32) uint32 {
	return ror32Generic(rs1, rs2)
}

func rol32(rs1, rs2 uint32) uint32 {
	return rol32Generic(rs1, rs2)
}

func ror64(rs1, rs2 uint64) uint64 {
	return ror64Generic(rs1, rs2)
}

func rol64(rs1, rs2 uint64) uint64 {
	return rol64Generic(rs1, rs2)
}

func andn32(rs1, rs2 uint32) uint32 {
	return andn32Generic(rs1, rs2)
}

func andn64(rs1, rs2 uint64) uint64 {
	return andn64Generic(rs1, rs2)
}

func orn32(rs1, rs2 uint32) uint32 {
	return orn32Generic(rs1, rs2)
}

func orn64(rs1, rs2 uint64) uint64 {
	return orn64Generic(rs1, rs2)
}

func xnor32(rs1, rs2 uint32) uint32 {
	return xnor32Generic(rs1, rs2)
}

func xnor64(rs1, rs2 uint64) uint64 {
	return xnor64Generic(rs1, rs2)
}

func pack32(rs1, rs2 uint32) uint32 {
	return pack32Generic(rs1, rs2)
}

func pack64(rs1, rs2 uint64) uint64 {
	return pack64Generic(rs1, rs2)
}

func packh32(rs1, rs2 uint32) uint32 {
	return packh32Generic(rs1, rs2)
}

func packh64(rs1, rs2 uint64) uint64 {
	return packh64Generic(rs1, rs2)
}

func brev8x32(rs1 uint32) uint32 {
	return brev8x32Generic(rs1)
}

func brev8x64(rs1 uint64) uint64 {
	return brev8x64Generic(rs1)
}

func rev8x32(rs1 uint32) uint32 {
	return rev8x32Generic(rs1)
}

func rev8x64(rs1 uint64) uint64 {
	return rev8x64Generic(rs1)
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
	return xperm4x32Generic(rs1, rs2)
}

func xperm4x64(rs1, rs2 uint64) uint64 {
	return xperm4x64Generic(rs1, rs2)
}

func xperm8x32(rs1, rs2 uint32) uint32 {
	return xperm8x32Generic(rs1, rs2)
}

func xperm8x64(rs1, rs2 uint64) uint64 {
	return xperm8x64Generic(rs1, rs2)
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
	return aes64ks1iGeneric(rs1, rnum)
}

func aes64ks2(rs1, rs2 uint64) uint64 {
	return aes64ks2Generic(rs1, rs2)
}

func sha256sig0(rs1 uint32) uint32 {
	return sha256sig0Generic(rs1)
}

func sha256sig1(rs1 uint32) uint32 {
	return sha256sig1Generic(rs1)
}

func sha256sum0(rs1 uint32) uint32 {
	return sha256sum0Generic(rs1)
}

func sha256sum1(rs1 uint32) uint32 {
	return sha256sum1Generic(rs1)
}

func sha512sig0(rs1 uint64) uint64 {
	return sha512sig0Generic(rs1)
}

func sha512sig1(rs1 uint64) uint64 {
	return sha512sig1Generic(rs1)
}

func sha512sum0(rs1 uint64) uint64 {
	return sha512sum0Generic(rs1)
}

func sha512sum1(rs1 uint64) uint64 {
	return sha512sum1Generic(rs1)
}

func sm3p0(rs1 uint32) uint32 {
	return sm3p0Generic(rs1)
}

func sm3p1(rs1 uint32) uint32 {
	return sm3p1Generic(rs1)
}

func sm4ed(rs1, rs2 uint32, bs int) uint32 {
	return sm4edGeneric(rs1, rs2, bs)
}

func sm4ks(rs1, rs2 uint32, bs int) uint32 {
	return sm4ksGeneric(rs1, rs2, bs)
}
