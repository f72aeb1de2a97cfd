// Package rvk implements the RISC-V scalar cryptography
// instructions as Go functions.
//
// Each function computes exactly what the [zk] instruction of
// the same name computes: the bit manipulation (Zbkb), carry-less
// multiply (Zbkc) and crossbar permutation (Zbkx) extensions,
// and the AES (Zkne, Zknd), SHA-2 (Zknh), SM3 (Zksh) and SM4
// (Zksed) instructions.
//
// The implementation strategy is fixed when the package is
// built:
//
//   - By default every instruction is emulated in portable Go.
//   - With the rvk_native build tag on riscv64 the
//     instructions are executed by the CPU.
//   - With the rvk_native build tag on amd64 the AES and
//     carry-less multiply instructions are computed with
//     AES-NI and PCLMULQDQ; the rest are emulated.
//
// The purego build tag always selects emulation. Every
// strategy returns identical results for identical inputs.
//
// All functions are pure: they do not allocate, have no
// state and are safe for concurrent use.
//
// Emulated instructions are not constant time with respect
// to their inputs: table lookups leak through the data
// cache.
//
// [zk]: https://github.com/riscv/riscv-crypto/releases/tag/v1.0.1-scalar
package rvk

// Backend is an implementation strategy.
type Backend int

const (
	// BackendEmulate computes every instruction in portable
	// Go.
	BackendEmulate Backend = iota
	// BackendNative executes the RISC-V instructions.
	BackendNative
	// BackendSequence computes the instructions that have an
	// x86 equivalent with short AES-NI and PCLMULQDQ
	// sequences.
	BackendSequence
)

func (b Backend) String() string {
	switch b {
	case BackendEmulate:
		return "emulate"
	case BackendNative:
		return "native"
	case BackendSequence:
		return "sequence"
	default:
		return "Backend(?)"
	}
}

// checkByteSelect panics if bs is not a valid byte select
// immediate.
func checkByteSelect(bs int) {
	if uint(bs) > 3 {
		panic("rvk: invalid byte select")
	}
}

// checkRoundNumber panics if rnum is not a valid aes64ks1i
// round number.
func checkRoundNumber(rnum int) {
	if uint(rnum) > 10 {
		panic("rvk: invalid round number")
	}
}
