//go:build amd64 && gc && !purego && rvk_native

package rvk

import "testing"

func TestSelectedSequence(t *testing.T) {
	if Selected != BackendSequence {
		t.Fatalf("expected %s, got %s", BackendSequence, Selected)
	}
}

// TestAESNI compares the AES-NI sequences with the portable
// implementation on states whose halves share bytes, which
// exercises the PINSRQ lane order.
func TestAESNI(t *testing.T) {
	for _, tc := range []struct {
		name string
		asm  func(rs1, rs2 uint64) uint64
		gen  func(rs1, rs2 uint64) uint64
	}{
		{"aes64es", aes64esAsm, aes64esGeneric},
		{"aes64esm", aes64esmAsm, aes64esmGeneric},
		{"aes64ds", aes64dsAsm, aes64dsGeneric},
		{"aes64dsm", aes64dsmAsm, aes64dsmGeneric},
		{"clmul64", clmul64Asm, clmul64Generic},
		{"clmulh64", clmulh64Asm, clmulh64Generic},
	} {
		for _, s := range [][2]uint64{
			{0, 0},
			{0x0706050403020100, 0x0f0e0d0c0b0a0908},
			{^uint64(0), 0},
			{0, ^uint64(0)},
		} {
			if got, want := tc.asm(s[0], s[1]), tc.gen(s[0], s[1]); got != want {
				t.Fatalf("%s(%#x, %#x): expected %#x, got %#x", tc.name, s[0], s[1], want, got)
			}
		}
	}
	if got, want := aes64imAsm(0x0706050403020100), aes64imGeneric(0x0706050403020100); got != want {
		t.Fatalf("aes64im: expected %#x, got %#x", want, got)
	}
	if got, want := clmulh32Asm(0xffffffff, 0xffffffff), clmulh32Generic(0xffffffff, 0xffffffff); got != want {
		t.Fatalf("clmulh32: expected %#x, got %#x", want, got)
	}
}
