package rvk

import (
	"math/bits"
	"testing"
)

func TestSha256(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := randUint32()
		r := func(n int) uint32 { return bits.RotateLeft32(x, -n) }
		for _, tc := range []struct {
			name      string
			got, want uint32
		}{
			{"sig0", Sha256Sig0(x), r(7) ^ r(18) ^ x>>3},
			{"sig1", Sha256Sig1(x), r(17) ^ r(19) ^ x>>10},
			{"sum0", Sha256Sum0(x), r(2) ^ r(13) ^ r(22)},
			{"sum1", Sha256Sum1(x), r(6) ^ r(11) ^ r(25)},
		} {
			if tc.got != tc.want {
				t.Fatalf("%s(%#x): expected %#x, got %#x", tc.name, x, tc.want, tc.got)
			}
		}
	}
}

func TestSha512(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := randUint64()
		r := func(n int) uint64 { return bits.RotateLeft64(x, -n) }
		for _, tc := range []struct {
			name      string
			got, want uint64
		}{
			{"sig0", Sha512Sig0(x), r(1) ^ r(8) ^ x>>7},
			{"sig1", Sha512Sig1(x), r(19) ^ r(61) ^ x>>6},
			{"sum0", Sha512Sum0(x), r(28) ^ r(34) ^ r(39)},
			{"sum1", Sha512Sum1(x), r(14) ^ r(18) ^ r(41)},
		} {
			if tc.got != tc.want {
				t.Fatalf("%s(%#x): expected %#x, got %#x", tc.name, x, tc.want, tc.got)
			}
		}
	}
}

// TestSha512Split tests that the RV32 instructions compute
// the halves of the RV64 instructions.
func TestSha512Split(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x := randUint64()
		hi, lo := uint32(x>>32), uint32(x)
		for _, tc := range []struct {
			name         string
			gotHi, gotLo uint32
			full         uint64
		}{
			{"sig0", Sha512Sig0H(hi, lo), Sha512Sig0L(lo, hi), Sha512Sig0(x)},
			{"sig1", Sha512Sig1H(hi, lo), Sha512Sig1L(lo, hi), Sha512Sig1(x)},
			{"sum0", Sha512Sum0R(hi, lo), Sha512Sum0R(lo, hi), Sha512Sum0(x)},
			{"sum1", Sha512Sum1R(hi, lo), Sha512Sum1R(lo, hi), Sha512Sum1(x)},
		} {
			got := uint64(tc.gotHi)<<32 | uint64(tc.gotLo)
			if got != tc.full {
				t.Fatalf("%s(%#x): expected %#x, got %#x", tc.name, x, tc.full, got)
			}
		}
	}
}
