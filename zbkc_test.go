package rvk

import (
	"math/big"
	"testing"
)

// clmulRef computes the carry-less product with one big.Int
// shift per set bit of b.
func clmulRef(a, b uint64) (hi, lo uint64) {
	var p, t big.Int
	x := new(big.Int).SetUint64(a)
	for i := 0; i < 64; i++ {
		if b>>i&1 == 1 {
			t.Lsh(x, uint(i))
			p.Xor(&p, &t)
		}
	}
	lo = new(big.Int).And(&p, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi = new(big.Int).Rsh(&p, 64).Uint64()
	return hi, lo
}

func TestClmul(t *testing.T) {
	for _, tc := range []struct {
		a, b   uint64
		hi, lo uint64
	}{
		{0, 0, 0, 0},
		{3, 3, 0, 5},
		{1 << 63, 2, 1, 0},
		{^uint64(0), ^uint64(0), 0x5555555555555555, 0x5555555555555555},
		{0x8000000000000001, 0x8000000000000001, 0x4000000000000000, 0x0000000000000001},
	} {
		if got := Clmul64(tc.a, tc.b); got != tc.lo {
			t.Fatalf("clmul(%#x, %#x): expected %#x, got %#x", tc.a, tc.b, tc.lo, got)
		}
		if got := Clmulh64(tc.a, tc.b); got != tc.hi {
			t.Fatalf("clmulh(%#x, %#x): expected %#x, got %#x", tc.a, tc.b, tc.hi, got)
		}
	}
	for i := 0; i < 1000; i++ {
		a, b := randUint64(), randUint64()
		hi, lo := clmulRef(a, b)
		if got := Clmul64(a, b); got != lo {
			t.Fatalf("clmul(%#x, %#x): expected %#x, got %#x", a, b, lo, got)
		}
		if got := Clmulh64(a, b); got != hi {
			t.Fatalf("clmulh(%#x, %#x): expected %#x, got %#x", a, b, hi, got)
		}
		if Clmul64(a, b) != Clmul64(b, a) {
			t.Fatalf("clmul(%#x, %#x) is not commutative", a, b)
		}

		a32, b32 := uint32(a), uint32(b)
		_, p := clmulRef(uint64(a32), uint64(b32))
		if got := Clmul32(a32, b32); got != uint32(p) {
			t.Fatalf("clmul32(%#x, %#x): expected %#x, got %#x", a32, b32, uint32(p), got)
		}
		if got := Clmulh32(a32, b32); got != uint32(p>>32) {
			t.Fatalf("clmulh32(%#x, %#x): expected %#x, got %#x", a32, b32, uint32(p>>32), got)
		}
	}
}
