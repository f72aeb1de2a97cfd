package rvk

import (
	"encoding/binary"
	"encoding/hex"
	"testing"
)

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// loadState splits a 16-byte AES state into rs1 and rs2.
func loadState(s []byte) (lo, hi uint64) {
	return binary.LittleEndian.Uint64(s[0:8]), binary.LittleEndian.Uint64(s[8:16])
}

// TestAes64Round tests the first round of FIPS-197 appendix
// B.
func TestAes64Round(t *testing.T) {
	s0, s1 := loadState(unhex("193de3bea0f4e22b9ac68d2ae9f84808"))
	for _, tc := range []struct {
		name   string
		fn     func(rs1, rs2 uint64) uint64
		lo, hi uint64
	}{
		// After ShiftRows and SubBytes: d4bf5d30e0b452aeb84111f11e2798e5.
		{"aes64es", Aes64ES, 0xae52b4e0305dbfd4, 0xe598271ef11141b8},
		// After MixColumns: 046681e5e0cb199a48f8d37a2806264c.
		{"aes64esm", Aes64ESM, 0x9a19cbe0e5816604, 0x4c2606287ad3f848},
	} {
		lo, hi := tc.fn(s0, s1), tc.fn(s1, s0)
		if lo != tc.lo || hi != tc.hi {
			t.Fatalf("%s: expected (%#016x, %#016x), got (%#016x, %#016x)",
				tc.name, tc.lo, tc.hi, lo, hi)
		}
	}
}

// TestAes64Inverse tests that the decryption instructions undo
// the encryption instructions.
func TestAes64Inverse(t *testing.T) {
	for i := 0; i < 1000; i++ {
		s0, s1 := randUint64(), randUint64()

		e0, e1 := Aes64ES(s0, s1), Aes64ES(s1, s0)
		if d0, d1 := Aes64DS(e0, e1), Aes64DS(e1, e0); d0 != s0 || d1 != s1 {
			t.Fatalf("ds(es(%#x, %#x)) = (%#x, %#x)", s0, s1, d0, d1)
		}

		m0, m1 := Aes64ESM(s0, s1), Aes64ESM(s1, s0)
		m0, m1 = Aes64IM(m0), Aes64IM(m1)
		if d0, d1 := Aes64DS(m0, m1), Aes64DS(m1, m0); d0 != s0 || d1 != s1 {
			t.Fatalf("ds(im(esm(%#x, %#x))) = (%#x, %#x)", s0, s1, d0, d1)
		}

		// aes64dsm is aes64ds followed by InvMixColumns.
		if got, want := Aes64DSM(s0, s1), Aes64IM(Aes64DS(s0, s1)); got != want {
			t.Fatalf("dsm(%#x, %#x): expected %#x, got %#x", s0, s1, want, got)
		}
	}
}

// TestAes64KeySchedule tests the key expansion of FIPS-197
// appendix A.1.
func TestAes64KeySchedule(t *testing.T) {
	k0, k1 := loadState(unhex("2b7e151628aed2a6abf7158809cf4f3c"))
	for rnum := 0; rnum < 10; rnum++ {
		tmp := Aes64KS1I(k1, rnum)
		k0 = Aes64KS2(tmp, k0)
		k1 = Aes64KS2(k0, k1)
	}
	w0, w1 := loadState(unhex("d014f9a8c9ee2589e13f0cc8b6630ca6"))
	if k0 != w0 || k1 != w1 {
		t.Fatalf("expected (%#016x, %#016x), got (%#016x, %#016x)", w0, w1, k0, k1)
	}
}

func TestAes64KS1I(t *testing.T) {
	// Round 10 neither rotates nor adds a round constant.
	if got := Aes64KS1I(0x0001020300000000, 10); got != 0x637c777b637c777b {
		t.Fatalf("rnum 10: got %#016x", got)
	}
	// Round 0 rotates and adds rcon 0x01.
	if got := Aes64KS1I(0x0001020300000000, 0); got != 0x7b637c767b637c76 {
		t.Fatalf("rnum 0: got %#016x", got)
	}
	if got := Aes64KS2(0x1111111100000000, 0x2222222233333333); got != 0x0000000022222222 {
		t.Fatalf("ks2: got %#016x", got)
	}
}

// TestAes32Round tests that four aes32esmi calls per column
// compute the same round as aes64esm.
func TestAes32Round(t *testing.T) {
	type round32 func(rs1, rs2 uint32, bs int) uint32
	type round64 func(rs1, rs2 uint64) uint64
	for _, tc := range []struct {
		name string
		r32  round32
		r64  round64
		inv  bool
	}{
		{"es", Aes32ESI, Aes64ES, false},
		{"esm", Aes32ESMI, Aes64ESM, false},
		{"ds", Aes32DSI, Aes64DS, true},
		{"dsm", Aes32DSMI, Aes64DSM, true},
	} {
		for i := 0; i < 250; i++ {
			s0, s1 := randUint64(), randUint64()
			s := [4]uint32{uint32(s0), uint32(s0 >> 32), uint32(s1), uint32(s1 >> 32)}

			var n [4]uint32
			for j := range n {
				step := 1
				if tc.inv {
					step = 3
				}
				var x uint32
				for bs := 0; bs < 4; bs++ {
					x = tc.r32(x, s[(j+bs*step)%4], bs)
				}
				n[j] = x
			}
			lo, hi := tc.r64(s0, s1), tc.r64(s1, s0)
			if uint64(n[1])<<32|uint64(n[0]) != lo || uint64(n[3])<<32|uint64(n[2]) != hi {
				t.Fatalf("%s(%#x, %#x): expected (%#x, %#x), got %#x",
					tc.name, s0, s1, lo, hi, n)
			}
		}
	}
}

func TestAes32ByteSelect(t *testing.T) {
	// Byte 2 of rs2 is 0x53, whose S-box value is 0xed.
	if got := Aes32ESI(0x01000000, 0x00530000, 2); got != 0x01ed0000 {
		t.Fatalf("aes32esi: got %#08x", got)
	}
	if got := Aes32DSI(0, 0xed000000, 3); got != 0x53000000 {
		t.Fatalf("aes32dsi: got %#08x", got)
	}
}

func TestSelectorPanics(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func()
		msg  string
	}{
		{"aes32esi 4", func() { Aes32ESI(0, 0, 4) }, "rvk: invalid byte select"},
		{"aes32esmi -1", func() { Aes32ESMI(0, 0, -1) }, "rvk: invalid byte select"},
		{"aes32dsi 5", func() { Aes32DSI(0, 0, 5) }, "rvk: invalid byte select"},
		{"aes32dsmi 100", func() { Aes32DSMI(0, 0, 100) }, "rvk: invalid byte select"},
		{"sm4ed 4", func() { Sm4ED(0, 0, 4) }, "rvk: invalid byte select"},
		{"sm4ks -1", func() { Sm4KS(0, 0, -1) }, "rvk: invalid byte select"},
		{"aes64ks1i 11", func() { Aes64KS1I(0, 11) }, "rvk: invalid round number"},
		{"aes64ks1i -1", func() { Aes64KS1I(0, -1) }, "rvk: invalid round number"},
	} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("%s: expected a panic", tc.name)
				}
				if r != tc.msg {
					t.Fatalf("%s: expected %q, got %v", tc.name, tc.msg, r)
				}
			}()
			tc.fn()
		}()
	}
}
