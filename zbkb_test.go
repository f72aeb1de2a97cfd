package rvk

import (
	"math/bits"
	"testing"

	rand "github.com/ericlagergren/saferand"
)

func randUint32() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func randUint64() uint64 {
	return uint64(randUint32())<<32 | uint64(randUint32())
}

func TestRotate(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x32, x64 := randUint32(), randUint64()
		n := uint32(rand.Intn(256))

		if got := Rol32(Ror32(x32, n), n); got != x32 {
			t.Fatalf("rol32(ror32(%#x, %d)) = %#x", x32, n, got)
		}
		if got := Rol64(Ror64(x64, uint64(n)), uint64(n)); got != x64 {
			t.Fatalf("rol64(ror64(%#x, %d)) = %#x", x64, n, got)
		}
		if Ror32(x32, n) != Ror32(x32, n%32) {
			t.Fatalf("ror32(%#x, %d): shift amount not reduced", x32, n)
		}
		if Ror64(x64, uint64(n)) != Ror64(x64, uint64(n%64)) {
			t.Fatalf("ror64(%#x, %d): shift amount not reduced", x64, n)
		}
	}
	if got := Ror32(0x12345678, 32); got != 0x12345678 {
		t.Fatalf("ror32 by width: got %#x", got)
	}
	if got := Rol64(0x0123456789abcdef, 64); got != 0x0123456789abcdef {
		t.Fatalf("rol64 by width: got %#x", got)
	}
	if got := Ror32(0x00000001, 1); got != 0x80000000 {
		t.Fatalf("ror32(1, 1): got %#x", got)
	}
}

func TestLogic(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, b := randUint64(), randUint64()
		if Andn64(a, b) != a&^b || Andn32(uint32(a), uint32(b)) != uint32(a&^b) {
			t.Fatalf("andn(%#x, %#x)", a, b)
		}
		if Orn64(a, b) != a|^b || Orn32(uint32(a), uint32(b)) != uint32(a|^b) {
			t.Fatalf("orn(%#x, %#x)", a, b)
		}
		if Xnor64(a, b) != ^(a^b) || Xnor32(uint32(a), uint32(b)) != uint32(^(a^b)) {
			t.Fatalf("xnor(%#x, %#x)", a, b)
		}
	}
}

func TestPack(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  uint64
		want uint64
	}{
		{"pack32", uint64(Pack32(0xaaaa1234, 0xbbbb5678)), 0x56781234},
		{"pack64", Pack64(0xaaaaaaaa11223344, 0xbbbbbbbb55667788), 0x5566778811223344},
		{"packh32", uint64(PackH32(0xaaaaaa12, 0xbbbbbb34)), 0x3412},
		{"packh64", PackH64(0xaaaaaaaaaaaaaa12, 0xbbbbbbbbbbbbbb34), 0x3412},
		{"packh32 zero", uint64(PackH32(0xffffff00, 0xffffff00)), 0},
	} {
		if tc.got != tc.want {
			t.Fatalf("%s: expected %#x, got %#x", tc.name, tc.want, tc.got)
		}
	}
}

func TestBytes(t *testing.T) {
	if got := Brev8x32(0x01020380); got != 0x8040c001 {
		t.Fatalf("brev8x32: got %#x", got)
	}
	if got := Rev8x32(0x11223344); got != 0x44332211 {
		t.Fatalf("rev8x32: got %#x", got)
	}
	if got := Rev8x64(0x1122334455667788); got != 0x8877665544332211 {
		t.Fatalf("rev8x64: got %#x", got)
	}
	for i := 0; i < 1000; i++ {
		x32, x64 := randUint32(), randUint64()
		// Reversing the bytes and the bits within each byte
		// reverses the whole word.
		if got := Brev8x32(Rev8x32(x32)); got != bits.Reverse32(x32) {
			t.Fatalf("brev8(rev8(%#x)) = %#x", x32, got)
		}
		if got := Rev8x64(x64); got != Brev8x64(bits.Reverse64(x64)) {
			t.Fatalf("rev8(%#x) = %#x", x64, got)
		}
		if Brev8x64(Brev8x64(x64)) != x64 {
			t.Fatalf("brev8 is not an involution for %#x", x64)
		}
	}
}

// zipRef interleaves the low and high halves of x one bit at
// a time.
func zipRef(x uint32) uint32 {
	var r uint32
	for i := 0; i < 16; i++ {
		r |= (x >> i & 1) << (2 * i)
		r |= (x >> (i + 16) & 1) << (2*i + 1)
	}
	return r
}

func TestZip(t *testing.T) {
	for _, tc := range []struct {
		in, out uint32
	}{
		{0x0000ffff, 0x55555555},
		{0xffff0000, 0xaaaaaaaa},
		{0x00010001, 0x00000003},
		{0x80008000, 0xc0000000},
	} {
		if got := Zip32(tc.in); got != tc.out {
			t.Fatalf("zip(%#x): expected %#x, got %#x", tc.in, tc.out, got)
		}
		if got := Unzip32(tc.out); got != tc.in {
			t.Fatalf("unzip(%#x): expected %#x, got %#x", tc.out, tc.in, got)
		}
	}
	for i := 0; i < 1000; i++ {
		x := randUint32()
		if got, want := Zip32(x), zipRef(x); got != want {
			t.Fatalf("zip(%#x): expected %#x, got %#x", x, want, got)
		}
		if got := Unzip32(Zip32(x)); got != x {
			t.Fatalf("unzip(zip(%#x)) = %#x", x, got)
		}
		if got := Zip32(Unzip32(x)); got != x {
			t.Fatalf("zip(unzip(%#x)) = %#x", x, got)
		}
	}
}
