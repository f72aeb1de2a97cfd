package kat

import (
	"bytes"
	"crypto/aes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"testing"

	"github.com/emmansun/gmsm/sm3"
	"github.com/emmansun/gmsm/sm4"
	rand "github.com/ericlagergren/saferand"
	"github.com/go-errors/errors"
)

func TestChecks(t *testing.T) {
	for _, c := range Checks() {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			if err := c.Run(); err != nil {
				t.Fatalf("%s (%s): %v", c.Name, c.Source, err)
			}
		})
	}
	if failed := RunAll(); len(failed) != 0 {
		t.Fatalf("failed: %v", failed)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("sm3-abc"); !ok {
		t.Fatal("sm3-abc not found")
	}
	if _, ok := Lookup("md5"); ok {
		t.Fatal("found unknown check")
	}
}

func TestCompareMismatch(t *testing.T) {
	err := compare("x", []byte{1}, []byte{2})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

func randBlock(t *testing.T) *[16]byte {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		t.Fatal(err)
	}
	return &b
}

// TestAES compares both AES-128 compositions with crypto/aes
// using random keys and blocks.
func TestAES(t *testing.T) {
	for i := 0; i < 500; i++ {
		key := randBlock(t)
		pt := randBlock(t)

		ref, err := aes.NewCipher(key[:])
		if err != nil {
			t.Fatal(err)
		}
		var want [16]byte
		ref.Encrypt(want[:], pt[:])

		for _, c := range []struct {
			name string
			c    blockCipher
		}{
			{"rv64", NewAES128x64(key)},
			{"rv32", NewAES128x32(key)},
		} {
			var got [16]byte
			c.c.Encrypt(&got, pt)
			if got != want {
				t.Fatalf("%s: encrypt(%x, %x): expected %x, got %x",
					c.name, key, pt, want, got)
			}
			c.c.Decrypt(&got, &want)
			if got != *pt {
				t.Fatalf("%s: decrypt(%x, %x): expected %x, got %x",
					c.name, key, want, *pt, got)
			}
		}
	}
}

func TestSM4(t *testing.T) {
	for i := 0; i < 500; i++ {
		key := randBlock(t)
		pt := randBlock(t)

		ref, err := sm4.NewCipher(key[:])
		if err != nil {
			t.Fatal(err)
		}
		var want [16]byte
		ref.Encrypt(want[:], pt[:])

		c := NewSM4(key)
		var got [16]byte
		c.Encrypt(&got, pt)
		if got != want {
			t.Fatalf("encrypt(%x, %x): expected %x, got %x", key, pt, want, got)
		}
		c.Decrypt(&got, &want)
		if got != *pt {
			t.Fatalf("decrypt(%x, %x): expected %x, got %x", key, want, *pt, got)
		}
	}
}

func randMessage(t *testing.T) []byte {
	msg := make([]byte, rand.Intn(600))
	if _, err := rand.Read(msg); err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestSHA256(t *testing.T) {
	for i := 0; i < 200; i++ {
		msg := randMessage(t)
		h := IVSHA256
		BlockSHA256(&h, pad(msg, BlockSizeSHA256, 8))
		got := make([]byte, 32)
		for j, v := range h {
			binary.BigEndian.PutUint32(got[4*j:], v)
		}
		want := sha256.Sum256(msg)
		if !bytes.Equal(got, want[:]) {
			t.Fatalf("%x: expected %x, got %x", msg, want, got)
		}
	}
}

func TestSHA512(t *testing.T) {
	for _, tc := range []struct {
		name  string
		block func(*[8]uint64, []byte)
	}{
		{"rv64", BlockSHA512},
		{"rv32", BlockSHA512x32},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				msg := randMessage(t)
				h := IVSHA512
				tc.block(&h, pad(msg, BlockSizeSHA512, 16))
				got := make([]byte, 64)
				for j, v := range h {
					binary.BigEndian.PutUint64(got[8*j:], v)
				}
				want := sha512.Sum512(msg)
				if !bytes.Equal(got, want[:]) {
					t.Fatalf("%x: expected %x, got %x", msg, want, got)
				}
			}
		})
	}
}

func TestSM3(t *testing.T) {
	for i := 0; i < 200; i++ {
		msg := randMessage(t)
		h := IVSM3
		BlockSM3(&h, pad(msg, BlockSizeSM3, 8))
		got := make([]byte, 32)
		for j, v := range h {
			binary.BigEndian.PutUint32(got[4*j:], v)
		}
		want := sm3.Sum(msg)
		if !bytes.Equal(got, want[:]) {
			t.Fatalf("%x: expected %x, got %x", msg, want, got)
		}
	}
}

func TestPad(t *testing.T) {
	for _, tc := range []struct {
		n, blockSize, lenSize, want int
	}{
		{0, 64, 8, 64},
		{55, 64, 8, 64},
		{56, 64, 8, 128},
		{111, 128, 16, 128},
		{112, 128, 16, 256},
	} {
		got := pad(make([]byte, tc.n), tc.blockSize, tc.lenSize)
		if len(got) != tc.want {
			t.Fatalf("pad(%d, %d, %d): expected %d bytes, got %d",
				tc.n, tc.blockSize, tc.lenSize, tc.want, len(got))
		}
		if got[tc.n] != 0x80 {
			t.Fatalf("pad(%d): missing 0x80 marker", tc.n)
		}
		if l := binary.BigEndian.Uint64(got[len(got)-8:]); l != uint64(tc.n)*8 {
			t.Fatalf("pad(%d): expected bit length %d, got %d", tc.n, tc.n*8, l)
		}
	}
}
