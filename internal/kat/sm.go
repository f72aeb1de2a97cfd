package kat

import (
	"encoding/binary"

	"github.com/ericlagergren/rvk"
)

// BlockSizeSM3 is the SM3 block size in bytes.
const BlockSizeSM3 = 64

// IVSM3 is the SM3 initial hash value.
var IVSM3 = [8]uint32{
	0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
	0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
}

// BlockSM3 runs the SM3 compression function over each full
// block in p.
func BlockSM3(h *[8]uint32, p []byte) {
	var w [68]uint32
	for len(p) >= BlockSizeSM3 {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[4*i:])
		}
		for i := 16; i < 68; i++ {
			x := w[i-16] ^ w[i-9] ^ rvk.Rol32(w[i-3], 15)
			w[i] = rvk.Sm3P1(x) ^ rvk.Rol32(w[i-13], 7) ^ w[i-6]
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for j := 0; j < 64; j++ {
			var t, ff, gg uint32
			if j < 16 {
				t = 0x79cc4519
				ff = a ^ b ^ c
				gg = e ^ f ^ g
			} else {
				t = 0x7a879d8a
				ff = a&b | a&c | b&c
				gg = e&f | ^e&g
			}
			a12 := rvk.Rol32(a, 12)
			ss1 := rvk.Rol32(a12+e+rvk.Rol32(t, uint32(j%32)), 7)
			ss2 := ss1 ^ a12
			tt1 := ff + d + ss2 + (w[j] ^ w[j+4])
			tt2 := gg + hh + ss1 + w[j]
			d = c
			c = rvk.Rol32(b, 9)
			b = a
			a = tt1
			hh = g
			g = rvk.Rol32(f, 19)
			f = e
			e = rvk.Sm3P0(tt2)
		}
		h[0] ^= a
		h[1] ^= b
		h[2] ^= c
		h[3] ^= d
		h[4] ^= e
		h[5] ^= f
		h[6] ^= g
		h[7] ^= hh

		p = p[BlockSizeSM3:]
	}
}

var sm4FK = [4]uint32{0xa3b1bac6, 0x56aa3350, 0x677d9197, 0xb27022dc}

// sm4CK is the SM4 key schedule constant: byte j of word i is
// (4i+j)*7 mod 256.
var sm4CK = func() (ck [32]uint32) {
	for i := range ck {
		for j := 0; j < 4; j++ {
			ck[i] = ck[i]<<8 | uint32(byte((4*i+j)*7))
		}
	}
	return ck
}()

// SM4 is an expanded SM4 key.
type SM4 struct {
	rk [32]uint32
}

// NewSM4 expands key with sm4ks.
func NewSM4(key *[16]byte) *SM4 {
	var k [4]uint32
	for i := range k {
		k[i] = binary.BigEndian.Uint32(key[4*i:]) ^ sm4FK[i]
	}
	var c SM4
	for i := range c.rk {
		x := k[1] ^ k[2] ^ k[3] ^ sm4CK[i]
		t := k[0]
		for bs := 0; bs < 4; bs++ {
			t = rvk.Sm4KS(t, x, bs)
		}
		c.rk[i] = t
		k[0], k[1], k[2], k[3] = k[1], k[2], k[3], t
	}
	return &c
}

// Encrypt encrypts a single block.
func (c *SM4) Encrypt(dst, src *[16]byte) {
	sm4Crypt(&c.rk, dst, src, false)
}

// Decrypt decrypts a single block.
func (c *SM4) Decrypt(dst, src *[16]byte) {
	sm4Crypt(&c.rk, dst, src, true)
}

func sm4Crypt(rk *[32]uint32, dst, src *[16]byte, inverse bool) {
	var s [4]uint32
	for i := range s {
		s[i] = binary.BigEndian.Uint32(src[4*i:])
	}
	for i := 0; i < 32; i++ {
		k := rk[i]
		if inverse {
			k = rk[31-i]
		}
		x := s[1] ^ s[2] ^ s[3] ^ k
		t := s[0]
		for bs := 0; bs < 4; bs++ {
			t = rvk.Sm4ED(t, x, bs)
		}
		s[0], s[1], s[2], s[3] = s[1], s[2], s[3], t
	}
	for i := range s {
		binary.BigEndian.PutUint32(dst[4*i:], s[3-i])
	}
}
