package kat

import (
	"encoding/binary"

	"github.com/ericlagergren/rvk"
)

// aesRcon is the AES-128 round constant for the 32-bit key
// schedule.
var aesRcon = [10]uint32{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36,
}

// AES128x64 is an expanded AES-128 key for the RV64
// instructions.
//
// Each round key is a pair of little-endian words: the low
// and high halves of the 128-bit state.
type AES128x64 struct {
	rk [11][2]uint64
}

// NewAES128x64 expands key with aes64ks1i and aes64ks2.
func NewAES128x64(key *[16]byte) *AES128x64 {
	var c AES128x64
	k0 := binary.LittleEndian.Uint64(key[0:8])
	k1 := binary.LittleEndian.Uint64(key[8:16])
	c.rk[0] = [2]uint64{k0, k1}
	for i := 0; i < 10; i++ {
		t := rvk.Aes64KS1I(k1, i)
		k0 = rvk.Aes64KS2(t, k0)
		k1 = rvk.Aes64KS2(k0, k1)
		c.rk[i+1] = [2]uint64{k0, k1}
	}
	return &c
}

// Encrypt encrypts a single block.
func (c *AES128x64) Encrypt(dst, src *[16]byte) {
	s0 := binary.LittleEndian.Uint64(src[0:8]) ^ c.rk[0][0]
	s1 := binary.LittleEndian.Uint64(src[8:16]) ^ c.rk[0][1]
	for r := 1; r < 10; r++ {
		s0, s1 = rvk.Aes64ESM(s0, s1)^c.rk[r][0], rvk.Aes64ESM(s1, s0)^c.rk[r][1]
	}
	s0, s1 = rvk.Aes64ES(s0, s1)^c.rk[10][0], rvk.Aes64ES(s1, s0)^c.rk[10][1]
	binary.LittleEndian.PutUint64(dst[0:8], s0)
	binary.LittleEndian.PutUint64(dst[8:16], s1)
}

// Decrypt decrypts a single block using the equivalent
// inverse cipher.
func (c *AES128x64) Decrypt(dst, src *[16]byte) {
	s0 := binary.LittleEndian.Uint64(src[0:8]) ^ c.rk[10][0]
	s1 := binary.LittleEndian.Uint64(src[8:16]) ^ c.rk[10][1]
	for r := 9; r > 0; r-- {
		k0 := rvk.Aes64IM(c.rk[r][0])
		k1 := rvk.Aes64IM(c.rk[r][1])
		s0, s1 = rvk.Aes64DSM(s0, s1)^k0, rvk.Aes64DSM(s1, s0)^k1
	}
	s0, s1 = rvk.Aes64DS(s0, s1)^c.rk[0][0], rvk.Aes64DS(s1, s0)^c.rk[0][1]
	binary.LittleEndian.PutUint64(dst[0:8], s0)
	binary.LittleEndian.PutUint64(dst[8:16], s1)
}

// AES128x32 is an expanded AES-128 key for the RV32
// instructions.
type AES128x32 struct {
	enc [44]uint32
	// dec holds the equivalent inverse cipher's round keys:
	// rounds 1 through 9 have InvMixColumns applied.
	dec [44]uint32
}

// subWord applies the AES S-box to each byte of x.
func subWord(x uint32) uint32 {
	t := rvk.Aes32ESI(0, x, 0)
	t = rvk.Aes32ESI(t, x, 1)
	t = rvk.Aes32ESI(t, x, 2)
	return rvk.Aes32ESI(t, x, 3)
}

// invMixColumn applies InvMixColumns to the column x.
//
// aes32dsmi applies the inverse S-box first, so the bytes are
// substituted forward beforehand.
func invMixColumn(x uint32) uint32 {
	s := subWord(x)
	t := rvk.Aes32DSMI(0, s, 0)
	t = rvk.Aes32DSMI(t, s, 1)
	t = rvk.Aes32DSMI(t, s, 2)
	return rvk.Aes32DSMI(t, s, 3)
}

// NewAES128x32 expands key with aes32esi.
func NewAES128x32(key *[16]byte) *AES128x32 {
	var c AES128x32
	for i := 0; i < 4; i++ {
		c.enc[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	for i := 4; i < len(c.enc); i++ {
		t := c.enc[i-1]
		if i%4 == 0 {
			t = subWord(rvk.Ror32(t, 8)) ^ aesRcon[i/4-1]
		}
		c.enc[i] = c.enc[i-4] ^ t
	}
	c.dec = c.enc
	for i := 4; i < 40; i++ {
		c.dec[i] = invMixColumn(c.enc[i])
	}
	return &c
}

// Encrypt encrypts a single block.
func (c *AES128x32) Encrypt(dst, src *[16]byte) {
	var s [4]uint32
	for i := range s {
		s[i] = binary.LittleEndian.Uint32(src[4*i:]) ^ c.enc[i]
	}
	for r := 1; r <= 10; r++ {
		round := rvk.Aes32ESMI
		if r == 10 {
			round = rvk.Aes32ESI
		}
		var n [4]uint32
		for j := range n {
			t := c.enc[4*r+j]
			t = round(t, s[j], 0)
			t = round(t, s[(j+1)%4], 1)
			t = round(t, s[(j+2)%4], 2)
			t = round(t, s[(j+3)%4], 3)
			n[j] = t
		}
		s = n
	}
	for i := range s {
		binary.LittleEndian.PutUint32(dst[4*i:], s[i])
	}
}

// Decrypt decrypts a single block.
func (c *AES128x32) Decrypt(dst, src *[16]byte) {
	var s [4]uint32
	for i := range s {
		s[i] = binary.LittleEndian.Uint32(src[4*i:]) ^ c.dec[40+i]
	}
	for r := 9; r >= 0; r-- {
		round := rvk.Aes32DSMI
		if r == 0 {
			round = rvk.Aes32DSI
		}
		var n [4]uint32
		for j := range n {
			t := c.dec[4*r+j]
			t = round(t, s[j], 0)
			t = round(t, s[(j+3)%4], 1)
			t = round(t, s[(j+2)%4], 2)
			t = round(t, s[(j+1)%4], 3)
			n[j] = t
		}
		s = n
	}
	for i := range s {
		binary.LittleEndian.PutUint32(dst[4*i:], s[i])
	}
}
