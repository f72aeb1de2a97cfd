// Package kat composes the rvk instructions into complete
// block transforms and checks them against published
// known-answer vectors.
package kat

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/ericlagergren/subtle"
	"github.com/go-errors/errors"
)

// Check is a single known-answer test.
type Check struct {
	// Name identifies the check.
	Name string
	// Source is the document that publishes the vector.
	Source string
	// Run returns a non-nil error if the check fails.
	Run func() error
}

// ErrMismatch is returned by a Check whose output differs
// from the expected value.
var ErrMismatch = errors.Errorf("kat: output mismatch")

var checks = []Check{
	{"aes128-encrypt-rv64", "FIPS-197 C.1", checkAES(aes64, false)},
	{"aes128-decrypt-rv64", "FIPS-197 C.1", checkAES(aes64, true)},
	{"aes128-encrypt-rv32", "FIPS-197 C.1", checkAES(aes32, false)},
	{"aes128-decrypt-rv32", "FIPS-197 C.1", checkAES(aes32, true)},
	{"sha256-abc", "FIPS 180-4", checkSHA256},
	{"sha512-abc-rv64", "FIPS 180-4", checkSHA512(BlockSHA512)},
	{"sha512-abc-rv32", "FIPS 180-4", checkSHA512(BlockSHA512x32)},
	{"sm3-abc", "GB/T 32905-2016 A.1", checkSM3},
	{"sm4-encrypt", "GB/T 32907-2016 A.1", checkSM4(false)},
	{"sm4-decrypt", "GB/T 32907-2016 A.1", checkSM4(true)},
}

// Checks returns every known-answer test.
func Checks() []Check {
	return append([]Check(nil), checks...)
}

// Lookup returns the check with the given name.
func Lookup(name string) (Check, bool) {
	for _, c := range checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// RunAll runs every check and returns the names of the ones
// that failed.
func RunAll() (failed []string) {
	for _, c := range checks {
		if c.Run() != nil {
			failed = append(failed, c.Name)
		}
	}
	return failed
}

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func unhex16(s string) *[16]byte {
	return (*[16]byte)(unhex(s))
}

func compare(name string, got, want []byte) error {
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return errors.WrapPrefix(ErrMismatch,
			name+": got "+hex.EncodeToString(got)+", want "+hex.EncodeToString(want), 0)
	}
	return nil
}

type blockCipher interface {
	Encrypt(dst, src *[16]byte)
	Decrypt(dst, src *[16]byte)
}

func aes64(key *[16]byte) blockCipher { return NewAES128x64(key) }
func aes32(key *[16]byte) blockCipher { return NewAES128x32(key) }

func checkAES(newCipher func(*[16]byte) blockCipher, decrypt bool) func() error {
	return func() error {
		key := unhex16("000102030405060708090a0b0c0d0e0f")
		pt := unhex16("00112233445566778899aabbccddeeff")
		ct := unhex16("69c4e0d86a7b0430d8cdb78070b4c55a")
		return cryptBlock("aes128", newCipher(key), pt, ct, decrypt)
	}
}

func checkSM4(decrypt bool) func() error {
	return func() error {
		key := unhex16("0123456789abcdeffedcba9876543210")
		pt := unhex16("0123456789abcdeffedcba9876543210")
		ct := unhex16("681edf34d206965e86b3e94f536e4246")
		return cryptBlock("sm4", NewSM4(key), pt, ct, decrypt)
	}
}

func cryptBlock(name string, c blockCipher, pt, ct *[16]byte, decrypt bool) error {
	var out [16]byte
	if decrypt {
		c.Decrypt(&out, ct)
		return compare(name, out[:], pt[:])
	}
	c.Encrypt(&out, pt)
	return compare(name, out[:], ct[:])
}

func checkSHA256() error {
	h := IVSHA256
	BlockSHA256(&h, pad([]byte("abc"), BlockSizeSHA256, 8))
	var out [32]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return compare("sha256", out[:],
		unhex("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"))
}

func checkSHA512(block func(*[8]uint64, []byte)) func() error {
	return func() error {
		h := IVSHA512
		block(&h, pad([]byte("abc"), BlockSizeSHA512, 16))
		var out [64]byte
		for i, v := range h {
			binary.BigEndian.PutUint64(out[8*i:], v)
		}
		return compare("sha512", out[:],
			unhex("ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a"+
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"))
	}
}

func checkSM3() error {
	h := IVSM3
	BlockSM3(&h, pad([]byte("abc"), BlockSizeSM3, 8))
	var out [32]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return compare("sm3", out[:],
		unhex("66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"))
}
