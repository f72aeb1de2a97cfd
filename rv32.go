package rvk

// The instructions in this file exist only on RV32. Go has
// no riscv32 port, so every backend emulates them.

// Aes32ESI substitutes byte bs of rs2 with the AES S-box,
// moves it to byte bs and XORs it into rs1.
//
// Aes32ESI panics if bs is not in [0, 3].
func Aes32ESI(rs1, rs2 uint32, bs int) uint32 {
	checkByteSelect(bs)
	return aes32esiGeneric(rs1, rs2, bs)
}

// Aes32ESMI substitutes byte bs of rs2 with the AES S-box,
// multiplies it by the MixColumns column, rotates the column
// by bs bytes and XORs it into rs1.
//
// Aes32ESMI panics if bs is not in [0, 3].
func Aes32ESMI(rs1, rs2 uint32, bs int) uint32 {
	checkByteSelect(bs)
	return aes32esmiGeneric(rs1, rs2, bs)
}

// Aes32DSI is Aes32ESI with the inverse S-box.
func Aes32DSI(rs1, rs2 uint32, bs int) uint32 {
	checkByteSelect(bs)
	return aes32dsiGeneric(rs1, rs2, bs)
}

// Aes32DSMI is Aes32ESMI with the inverse S-box and the
// InvMixColumns column.
func Aes32DSMI(rs1, rs2 uint32, bs int) uint32 {
	checkByteSelect(bs)
	return aes32dsmiGeneric(rs1, rs2, bs)
}

// Sha512Sig0H returns the high word of SHA-512 σ0(hi:lo),
// where hi = rs1 and lo = rs2.
func Sha512Sig0H(rs1, rs2 uint32) uint32 { return sha512sig0hGeneric(rs1, rs2) }

// Sha512Sig0L returns the low word of SHA-512 σ0(hi:lo),
// where lo = rs1 and hi = rs2.
func Sha512Sig0L(rs1, rs2 uint32) uint32 { return sha512sig0lGeneric(rs1, rs2) }

// Sha512Sig1H returns the high word of SHA-512 σ1(hi:lo),
// where hi = rs1 and lo = rs2.
func Sha512Sig1H(rs1, rs2 uint32) uint32 { return sha512sig1hGeneric(rs1, rs2) }

// Sha512Sig1L returns the low word of SHA-512 σ1(hi:lo),
// where lo = rs1 and hi = rs2.
func Sha512Sig1L(rs1, rs2 uint32) uint32 { return sha512sig1lGeneric(rs1, rs2) }

// Sha512Sum0R returns the low word of SHA-512 Σ0(rs2:rs1).
//
// Since Σ0 only rotates, Sha512Sum0R(hi, lo) returns the
// high word.
func Sha512Sum0R(rs1, rs2 uint32) uint32 { return sha512sum0rGeneric(rs1, rs2) }

// Sha512Sum1R returns the low word of SHA-512 Σ1(rs2:rs1).
//
// Sha512Sum1R(hi, lo) returns the high word.
func Sha512Sum1R(rs1, rs2 uint32) uint32 { return sha512sum1rGeneric(rs1, rs2) }

// Zip32 interleaves the halves of rs1: bit i moves to bit 2i
// and bit i+16 moves to bit 2i+1.
func Zip32(rs1 uint32) uint32 { return zip32Generic(rs1) }

// Unzip32 is the inverse of Zip32: even bits move to the low
// half and odd bits to the high half.
func Unzip32(rs1 uint32) uint32 { return unzip32Generic(rs1) }
