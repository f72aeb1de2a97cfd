// Package insn encodes the RISC-V scalar cryptography
// instructions.
//
// It is used to emit the instruction words for the native
// backend, which the Go assembler cannot name.
package insn

import (
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

// Op is an instruction mnemonic.
type Op uint8

const (
	ROR Op = iota
	ROL
	RORW
	ROLW
	ANDN
	ORN
	XNOR
	PACK
	PACKH
	PACKW
	BREV8
	REV8
	ZIP
	UNZIP
	CLMUL
	CLMULH
	XPERM4
	XPERM8
	AES32ESI
	AES32ESMI
	AES32DSI
	AES32DSMI
	AES64ES
	AES64ESM
	AES64DS
	AES64DSM
	AES64IM
	AES64KS1I
	AES64KS2
	SHA256SIG0
	SHA256SIG1
	SHA256SUM0
	SHA256SUM1
	SHA512SIG0H
	SHA512SIG0L
	SHA512SIG1H
	SHA512SIG1L
	SHA512SUM0R
	SHA512SUM1R
	SHA512SIG0
	SHA512SIG1
	SHA512SUM0
	SHA512SUM1
	SM3P0
	SM3P1
	SM4ED
	SM4KS
	numOps
)

// Format describes the operands of an instruction.
type Format uint8

const (
	// FormatR is rd, rs1, rs2.
	FormatR Format = iota
	// FormatBS is rd, rs1, rs2, bs with a two-bit byte select
	// in bits 31:30.
	FormatBS
	// FormatUnary is rd, rs1 with a fixed 12-bit immediate.
	FormatUnary
	// FormatRnum is rd, rs1, rnum with a four-bit round
	// number in bits 23:20.
	FormatRnum
)

const (
	opcodeOp    = 0x33 // OP
	opcodeOp32  = 0x3b // OP-32
	opcodeOpImm = 0x13 // OP-IMM
)

// xlen masks.
const (
	rv32 = 1 << iota
	rv64
	both = rv32 | rv64
)

type info struct {
	name   string
	ext    string
	xlen   uint8
	format Format
	opcode uint32
	funct3 uint32
	// funct7 for FormatR, bits 29:25 for FormatBS and the
	// immediate for FormatUnary and FormatRnum.
	hi uint32
}

var table = [numOps]info{
	ROR:         {"ror", "Zbkb", both, FormatR, opcodeOp, 5, 0x30},
	ROL:         {"rol", "Zbkb", both, FormatR, opcodeOp, 1, 0x30},
	RORW:        {"rorw", "Zbkb", rv64, FormatR, opcodeOp32, 5, 0x30},
	ROLW:        {"rolw", "Zbkb", rv64, FormatR, opcodeOp32, 1, 0x30},
	ANDN:        {"andn", "Zbkb", both, FormatR, opcodeOp, 7, 0x20},
	ORN:         {"orn", "Zbkb", both, FormatR, opcodeOp, 6, 0x20},
	XNOR:        {"xnor", "Zbkb", both, FormatR, opcodeOp, 4, 0x20},
	PACK:        {"pack", "Zbkb", both, FormatR, opcodeOp, 4, 0x04},
	PACKH:       {"packh", "Zbkb", both, FormatR, opcodeOp, 7, 0x04},
	PACKW:       {"packw", "Zbkb", rv64, FormatR, opcodeOp32, 4, 0x04},
	BREV8:       {"brev8", "Zbkb", both, FormatUnary, opcodeOpImm, 5, 0x687},
	REV8:        {"rev8", "Zbkb", both, FormatUnary, opcodeOpImm, 5, 0x6b8},
	ZIP:         {"zip", "Zbkb", rv32, FormatUnary, opcodeOpImm, 1, 0x08f},
	UNZIP:       {"unzip", "Zbkb", rv32, FormatUnary, opcodeOpImm, 5, 0x08f},
	CLMUL:       {"clmul", "Zbkc", both, FormatR, opcodeOp, 1, 0x05},
	CLMULH:      {"clmulh", "Zbkc", both, FormatR, opcodeOp, 3, 0x05},
	XPERM4:      {"xperm4", "Zbkx", both, FormatR, opcodeOp, 2, 0x14},
	XPERM8:      {"xperm8", "Zbkx", both, FormatR, opcodeOp, 4, 0x14},
	AES32ESI:    {"aes32esi", "Zkne", rv32, FormatBS, opcodeOp, 0, 0x11},
	AES32ESMI:   {"aes32esmi", "Zkne", rv32, FormatBS, opcodeOp, 0, 0x13},
	AES32DSI:    {"aes32dsi", "Zknd", rv32, FormatBS, opcodeOp, 0, 0x15},
	AES32DSMI:   {"aes32dsmi", "Zknd", rv32, FormatBS, opcodeOp, 0, 0x17},
	AES64ES:     {"aes64es", "Zkne", rv64, FormatR, opcodeOp, 0, 0x19},
	AES64ESM:    {"aes64esm", "Zkne", rv64, FormatR, opcodeOp, 0, 0x1b},
	AES64DS:     {"aes64ds", "Zknd", rv64, FormatR, opcodeOp, 0, 0x1d},
	AES64DSM:    {"aes64dsm", "Zknd", rv64, FormatR, opcodeOp, 0, 0x1f},
	AES64IM:     {"aes64im", "Zknd", rv64, FormatUnary, opcodeOpImm, 1, 0x300},
	AES64KS1I:   {"aes64ks1i", "Zkne", rv64, FormatRnum, opcodeOpImm, 1, 0x310},
	AES64KS2:    {"aes64ks2", "Zkne", rv64, FormatR, opcodeOp, 0, 0x3f},
	SHA256SIG0:  {"sha256sig0", "Zknh", both, FormatUnary, opcodeOpImm, 1, 0x102},
	SHA256SIG1:  {"sha256sig1", "Zknh", both, FormatUnary, opcodeOpImm, 1, 0x103},
	SHA256SUM0:  {"sha256sum0", "Zknh", both, FormatUnary, opcodeOpImm, 1, 0x100},
	SHA256SUM1:  {"sha256sum1", "Zknh", both, FormatUnary, opcodeOpImm, 1, 0x101},
	SHA512SIG0H: {"sha512sig0h", "Zknh", rv32, FormatR, opcodeOp, 0, 0x2e},
	SHA512SIG0L: {"sha512sig0l", "Zknh", rv32, FormatR, opcodeOp, 0, 0x2a},
	SHA512SIG1H: {"sha512sig1h", "Zknh", rv32, FormatR, opcodeOp, 0, 0x2f},
	SHA512SIG1L: {"sha512sig1l", "Zknh", rv32, FormatR, opcodeOp, 0, 0x2b},
	SHA512SUM0R: {"sha512sum0r", "Zknh", rv32, FormatR, opcodeOp, 0, 0x28},
	SHA512SUM1R: {"sha512sum1r", "Zknh", rv32, FormatR, opcodeOp, 0, 0x29},
	SHA512SIG0:  {"sha512sig0", "Zknh", rv64, FormatUnary, opcodeOpImm, 1, 0x106},
	SHA512SIG1:  {"sha512sig1", "Zknh", rv64, FormatUnary, opcodeOpImm, 1, 0x107},
	SHA512SUM0:  {"sha512sum0", "Zknh", rv64, FormatUnary, opcodeOpImm, 1, 0x104},
	SHA512SUM1:  {"sha512sum1", "Zknh", rv64, FormatUnary, opcodeOpImm, 1, 0x105},
	SM3P0:       {"sm3p0", "Zksh", both, FormatUnary, opcodeOpImm, 1, 0x108},
	SM3P1:       {"sm3p1", "Zksh", both, FormatUnary, opcodeOpImm, 1, 0x109},
	SM4ED:       {"sm4ed", "Zksed", both, FormatBS, opcodeOp, 0, 0x18},
	SM4KS:       {"sm4ks", "Zksed", both, FormatBS, opcodeOp, 0, 0x1a},
}

// rev8RV32 is the rev8 immediate on RV32.
const rev8RV32 = 0x698

// Ops returns every instruction in the table.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// Lookup returns the Op for a mnemonic.
func Lookup(name string) (Op, bool) {
	name = strings.ToLower(name)
	for i := range table {
		if table[i].name == name {
			return Op(i), true
		}
	}
	return 0, false
}

func (op Op) String() string {
	if op >= numOps {
		return "Op(?)"
	}
	return table[op].name
}

// Extension returns the name of the smallest extension that
// defines op.
func (op Op) Extension() string {
	return table[op].ext
}

// Format returns the operand format of op.
func (op Op) Format() Format {
	return table[op].format
}

// Valid reports whether op exists on a machine with the
// given XLEN, which must be 32 or 64.
func (op Op) Valid(xlen int) bool {
	switch xlen {
	case 32:
		return table[op].xlen&rv32 != 0
	case 64:
		return table[op].xlen&rv64 != 0
	default:
		return false
	}
}

// Reg is an integer register number.
type Reg uint8

// Registers used by the Go riscv64 ABI0 glue.
const (
	Zero Reg = 0
	A0   Reg = 10
	A1   Reg = 11
)

func (r Reg) String() string {
	switch {
	case r == 0:
		return "zero"
	case r >= 10 && r <= 17:
		return "a" + strconv.Itoa(int(r-10))
	default:
		return "x" + strconv.Itoa(int(r))
	}
}

// Inst is a single instruction.
type Inst struct {
	Op  Op
	Rd  Reg
	Rs1 Reg
	// Rs2 is ignored by FormatUnary and FormatRnum.
	Rs2 Reg
	// Imm is the byte select for FormatBS and the round
	// number for FormatRnum.
	Imm int
}

// Encode returns the instruction word of in on a machine
// with the given XLEN.
func Encode(xlen int, in Inst) (uint32, error) {
	if in.Op >= numOps {
		return 0, errors.Errorf("insn: unknown op %d", in.Op)
	}
	if !in.Op.Valid(xlen) {
		return 0, errors.Errorf("insn: %s is not defined for RV%d", in.Op, xlen)
	}
	if in.Rd > 31 || in.Rs1 > 31 || in.Rs2 > 31 {
		return 0, errors.Errorf("insn: invalid register in %s", in.Op)
	}
	t := table[in.Op]
	w := t.opcode | uint32(in.Rd)<<7 | t.funct3<<12 | uint32(in.Rs1)<<15
	switch t.format {
	case FormatR:
		w |= uint32(in.Rs2)<<20 | t.hi<<25
	case FormatBS:
		if uint(in.Imm) > 3 {
			return 0, errors.Errorf("insn: %s: invalid byte select %d", in.Op, in.Imm)
		}
		w |= uint32(in.Rs2)<<20 | t.hi<<25 | uint32(in.Imm)<<30
	case FormatUnary:
		imm := t.hi
		if in.Op == REV8 && xlen == 32 {
			imm = rev8RV32
		}
		w |= imm << 20
	case FormatRnum:
		if uint(in.Imm) > 10 {
			return 0, errors.Errorf("insn: %s: invalid round number %d", in.Op, in.Imm)
		}
		w |= (t.hi | uint32(in.Imm)) << 20
	}
	return w, nil
}

// MustEncode is like Encode, but panics on error.
func MustEncode(xlen int, in Inst) uint32 {
	w, err := Encode(xlen, in)
	if err != nil {
		panic(err)
	}
	return w
}

// String returns in in assembler syntax.
func (in Inst) String() string {
	switch in.Op.Format() {
	case FormatR:
		return in.Op.String() + " " + in.Rd.String() + ", " + in.Rs1.String() + ", " + in.Rs2.String()
	case FormatBS:
		return in.Op.String() + " " + in.Rd.String() + ", " + in.Rs1.String() + ", " + in.Rs2.String() + ", " + strconv.Itoa(in.Imm)
	case FormatRnum:
		return in.Op.String() + " " + in.Rd.String() + ", " + in.Rs1.String() + ", " + strconv.Itoa(in.Imm)
	default:
		return in.Op.String() + " " + in.Rd.String() + ", " + in.Rs1.String()
	}
}
