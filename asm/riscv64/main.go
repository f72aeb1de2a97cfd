// Command riscv64 generates the native riscv64 backend.
//
// The Go assembler does not know the scalar cryptography
// instructions, so each one is emitted as a raw WORD between
// loads and stores of the ABI0 arguments.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"

	"github.com/integrii/flaggy"

	"github.com/ericlagergren/rvk/internal/insn"
)

//go:generate go run main.go -out ../../rvk_riscv64.s -stubs ../../stub_riscv64.go

const constraint = "riscv64 && gc && !purego && rvk_native"

// lane is the operand shape of a Go function.
type lane struct {
	args  []string
	ret   string
	frame int
	load  string
	store string
	sig   string
}

var (
	w2 = lane{[]string{"rs1+0(FP)", "rs2+4(FP)"}, "ret+8(FP)", 12, "MOVWU", "MOVW", "(rs1 uint32, rs2 uint32) uint32"}
	d2 = lane{[]string{"rs1+0(FP)", "rs2+8(FP)"}, "ret+16(FP)", 24, "MOV", "MOV", "(rs1 uint64, rs2 uint64) uint64"}
	w1 = lane{[]string{"rs1+0(FP)"}, "ret+8(FP)", 12, "MOVWU", "MOVW", "(rs1 uint32) uint32"}
	d1 = lane{[]string{"rs1+0(FP)"}, "ret+8(FP)", 16, "MOV", "MOV", "(rs1 uint64) uint64"}
)

type fn struct {
	name string
	lane lane
	op   insn.Op
	imm  int
	// shift is a logical right shift applied to the 64-bit
	// result, used to take the upper half of a widened
	// 32-bit operation.
	shift int
}

func funcs() []fn {
	fns := []fn{
		{name: "ror32", lane: w2, op: insn.RORW},
		{name: "rol32", lane: w2, op: insn.ROLW},
		{name: "ror64", lane: d2, op: insn.ROR},
		{name: "rol64", lane: d2, op: insn.ROL},
		{name: "andn32", lane: w2, op: insn.ANDN},
		{name: "andn64", lane: d2, op: insn.ANDN},
		{name: "orn32", lane: w2, op: insn.ORN},
		{name: "orn64", lane: d2, op: insn.ORN},
		{name: "xnor32", lane: w2, op: insn.XNOR},
		{name: "xnor64", lane: d2, op: insn.XNOR},
		{name: "pack32", lane: w2, op: insn.PACKW},
		{name: "pack64", lane: d2, op: insn.PACK},
		{name: "packh32", lane: w2, op: insn.PACKH},
		{name: "packh64", lane: d2, op: insn.PACKH},
		{name: "brev8x32", lane: w1, op: insn.BREV8},
		{name: "brev8x64", lane: d1, op: insn.BREV8},
		{name: "rev8x32", lane: w1, op: insn.REV8, shift: 32},
		{name: "rev8x64", lane: d1, op: insn.REV8},
		{name: "clmul32", lane: w2, op: insn.CLMUL},
		{name: "clmulh32", lane: w2, op: insn.CLMUL, shift: 32},
		{name: "clmul64", lane: d2, op: insn.CLMUL},
		{name: "clmulh64", lane: d2, op: insn.CLMULH},
		{name: "xperm4x32", lane: w2, op: insn.XPERM4},
		{name: "xperm4x64", lane: d2, op: insn.XPERM4},
		{name: "xperm8x32", lane: w2, op: insn.XPERM8},
		{name: "xperm8x64", lane: d2, op: insn.XPERM8},
		{name: "aes64es", lane: d2, op: insn.AES64ES},
		{name: "aes64esm", lane: d2, op: insn.AES64ESM},
		{name: "aes64ds", lane: d2, op: insn.AES64DS},
		{name: "aes64dsm", lane: d2, op: insn.AES64DSM},
		{name: "aes64im", lane: d1, op: insn.AES64IM},
	}
	for rnum := 0; rnum <= 10; rnum++ {
		fns = append(fns, fn{
			name: fmt.Sprintf("aes64ks1i%d", rnum),
			lane: d1,
			op:   insn.AES64KS1I,
			imm:  rnum,
		})
	}
	fns = append(fns, []fn{
		{name: "aes64ks2", lane: d2, op: insn.AES64KS2},
		{name: "sha256sig0", lane: w1, op: insn.SHA256SIG0},
		{name: "sha256sig1", lane: w1, op: insn.SHA256SIG1},
		{name: "sha256sum0", lane: w1, op: insn.SHA256SUM0},
		{name: "sha256sum1", lane: w1, op: insn.SHA256SUM1},
		{name: "sha512sig0", lane: d1, op: insn.SHA512SIG0},
		{name: "sha512sig1", lane: d1, op: insn.SHA512SIG1},
		{name: "sha512sum0", lane: d1, op: insn.SHA512SUM0},
		{name: "sha512sum1", lane: d1, op: insn.SHA512SUM1},
		{name: "sm3p0", lane: w1, op: insn.SM3P0},
		{name: "sm3p1", lane: w1, op: insn.SM3P1},
	}...)
	for _, op := range []insn.Op{insn.SM4ED, insn.SM4KS} {
		for bs := 0; bs < 4; bs++ {
			fns = append(fns, fn{
				name: fmt.Sprintf("%s%d", op, bs),
				lane: w2,
				op:   op,
				imm:  bs,
			})
		}
	}
	return fns
}

func main() {
	var out, stubs string
	flaggy.String(&out, "o", "out", "assembly output file")
	flaggy.String(&stubs, "s", "stubs", "Go stub output file")
	flaggy.Parse()
	if out == "" || stubs == "" {
		flaggy.ShowHelpAndExit("both -out and -stubs are required")
	}

	header := fmt.Sprintf("// Code generated by command: go run main.go -out %s -stubs %s. DO NOT EDIT.\n\n//go:build %s\n\n", out, stubs, constraint)

	var asm, stub bytes.Buffer
	asm.WriteString(header)
	asm.WriteString("#include \"textflag.h\"\n")
	stub.WriteString(header)
	stub.WriteString("package rvk\n")

	for _, f := range funcs() {
		name := f.name + "Asm"
		in := insn.Inst{
			Op:  f.op,
			Rd:  insn.A0,
			Rs1: insn.A0,
			Rs2: insn.A1,
			Imm: f.imm,
		}
		word := insn.MustEncode(64, in)

		fmt.Fprintf(&stub, "\n//go:noescape\nfunc %s%s\n", name, f.lane.sig)

		fmt.Fprintf(&asm, "\n// func %s%s\n", name, f.lane.sig)
		fmt.Fprintf(&asm, "TEXT ·%s(SB), NOSPLIT, $0-%d\n", name, f.lane.frame)
		regs := []string{"A0", "A1"}
		for i, arg := range f.lane.args {
			fmt.Fprintf(&asm, "\t%s\t%s, %s\n", f.lane.load, arg, regs[i])
		}
		fmt.Fprintf(&asm, "\tWORD\t$0x%08x // %s\n", word, in)
		if f.shift != 0 {
			fmt.Fprintf(&asm, "\tSRL\t$%d, A0, A0\n", f.shift)
		}
		fmt.Fprintf(&asm, "\t%s\tA0, %s\n", f.lane.store, f.lane.ret)
		asm.WriteString("\tRET\n")
	}

	src, err := format.Source(stub.Bytes())
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(out, asm.Bytes(), 0o644); err != nil {
		fatal(err)
	}
	if err := os.WriteFile(stubs, src, 0o644); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "riscv64: %v\n", err)
	os.Exit(1)
}
