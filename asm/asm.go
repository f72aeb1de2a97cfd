package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

//go:generate go run asm.go -out ../rvk_amd64.s -stubs ../stub_amd64.go -pkg rvk

func main() {
	Package("github.com/ericlagergren/rvk")
	ConstraintExpr("amd64,gc,!purego,rvk_native")

	declareAESRound("aes64esAsm", AESENCLAST)
	declareAESRound("aes64esmAsm", AESENC)
	declareAESRound("aes64dsAsm", AESDECLAST)
	declareAESRound("aes64dsmAsm", AESDEC)
	declareAESIMC()
	declareClmul32("clmul32Asm", false)
	declareClmul32("clmulh32Asm", true)
	declareClmul64("clmul64Asm", false)
	declareClmul64("clmulh64Asm", true)

	Generate()
}

// loadState loads the 128-bit state rs2:rs1.
func loadState() VecVirtual {
	lo := Load(Param("rs1"), GP64())
	hi := Load(Param("rs2"), GP64())
	s := XMM()
	MOVQ(lo, s)
	PINSRQ(U8(1), hi, s)
	return s
}

// declareAESRound emits one AES round with an all-zero round
// key, keeping the low half of the result.
func declareAESRound(name string, round func(mx, x Op)) {
	TEXT(name, NOSPLIT, "func(rs1, rs2 uint64) uint64")
	Pragma("noescape")

	s := loadState()
	zero := XMM()
	PXOR(zero, zero)
	round(zero, s)

	ret := GP64()
	MOVQ(s, ret)
	Store(ret, ReturnIndex(0))
	RET()
}

func declareAESIMC() {
	TEXT("aes64imAsm", NOSPLIT, "func(rs1 uint64) uint64")
	Pragma("noescape")

	x := XMM()
	MOVQ(Load(Param("rs1"), GP64()), x)
	AESIMC(x, x)

	ret := GP64()
	MOVQ(x, ret)
	Store(ret, ReturnIndex(0))
	RET()
}

func declareClmul32(name string, high bool) {
	TEXT(name, NOSPLIT, "func(rs1, rs2 uint32) uint32")
	Pragma("noescape")

	a, b := XMM(), XMM()
	MOVQ(Load(Param("rs1"), GP64()), a)
	MOVQ(Load(Param("rs2"), GP64()), b)
	PCLMULQDQ(U8(0), b, a)

	ret := GP64()
	MOVQ(a, ret)
	if high {
		SHRQ(U8(32), ret)
	}
	Store(ret.As32(), ReturnIndex(0))
	RET()
}

func declareClmul64(name string, high bool) {
	TEXT(name, NOSPLIT, "func(rs1, rs2 uint64) uint64")
	Pragma("noescape")

	a, b := XMM(), XMM()
	MOVQ(Load(Param("rs1"), GP64()), a)
	MOVQ(Load(Param("rs2"), GP64()), b)
	PCLMULQDQ(U8(0), b, a)

	ret := GP64()
	if high {
		PEXTRQ(U8(1), a, ret)
	} else {
		MOVQ(a, ret)
	}
	Store(ret, ReturnIndex(0))
	RET()
}
