// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"
	"strings"
)

// An opsym is an internal symbol used to associate an opcode's data
// with its instructions.
type opsym byte

const (
	symADC opsym = iota
	symAND
	symASL
	symBCC
	symBCS
	symBEQ
	symBIT
	symBMI
	symBNE
	symBPL
	symBRK
	symBVC
	symBVS
	symCLC
	symCLD
	symCLI
	symCLV
	symCMP
	symCPX
	symCPY
	symDEC
	symDEX
	symDEY
	symEOR
	symINC
	symINX
	symINY
	symJMP
	symJSR
	symLDA
	symLDX
	symLDY
	symLSR
	symNOP
	symORA
	symPHA
	symPHP
	symPLA
	symPLP
	symROL
	symROR
	symRTI
	symRTS
	symSBC
	symSEC
	symSED
	symSEI
	symSTA
	symSTX
	symSTY
	symTAX
	symTAY
	symTSX
	symTXA
	symTXS
	symTYA

	// unofficial
	symAHX
	symALR
	symANC
	symARR
	symAXS
	symDCP
	symISC
	symKIL
	symLAS
	symLAX
	symRLA
	symRRA
	symSAX
	symSBCu
	symSHX
	symSHY
	symSLO
	symSRE
	symTAS
	symXAA
	symNOPu
)

type instfunc func(c *CPU, inst *Instruction, addr uint16)

// UnofficialPolicy selects how the CPU treats the opcodes that are not part
// of the documented 6502 instruction set.
type UnofficialPolicy byte

const (
	// EmulateUnofficial executes unofficial opcodes with their documented
	// combined semantics. The JAM opcodes halt the CPU.
	EmulateUnofficial UnofficialPolicy = iota

	// IgnoreUnofficial executes every unofficial opcode as a no-op that
	// still consumes the opcode's size and cycle cost.
	IgnoreUnofficial
)

func (p UnofficialPolicy) String() string {
	switch p {
	case EmulateUnofficial:
		return "emulate"
	case IgnoreUnofficial:
		return "ignore"
	default:
		return fmt.Sprintf("UnofficialPolicy(%d)", byte(p))
	}
}

// Emulator implementation for each opcode
type opcodeImpl struct {
	sym        opsym
	name       string
	unofficial bool
	fn         [2]instfunc // EmulateUnofficial=0, IgnoreUnofficial=1
}

var impl = []opcodeImpl{
	{symADC, "ADC", false, [2]instfunc{(*CPU).adc, (*CPU).adc}},
	{symAND, "AND", false, [2]instfunc{(*CPU).and, (*CPU).and}},
	{symASL, "ASL", false, [2]instfunc{(*CPU).asl, (*CPU).asl}},
	{symBCC, "BCC", false, [2]instfunc{(*CPU).bcc, (*CPU).bcc}},
	{symBCS, "BCS", false, [2]instfunc{(*CPU).bcs, (*CPU).bcs}},
	{symBEQ, "BEQ", false, [2]instfunc{(*CPU).beq, (*CPU).beq}},
	{symBIT, "BIT", false, [2]instfunc{(*CPU).bit, (*CPU).bit}},
	{symBMI, "BMI", false, [2]instfunc{(*CPU).bmi, (*CPU).bmi}},
	{symBNE, "BNE", false, [2]instfunc{(*CPU).bne, (*CPU).bne}},
	{symBPL, "BPL", false, [2]instfunc{(*CPU).bpl, (*CPU).bpl}},
	{symBRK, "BRK", false, [2]instfunc{(*CPU).brk, (*CPU).brk}},
	{symBVC, "BVC", false, [2]instfunc{(*CPU).bvc, (*CPU).bvc}},
	{symBVS, "BVS", false, [2]instfunc{(*CPU).bvs, (*CPU).bvs}},
	{symCLC, "CLC", false, [2]instfunc{(*CPU).clc, (*CPU).clc}},
	{symCLD, "CLD", false, [2]instfunc{(*CPU).cld, (*CPU).cld}},
	{symCLI, "CLI", false, [2]instfunc{(*CPU).cli, (*CPU).cli}},
	{symCLV, "CLV", false, [2]instfunc{(*CPU).clv, (*CPU).clv}},
	{symCMP, "CMP", false, [2]instfunc{(*CPU).cmp, (*CPU).cmp}},
	{symCPX, "CPX", false, [2]instfunc{(*CPU).cpx, (*CPU).cpx}},
	{symCPY, "CPY", false, [2]instfunc{(*CPU).cpy, (*CPU).cpy}},
	{symDEC, "DEC", false, [2]instfunc{(*CPU).dec, (*CPU).dec}},
	{symDEX, "DEX", false, [2]instfunc{(*CPU).dex, (*CPU).dex}},
	{symDEY, "DEY", false, [2]instfunc{(*CPU).dey, (*CPU).dey}},
	{symEOR, "EOR", false, [2]instfunc{(*CPU).eor, (*CPU).eor}},
	{symINC, "INC", false, [2]instfunc{(*CPU).inc, (*CPU).inc}},
	{symINX, "INX", false, [2]instfunc{(*CPU).inx, (*CPU).inx}},
	{symINY, "INY", false, [2]instfunc{(*CPU).iny, (*CPU).iny}},
	{symJMP, "JMP", false, [2]instfunc{(*CPU).jmp, (*CPU).jmp}},
	{symJSR, "JSR", false, [2]instfunc{(*CPU).jsr, (*CPU).jsr}},
	{symLDA, "LDA", false, [2]instfunc{(*CPU).lda, (*CPU).lda}},
	{symLDX, "LDX", false, [2]instfunc{(*CPU).ldx, (*CPU).ldx}},
	{symLDY, "LDY", false, [2]instfunc{(*CPU).ldy, (*CPU).ldy}},
	{symLSR, "LSR", false, [2]instfunc{(*CPU).lsr, (*CPU).lsr}},
	{symNOP, "NOP", false, [2]instfunc{(*CPU).nop, (*CPU).nop}},
	{symORA, "ORA", false, [2]instfunc{(*CPU).ora, (*CPU).ora}},
	{symPHA, "PHA", false, [2]instfunc{(*CPU).pha, (*CPU).pha}},
	{symPHP, "PHP", false, [2]instfunc{(*CPU).php, (*CPU).php}},
	{symPLA, "PLA", false, [2]instfunc{(*CPU).pla, (*CPU).pla}},
	{symPLP, "PLP", false, [2]instfunc{(*CPU).plp, (*CPU).plp}},
	{symROL, "ROL", false, [2]instfunc{(*CPU).rol, (*CPU).rol}},
	{symROR, "ROR", false, [2]instfunc{(*CPU).ror, (*CPU).ror}},
	{symRTI, "RTI", false, [2]instfunc{(*CPU).rti, (*CPU).rti}},
	{symRTS, "RTS", false, [2]instfunc{(*CPU).rts, (*CPU).rts}},
	{symSBC, "SBC", false, [2]instfunc{(*CPU).sbc, (*CPU).sbc}},
	{symSEC, "SEC", false, [2]instfunc{(*CPU).sec, (*CPU).sec}},
	{symSED, "SED", false, [2]instfunc{(*CPU).sed, (*CPU).sed}},
	{symSEI, "SEI", false, [2]instfunc{(*CPU).sei, (*CPU).sei}},
	{symSTA, "STA", false, [2]instfunc{(*CPU).sta, (*CPU).sta}},
	{symSTX, "STX", false, [2]instfunc{(*CPU).stx, (*CPU).stx}},
	{symSTY, "STY", false, [2]instfunc{(*CPU).sty, (*CPU).sty}},
	{symTAX, "TAX", false, [2]instfunc{(*CPU).tax, (*CPU).tax}},
	{symTAY, "TAY", false, [2]instfunc{(*CPU).tay, (*CPU).tay}},
	{symTSX, "TSX", false, [2]instfunc{(*CPU).tsx, (*CPU).tsx}},
	{symTXA, "TXA", false, [2]instfunc{(*CPU).txa, (*CPU).txa}},
	{symTXS, "TXS", false, [2]instfunc{(*CPU).txs, (*CPU).txs}},
	{symTYA, "TYA", false, [2]instfunc{(*CPU).tya, (*CPU).tya}},

	{symAHX, "AHX", true, [2]instfunc{(*CPU).ahx, (*CPU).unofficialNop}},
	{symALR, "ALR", true, [2]instfunc{(*CPU).alr, (*CPU).unofficialNop}},
	{symANC, "ANC", true, [2]instfunc{(*CPU).anc, (*CPU).unofficialNop}},
	{symARR, "ARR", true, [2]instfunc{(*CPU).arr, (*CPU).unofficialNop}},
	{symAXS, "AXS", true, [2]instfunc{(*CPU).axs, (*CPU).unofficialNop}},
	{symDCP, "DCP", true, [2]instfunc{(*CPU).dcp, (*CPU).unofficialNop}},
	{symISC, "ISC", true, [2]instfunc{(*CPU).isc, (*CPU).unofficialNop}},
	{symKIL, "KIL", true, [2]instfunc{(*CPU).kil, (*CPU).unofficialNop}},
	{symLAS, "LAS", true, [2]instfunc{(*CPU).las, (*CPU).unofficialNop}},
	{symLAX, "LAX", true, [2]instfunc{(*CPU).lax, (*CPU).unofficialNop}},
	{symRLA, "RLA", true, [2]instfunc{(*CPU).rla, (*CPU).unofficialNop}},
	{symRRA, "RRA", true, [2]instfunc{(*CPU).rra, (*CPU).unofficialNop}},
	{symSAX, "SAX", true, [2]instfunc{(*CPU).sax, (*CPU).unofficialNop}},
	{symSBCu, "SBC", true, [2]instfunc{(*CPU).sbc, (*CPU).unofficialNop}},
	{symSHX, "SHX", true, [2]instfunc{(*CPU).shx, (*CPU).unofficialNop}},
	{symSHY, "SHY", true, [2]instfunc{(*CPU).shy, (*CPU).unofficialNop}},
	{symSLO, "SLO", true, [2]instfunc{(*CPU).slo, (*CPU).unofficialNop}},
	{symSRE, "SRE", true, [2]instfunc{(*CPU).sre, (*CPU).unofficialNop}},
	{symTAS, "TAS", true, [2]instfunc{(*CPU).tas, (*CPU).unofficialNop}},
	{symXAA, "XAA", true, [2]instfunc{(*CPU).xaa, (*CPU).unofficialNop}},
	{symNOPu, "NOP", true, [2]instfunc{(*CPU).nop, (*CPU).unofficialNop}},
}

// Mode describes a memory addressing mode.
type Mode byte

// All possible memory addressing modes
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator (no operand)
)

var modeNames = [...]string{
	IMM: "IMM", IMP: "IMP", REL: "REL", ZPG: "ZPG", ZPX: "ZPX", ZPY: "ZPY",
	ABS: "ABS", ABX: "ABX", ABY: "ABY", IND: "IND", IDX: "IDX", IDY: "IDY",
	ACC: "ACC",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// Opcode data for an (opcode, mode) pair
type opcodeData struct {
	sym      opsym // internal opcode symbol
	mode     Mode  // addressing mode
	opcode   byte  // opcode hex value
	length   byte  // length of opcode + operand in bytes
	cycles   byte  // number of CPU cycles to execute command
	bpcycles byte  // additional CPU cycles if command crosses page boundary
}

// All 256 NMOS (opcode, mode) pairs
var data = []opcodeData{
	{symLDA, IMM, 0xa9, 2, 2, 0},
	{symLDA, ZPG, 0xa5, 2, 3, 0},
	{symLDA, ZPX, 0xb5, 2, 4, 0},
	{symLDA, ABS, 0xad, 3, 4, 0},
	{symLDA, ABX, 0xbd, 3, 4, 1},
	{symLDA, ABY, 0xb9, 3, 4, 1},
	{symLDA, IDX, 0xa1, 2, 6, 0},
	{symLDA, IDY, 0xb1, 2, 5, 1},

	{symLDX, IMM, 0xa2, 2, 2, 0},
	{symLDX, ZPG, 0xa6, 2, 3, 0},
	{symLDX, ZPY, 0xb6, 2, 4, 0},
	{symLDX, ABS, 0xae, 3, 4, 0},
	{symLDX, ABY, 0xbe, 3, 4, 1},

	{symLDY, IMM, 0xa0, 2, 2, 0},
	{symLDY, ZPG, 0xa4, 2, 3, 0},
	{symLDY, ZPX, 0xb4, 2, 4, 0},
	{symLDY, ABS, 0xac, 3, 4, 0},
	{symLDY, ABX, 0xbc, 3, 4, 1},

	{symSTA, ZPG, 0x85, 2, 3, 0},
	{symSTA, ZPX, 0x95, 2, 4, 0},
	{symSTA, ABS, 0x8d, 3, 4, 0},
	{symSTA, ABX, 0x9d, 3, 5, 0},
	{symSTA, ABY, 0x99, 3, 5, 0},
	{symSTA, IDX, 0x81, 2, 6, 0},
	{symSTA, IDY, 0x91, 2, 6, 0},

	{symSTX, ZPG, 0x86, 2, 3, 0},
	{symSTX, ZPY, 0x96, 2, 4, 0},
	{symSTX, ABS, 0x8e, 3, 4, 0},

	{symSTY, ZPG, 0x84, 2, 3, 0},
	{symSTY, ZPX, 0x94, 2, 4, 0},
	{symSTY, ABS, 0x8c, 3, 4, 0},

	{symADC, IMM, 0x69, 2, 2, 0},
	{symADC, ZPG, 0x65, 2, 3, 0},
	{symADC, ZPX, 0x75, 2, 4, 0},
	{symADC, ABS, 0x6d, 3, 4, 0},
	{symADC, ABX, 0x7d, 3, 4, 1},
	{symADC, ABY, 0x79, 3, 4, 1},
	{symADC, IDX, 0x61, 2, 6, 0},
	{symADC, IDY, 0x71, 2, 5, 1},

	{symSBC, IMM, 0xe9, 2, 2, 0},
	{symSBC, ZPG, 0xe5, 2, 3, 0},
	{symSBC, ZPX, 0xf5, 2, 4, 0},
	{symSBC, ABS, 0xed, 3, 4, 0},
	{symSBC, ABX, 0xfd, 3, 4, 1},
	{symSBC, ABY, 0xf9, 3, 4, 1},
	{symSBC, IDX, 0xe1, 2, 6, 0},
	{symSBC, IDY, 0xf1, 2, 5, 1},

	{symCMP, IMM, 0xc9, 2, 2, 0},
	{symCMP, ZPG, 0xc5, 2, 3, 0},
	{symCMP, ZPX, 0xd5, 2, 4, 0},
	{symCMP, ABS, 0xcd, 3, 4, 0},
	{symCMP, ABX, 0xdd, 3, 4, 1},
	{symCMP, ABY, 0xd9, 3, 4, 1},
	{symCMP, IDX, 0xc1, 2, 6, 0},
	{symCMP, IDY, 0xd1, 2, 5, 1},

	{symCPX, IMM, 0xe0, 2, 2, 0},
	{symCPX, ZPG, 0xe4, 2, 3, 0},
	{symCPX, ABS, 0xec, 3, 4, 0},

	{symCPY, IMM, 0xc0, 2, 2, 0},
	{symCPY, ZPG, 0xc4, 2, 3, 0},
	{symCPY, ABS, 0xcc, 3, 4, 0},

	{symBIT, ZPG, 0x24, 2, 3, 0},
	{symBIT, ABS, 0x2c, 3, 4, 0},

	{symCLC, IMP, 0x18, 1, 2, 0},
	{symSEC, IMP, 0x38, 1, 2, 0},
	{symCLI, IMP, 0x58, 1, 2, 0},
	{symSEI, IMP, 0x78, 1, 2, 0},
	{symCLD, IMP, 0xd8, 1, 2, 0},
	{symSED, IMP, 0xf8, 1, 2, 0},
	{symCLV, IMP, 0xb8, 1, 2, 0},

	{symBCC, REL, 0x90, 2, 2, 1},
	{symBCS, REL, 0xb0, 2, 2, 1},
	{symBEQ, REL, 0xf0, 2, 2, 1},
	{symBNE, REL, 0xd0, 2, 2, 1},
	{symBMI, REL, 0x30, 2, 2, 1},
	{symBPL, REL, 0x10, 2, 2, 1},
	{symBVC, REL, 0x50, 2, 2, 1},
	{symBVS, REL, 0x70, 2, 2, 1},

	{symBRK, IMP, 0x00, 1, 7, 0},

	{symAND, IMM, 0x29, 2, 2, 0},
	{symAND, ZPG, 0x25, 2, 3, 0},
	{symAND, ZPX, 0x35, 2, 4, 0},
	{symAND, ABS, 0x2d, 3, 4, 0},
	{symAND, ABX, 0x3d, 3, 4, 1},
	{symAND, ABY, 0x39, 3, 4, 1},
	{symAND, IDX, 0x21, 2, 6, 0},
	{symAND, IDY, 0x31, 2, 5, 1},

	{symORA, IMM, 0x09, 2, 2, 0},
	{symORA, ZPG, 0x05, 2, 3, 0},
	{symORA, ZPX, 0x15, 2, 4, 0},
	{symORA, ABS, 0x0d, 3, 4, 0},
	{symORA, ABX, 0x1d, 3, 4, 1},
	{symORA, ABY, 0x19, 3, 4, 1},
	{symORA, IDX, 0x01, 2, 6, 0},
	{symORA, IDY, 0x11, 2, 5, 1},

	{symEOR, IMM, 0x49, 2, 2, 0},
	{symEOR, ZPG, 0x45, 2, 3, 0},
	{symEOR, ZPX, 0x55, 2, 4, 0},
	{symEOR, ABS, 0x4d, 3, 4, 0},
	{symEOR, ABX, 0x5d, 3, 4, 1},
	{symEOR, ABY, 0x59, 3, 4, 1},
	{symEOR, IDX, 0x41, 2, 6, 0},
	{symEOR, IDY, 0x51, 2, 5, 1},

	{symINC, ZPG, 0xe6, 2, 5, 0},
	{symINC, ZPX, 0xf6, 2, 6, 0},
	{symINC, ABS, 0xee, 3, 6, 0},
	{symINC, ABX, 0xfe, 3, 7, 0},

	{symDEC, ZPG, 0xc6, 2, 5, 0},
	{symDEC, ZPX, 0xd6, 2, 6, 0},
	{symDEC, ABS, 0xce, 3, 6, 0},
	{symDEC, ABX, 0xde, 3, 7, 0},

	{symINX, IMP, 0xe8, 1, 2, 0},
	{symINY, IMP, 0xc8, 1, 2, 0},

	{symDEX, IMP, 0xca, 1, 2, 0},
	{symDEY, IMP, 0x88, 1, 2, 0},

	{symJMP, ABS, 0x4c, 3, 3, 0},
	{symJMP, IND, 0x6c, 3, 5, 0},

	{symJSR, ABS, 0x20, 3, 6, 0},
	{symRTS, IMP, 0x60, 1, 6, 0},

	{symRTI, IMP, 0x40, 1, 6, 0},

	{symNOP, IMP, 0xea, 1, 2, 0},

	{symTAX, IMP, 0xaa, 1, 2, 0},
	{symTXA, IMP, 0x8a, 1, 2, 0},
	{symTAY, IMP, 0xa8, 1, 2, 0},
	{symTYA, IMP, 0x98, 1, 2, 0},
	{symTXS, IMP, 0x9a, 1, 2, 0},
	{symTSX, IMP, 0xba, 1, 2, 0},

	{symPHA, IMP, 0x48, 1, 3, 0},
	{symPLA, IMP, 0x68, 1, 4, 0},
	{symPHP, IMP, 0x08, 1, 3, 0},
	{symPLP, IMP, 0x28, 1, 4, 0},

	{symASL, ACC, 0x0a, 1, 2, 0},
	{symASL, ZPG, 0x06, 2, 5, 0},
	{symASL, ZPX, 0x16, 2, 6, 0},
	{symASL, ABS, 0x0e, 3, 6, 0},
	{symASL, ABX, 0x1e, 3, 7, 0},

	{symLSR, ACC, 0x4a, 1, 2, 0},
	{symLSR, ZPG, 0x46, 2, 5, 0},
	{symLSR, ZPX, 0x56, 2, 6, 0},
	{symLSR, ABS, 0x4e, 3, 6, 0},
	{symLSR, ABX, 0x5e, 3, 7, 0},

	{symROL, ACC, 0x2a, 1, 2, 0},
	{symROL, ZPG, 0x26, 2, 5, 0},
	{symROL, ZPX, 0x36, 2, 6, 0},
	{symROL, ABS, 0x2e, 3, 6, 0},
	{symROL, ABX, 0x3e, 3, 7, 0},

	{symROR, ACC, 0x6a, 1, 2, 0},
	{symROR, ZPG, 0x66, 2, 5, 0},
	{symROR, ZPX, 0x76, 2, 6, 0},
	{symROR, ABS, 0x6e, 3, 6, 0},
	{symROR, ABX, 0x7e, 3, 7, 0},

	// Unofficial opcodes follow.

	{symSLO, IDX, 0x03, 2, 8, 0},
	{symSLO, ZPG, 0x07, 2, 5, 0},
	{symSLO, ABS, 0x0f, 3, 6, 0},
	{symSLO, IDY, 0x13, 2, 8, 0},
	{symSLO, ZPX, 0x17, 2, 6, 0},
	{symSLO, ABY, 0x1b, 3, 7, 0},
	{symSLO, ABX, 0x1f, 3, 7, 0},

	{symRLA, IDX, 0x23, 2, 8, 0},
	{symRLA, ZPG, 0x27, 2, 5, 0},
	{symRLA, ABS, 0x2f, 3, 6, 0},
	{symRLA, IDY, 0x33, 2, 8, 0},
	{symRLA, ZPX, 0x37, 2, 6, 0},
	{symRLA, ABY, 0x3b, 3, 7, 0},
	{symRLA, ABX, 0x3f, 3, 7, 0},

	{symSRE, IDX, 0x43, 2, 8, 0},
	{symSRE, ZPG, 0x47, 2, 5, 0},
	{symSRE, ABS, 0x4f, 3, 6, 0},
	{symSRE, IDY, 0x53, 2, 8, 0},
	{symSRE, ZPX, 0x57, 2, 6, 0},
	{symSRE, ABY, 0x5b, 3, 7, 0},
	{symSRE, ABX, 0x5f, 3, 7, 0},

	{symRRA, IDX, 0x63, 2, 8, 0},
	{symRRA, ZPG, 0x67, 2, 5, 0},
	{symRRA, ABS, 0x6f, 3, 6, 0},
	{symRRA, IDY, 0x73, 2, 8, 0},
	{symRRA, ZPX, 0x77, 2, 6, 0},
	{symRRA, ABY, 0x7b, 3, 7, 0},
	{symRRA, ABX, 0x7f, 3, 7, 0},

	{symSAX, IDX, 0x83, 2, 6, 0},
	{symSAX, ZPG, 0x87, 2, 3, 0},
	{symSAX, ABS, 0x8f, 3, 4, 0},
	{symSAX, ZPY, 0x97, 2, 4, 0},

	{symLAX, IDX, 0xa3, 2, 6, 0},
	{symLAX, ZPG, 0xa7, 2, 3, 0},
	{symLAX, IMM, 0xab, 2, 2, 0},
	{symLAX, ABS, 0xaf, 3, 4, 0},
	{symLAX, IDY, 0xb3, 2, 5, 1},
	{symLAX, ZPY, 0xb7, 2, 4, 0},
	{symLAX, ABY, 0xbf, 3, 4, 1},

	{symDCP, IDX, 0xc3, 2, 8, 0},
	{symDCP, ZPG, 0xc7, 2, 5, 0},
	{symDCP, ABS, 0xcf, 3, 6, 0},
	{symDCP, IDY, 0xd3, 2, 8, 0},
	{symDCP, ZPX, 0xd7, 2, 6, 0},
	{symDCP, ABY, 0xdb, 3, 7, 0},
	{symDCP, ABX, 0xdf, 3, 7, 0},

	{symISC, IDX, 0xe3, 2, 8, 0},
	{symISC, ZPG, 0xe7, 2, 5, 0},
	{symISC, ABS, 0xef, 3, 6, 0},
	{symISC, IDY, 0xf3, 2, 8, 0},
	{symISC, ZPX, 0xf7, 2, 6, 0},
	{symISC, ABY, 0xfb, 3, 7, 0},
	{symISC, ABX, 0xff, 3, 7, 0},

	{symANC, IMM, 0x0b, 2, 2, 0},
	{symANC, IMM, 0x2b, 2, 2, 0},
	{symALR, IMM, 0x4b, 2, 2, 0},
	{symARR, IMM, 0x6b, 2, 2, 0},
	{symXAA, IMM, 0x8b, 2, 2, 0},
	{symAXS, IMM, 0xcb, 2, 2, 0},
	{symSBCu, IMM, 0xeb, 2, 2, 0},

	{symAHX, IDY, 0x93, 2, 6, 0},
	{symAHX, ABY, 0x9f, 3, 5, 0},
	{symTAS, ABY, 0x9b, 3, 5, 0},
	{symSHY, ABX, 0x9c, 3, 5, 0},
	{symSHX, ABY, 0x9e, 3, 5, 0},
	{symLAS, ABY, 0xbb, 3, 4, 1},

	{symKIL, IMP, 0x02, 1, 2, 0},
	{symKIL, IMP, 0x12, 1, 2, 0},
	{symKIL, IMP, 0x22, 1, 2, 0},
	{symKIL, IMP, 0x32, 1, 2, 0},
	{symKIL, IMP, 0x42, 1, 2, 0},
	{symKIL, IMP, 0x52, 1, 2, 0},
	{symKIL, IMP, 0x62, 1, 2, 0},
	{symKIL, IMP, 0x72, 1, 2, 0},
	{symKIL, IMP, 0x92, 1, 2, 0},
	{symKIL, IMP, 0xb2, 1, 2, 0},
	{symKIL, IMP, 0xd2, 1, 2, 0},
	{symKIL, IMP, 0xf2, 1, 2, 0},

	{symNOPu, IMP, 0x1a, 1, 2, 0},
	{symNOPu, IMP, 0x3a, 1, 2, 0},
	{symNOPu, IMP, 0x5a, 1, 2, 0},
	{symNOPu, IMP, 0x7a, 1, 2, 0},
	{symNOPu, IMP, 0xda, 1, 2, 0},
	{symNOPu, IMP, 0xfa, 1, 2, 0},
	{symNOPu, IMM, 0x80, 2, 2, 0},
	{symNOPu, IMM, 0x82, 2, 2, 0},
	{symNOPu, IMM, 0x89, 2, 2, 0},
	{symNOPu, IMM, 0xc2, 2, 2, 0},
	{symNOPu, IMM, 0xe2, 2, 2, 0},
	{symNOPu, ZPG, 0x04, 2, 3, 0},
	{symNOPu, ZPG, 0x44, 2, 3, 0},
	{symNOPu, ZPG, 0x64, 2, 3, 0},
	{symNOPu, ZPX, 0x14, 2, 4, 0},
	{symNOPu, ZPX, 0x34, 2, 4, 0},
	{symNOPu, ZPX, 0x54, 2, 4, 0},
	{symNOPu, ZPX, 0x74, 2, 4, 0},
	{symNOPu, ZPX, 0xd4, 2, 4, 0},
	{symNOPu, ZPX, 0xf4, 2, 4, 0},
	{symNOPu, ABS, 0x0c, 3, 4, 0},
	{symNOPu, ABX, 0x1c, 3, 4, 1},
	{symNOPu, ABX, 0x3c, 3, 4, 1},
	{symNOPu, ABX, 0x5c, 3, 4, 1},
	{symNOPu, ABX, 0x7c, 3, 4, 1},
	{symNOPu, ABX, 0xdc, 3, 4, 1},
	{symNOPu, ABX, 0xfc, 3, 4, 1},
}

// An Instruction describes a CPU instruction, including its name,
// its addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Name       string   // all-caps name of the instruction
	Mode       Mode     // addressing mode
	Opcode     byte     // hexadecimal opcode value
	Length     byte     // combined size of opcode and operand, in bytes
	Cycles     byte     // number of CPU cycles to execute the instruction
	BPCycles   byte     // additional cycles required if boundary page crossed
	Unofficial bool     // opcode is not part of the documented instruction set
	fn         instfunc // emulator implementation of the function
}

// An InstructionSet defines the set of all possible instructions that
// can run on the emulated CPU.
type InstructionSet struct {
	Policy       UnofficialPolicy
	instructions [256]Instruction          // all instructions by opcode
	variants     map[string][]*Instruction // variants of each instruction
}

// Lookup retrieves a CPU instruction corresponding to the requested opcode.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return &s.instructions[opcode]
}

// GetInstructions returns all CPU instructions whose name matches the
// provided string.
func (s *InstructionSet) GetInstructions(name string) []*Instruction {
	return s.variants[strings.ToUpper(name)]
}

// Create an instruction set for an unofficial opcode policy.
func newInstructionSet(policy UnofficialPolicy) *InstructionSet {
	set := &InstructionSet{Policy: policy}

	// Create a map from symbol to implementation for fast lookups.
	symToImpl := make(map[opsym]*opcodeImpl, len(impl))
	for i := range impl {
		symToImpl[impl[i].sym] = &impl[i]
	}

	// Create a map from instruction name to the slice of all instruction
	// variants matching that name.
	set.variants = make(map[string][]*Instruction)

	var defined [256]bool
	for _, d := range data {
		if defined[d.opcode] {
			panic(fmt.Sprintf("opcode $%02X defined twice", d.opcode))
		}
		defined[d.opcode] = true

		impl := symToImpl[d.sym]
		inst := &set.instructions[d.opcode]
		inst.Name = impl.name
		inst.Mode = d.mode
		inst.Opcode = d.opcode
		inst.Length = d.length
		inst.Cycles = d.cycles
		inst.BPCycles = d.bpcycles
		inst.Unofficial = impl.unofficial
		inst.fn = impl.fn[policy]

		set.variants[inst.Name] = append(set.variants[inst.Name], inst)
	}

	for i := 0; i < 256; i++ {
		if !defined[i] {
			panic(fmt.Sprintf("missing instruction for opcode $%02X", i))
		}
	}
	return set
}

var instructionSets = [2]*InstructionSet{
	newInstructionSet(EmulateUnofficial),
	newInstructionSet(IgnoreUnofficial),
}

// GetInstructionSet returns the instruction set for the requested
// unofficial opcode policy. A policy other than IgnoreUnofficial selects
// the EmulateUnofficial set.
func GetInstructionSet(policy UnofficialPolicy) *InstructionSet {
	switch policy {
	case IgnoreUnofficial:
		return instructionSets[IgnoreUnofficial]
	default:
		return instructionSets[EmulateUnofficial]
	}
}
