// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Registers contains the state of all 6502 registers. The status flags are
// held individually and only packed into a byte when pushed or pulled.
type Registers struct {
	A                byte   // accumulator
	X                byte   // X indexing register
	Y                byte   // Y indexing register
	SP               byte   // stack pointer ($100 + SP = stack memory location)
	PC               uint16 // program counter
	Carry            bool   // PS: Carry bit
	Zero             bool   // PS: Zero bit
	InterruptDisable bool   // PS: Interrupt disable bit
	Decimal          bool   // PS: Decimal bit
	Break            bool   // PS: Break bit
	Unused           bool   // PS: Unused bit, always reads as 1
	Overflow         bool   // PS: Overflow bit
	Sign             bool   // PS: Sign (negative) bit
}

// Bits assigned to the processor status byte
const (
	CarryBit            = 1 << 0
	ZeroBit             = 1 << 1
	InterruptDisableBit = 1 << 2
	DecimalBit          = 1 << 3
	BreakBit            = 1 << 4
	UnusedBit           = 1 << 5
	OverflowBit         = 1 << 6
	SignBit             = 1 << 7
)

// Register values loaded by a reset.
const (
	resetSP = 0xfd
	resetPS = InterruptDisableBit | UnusedBit
)

// PS returns the live processor status packed into a byte.
func (r *Registers) PS() byte {
	var ps byte
	if r.Carry {
		ps |= CarryBit
	}
	if r.Zero {
		ps |= ZeroBit
	}
	if r.InterruptDisable {
		ps |= InterruptDisableBit
	}
	if r.Decimal {
		ps |= DecimalBit
	}
	if r.Break {
		ps |= BreakBit
	}
	if r.Unused {
		ps |= UnusedBit
	}
	if r.Overflow {
		ps |= OverflowBit
	}
	if r.Sign {
		ps |= SignBit
	}
	return ps
}

// SavePS packs the processor status for a push onto the stack. The unused
// bit is always saved as on. The break bit is set only if requested: BRK
// and PHP push it set, hardware interrupts push it clear.
func (r *Registers) SavePS(brk bool) byte {
	ps := r.PS() | UnusedBit
	if brk {
		ps |= BreakBit
	} else {
		ps &^= BreakBit
	}
	return ps
}

// RestorePS restores the processor status from a byte pulled off the
// stack. The break bit of the pulled value is ignored and the unused bit
// is forced on.
func (r *Registers) RestorePS(ps byte) {
	r.Carry = ((ps & CarryBit) != 0)
	r.Zero = ((ps & ZeroBit) != 0)
	r.InterruptDisable = ((ps & InterruptDisableBit) != 0)
	r.Decimal = ((ps & DecimalBit) != 0)
	r.Unused = true
	r.Overflow = ((ps & OverflowBit) != 0)
	r.Sign = ((ps & SignBit) != 0)
}

// setPS overwrites every flag, including break and unused, from a byte.
func (r *Registers) setPS(ps byte) {
	r.RestorePS(ps)
	r.Break = ((ps & BreakBit) != 0)
	r.Unused = ((ps & UnusedBit) != 0)
}

func boolToUint32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

func boolToByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// Init initializes all registers to their power-on values. A, X, Y = 0.
// SP = $FD. PC = 0. PS = $24.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = resetSP
	r.PC = 0
	r.setPS(resetPS)
}
