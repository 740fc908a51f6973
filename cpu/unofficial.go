// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Unofficial NMOS opcodes. Most combine a read-modify-write operation with
// an ALU operation on the accumulator. The "unstable" opcodes XAA and LAX
// immediate depend on analog effects on real silicon; they are emulated
// with the commonly observed magic constant below.
const unstableMagic = 0xee

// Compute the value stored by AHX, SHX, SHY and TAS: 'v' ANDed with the
// high byte of the unindexed base address plus one. When indexing crossed
// a page, the stored value also replaces the high byte of the target
// address.
func (cpu *CPU) storeHighAnd(addr uint16, index byte, v byte) {
	base := addr - uint16(index)
	v &= byte(base>>8) + 1
	if cpu.pageCrossed {
		addr = uint16(v)<<8 | (addr & 0x00ff)
	}
	cpu.Mem.StoreByte(addr, v)
}

// Store (A & X & (H+1))
func (cpu *CPU) ahx(inst *Instruction, addr uint16) {
	cpu.storeHighAnd(addr, cpu.Reg.Y, cpu.Reg.A&cpu.Reg.X)
}

// AND immediate, then Logical Shift Right the accumulator
func (cpu *CPU) alr(inst *Instruction, addr uint16) {
	cpu.Reg.A = cpu.shiftRight(cpu.Reg.A & cpu.Mem.LoadByte(addr))
	cpu.updateNZ(cpu.Reg.A)
}

// AND immediate, copying the sign into the carry
func (cpu *CPU) anc(inst *Instruction, addr uint16) {
	cpu.Reg.A &= cpu.Mem.LoadByte(addr)
	cpu.updateNZ(cpu.Reg.A)
	cpu.Reg.Carry = cpu.Reg.Sign
}

// AND immediate, then Rotate Right the accumulator. Carry takes bit 6 of
// the result and oVerflow takes bit 6 XOR bit 5.
func (cpu *CPU) arr(inst *Instruction, addr uint16) {
	v := cpu.Reg.A & cpu.Mem.LoadByte(addr)
	cpu.Reg.A = (v >> 1) | (boolToByte(cpu.Reg.Carry) << 7)
	cpu.updateNZ(cpu.Reg.A)
	cpu.Reg.Carry = (cpu.Reg.A & 0x40) != 0
	cpu.Reg.Overflow = ((cpu.Reg.A>>6)^(cpu.Reg.A>>5))&1 != 0
}

// X = (A & X) - immediate, without borrow
func (cpu *CPU) axs(inst *Instruction, addr uint16) {
	v := cpu.Mem.LoadByte(addr)
	ax := cpu.Reg.A & cpu.Reg.X
	cpu.Reg.Carry = (ax >= v)
	cpu.Reg.X = ax - v
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement memory, then Compare to accumulator
func (cpu *CPU) dcp(inst *Instruction, addr uint16) {
	v := cpu.Mem.LoadByte(addr) - 1
	cpu.Mem.StoreByte(addr, v)
	cpu.compare(cpu.Reg.A, v)
}

// Increment memory, then Subtract with Carry
func (cpu *CPU) isc(inst *Instruction, addr uint16) {
	v := cpu.Mem.LoadByte(addr) + 1
	cpu.Mem.StoreByte(addr, v)
	cpu.subtractWithBorrow(v)
}

// Halt the processor. The program counter stays on the KIL opcode.
func (cpu *CPU) kil(inst *Instruction, addr uint16) {
	cpu.jammed = true
	cpu.Reg.PC = cpu.LastPC
}

// A, X, SP = memory & SP
func (cpu *CPU) las(inst *Instruction, addr uint16) {
	v := cpu.Mem.LoadByte(addr) & cpu.Reg.SP
	cpu.Reg.A, cpu.Reg.X, cpu.Reg.SP = v, v, v
	cpu.updateNZ(v)
}

// Load Accumulator and X register
func (cpu *CPU) lax(inst *Instruction, addr uint16) {
	v := cpu.Mem.LoadByte(addr)
	if inst.Mode == IMM {
		v &= cpu.Reg.A | unstableMagic
	}
	cpu.Reg.A, cpu.Reg.X = v, v
	cpu.updateNZ(v)
}

// Rotate Left memory, then AND
func (cpu *CPU) rla(inst *Instruction, addr uint16) {
	v := cpu.rotateLeft(cpu.Mem.LoadByte(addr))
	cpu.Mem.StoreByte(addr, v)
	cpu.Reg.A &= v
	cpu.updateNZ(cpu.Reg.A)
}

// Rotate Right memory, then Add with Carry
func (cpu *CPU) rra(inst *Instruction, addr uint16) {
	v := cpu.rotateRight(cpu.Mem.LoadByte(addr))
	cpu.Mem.StoreByte(addr, v)
	cpu.addWithCarry(v)
}

// Store A & X
func (cpu *CPU) sax(inst *Instruction, addr uint16) {
	cpu.Mem.StoreByte(addr, cpu.Reg.A&cpu.Reg.X)
}

// Store X & (H+1)
func (cpu *CPU) shx(inst *Instruction, addr uint16) {
	cpu.storeHighAnd(addr, cpu.Reg.Y, cpu.Reg.X)
}

// Store Y & (H+1)
func (cpu *CPU) shy(inst *Instruction, addr uint16) {
	cpu.storeHighAnd(addr, cpu.Reg.X, cpu.Reg.Y)
}

// Arithmetic Shift Left memory, then OR
func (cpu *CPU) slo(inst *Instruction, addr uint16) {
	v := cpu.shiftLeft(cpu.Mem.LoadByte(addr))
	cpu.Mem.StoreByte(addr, v)
	cpu.Reg.A |= v
	cpu.updateNZ(cpu.Reg.A)
}

// Logical Shift Right memory, then XOR
func (cpu *CPU) sre(inst *Instruction, addr uint16) {
	v := cpu.shiftRight(cpu.Mem.LoadByte(addr))
	cpu.Mem.StoreByte(addr, v)
	cpu.Reg.A ^= v
	cpu.updateNZ(cpu.Reg.A)
}

// SP = A & X, then store SP & (H+1)
func (cpu *CPU) tas(inst *Instruction, addr uint16) {
	cpu.Reg.SP = cpu.Reg.A & cpu.Reg.X
	cpu.storeHighAnd(addr, cpu.Reg.Y, cpu.Reg.SP)
}

// A = (A | magic) & X & immediate
func (cpu *CPU) xaa(inst *Instruction, addr uint16) {
	cpu.Reg.A = (cpu.Reg.A | unstableMagic) & cpu.Reg.X & cpu.Mem.LoadByte(addr)
	cpu.updateNZ(cpu.Reg.A)
}

// Unofficial opcode under IgnoreUnofficial. It consumes the opcode's size
// and cycles and nothing else.
func (cpu *CPU) unofficialNop(inst *Instruction, addr uint16) {
	// Do nothing
}
