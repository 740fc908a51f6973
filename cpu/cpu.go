// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements a cycle-counting NMOS 6502 CPU instruction
// set and emulator.
//
// The CPU advances one unit of work per call to Step: a stall cycle, an
// interrupt sequence, or one complete instruction. Cycle costs are
// accounted at instruction granularity. Memory is reached exclusively
// through the Memory interface.
//
// A CPU is not safe for concurrent use. Emulating several machines
// requires one CPU (and one Memory) per machine.
package cpu

import "fmt"

// Architecture selects the flavor of NMOS 6502 being emulated.
type Architecture byte

const (
	// NMOS 6502 CPU, with binary-coded decimal arithmetic.
	NMOS Architecture = iota

	// RP2A03 is the NES CPU. The decimal flag can be set and cleared, but
	// ADC and SBC always perform binary arithmetic.
	RP2A03
)

func (a Architecture) String() string {
	switch a {
	case NMOS:
		return "6502"
	case RP2A03:
		return "2A03"
	default:
		return fmt.Sprintf("Architecture(%d)", byte(a))
	}
}

// CPU represents a single 6502 CPU. It contains a pointer to the
// memory associated with the CPU.
type CPU struct {
	Arch        Architecture    // CPU architecture
	Reg         Registers       // CPU registers
	Mem         Memory          // assigned memory
	Cycles      uint64          // total executed CPU cycles
	Stall       uint64          // pending cycles ceded to an external agent (e.g., DMA)
	LastPC      uint16          // address of the most recently executed instruction
	InstSet     *InstructionSet // Instruction set used by the CPU
	pending     Interrupt       // interrupt latched for service at the next step
	irqHeld     bool            // IRQ requested while masked or while the latch was busy
	jammed      bool            // a KIL opcode halted the CPU
	pageCrossed bool
	deltaCycles int8
}

// Interrupt vectors
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
	vectorBRK   = 0xfffe
)

// Number of cycles consumed by the hardware interrupt sequence.
const interruptCycles = 7

// NewCPU creates an emulated 6502 CPU bound to the specified memory. The
// registers hold their power-on values; call Reset to load the program
// counter from the reset vector. Unofficial opcodes are emulated until
// SetUnofficialPolicy selects otherwise.
func NewCPU(arch Architecture, m Memory) *CPU {
	cpu := &CPU{
		Arch:    arch,
		Mem:     m,
		InstSet: GetInstructionSet(EmulateUnofficial),
	}

	cpu.Reg.Init()
	return cpu
}

// SetUnofficialPolicy selects how unofficial opcodes are executed.
func (cpu *CPU) SetUnofficialPolicy(p UnofficialPolicy) {
	cpu.InstSet = GetInstructionSet(p)
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// GetInstruction returns the instruction opcode at the requested address.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	opcode := cpu.Mem.LoadByte(addr)
	return cpu.InstSet.Lookup(opcode)
}

// NextAddr returns the address of the next instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(addr uint16) uint16 {
	inst := cpu.GetInstruction(addr)
	return addr + uint16(inst.Length)
}

// Jammed reports whether a KIL opcode has halted the CPU. Only Reset
// recovers a jammed CPU.
func (cpu *CPU) Jammed() bool {
	return cpu.jammed
}

// Reset performs the 6502 reset sequence: the stack pointer and status
// register are reinitialized and the program counter is loaded from the
// reset vector. Pending interrupts, stall cycles and a jam are discarded.
// A, X and Y are left untouched, as on hardware.
func (cpu *CPU) Reset() {
	cpu.Reg.SP = resetSP
	cpu.Reg.setPS(resetPS)
	cpu.Reg.PC = cpu.loadAddress(vectorReset)
	cpu.pending = NoInterrupt
	cpu.irqHeld = false
	cpu.jammed = false
	cpu.Stall = 0
}

// Step performs one unit of work and returns the number of cycles it
// consumed. The unit is, in priority order: one stall cycle, one idle
// cycle of a jammed CPU, the servicing of a pending interrupt, or the
// execution of the instruction at the program counter.
func (cpu *CPU) Step() int {
	if cpu.Stall > 0 {
		cpu.Stall--
		cpu.Cycles++
		return 1
	}

	if cpu.jammed {
		cpu.Cycles++
		return 1
	}

	cpu.pollIRQ()
	if cpu.pending != NoInterrupt {
		return cpu.serviceInterrupt()
	}

	// Grab the next opcode at the current PC
	opcode := cpu.Mem.LoadByte(cpu.Reg.PC)

	// Look up the instruction data for the opcode
	inst := cpu.InstSet.Lookup(opcode)

	// Resolve the operand address and advance the PC. Handlers that
	// transfer control overwrite the advanced PC.
	addr, pageCrossed := cpu.resolve(inst.Mode)
	cpu.LastPC = cpu.Reg.PC
	cpu.Reg.PC += uint16(inst.Length)

	// Execute the instruction
	cpu.pageCrossed = pageCrossed
	cpu.deltaCycles = 0
	inst.fn(cpu, inst, addr)

	// Update the CPU cycle counter, with special-case logic
	// to handle a page boundary crossing
	cycles := int(inst.Cycles) + int(cpu.deltaCycles)
	if cpu.pageCrossed {
		cycles += int(inst.BPCycles)
	}
	cpu.Cycles += uint64(cycles)
	return cycles
}

// Resolve the effective address of the operand of the instruction at the
// program counter. For indexed modes, report whether indexing moved the
// address onto a different page. Implied and accumulator modes have no
// address.
func (cpu *CPU) resolve(mode Mode) (addr uint16, pageCrossed bool) {
	pc := cpu.Reg.PC
	switch mode {
	case IMP, ACC:
		return 0, false
	case IMM:
		return pc + 1, false
	case ZPG:
		return uint16(cpu.Mem.LoadByte(pc + 1)), false
	case ZPX:
		return offsetZeroPage(cpu.Mem.LoadByte(pc+1), cpu.Reg.X), false
	case ZPY:
		return offsetZeroPage(cpu.Mem.LoadByte(pc+1), cpu.Reg.Y), false
	case ABS:
		return cpu.loadAddress(pc + 1), false
	case ABX:
		return offsetAddress(cpu.loadAddress(pc+1), cpu.Reg.X)
	case ABY:
		return offsetAddress(cpu.loadAddress(pc+1), cpu.Reg.Y)
	case IND:
		return cpu.loadAddressPageWrap(cpu.loadAddress(pc + 1)), false
	case IDX:
		zp := cpu.Mem.LoadByte(pc+1) + cpu.Reg.X
		return cpu.loadZeroPageAddress(zp), false
	case IDY:
		base := cpu.loadZeroPageAddress(cpu.Mem.LoadByte(pc + 1))
		return offsetAddress(base, cpu.Reg.Y)
	case REL:
		offset := int8(cpu.Mem.LoadByte(pc + 1))
		return pc + 2 + uint16(offset), false
	default:
		panic("Invalid addressing mode")
	}
}

// Load a little-endian 16-bit value from 'addr' and 'addr'+1.
func (cpu *CPU) loadAddress(addr uint16) uint16 {
	lo := cpu.Mem.LoadByte(addr)
	hi := cpu.Mem.LoadByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Load a 16-bit value the way the NMOS 6502 does for JMP ($xxxx). When the
// pointer ends in $FF, the high byte is read from the start of the same
// page: JMP ($12FF) reads $12FF and $1200.
func (cpu *CPU) loadAddressPageWrap(addr uint16) uint16 {
	lo := cpu.Mem.LoadByte(addr)
	hi := cpu.Mem.LoadByte((addr & 0xff00) | uint16(byte(addr)+1))
	return uint16(lo) | uint16(hi)<<8
}

// Load a 16-bit pointer stored in the zero page. A pointer at $FF takes
// its high byte from $00.
func (cpu *CPU) loadZeroPageAddress(zp byte) uint16 {
	lo := cpu.Mem.LoadByte(uint16(zp))
	hi := cpu.Mem.LoadByte(uint16(zp + 1))
	return uint16(lo) | uint16(hi)<<8
}

// Load the operand byte of an instruction, which is the accumulator in
// accumulator mode.
func (cpu *CPU) load(mode Mode, addr uint16) byte {
	if mode == ACC {
		return cpu.Reg.A
	}
	return cpu.Mem.LoadByte(addr)
}

// Store the operand byte of an instruction, which is the accumulator in
// accumulator mode.
func (cpu *CPU) store(mode Mode, addr uint16, v byte) {
	if mode == ACC {
		cpu.Reg.A = v
		return
	}
	cpu.Mem.StoreByte(addr, v)
}

// Execute a taken branch to 'target'. A taken branch costs one cycle, and
// one more when the target lies on a different page than the instruction
// following the branch.
func (cpu *CPU) branch(inst *Instruction, target uint16) {
	cpu.deltaCycles++
	if pageDiffers(cpu.Reg.PC, target) {
		cpu.deltaCycles += int8(inst.BPCycles)
	}
	cpu.Reg.PC = target
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	cpu.Mem.StoreByte(stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push the address 'addr' onto the stack, high byte first.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack, low byte first.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | (uint16(hi) << 8)
}

// Update the Zero and Negative flags based on the value of 'v'.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.Zero = (v == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
}

// Handle an interrupt by storing the program counter and status flags on
// the stack. Then switch the program counter to the address held in the
// requested vector.
func (cpu *CPU) handleInterrupt(brk bool, vector uint16) {
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(brk))

	cpu.Reg.InterruptDisable = true
	cpu.Reg.PC = cpu.loadAddress(vector)
}

// Report whether ADC and SBC should perform decimal arithmetic.
func (cpu *CPU) decimalMode() bool {
	return cpu.Reg.Decimal && cpu.Arch == NMOS
}

// Add 'm' and the carry to the accumulator. In decimal mode the NMOS 6502
// takes Z from the binary sum, and N and V from the intermediate result
// before the high nibble is adjusted.
func (cpu *CPU) addWithCarry(m byte) {
	acc := uint32(cpu.Reg.A)
	add := uint32(m)
	carry := boolToUint32(cpu.Reg.Carry)
	binary := acc + add + carry

	if !cpu.decimalMode() {
		cpu.Reg.Carry = (binary >= 0x100)
		cpu.Reg.Overflow = ((acc^binary)&(add^binary)&0x80) != 0
		cpu.Reg.A = byte(binary)
		cpu.updateNZ(cpu.Reg.A)
		return
	}

	lo := (acc & 0x0f) + (add & 0x0f) + carry

	var carrylo uint32
	if lo >= 0x0a {
		carrylo = 0x10
		lo -= 0x0a
	}

	hi := (acc & 0xf0) + (add & 0xf0) + carrylo

	cpu.Reg.Zero = byte(binary) == 0
	cpu.Reg.Sign = (hi & 0x80) != 0
	cpu.Reg.Overflow = ((acc^hi)&0x80) != 0 && ((acc^add)&0x80) == 0

	if hi >= 0xa0 {
		cpu.Reg.Carry = true
		hi -= 0xa0
	} else {
		cpu.Reg.Carry = false
	}

	cpu.Reg.A = byte(hi | (lo & 0x0f))
}

// Subtract 'm' and the borrow (inverted carry) from the accumulator. In
// decimal mode the NMOS 6502 sets N, V, Z and C from the binary result.
func (cpu *CPU) subtractWithBorrow(m byte) {
	acc := uint32(cpu.Reg.A)
	sub := uint32(m)
	carry := boolToUint32(cpu.Reg.Carry)
	binary := 0xff + acc - sub + carry

	cpu.Reg.Carry = (binary >= 0x100)
	cpu.Reg.Overflow = ((acc^sub)&(acc^binary)&0x80) != 0
	cpu.updateNZ(byte(binary))

	if !cpu.decimalMode() {
		cpu.Reg.A = byte(binary)
		return
	}

	lo := 0x0f + (acc & 0x0f) - (sub & 0x0f) + carry

	var carrylo uint32
	if lo < 0x10 {
		lo -= 0x06
		carrylo = 0
	} else {
		lo -= 0x10
		carrylo = 0x10
	}

	hi := 0xf0 + (acc & 0xf0) - (sub & 0xf0) + carrylo

	if hi < 0x100 {
		hi -= 0x60
	} else {
		hi -= 0x100
	}

	cpu.Reg.A = byte(hi | (lo & 0x0f))
}

// Compare register value 'r' against 'v'.
func (cpu *CPU) compare(r, v byte) {
	cpu.Reg.Carry = (r >= v)
	cpu.updateNZ(r - v)
}

func (cpu *CPU) shiftLeft(v byte) byte {
	cpu.Reg.Carry = ((v & 0x80) == 0x80)
	return v << 1
}

func (cpu *CPU) shiftRight(v byte) byte {
	cpu.Reg.Carry = ((v & 1) == 1)
	return v >> 1
}

func (cpu *CPU) rotateLeft(v byte) byte {
	r := (v << 1) | boolToByte(cpu.Reg.Carry)
	cpu.Reg.Carry = ((v & 0x80) != 0)
	return r
}

func (cpu *CPU) rotateRight(v byte) byte {
	r := (v >> 1) | (boolToByte(cpu.Reg.Carry) << 7)
	cpu.Reg.Carry = ((v & 1) != 0)
	return r
}

// Add with carry
func (cpu *CPU) adc(inst *Instruction, addr uint16) {
	cpu.addWithCarry(cpu.load(inst.Mode, addr))
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction, addr uint16) {
	cpu.Reg.A &= cpu.load(inst.Mode, addr)
	cpu.updateNZ(cpu.Reg.A)
}

// Arithmetic Shift Left
func (cpu *CPU) asl(inst *Instruction, addr uint16) {
	v := cpu.shiftLeft(cpu.load(inst.Mode, addr))
	cpu.updateNZ(v)
	cpu.store(inst.Mode, addr, v)
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction, addr uint16) {
	if !cpu.Reg.Carry {
		cpu.branch(inst, addr)
	}
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction, addr uint16) {
	if cpu.Reg.Carry {
		cpu.branch(inst, addr)
	}
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction, addr uint16) {
	if cpu.Reg.Zero {
		cpu.branch(inst, addr)
	}
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction, addr uint16) {
	v := cpu.load(inst.Mode, addr)
	cpu.Reg.Zero = ((v & cpu.Reg.A) == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
	cpu.Reg.Overflow = ((v & 0x40) != 0)
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction, addr uint16) {
	if cpu.Reg.Sign {
		cpu.branch(inst, addr)
	}
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction, addr uint16) {
	if !cpu.Reg.Zero {
		cpu.branch(inst, addr)
	}
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction, addr uint16) {
	if !cpu.Reg.Sign {
		cpu.branch(inst, addr)
	}
}

// Break. The byte following the opcode is skipped, so the pushed return
// address is the BRK address + 2.
func (cpu *CPU) brk(inst *Instruction, addr uint16) {
	cpu.Reg.PC++
	cpu.handleInterrupt(true, vectorBRK)
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction, addr uint16) {
	if !cpu.Reg.Overflow {
		cpu.branch(inst, addr)
	}
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction, addr uint16) {
	if cpu.Reg.Overflow {
		cpu.branch(inst, addr)
	}
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction, addr uint16) {
	cpu.Reg.Carry = false
}

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction, addr uint16) {
	cpu.Reg.Decimal = false
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction, addr uint16) {
	cpu.Reg.InterruptDisable = false
}

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction, addr uint16) {
	cpu.Reg.Overflow = false
}

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction, addr uint16) {
	cpu.compare(cpu.Reg.A, cpu.load(inst.Mode, addr))
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction, addr uint16) {
	cpu.compare(cpu.Reg.X, cpu.load(inst.Mode, addr))
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction, addr uint16) {
	cpu.compare(cpu.Reg.Y, cpu.load(inst.Mode, addr))
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction, addr uint16) {
	v := cpu.load(inst.Mode, addr) - 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, addr, v)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction, addr uint16) {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction, addr uint16) {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction, addr uint16) {
	cpu.Reg.A ^= cpu.load(inst.Mode, addr)
	cpu.updateNZ(cpu.Reg.A)
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction, addr uint16) {
	v := cpu.load(inst.Mode, addr) + 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, addr, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction, addr uint16) {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction, addr uint16) {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
}

// Jump to memory address
func (cpu *CPU) jmp(inst *Instruction, addr uint16) {
	cpu.Reg.PC = addr
}

// Jump to subroutine. The pushed return address is the last byte of the
// JSR instruction; RTS adds one to it.
func (cpu *CPU) jsr(inst *Instruction, addr uint16) {
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = addr
}

// load Accumulator
func (cpu *CPU) lda(inst *Instruction, addr uint16) {
	cpu.Reg.A = cpu.load(inst.Mode, addr)
	cpu.updateNZ(cpu.Reg.A)
}

// load the X register
func (cpu *CPU) ldx(inst *Instruction, addr uint16) {
	cpu.Reg.X = cpu.load(inst.Mode, addr)
	cpu.updateNZ(cpu.Reg.X)
}

// load the Y register
func (cpu *CPU) ldy(inst *Instruction, addr uint16) {
	cpu.Reg.Y = cpu.load(inst.Mode, addr)
	cpu.updateNZ(cpu.Reg.Y)
}

// Logical Shift Right
func (cpu *CPU) lsr(inst *Instruction, addr uint16) {
	v := cpu.shiftRight(cpu.load(inst.Mode, addr))
	cpu.updateNZ(v)
	cpu.store(inst.Mode, addr, v)
}

// No-operation
func (cpu *CPU) nop(inst *Instruction, addr uint16) {
	// Do nothing
}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction, addr uint16) {
	cpu.Reg.A |= cpu.load(inst.Mode, addr)
	cpu.updateNZ(cpu.Reg.A)
}

// Push Accumulator
func (cpu *CPU) pha(inst *Instruction, addr uint16) {
	cpu.push(cpu.Reg.A)
}

// Push Processor flags
func (cpu *CPU) php(inst *Instruction, addr uint16) {
	cpu.push(cpu.Reg.SavePS(true))
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction, addr uint16) {
	cpu.Reg.A = cpu.pop()
	cpu.updateNZ(cpu.Reg.A)
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(inst *Instruction, addr uint16) {
	cpu.Reg.RestorePS(cpu.pop())
}

// Rotate Left
func (cpu *CPU) rol(inst *Instruction, addr uint16) {
	v := cpu.rotateLeft(cpu.load(inst.Mode, addr))
	cpu.updateNZ(v)
	cpu.store(inst.Mode, addr, v)
}

// Rotate Right
func (cpu *CPU) ror(inst *Instruction, addr uint16) {
	v := cpu.rotateRight(cpu.load(inst.Mode, addr))
	cpu.updateNZ(v)
	cpu.store(inst.Mode, addr, v)
}

// Return from Interrupt
func (cpu *CPU) rti(inst *Instruction, addr uint16) {
	cpu.Reg.RestorePS(cpu.pop())
	cpu.Reg.PC = cpu.popAddress()
}

// Return from Subroutine
func (cpu *CPU) rts(inst *Instruction, addr uint16) {
	cpu.Reg.PC = cpu.popAddress() + 1
}

// Subtract with Carry
func (cpu *CPU) sbc(inst *Instruction, addr uint16) {
	cpu.subtractWithBorrow(cpu.load(inst.Mode, addr))
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction, addr uint16) {
	cpu.Reg.Carry = true
}

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction, addr uint16) {
	cpu.Reg.Decimal = true
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction, addr uint16) {
	cpu.Reg.InterruptDisable = true
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction, addr uint16) {
	cpu.store(inst.Mode, addr, cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction, addr uint16) {
	cpu.store(inst.Mode, addr, cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction, addr uint16) {
	cpu.store(inst.Mode, addr, cpu.Reg.Y)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction, addr uint16) {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction, addr uint16) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
}

// Transfer stack pointer to X register
func (cpu *CPU) tsx(inst *Instruction, addr uint16) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction, addr uint16) {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer X register to the stack pointer
func (cpu *CPU) txs(inst *Instruction, addr uint16) {
	cpu.Reg.SP = cpu.Reg.X
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction, addr uint16) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
}
