// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Interrupt identifies a hardware interrupt latched for service.
type Interrupt byte

const (
	// NoInterrupt means no interrupt is waiting for service.
	NoInterrupt Interrupt = iota

	// NMI is the non-maskable interrupt. It is serviced through the
	// vector at $FFFA regardless of the InterruptDisable flag.
	NMI

	// IRQ is the maskable interrupt request. It is serviced through the
	// vector at $FFFE, and only while the InterruptDisable flag is clear.
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	default:
		return "none"
	}
}

// TriggerNMI latches a non-maskable interrupt. It is serviced at the start
// of the next Step and takes priority over a latched IRQ, which is held
// until the NMI has been serviced.
func (cpu *CPU) TriggerNMI() {
	if cpu.pending == IRQ {
		cpu.irqHeld = true
	}
	cpu.pending = NMI
}

// TriggerIRQ requests a maskable interrupt. If the InterruptDisable flag
// is clear, the IRQ is serviced at the start of the next Step. Otherwise
// the request is held and serviced at the first step boundary after the
// flag clears. Repeated requests before service collapse into one.
func (cpu *CPU) TriggerIRQ() {
	switch {
	case cpu.pending == IRQ:
	case cpu.pending == NoInterrupt && !cpu.Reg.InterruptDisable:
		cpu.pending = IRQ
	default:
		cpu.irqHeld = true
	}
}

// Pending returns the interrupt latched for service at the next Step.
// A held IRQ that is still masked is not reported.
func (cpu *CPU) Pending() Interrupt {
	return cpu.pending
}

// Latch a held IRQ once nothing else is pending and the CPU accepts it.
func (cpu *CPU) pollIRQ() {
	if cpu.irqHeld && cpu.pending == NoInterrupt && !cpu.Reg.InterruptDisable {
		cpu.pending = IRQ
		cpu.irqHeld = false
	}
}

// Service the latched interrupt: push PC and status (with the break bit
// clear), disable interrupts and jump through the interrupt's vector.
func (cpu *CPU) serviceInterrupt() int {
	vector := uint16(vectorIRQ)
	if cpu.pending == NMI {
		vector = vectorNMI
	}
	cpu.pending = NoInterrupt

	cpu.handleInterrupt(false, vector)
	cpu.Cycles += interruptCycles
	return interruptCycles
}
