// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"
	"strings"
)

// State is a point-in-time copy of the CPU's externally visible state.
type State struct {
	A, X, Y, SP byte
	PC          uint16
	PS          byte
	Cycles      uint64
	Stall       uint64
	Pending     Interrupt
	Jammed      bool
}

// Snapshot captures the current CPU state.
func (cpu *CPU) Snapshot() State {
	return State{
		A:       cpu.Reg.A,
		X:       cpu.Reg.X,
		Y:       cpu.Reg.Y,
		SP:      cpu.Reg.SP,
		PC:      cpu.Reg.PC,
		PS:      cpu.Reg.PS(),
		Cycles:  cpu.Cycles,
		Stall:   cpu.Stall,
		Pending: cpu.pending,
		Jammed:  cpu.jammed,
	}
}

// Flags returns the status register as a string of flag letters, upper
// case when set: "NV-BDIZC".
func (s State) Flags() string {
	const names = "CZIDB-VN"
	var b strings.Builder
	for i := 7; i >= 0; i-- {
		c := names[i]
		if s.PS&(1<<i) == 0 && c != '-' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (s State) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		s.PC, s.A, s.X, s.Y, s.PS, s.SP, s.Cycles)
}
