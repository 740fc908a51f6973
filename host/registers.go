// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/pmirajkar/mos6502/cpu"
)

// A register describes a CPU register or status flag that can be read or
// changed by name.
type register struct {
	name string
	bits int // 1 for a status flag
	get  func(r *cpu.Registers) int64
	set  func(r *cpu.Registers, v int64)
}

func flagRegister(name string, flag func(r *cpu.Registers) *bool) register {
	return register{
		name: name,
		bits: 1,
		get:  func(r *cpu.Registers) int64 { return int64(boolToInt(*flag(r))) },
		set:  func(r *cpu.Registers, v int64) { *flag(r) = v != 0 },
	}
}

var registers = []register{
	{"A", 8, func(r *cpu.Registers) int64 { return int64(r.A) }, func(r *cpu.Registers, v int64) { r.A = byte(v) }},
	{"X", 8, func(r *cpu.Registers) int64 { return int64(r.X) }, func(r *cpu.Registers, v int64) { r.X = byte(v) }},
	{"Y", 8, func(r *cpu.Registers) int64 { return int64(r.Y) }, func(r *cpu.Registers, v int64) { r.Y = byte(v) }},
	{"SP", 8, func(r *cpu.Registers) int64 { return int64(r.SP) }, func(r *cpu.Registers, v int64) { r.SP = byte(v) }},
	{"PC", 16, func(r *cpu.Registers) int64 { return int64(r.PC) }, func(r *cpu.Registers, v int64) { r.PC = uint16(v) }},
	flagRegister("Carry", func(r *cpu.Registers) *bool { return &r.Carry }),
	flagRegister("Zero", func(r *cpu.Registers) *bool { return &r.Zero }),
	flagRegister("InterruptDisable", func(r *cpu.Registers) *bool { return &r.InterruptDisable }),
	flagRegister("Decimal", func(r *cpu.Registers) *bool { return &r.Decimal }),
	flagRegister("Overflow", func(r *cpu.Registers) *bool { return &r.Overflow }),
	flagRegister("Sign", func(r *cpu.Registers) *bool { return &r.Sign }),
}

// Registers are found by unambiguous prefix of their names or aliases.
var registerTree = prefixtree.New[*register]()

func init() {
	for i := range registers {
		registerTree.Add(strings.ToLower(registers[i].name), &registers[i])
	}

	aliases := map[string]string{
		"v":        "overflow",
		"negative": "sign",
	}
	for alias, name := range aliases {
		r, _ := registerTree.FindValue(name)
		registerTree.Add(alias, r)
	}
}

func findRegister(name string) (*register, error) {
	if name == "." {
		name = "pc"
	}
	return registerTree.FindValue(strings.ToLower(name))
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
