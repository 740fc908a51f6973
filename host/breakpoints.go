// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"cmp"
	"slices"

	"github.com/pmirajkar/mos6502/cpu"
)

// A Breakpoint represents an address that will cause the host to stop
// running code when the program counter reaches it.
type Breakpoint struct {
	Address  uint16 // address of execution breakpoint
	Disabled bool   // this breakpoint is currently disabled
}

// A DataBreakpoint represents an address that will cause the host to stop
// running code when the CPU stores a byte to it.
type DataBreakpoint struct {
	Address     uint16 // breakpoint triggered by stores to this address
	Disabled    bool   // this breakpoint is currently disabled
	Conditional bool   // this breakpoint is conditional on a certain Value being stored
	Value       byte   // the value that must be stored if the breakpoint is conditional
}

type breakpoints struct {
	code map[uint16]*Breakpoint
	data map[uint16]*DataBreakpoint
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		code: make(map[uint16]*Breakpoint),
		data: make(map[uint16]*DataBreakpoint),
	}
}

// Get looks up a breakpoint by address and returns it if found.
// Otherwise it returns nil.
func (b *breakpoints) Get(addr uint16) *Breakpoint {
	return b.code[addr]
}

// List returns all breakpoints sorted by address.
func (b *breakpoints) List() []*Breakpoint {
	list := make([]*Breakpoint, 0, len(b.code))
	for _, bp := range b.code {
		list = append(list, bp)
	}
	slices.SortFunc(list, func(x, y *Breakpoint) int {
		return cmp.Compare(x.Address, y.Address)
	})
	return list
}

// Add adds a new enabled breakpoint. If a breakpoint was already set on
// the address, it is replaced.
func (b *breakpoints) Add(addr uint16) *Breakpoint {
	bp := &Breakpoint{Address: addr}
	b.code[addr] = bp
	return bp
}

// Remove removes the breakpoint on an address and reports whether one
// was set.
func (b *breakpoints) Remove(addr uint16) bool {
	_, ok := b.code[addr]
	delete(b.code, addr)
	return ok
}

// Hit returns the enabled breakpoint on 'addr', or nil.
func (b *breakpoints) Hit(addr uint16) *Breakpoint {
	if bp, ok := b.code[addr]; ok && !bp.Disabled {
		return bp
	}
	return nil
}

// GetData looks up a data breakpoint on the provided address and returns
// it if found. Otherwise it returns nil.
func (b *breakpoints) GetData(addr uint16) *DataBreakpoint {
	return b.data[addr]
}

// ListData returns all data breakpoints sorted by address.
func (b *breakpoints) ListData() []*DataBreakpoint {
	list := make([]*DataBreakpoint, 0, len(b.data))
	for _, bp := range b.data {
		list = append(list, bp)
	}
	slices.SortFunc(list, func(x, y *DataBreakpoint) int {
		return cmp.Compare(x.Address, y.Address)
	})
	return list
}

// AddData adds an unconditional data breakpoint on the requested address.
func (b *breakpoints) AddData(addr uint16) *DataBreakpoint {
	bp := &DataBreakpoint{Address: addr}
	b.data[addr] = bp
	return bp
}

// AddConditionalData adds a data breakpoint that triggers only when
// 'value' is stored to the address.
func (b *breakpoints) AddConditionalData(addr uint16, value byte) *DataBreakpoint {
	bp := &DataBreakpoint{Address: addr, Conditional: true, Value: value}
	b.data[addr] = bp
	return bp
}

// RemoveData removes a (conditional or unconditional) data breakpoint and
// reports whether one was set.
func (b *breakpoints) RemoveData(addr uint16) bool {
	_, ok := b.data[addr]
	delete(b.data, addr)
	return ok
}

// HitData returns the enabled data breakpoint triggered by storing 'v' to
// 'addr', or nil.
func (b *breakpoints) HitData(addr uint16, v byte) *DataBreakpoint {
	if bp, ok := b.data[addr]; ok && !bp.Disabled {
		if !bp.Conditional || bp.Value == v {
			return bp
		}
	}
	return nil
}

// watchedMemory is the bus seen by the host's CPU. It behaves like flat
// memory but records the data breakpoint hit by a CPU store, which the run
// loop picks up between steps. Stores made by host commands go straight
// to the flat memory and never trigger breakpoints.
type watchedMemory struct {
	*cpu.FlatMemory
	bp  *breakpoints
	hit *DataBreakpoint
}

func (m *watchedMemory) StoreByte(addr uint16, v byte) {
	m.FlatMemory.StoreByte(addr, v)
	if bp := m.bp.HitData(addr, v); bp != nil && m.hit == nil {
		m.hit = bp
	}
}

// Return and clear the most recent data breakpoint hit.
func (m *watchedMemory) takeHit() *DataBreakpoint {
	hit := m.hit
	m.hit = nil
	return hit
}
