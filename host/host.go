// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host allows you to create a "host" that emulates a computer system
// with a 6502 CPU and 64K of memory, driven by a small command monitor.
//
// Within the host it is possible to load machine code into memory, step
// through it or run it, measure the number of CPU cycles elapsed, set
// address and data breakpoints, raise interrupts, dump and change the
// contents of memory and registers, and evaluate arbitrary expressions.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/beevik/cmd"
	"github.com/pmirajkar/mos6502/cpu"
)

// ErrQuit is returned by RunCommands when the quit command is executed.
var ErrQuit = errors.New("exiting program")

// A Host represents a fully emulated 6502 system with 64K of memory and a
// command monitor.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	mem         *cpu.FlatMemory
	bus         *watchedMemory
	cpu         *cpu.CPU
	breakpoints *breakpoints
	lastCmd     *cmd.Selection
	breakFlag   atomic.Bool
	exprParser  *exprParser
	settings    *settings
}

// New creates a new 6502 host environment.
func New(arch cpu.Architecture, policy cpu.UnofficialPolicy) *Host {
	h := &Host{
		breakpoints: newBreakpoints(),
		exprParser:  newExprParser(),
		settings:    newSettings(),
	}

	// Create the emulated CPU and memory. The CPU reaches memory through a
	// bus that watches for data breakpoints.
	h.mem = cpu.NewFlatMemory()
	h.bus = &watchedMemory{FlatMemory: h.mem, bp: h.breakpoints}
	h.cpu = cpu.NewCPU(arch, h.bus)
	h.cpu.SetUnofficialPolicy(policy)

	return h
}

// CPU returns the host's emulated CPU.
func (h *Host) CPU() *cpu.CPU {
	return h.cpu
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered. It returns nil
// when the reader is exhausted and ErrQuit when a quit command runs.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) error {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	defer h.flush()

	if interactive {
		h.println()
		h.displayPC()
	}

	for {
		h.prompt()

		line, err := h.getLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if err := h.processLine(line); err != nil {
			return err
		}
	}
}

// Break interrupts a running CPU. It may be called from any goroutine;
// the run loop notices the request between steps.
func (h *Host) Break() {
	h.breakFlag.Store(true)
}

func (h *Host) processLine(line string) error {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
		return nil
	}

	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case errors.Is(err, cmd.ErrNotFound):
			h.println("Command not found.")
			return nil
		case errors.Is(err, cmd.ErrAmbiguous):
			h.println("Command is ambiguous.")
			return nil
		case err != nil:
			h.printf("ERROR: %v.\n", err)
			return nil
		}
	} else if h.interactive && h.lastCmd != nil {
		c = *h.lastCmd
	}

	if c.Command == nil {
		return nil
	}

	command, ok := c.Command.Data.(*command)
	if !ok {
		return nil
	}
	h.lastCmd = &c

	return command.handler(h, c)
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayPC() {
	h.println(h.instructionLine(h.cpu.Reg.PC))
}

// Return a one-line description of the instruction at 'addr' followed by
// the CPU state.
func (h *Host) instructionLine(addr uint16) string {
	inst := h.cpu.GetInstruction(addr)

	b := make([]byte, inst.Length)
	h.mem.LoadBytes(addr, b)

	s := h.cpu.Snapshot()
	return fmt.Sprintf("%04X-   %-8s    %-3s %-3s   A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X C=%d",
		addr, codeString(b), inst.Name, inst.Mode,
		s.A, s.X, s.Y, s.Flags(), s.SP, s.PC, s.Cycles)
}

func (h *Host) cmdBreakpointList(c cmd.Selection) error {
	h.println("Breakpoints:")
	for _, b := range h.breakpoints.List() {
		var disabled string
		if b.Disabled {
			disabled = " (disabled)"
		}
		h.printf("    $%04X%s\n", b.Address, disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.breakpoints.Add(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if !h.breakpoints.Remove(addr) {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.printf("Breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c cmd.Selection) error {
	return h.enableBreakpoint(c, false)
}

func (h *Host) cmdBreakpointDisable(c cmd.Selection) error {
	return h.enableBreakpoint(c, true)
}

func (h *Host) enableBreakpoint(c cmd.Selection, disabled bool) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.breakpoints.Get(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = disabled
	if disabled {
		h.printf("Breakpoint at $%04X disabled.\n", addr)
	} else {
		h.printf("Breakpoint at $%04X enabled.\n", addr)
	}
	return nil
}

func (h *Host) cmdDataBreakpointList(c cmd.Selection) error {
	h.println("Data breakpoints:")
	for _, b := range h.breakpoints.ListData() {
		h.printf("    $%04X", b.Address)
		if b.Conditional {
			h.printf(" on value $%02X", b.Value)
		}
		if b.Disabled {
			h.printf(" (disabled)")
		}
		h.println()
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if len(c.Args) > 1 {
		value, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.breakpoints.AddConditionalData(addr, byte(value))
		h.printf("Conditional data breakpoint added at $%04X for value $%02X.\n", addr, byte(value))
		return nil
	}

	h.breakpoints.AddData(addr)
	h.printf("Data breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointRemove(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if !h.breakpoints.RemoveData(addr) {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.printf("Data breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdEvaluate(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	expr := strings.Join(c.Args, " ")
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("$%04X (%d)\n", uint16(v), v)
	return nil
}

func (h *Host) cmdExecute(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	file, err := os.Open(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := h.processLine(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		h.printf("%v\n", err)
	}
	return nil
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.displayCommands("Commands", commands)
		return nil
	}

	// A full command path selects a single command.
	if s, err := cmds.Lookup(strings.Join(c.Args, " ")); err == nil && s.Command != nil {
		if command, ok := s.Command.Data.(*command); ok {
			h.displayHelpText(command)
			return nil
		}
	}

	// Otherwise look for a top-level command or command group.
	command, err := helpTopic.FindValue(strings.ToLower(c.Args[0]))
	if err != nil {
		h.printf("Help topic '%s' not found.\n", c.Args[0])
		return nil
	}
	if command.subcommands != nil {
		h.displayCommands(command.brief, command.subcommands)
		return nil
	}
	h.displayHelpText(command)
	return nil
}

func (h *Host) cmdInterruptIRQ(c cmd.Selection) error {
	h.cpu.TriggerIRQ()
	switch h.cpu.Pending() {
	case cpu.NoInterrupt:
		h.println("IRQ requested. It is held until the InterruptDisable flag clears.")
	default:
		h.printf("%v pending.\n", h.cpu.Pending())
	}
	return nil
}

func (h *Host) cmdInterruptNMI(c cmd.Selection) error {
	h.cpu.TriggerNMI()
	h.println("NMI pending.")
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if err := h.load(c.Args[0], addr); err != nil {
		h.printf("%v\n", err)
	}
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	addr := h.settings.NextMemDumpAddr
	if len(c.Args) > 0 {
		switch c.Args[0] {
		case "$":
			// continue from the last dump

		default:
			a, err := h.parseExpr(c.Args[0])
			if err != nil {
				h.printf("%v\n", err)
				return nil
			}
			addr = a
		}
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(c.Args) >= 2 {
		var err error
		bytes, err = h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	values := make([]byte, 0, len(c.Args)-1)
	for _, arg := range c.Args[1:] {
		v, err := h.parseExpr(arg)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		values = append(values, byte(v))
	}

	for i, v := range values {
		h.mem.StoreByte(addr+uint16(i), v)
	}
	h.dumpMemory(addr, uint16(len(values)))
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return ErrQuit
}

func (h *Host) cmdRegister(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.displayPC()
		return nil
	}
	if len(c.Args) < 2 {
		h.displayUsage(c)
		return nil
	}

	r, err := findRegister(c.Args[0])
	if err != nil {
		h.printf("Register '%s': %v\n", c.Args[0], err)
		return nil
	}

	v, err := h.parseExpr(strings.Join(c.Args[1:], " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	r.set(&h.cpu.Reg, int64(v))
	switch r.bits {
	case 1:
		h.printf("Register %s set to %v.\n", r.name, v != 0)
	case 8:
		h.printf("Register %s set to $%02X.\n", r.name, byte(v))
	default:
		h.printf("Register %s set to $%04X.\n", r.name, v)
	}
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	h.cpu.Reset()
	h.displayPC()
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	budget := uint64(max(h.settings.RunCycles, 0))
	if len(c.Args) > 0 {
		n, err := h.parseNumber(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		budget = uint64(n)
	}

	h.printf("Running from $%04X.", h.cpu.Reg.PC)
	if h.interactive {
		h.printf(" Press ctrl-C to break.")
	}
	h.println()

	start := h.cpu.Cycles
	reason := h.run(budget)
	h.printf("%s after %d cycles.\n", reason, h.cpu.Cycles-start)
	h.displayPC()
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayUsage(c)

	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")

		var name string
		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting '%s' not found", key)
		case reflect.Bool:
			var v bool
			v, err = stringToBool(value)
			if err == nil {
				name, err = h.settings.Set(key, v)
			}
		default:
			var v int64
			v, err = h.parseNumber(value)
			if err == nil {
				name, err = h.settings.Set(key, v)
			}
		}

		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.printf("Setting %s updated.\n", name)
		h.onSettingsUpdate()
	}

	return nil
}

func (h *Host) cmdStall(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	n, err := h.parseNumber(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.cpu.Stall += uint64(n)
	h.printf("CPU stalled for %d cycles.\n", h.cpu.Stall)
	return nil
}

func (h *Host) cmdStep(c cmd.Selection) error {
	// Parse the number of steps.
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseNumber(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		count = int(n)
	}

	// Step the CPU count times.
	h.breakFlag.Store(false)
	for i := count - 1; i >= 0 && !h.breakFlag.Load(); i-- {
		h.step()
		switch {
		case i == h.settings.StepLines:
			h.println("...")
		case i < h.settings.StepLines && !h.settings.Trace:
			h.displayPC()
		}
	}
	return nil
}

func (h *Host) load(filename string, addr uint16) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to load '%s': %w", filepath.Base(filename), err)
	}
	if len(b) == 0 {
		return fmt.Errorf("failed to load '%s': file is empty", filepath.Base(filename))
	}
	if int(addr)+len(b) > 0x10000 {
		return fmt.Errorf("failed to load '%s': %d bytes do not fit at $%04X",
			filepath.Base(filename), len(b), addr)
	}

	h.mem.StoreBytes(addr, b)
	h.cpu.SetPC(addr)

	h.printf("Loaded '%s' to $%04X..$%04X.\n", filepath.Base(filename), addr, int(addr)+len(b)-1)
	return nil
}

// Execute one CPU step and return the number of cycles it consumed.
func (h *Host) step() int {
	n := h.cpu.Step()
	if h.settings.Trace {
		h.displayPC()
	}
	return n
}

// Run the CPU until something stops it, and describe what did. A budget
// of zero runs without a cycle limit.
func (h *Host) run(budget uint64) string {
	h.breakFlag.Store(false)
	h.bus.takeHit()

	start := h.cpu.Cycles
	for first := true; ; first = false {
		if h.breakFlag.Swap(false) {
			return "Break"
		}

		pc := h.cpu.Reg.PC
		if !first {
			if b := h.breakpoints.Hit(pc); b != nil {
				return fmt.Sprintf("Breakpoint hit at $%04X", b.Address)
			}
		}

		executing := h.cpu.Stall == 0 && h.cpu.Pending() == cpu.NoInterrupt
		h.step()

		switch {
		case h.cpu.Jammed():
			return fmt.Sprintf("CPU jammed at $%04X", h.cpu.Reg.PC)
		case executing && h.cpu.Reg.PC == pc && h.cpu.LastPC == pc:
			return fmt.Sprintf("Trapped at $%04X", pc)
		}

		if b := h.bus.takeHit(); b != nil {
			return fmt.Sprintf("Data breakpoint hit on address $%04X by instruction at $%04X",
				b.Address, h.cpu.LastPC)
		}

		if budget > 0 && h.cpu.Cycles-start >= budget {
			return "Cycle budget reached"
		}
	}
}

func (h *Host) onSettingsUpdate() {
	h.exprParser.hexMode = h.settings.HexMode
}

// Parse an expression that yields an address or a byte value.
func (h *Host) parseExpr(expr string) (uint16, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, fmt.Errorf("'%s': %w", expr, err)
	}

	if v < 0 {
		v = 0x10000 + v
	}
	return uint16(v), nil
}

// Parse an expression that yields a non-negative count.
func (h *Host) parseNumber(expr string) (int64, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, fmt.Errorf("'%s': %w", expr, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("'%s': %w", expr, ErrBadNumber)
	}
	return v, nil
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes == 0 {
		return
	}

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := uint32(addr0), 6, 32; a <= uint32(addr1); a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.mem.LoadByte(uint16(a))
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(strings.TrimRight(string(buf), " "))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	a := start
	for r := start; r < stop; r += 8 {
		addrToBuf(uint16(a), buf[0:4])
		for c1, c2 := 6, 32; c1 < 29; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= uint32(addr0) && a <= uint32(addr1) {
				m := h.mem.LoadByte(uint16(a))
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(strings.TrimRight(string(buf), " "))
	}
}

func (h *Host) displayUsage(c cmd.Selection) {
	if command, ok := c.Command.Data.(*command); ok && command.usage != "" {
		h.printf("Syntax: %s\n", command.usage)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayHelpText(c *command) {
	if c.usage != "" {
		h.printf("Syntax: %s\n\n", c.usage)
	}
	switch {
	case c.description != "":
		h.printf("Description:\n%s\n\n", indentWrap(3, 78, c.description))
	case c.brief != "":
		h.printf("Description:\n%s.\n\n", indentWrap(3, 78, c.brief))
	}
}

func (h *Host) displayCommands(title string, commands []command) {
	h.printf("%s:\n", title)
	for _, c := range commands {
		if c.brief != "" {
			h.printf("    %-15s  %s\n", c.name, c.brief)
		}
	}
}

func (h *Host) resolveIdentifier(s string) (int64, error) {
	r, err := findRegister(s)
	if err != nil {
		return 0, fmt.Errorf("identifier '%s' not found", s)
	}
	return r.get(&h.cpu.Reg), nil
}
