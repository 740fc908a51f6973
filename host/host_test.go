package host_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmirajkar/mos6502/cpu"
	"github.com/pmirajkar/mos6502/host"
)

// Program at $1000:
//
//	LDA #$42
//	STA $2000
//	JMP $1005
var program = []string{
	"memory set $fffc $00 $10",
	"memory set $1000 $a9 $42 $8d $00 $20 $4c $05 $10",
	"reset",
}

func runScript(t *testing.T, h *host.Host, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	err := h.RunCommands(strings.NewReader(strings.Join(lines, "\n")), &out, false)
	if err != nil && !errors.Is(err, host.ErrQuit) {
		t.Fatalf("RunCommands failed: %v", err)
	}
	return out.String()
}

func expectOutput(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q.\nOutput:\n%s", w, out)
		}
	}
}

func newHost() *host.Host {
	return host.New(cpu.NMOS, cpu.EmulateUnofficial)
}

func TestRunTrap(t *testing.T) {
	h := newHost()
	out := runScript(t, h, append(program, "run", "register")...)

	expectOutput(t, out,
		"Running from $1000.",
		"Trapped at $1005 after 9 cycles.",
		"A=42",
	)
	if got := h.CPU().Mem.LoadByte(0x2000); got != 0x42 {
		t.Errorf("mem[$2000] = $%02X, want $42", got)
	}
}

func TestRunBreakpoint(t *testing.T) {
	h := newHost()
	out := runScript(t, h, append(program,
		"breakpoint add $1005",
		"run",
		"run",
	)...)

	expectOutput(t, out,
		"Breakpoint added at $1005.",
		"Breakpoint hit at $1005 after 6 cycles.",
		"Trapped at $1005 after 3 cycles.",
	)
}

func TestBreakpointDisable(t *testing.T) {
	h := newHost()
	out := runScript(t, h, append(program,
		"ba $1005",
		"bd $1005",
		"bl",
		"run",
		"br $1005",
		"br $1005",
	)...)

	expectOutput(t, out,
		"Breakpoint at $1005 disabled.",
		"$1005 (disabled)",
		"Trapped at $1005 after 9 cycles.",
		"Breakpoint at $1005 removed.",
		"No breakpoint was set on $1005.",
	)
}

func TestDataBreakpoint(t *testing.T) {
	h := newHost()
	out := runScript(t, h, append(program,
		"databreakpoint add $2000",
		"run",
	)...)

	expectOutput(t, out,
		"Data breakpoint added at $2000.",
		"Data breakpoint hit on address $2000 by instruction at $1002 after 6 cycles.",
	)
}

func TestConditionalDataBreakpoint(t *testing.T) {
	h := newHost()
	out := runScript(t, h, append(program,
		"dba $2000 $43",
		"dbl",
		"run",
	)...)

	expectOutput(t, out,
		"$2000 on value $43",
		"Trapped at $1005 after 9 cycles.",
	)
}

func TestRunBudget(t *testing.T) {
	// INX; JMP $1000
	h := newHost()
	out := runScript(t, h,
		"memory set $fffc $00 $10",
		"memory set $1000 $e8 $4c $00 $10",
		"reset",
		"run 10",
		"set runcycles 5",
		"run",
	)

	expectOutput(t, out,
		"Cycle budget reached after 10 cycles.",
		"Setting RunCycles updated.",
		"Cycle budget reached after 5 cycles.",
	)
	if got := h.CPU().Reg.X; got != 3 {
		t.Errorf("X = %d, want 3", got)
	}
}

func TestRunJam(t *testing.T) {
	h := newHost()
	out := runScript(t, h,
		"memory set $fffc $00 $10",
		"memory set $1000 $ea $02",
		"reset",
		"run",
	)

	expectOutput(t, out, "CPU jammed at $1001")
	if !h.CPU().Jammed() {
		t.Error("CPU not jammed")
	}
}

func TestStep(t *testing.T) {
	h := newHost()
	out := runScript(t, h, append(program, "step 2")...)

	expectOutput(t, out,
		"1002-   8D 00 20    STA ABS",
		"1005-   4C 05 10    JMP ABS",
	)
	if got := h.CPU().Cycles; got != 6 {
		t.Errorf("cycles = %d, want 6", got)
	}
}

func TestStall(t *testing.T) {
	h := newHost()
	out := runScript(t, h, append(program, "stall 3", "step 4")...)

	expectOutput(t, out, "CPU stalled for 3 cycles.")
	c := h.CPU()
	if c.Reg.PC != 0x1002 || c.Cycles != 5 {
		t.Errorf("PC=$%04X cycles=%d, want PC=$1002 cycles=5", c.Reg.PC, c.Cycles)
	}
}

func TestInterrupts(t *testing.T) {
	h := newHost()
	out := runScript(t, h, append(program,
		"memory set $fffa $00 $30",
		"memory set $fffe $00 $40",
		"interrupt nmi",
		"step",
		"irq",
		"register interruptdisable 0",
		"step",
	)...)

	expectOutput(t, out,
		"NMI pending.",
		"IRQ requested.",
		"Register InterruptDisable set to false.",
	)
	if got := h.CPU().Reg.PC; got != 0x4000 {
		t.Errorf("PC = $%04X, want $4000", got)
	}
	if got := h.CPU().Reg.SP; got != 0xf7 {
		t.Errorf("SP = $%02X, want $F7", got)
	}
}

func TestRegister(t *testing.T) {
	h := newHost()
	out := runScript(t, h,
		"register a $10",
		"r x 255",
		"r pc $1234",
		"r carry 1",
		"r negative 1",
		"r q 1",
	)

	expectOutput(t, out,
		"Register A set to $10.",
		"Register X set to $FF.",
		"Register PC set to $1234.",
		"Register Carry set to true.",
		"Register Sign set to true.",
		"Register 'q':",
	)

	r := h.CPU().Reg
	if r.A != 0x10 || r.X != 0xff || r.PC != 0x1234 || !r.Carry || !r.Sign {
		t.Errorf("unexpected registers %+v", r)
	}
}

func TestEvaluate(t *testing.T) {
	h := newHost()
	out := runScript(t, h,
		"evaluate 1+2*3",
		"e pc+1",
		"e 1/0",
		"set hexmode on",
		"e ff",
		"e 1 +",
	)

	expectOutput(t, out,
		"$0007 (7)",
		"$0001 (1)",
		"division by zero",
		"Setting HexMode updated.",
		"$00FF (255)",
		"expression syntax error",
	)
}

func TestMemory(t *testing.T) {
	h := newHost()
	out := runScript(t, h,
		"memory set $0200 $48 $49 $4a",
		"memory dump $0200 3",
		"m $0200 16",
	)

	expectOutput(t, out,
		"0200- 48 49 4A",
		"HIJ",
		"0200- 48 49 4A 00 00 00 00 00",
		"0208- 00 00 00 00 00 00 00 00",
	)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(file, []byte{0xa2, 0x07, 0xea}, 0o644); err != nil {
		t.Fatal(err)
	}

	h := newHost()
	out := runScript(t, h,
		"load "+file+" $0800",
		"step",
		"load "+filepath.Join(dir, "missing.bin")+" $0800",
	)

	expectOutput(t, out,
		"Loaded 'prog.bin' to $0800..$0802.",
		"failed to load 'missing.bin'",
	)
	if got := h.CPU().Reg.X; got != 7 {
		t.Errorf("X = %d, want 7", got)
	}
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "setup.txt")
	contents := strings.Join(append([]string{"# setup"}, program...), "\n")
	if err := os.WriteFile(script, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newHost()
	out := runScript(t, h, "execute "+script, "run")
	expectOutput(t, out, "Trapped at $1005 after 9 cycles.")
}

func TestQuit(t *testing.T) {
	h := newHost()

	var out bytes.Buffer
	err := h.RunCommands(strings.NewReader("r a 1\nquit\nr a 2\n"), &out, false)
	if !errors.Is(err, host.ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
	if got := h.CPU().Reg.A; got != 1 {
		t.Errorf("A = %d, want 1", got)
	}
}

func TestUnknownCommand(t *testing.T) {
	h := newHost()
	out := runScript(t, h, "frobnicate", "; comment", "")
	expectOutput(t, out, "Command not found.")
}

func TestHelp(t *testing.T) {
	h := newHost()
	out := runScript(t, h, "help", "help step", "help memory")

	expectOutput(t, out,
		"Commands:",
		"breakpoint",
		"Syntax: step [<count>]",
		"Memory commands:",
		"dump",
	)
}

func TestIgnoreUnofficial(t *testing.T) {
	// LAX $10 followed by a self loop.
	h := host.New(cpu.NMOS, cpu.IgnoreUnofficial)
	out := runScript(t, h,
		"memory set $fffc $00 $10",
		"memory set $0010 $99",
		"memory set $1000 $a7 $10 $4c $02 $10",
		"reset",
		"run",
	)

	expectOutput(t, out, "Trapped at $1002 after 6 cycles.")
	if got := h.CPU().Reg.A; got != 0 {
		t.Errorf("A = $%02X, want $00", got)
	}
}
