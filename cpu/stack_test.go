package cpu

import "testing"

func TestPushPopAddress(t *testing.T) {
	cpu := NewCPU(NMOS, NewFlatMemory())

	for v := 0; v <= 0xffff; v++ {
		sp := byte(v * 7)
		cpu.Reg.SP = sp
		cpu.pushAddress(uint16(v))
		if got := cpu.popAddress(); got != uint16(v) {
			t.Fatalf("pop incorrect. exp: $%04X, got: $%04X", v, got)
		}
		if cpu.Reg.SP != sp {
			t.Fatalf("stack pointer not restored. exp: $%02X, got: $%02X", sp, cpu.Reg.SP)
		}
	}
}

func TestStackWrap(t *testing.T) {
	cpu := NewCPU(NMOS, NewFlatMemory())
	cpu.Reg.SP = 0x00

	cpu.push(0xab)
	if cpu.Reg.SP != 0xff {
		t.Errorf("stack pointer did not wrap. got: $%02X", cpu.Reg.SP)
	}
	if got := cpu.Mem.LoadByte(0x0100); got != 0xab {
		t.Errorf("push stored at wrong address. got: $%02X", got)
	}

	if got := cpu.pop(); got != 0xab {
		t.Errorf("pop incorrect. exp: $AB, got: $%02X", got)
	}
	if cpu.Reg.SP != 0x00 {
		t.Errorf("stack pointer did not wrap back. got: $%02X", cpu.Reg.SP)
	}
}

func TestResolveModes(t *testing.T) {
	mem := NewFlatMemory()
	cpu := NewCPU(NMOS, mem)
	cpu.Reg.PC = 0x1000
	cpu.Reg.X = 0x10
	cpu.Reg.Y = 0x20
	mem.StoreBytes(0x1001, []byte{0xf8, 0x12})
	mem.StoreAddress(0x00f8, 0x3400)
	mem.StoreAddress(0x0008, 0x56f0)

	tests := []struct {
		mode  Mode
		addr  uint16
		cross bool
	}{
		{IMM, 0x1001, false},
		{ZPG, 0x00f8, false},
		{ZPX, 0x0008, false},
		{ZPY, 0x0018, false},
		{ABS, 0x12f8, false},
		{ABX, 0x1308, true},
		{ABY, 0x1318, true},
		{IDX, 0x56f0, false},
		{IDY, 0x3420, false},
		{REL, 0x0ffa, false},
	}

	for _, tt := range tests {
		addr, cross := cpu.resolve(tt.mode)
		if addr != tt.addr || cross != tt.cross {
			t.Errorf("%v: exp ($%04X, %v), got ($%04X, %v)", tt.mode, tt.addr, tt.cross, addr, cross)
		}
	}
}
