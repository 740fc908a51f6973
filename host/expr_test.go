package host

import (
	"errors"
	"testing"
)

type mapResolver map[string]int64

func (m mapResolver) resolveIdentifier(s string) (int64, error) {
	if v, ok := m[s]; ok {
		return v, nil
	}
	return 0, errors.New("not found")
}

func TestExprParse(t *testing.T) {
	r := mapResolver{"a": 5, "pc": 0x1234}

	tests := []struct {
		expr string
		want int64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"10-4-3", 3},
		{"$ff", 255},
		{"0x10", 16},
		{"%101", 5},
		{"0b11", 3},
		{"0d10", 10},
		{"<$1234", 0x34},
		{">$1234", 0x12},
		{"~0", -1},
		{"-5", -5},
		{"+5", 5},
		{"'A'", 65},
		{"1<<4", 16},
		{"$100>>4", 16},
		{"$f0|$0f", 255},
		{"$ff&$0f", 15},
		{"$ff^$0f", 0xf0},
		{"10%3", 1},
		{"7/2", 3},
		{" a + 1 ", 6},
		{"pc+1", 0x1235},
		{"1|2&3", 3},
	}

	p := newExprParser()
	for _, tt := range tests {
		got, err := p.Parse(tt.expr, r)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.expr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.expr, got, tt.want)
		}
	}
}

func TestExprParseErrors(t *testing.T) {
	r := mapResolver{}

	tests := []struct {
		expr string
		want error
	}{
		{"", errExprParse},
		{"(1", errExprParse},
		{"1 2", errExprParse},
		{"1+", errExprParse},
		{"'A", errExprParse},
		{"1/0", errDivide},
		{"1%0", errDivide},
		{"12g", ErrBadNumber},
		{"$", ErrBadNumber},
		{"%2", ErrBadNumber},
	}

	p := newExprParser()
	for _, tt := range tests {
		_, err := p.Parse(tt.expr, r)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.expr, err, tt.want)
		}
	}

	if _, err := p.Parse("foo", r); err == nil {
		t.Error("Parse(\"foo\") succeeded with an unknown identifier")
	}
}

func TestExprHexMode(t *testing.T) {
	r := mapResolver{"pc": 0x1234}

	tests := []struct {
		expr string
		want int64
	}{
		{"ff", 255},
		{"10", 16},
		{"a+1", 11},
		{"0d10", 10},
		{"$10", 16},
		{"pc", 0x1234},
	}

	p := newExprParser()
	p.hexMode = true
	for _, tt := range tests {
		got, err := p.Parse(tt.expr, r)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.expr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.expr, got, tt.want)
		}
	}
}
