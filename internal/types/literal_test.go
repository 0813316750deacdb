package types

import (
	"errors"
	"testing"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		in      string
		strict  bool
		re, im  float64
		wantErr bool
	}{
		{in: "42", re: 42},
		{in: "000010", re: 10},
		{in: "0014.05", re: 14.05},
		{in: ".5", re: 0.5},
		{in: "5.", re: 5},
		{in: "I", im: 1},
		{in: "3I", im: 3},
		{in: "12.5I", im: 12.5},
		{in: "-1", wantErr: true},
		{in: "3I5", im: 15},
		{in: "I003.00", im: 3},
		{in: "3I5", strict: true, wantErr: true},
		{in: "I2", strict: true, wantErr: true},
		{in: "3I", strict: true, im: 3},
		{in: ".5I", strict: true, im: 0.5},
		{in: "1.2.3", wantErr: true},
		{in: "II", wantErr: true},
		{in: "3I5I", wantErr: true},
		{in: ".", wantErr: true},
		{in: ".I", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		name := tt.in
		if tt.strict {
			name += "/strict"
		}
		t.Run(name, func(t *testing.T) {
			re, im, err := ParseLiteral(tt.in, tt.strict)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLiteral(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrMalformedLiteral) {
					t.Errorf("error %v does not wrap ErrMalformedLiteral", err)
				}
				return
			}
			if re != tt.re || im != tt.im {
				t.Errorf("ParseLiteral(%q) = (%v, %v), want (%v, %v)", tt.in, re, im, tt.re, tt.im)
			}
		})
	}
}

func TestLiteralDomains(t *testing.T) {
	r, err := Literal[Real]("3I", false)
	if err != nil || r != 0 {
		t.Errorf("Literal[Real](3I) = %v, %v; want 0", r, err)
	}
	c, err := Literal[Complex]("3I", false)
	if err != nil || c != Complex(complex(0, 3)) {
		t.Errorf("Literal[Complex](3I) = %v, %v; want 3I", c, err)
	}
}
