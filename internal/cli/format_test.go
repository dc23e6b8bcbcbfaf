package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"950", "950.00"},
		{"1234.5", "1,234.50"},
		{"186163.52", "186,163.52"},
		{"-15000", "-15,000.00"},
		{"1234567.891", "1,234,567.89"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatalf("decimal %q: %v", c.in, err)
		}
		if got := FormatMoney(d); got != c.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	pos, _ := decimal.NewFromString("1200.5")
	if got := FormatSignedMoney(pos); got != "+1,200.50" {
		t.Errorf("FormatSignedMoney(1200.5) = %q", got)
	}
	neg, _ := decimal.NewFromString("-300")
	if got := FormatSignedMoney(neg); got != "-300.00" {
		t.Errorf("FormatSignedMoney(-300) = %q", got)
	}
	if got := FormatSignedMoney(decimal.Zero); got != "+0.00" {
		t.Errorf("FormatSignedMoney(0) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber(1234567) = %q", got)
	}
	if got := FormatNumber(-42); got != "-42" {
		t.Errorf("FormatNumber(-42) = %q", got)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"950", "950"},
		{"186163.52", "186.2K"},
		{"2500000", "2.5M"},
	}
	for _, c := range cases {
		d, _ := decimal.NewFromString(c.in)
		if got := FormatCompact(d); got != c.want {
			t.Errorf("FormatCompact(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}
