package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{890_000, "890,000"},
		{2_000_000, "2,000,000"},
		{-550_000, "-550,000"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(890_000, "원"); got != "890,000원" {
		t.Errorf("FormatMoney = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.375); got != "37.5%" {
		t.Errorf("FormatPercent = %q", got)
	}
}

func TestFormatPriority(t *testing.T) {
	if got := FormatPriority(0); got != "-" {
		t.Errorf("FormatPriority(0) = %q, want -", got)
	}
	if got := FormatPriority(2); got != "2" {
		t.Errorf("FormatPriority(2) = %q, want 2", got)
	}
}
