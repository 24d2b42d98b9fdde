package importer

import (
	"math"
	"testing"
)

func TestParseMemberRow(t *testing.T) {
	label, in, err := ParseMemberRow([]string{"tie-1", "1000", "2", "0.01", "200000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "tie-1" {
		t.Errorf("expected label tie-1, got %q", label)
	}
	if in.Force != 1000.0 || in.Length != 2.0 || math.Abs(in.Area-0.01) > 1e-12 || in.Modulus != 200000.0 {
		t.Errorf("unexpected input: %+v", in)
	}
}

func TestParseMemberRowBad(t *testing.T) {
	cases := [][]string{
		{"short", "1000", "2"},
		{"tie-2", "abc", "2", "0.01", "200000"},
		{"tie-3", "1000", "2", "0.01", "steel"},
	}
	for _, row := range cases {
		if _, _, err := ParseMemberRow(row); err == nil {
			t.Errorf("%v: expected error", row)
		}
	}
}
