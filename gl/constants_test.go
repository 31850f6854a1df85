package gl

import "testing"

func TestConstants(t *testing.T) {
	seen := make(map[string]Value)
	for _, c := range Constants() {
		if _, dup := seen[c.Name]; dup {
			t.Errorf("duplicate constant %q", c.Name)
		}
		seen[c.Name] = c.Value
	}

	if v, ok := seen["MAX_PALETTE_COLORS"].(Int); !ok || v != 256 {
		t.Errorf("MAX_PALETTE_COLORS = %v", seen["MAX_PALETTE_COLORS"])
	}
	if v := seen["CLAMP_REPEAT"]; v.String() != "repeat" || v.Any() != "repeat" {
		t.Errorf("CLAMP_REPEAT = %v", v)
	}
	if v := seen["Y_DOWN"]; v.Any() != true {
		t.Errorf("Y_DOWN = %v", v)
	}
	if v := seen["PATTERN_CHECKER"]; v.String() != "1437226410" {
		t.Errorf("PATTERN_CHECKER = %v", v)
	}
	if v := Number(0.5); v.String() != "0.5" {
		t.Errorf("Number string = %q", v.String())
	}
}
