package colors

import (
	"regexp"
	"testing"
)

func TestForKeyIsDeterministic(t *testing.T) {
	keys := []string{"emp-001", "emp-002", "a", "una-clave-larga-con-uuid-3f2c"}
	for _, k := range keys {
		first := ForKey(k)
		second := ForKey(k)
		if first != second {
			t.Errorf("ForKey(%q) not stable: %v vs %v", k, first, second)
		}
		if first.S != 68 || first.L != 46 {
			t.Errorf("ForKey(%q) = %v, want s=68 l=46", k, first)
		}
		if first.H < 0 || first.H > 359 {
			t.Errorf("ForKey(%q) hue out of range: %d", k, first.H)
		}
	}
}

func TestForKeySpreadsDistinctKeys(t *testing.T) {
	// Different ids should land on different hues for these fixtures; the
	// fold is not collision-free in general, but these must not collide.
	keys := []string{"emp-001", "emp-002", "emp-003", "emp-ana", "emp-beto"}
	seen := make(map[int]string, len(keys))
	for _, k := range keys {
		h := ForKey(k).H
		if prev, dup := seen[h]; dup {
			t.Errorf("ForKey(%q) and ForKey(%q) share hue %d", k, prev, h)
		}
		seen[h] = k
	}
}

func TestFrancoKeyIsReserved(t *testing.T) {
	c := ForKey(FrancoKey)
	if c.H != 0 || c.S != 90 || c.L != 45 {
		t.Fatalf("ForKey(franco) = %v, want 0/90/45", c)
	}
}

func TestHueFolding(t *testing.T) {
	// h = (h*31 + byte) % 360 over the key bytes.
	want := 0
	key := "emp-001"
	for i := 0; i < len(key); i++ {
		want = (want*31 + int(key[i])) % 360
	}
	if got := ForKey(key).H; got != want {
		t.Errorf("ForKey hue = %d, want %d", got, want)
	}
}

func TestHexFormat(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9A-F]{6}$`)
	for _, k := range []string{"emp-001", "emp-002", FrancoKey, ""} {
		hex := HexForKey(k)
		if !hexRe.MatchString(hex) {
			t.Errorf("HexForKey(%q) = %q, want 6 uppercase hex digits", k, hex)
		}
	}
}

func TestRGBKnownColors(t *testing.T) {
	cases := []struct {
		c       HSL
		r, g, b int
	}{
		{HSL{H: 0, S: 100, L: 50}, 255, 0, 0},
		{HSL{H: 120, S: 100, L: 50}, 0, 255, 0},
		{HSL{H: 240, S: 100, L: 50}, 0, 0, 255},
		{HSL{H: 0, S: 0, L: 0}, 0, 0, 0},
		{HSL{H: 0, S: 0, L: 100}, 255, 255, 255},
	}
	for _, tc := range cases {
		r, g, b := tc.c.RGB()
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("%v.RGB() = (%d,%d,%d), want (%d,%d,%d)", tc.c, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestString(t *testing.T) {
	got := HSL{H: 210, S: 68, L: 46}.String()
	if got != "hsl(210deg 68% 46%)" {
		t.Errorf("String() = %q", got)
	}
}
