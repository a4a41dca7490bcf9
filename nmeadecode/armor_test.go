package nmeadecode

import "testing"

func TestArmorValueRanges(t *testing.T) {
	cases := []struct {
		c    byte
		want byte
	}{
		{'0', 0},
		{'9', 9},
		{'W', 39}, // 'W'-48 = 39, <=40 so unchanged
		{'`', 40}, // '`'-48 = 48 > 40, so 48-8 = 40
		{'w', 63}, // 'w'-48 = 71 > 40, so 71-8 = 63
	}
	for _, c := range cases {
		got, err := armorValue(c.c)
		if err != nil {
			t.Fatalf("armorValue(%q): %v", c.c, err)
		}
		if got != c.want {
			t.Errorf("armorValue(%q) = %d, want %d", c.c, got, c.want)
		}
	}
}

func TestArmorValueOutOfRange(t *testing.T) {
	if _, err := armorValue(' '); err == nil {
		t.Fatal("expected error for space character")
	}
}

func TestUnarmorFillBits(t *testing.T) {
	// '0' armors to 0b000000; with 2 fill bits only the top 4 bits count,
	// all zero either way, so this just exercises the bit-count math.
	bv, err := unarmor("0", 2)
	if err != nil {
		t.Fatalf("unarmor: %v", err)
	}
	if bv.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", bv.Len())
	}
}

func TestUnarmorNoFill(t *testing.T) {
	bv, err := unarmor("15", 0)
	if err != nil {
		t.Fatalf("unarmor: %v", err)
	}
	if bv.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", bv.Len())
	}
	// '1' -> armor value 1 -> 000001, '5' -> armor value 5 -> 000101
	want := []bool{false, false, false, false, false, true, false, false, false, true, false, true}
	for i, w := range want {
		if bv.bits[i] != w {
			t.Errorf("bit %d = %v, want %v", i, bv.bits[i], w)
		}
	}
}
