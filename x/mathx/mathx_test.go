package mathx

import "testing"

func TestRoundDiv(t *testing.T) {
	cases := []struct{ a, b, want uint64 }{
		{0, 3, 0},
		{1, 3, 0},
		{2, 3, 1},
		{5, 2, 3},
		{1_000_000_000, 976_562, 1024},
		{7, 0, 0},
	}
	for _, c := range cases {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Fatalf("RoundDiv(%d,%d)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{0xFFFF_FFFF, 2, 0x8000_0000},
		{9, 0, 0},
	}
	for _, c := range cases {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Fatalf("CeilDiv(%d,%d)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSatU32(t *testing.T) {
	if SatU32(5) != 5 || SatU32(1<<32) != 0xFFFF_FFFF || SatU32(0xFFFF_FFFF) != 0xFFFF_FFFF {
		t.Fatal("saturation")
	}
}
