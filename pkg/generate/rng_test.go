package generate

import "testing"

func TestXorshift32ZeroSeedIsNudged(t *testing.T) {
	got := xorshift32(0)
	want := xorshift32(0x6d2b79f5)
	if got != want {
		t.Errorf("xorshift32(0) = %#x, want xorshift32(0x6d2b79f5) = %#x", got, want)
	}
}

func TestXorshift32IsDeterministic(t *testing.T) {
	a := xorshift32(12345)
	b := xorshift32(12345)
	if a != b {
		t.Errorf("xorshift32 is not a pure function of its input: %#x != %#x", a, b)
	}
}

func TestNextU32AdvancesState(t *testing.T) {
	state := uint32(42)
	first := nextU32(&state)
	second := nextU32(&state)
	if first == second {
		t.Error("successive nextU32 calls returned the same value")
	}
	if state != second {
		t.Error("nextU32 did not leave state holding its own return value")
	}
}

func TestRandChance1InAlwaysTrueForN1(t *testing.T) {
	state := uint32(1)
	for i := 0; i < 100; i++ {
		if !randChance1In(&state, 1) {
			t.Fatal("randChance1In(_, 1) should always report true")
		}
	}
}

func TestRandChance1InConsumesEntropyEvenOnFalse(t *testing.T) {
	state := uint32(7)
	before := state
	randChance1In(&state, 1000003)
	if state == before {
		t.Error("randChance1In did not advance state")
	}
}
