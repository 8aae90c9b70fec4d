package util

import "testing"

func TestTickCounter(t *testing.T) {
	tc := NewTickCounter(4)
	fired := 0
	for i := 1; i <= 12; i++ {
		if tc.Tick(1) {
			fired++
			if i%4 != 0 {
				t.Fatalf("fired at tick %d", i)
			}
		}
	}
	if fired != 3 {
		t.Fatalf("fired %d times, expected 3", fired)
	}
}

func TestRateConverter(t *testing.T) {
	rc := NewRateConverter(4194304, 48000)
	n := 0
	for i := 0; i < 4194304; i++ {
		if rc.Tick() {
			n++
		}
	}
	if n != 48000 {
		t.Fatalf("got %d events, expected 48000", n)
	}
}

func TestBoolToU8(t *testing.T) {
	if BoolToU8(true) != 1 || BoolToU8(false) != 0 {
		t.Fatalf("BoolToU8 is broken")
	}
}
