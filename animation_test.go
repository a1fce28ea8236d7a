package knobs

import "testing"

func TestResetTweenReachesTarget(t *testing.T) {
	c := newTestContext()
	const id ID = 3
	c.startReset(id, 10, 2, 0.5)

	var last float64
	steps := 0
	for {
		v, ok := c.stepReset(id)
		if !ok {
			break
		}
		if steps > 0 && v > last {
			t.Fatalf("step %d went up from %v to %v", steps, last, v)
		}
		last = v
		steps++
		if steps > 100 {
			t.Fatal("reset never finished")
		}
	}
	if last != 2 {
		t.Errorf("final value = %v, want exactly 2", last)
	}
	// 0.5s at the default 60 TPS.
	if steps < 29 || steps > 31 {
		t.Errorf("steps = %d, want about 30", steps)
	}
}

func TestResetTweenEasesOut(t *testing.T) {
	c := newTestContext()
	const id ID = 4
	c.startReset(id, 0, 1, 1)
	first, _ := c.stepReset(id)
	second, _ := c.stepReset(id)
	// OutCubic starts fast and slows down.
	if first <= 0 || second-first >= first {
		t.Errorf("steps %v then %v, want a decelerating curve", first, second-first)
	}
}

func TestCancelReset(t *testing.T) {
	c := newTestContext()
	const id ID = 5
	c.startReset(id, 0, 1, 1)
	c.cancelReset(id)
	if _, ok := c.stepReset(id); ok {
		t.Error("stepReset ok after cancelReset")
	}
}

func TestStartResetReplaces(t *testing.T) {
	c := newTestContext()
	const id ID = 6
	c.startReset(id, 0, 1, 1)
	c.startReset(id, 5, 7, 0.01)
	if len(c.resets) != 1 {
		t.Fatalf("resets = %d, want 1", len(c.resets))
	}
	v, ok := c.stepReset(id)
	if !ok || v != 7 {
		t.Errorf("stepReset = (%v, %v), want (7, true) for a sub-frame reset", v, ok)
	}
}
