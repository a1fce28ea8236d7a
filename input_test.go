package knobs

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: -5, Width: 20, Height: 5}
	want := Rect{X: 0, Y: -5, Width: 25, Height: 15}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

// fakeSource replays a fixed snapshot every frame.
type fakeSource struct {
	state InputState
	polls int
}

func (f *fakeSource) Poll(dst *InputState) {
	f.polls++
	*dst = f.state
}

func TestInputSource_Polled(t *testing.T) {
	c := NewContext()
	src := &fakeSource{state: InputState{X: 12, Y: 34, Modifiers: ModShift}}
	c.SetInputSource(src)
	runFrames(c, 2, func() {})

	if src.polls != 2 {
		t.Errorf("polls = %d, want 2", src.polls)
	}
	if got := c.MousePos(); got != (Vec2{12, 34}) {
		t.Errorf("MousePos = %v, want (12, 34)", got)
	}
	if c.Modifiers() != ModShift {
		t.Errorf("Modifiers = %v, want ModShift", c.Modifiers())
	}
}

func TestInjectedInputOverridesSource(t *testing.T) {
	c := NewContext()
	src := &fakeSource{state: InputState{X: 1, Y: 1}}
	c.SetInputSource(src)
	c.InjectHover(50, 60)
	runFrames(c, 1, func() {})

	if src.polls != 0 {
		t.Errorf("polls = %d, want 0 while injected input is queued", src.polls)
	}
	if got := c.MousePos(); got != (Vec2{50, 60}) {
		t.Errorf("MousePos = %v, want (50, 60)", got)
	}
}

func TestMouseDelta(t *testing.T) {
	c := newTestContext()
	c.InjectHover(10, 10)
	c.InjectHover(15, 7)
	runFrames(c, 1, func() {})
	if got := c.MouseDelta(); got != (Vec2{}) {
		t.Errorf("first frame delta = %v, want zero", got)
	}
	runFrames(c, 1, func() {})
	if got := c.MouseDelta(); got != (Vec2{5, -3}) {
		t.Errorf("delta = %v, want (5, -3)", got)
	}
	// Without new input the pointer stays put.
	runFrames(c, 1, func() {})
	if got := c.MouseDelta(); got != (Vec2{}) {
		t.Errorf("idle delta = %v, want zero", got)
	}
}

func TestButtonEdges(t *testing.T) {
	c := newTestContext()
	c.InjectClick(5, 5)

	c.Begin()
	if !c.IsMouseClicked(MouseButtonLeft) || !c.IsMouseDown(MouseButtonLeft) {
		t.Error("press frame: want clicked and down")
	}
	c.End()

	c.Begin()
	if c.IsMouseClicked(MouseButtonLeft) || c.IsMouseDown(MouseButtonLeft) {
		t.Error("release frame: want neither clicked nor down")
	}
	if !c.ptr.released[MouseButtonLeft] {
		t.Error("release frame: want released")
	}
	c.End()

	if c.IsMouseDown(MouseButton(99)) {
		t.Error("out-of-range button reported down")
	}
}

func TestDoubleClickDetection(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Context)
		want  bool
	}{
		{"same spot", func(c *Context) {
			c.InjectClick(20, 20)
			c.InjectPress(20, 20)
		}, true},
		{"small movement", func(c *Context) {
			c.InjectClick(20, 20)
			c.InjectPress(23, 24)
		}, true},
		{"too far", func(c *Context) {
			c.InjectClick(20, 20)
			c.InjectPress(40, 20)
		}, false},
		{"too slow", func(c *Context) {
			c.InjectClick(20, 20)
			for i := 0; i < 30; i++ {
				c.InjectHover(20, 20)
			}
			c.InjectPress(20, 20)
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext()
			tt.setup(c)
			got := false
			for len(c.injectQueue) > 0 {
				c.Begin()
				got = c.IsMouseDoubleClicked(MouseButtonLeft)
				c.End()
			}
			if got != tt.want {
				t.Errorf("double-clicked = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTripleClickStartsNewSequence(t *testing.T) {
	c := newTestContext()
	c.InjectDoubleClick(20, 20)
	c.InjectPress(20, 20)

	var doubles []bool
	for len(c.injectQueue) > 0 {
		c.Begin()
		if c.IsMouseClicked(MouseButtonLeft) {
			doubles = append(doubles, c.IsMouseDoubleClicked(MouseButtonLeft))
		}
		c.End()
	}
	want := []bool{false, true, false}
	if len(doubles) != len(want) {
		t.Fatalf("presses = %d, want %d", len(doubles), len(want))
	}
	for i := range want {
		if doubles[i] != want[i] {
			t.Errorf("press %d double-clicked = %v, want %v", i, doubles[i], want[i])
		}
	}
}

func TestHitShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape HitShape
		x, y  float64
		want  bool
	}{
		{"rect inside", HitRect{X: 10, Y: 10, Width: 20, Height: 20}, 15, 25, true},
		{"rect edge", HitRect{X: 10, Y: 10, Width: 20, Height: 20}, 30, 30, true},
		{"rect outside", HitRect{X: 10, Y: 10, Width: 20, Height: 20}, 31, 15, false},
		{"circle center", HitCircle{CenterX: 50, CenterY: 50, Radius: 10}, 50, 50, true},
		{"circle edge", HitCircle{CenterX: 50, CenterY: 50, Radius: 10}, 60, 50, true},
		{"circle bounding-box corner", HitCircle{CenterX: 50, CenterY: 50, Radius: 10}, 59, 59, false},
		{"circle outside", HitCircle{CenterX: 50, CenterY: 50, Radius: 10}, 50, 61, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
