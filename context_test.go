package knobs

import (
	"fmt"
	"strings"
	"testing"
)

// newTestContext returns a context that reads only injected input.
func newTestContext() *Context {
	c := NewContext()
	c.SetInputSource(nil)
	return c
}

// runFrames runs ui inside n complete frames.
func runFrames(c *Context, n int, ui func()) {
	for i := 0; i < n; i++ {
		c.Begin()
		ui()
		c.End()
	}
}

// expectPanic fails the test unless fn panics with a message containing substr.
func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Errorf("panic = %q, want it to contain %q", msg, substr)
		}
	}()
	fn()
}

func TestNewContext_Defaults(t *testing.T) {
	c := NewContext()
	if c.Style().FontScale != 1 {
		t.Errorf("FontScale = %v, want 1", c.Style().FontScale)
	}
	if c.Font() == nil {
		t.Error("Font() = nil, want default font")
	}
	if c.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", c.ScreenshotDir, "screenshots")
	}
	if c.ActiveID() != 0 {
		t.Errorf("ActiveID = %d, want 0", c.ActiveID())
	}
}

func TestContext_FrameClock(t *testing.T) {
	c := newTestContext()
	runFrames(c, 3, func() {})
	if c.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", c.Frame())
	}
	if want := 3 * c.dt(); !approxEqual(c.Time(), want, 1e-12) {
		t.Errorf("Time = %v, want %v", c.Time(), want)
	}
}

func TestGetID(t *testing.T) {
	c := newTestContext()

	t.Run("stable", func(t *testing.T) {
		if c.GetID("Gain") != c.GetID("Gain") {
			t.Error("same label hashed differently")
		}
	})
	t.Run("distinct", func(t *testing.T) {
		if c.GetID("Gain") == c.GetID("Mix") {
			t.Error("different labels collided")
		}
	})
	t.Run("hidden suffix changes id", func(t *testing.T) {
		if c.GetID("Gain##a") == c.GetID("Gain##b") {
			t.Error("## suffixes should still be hashed")
		}
	})
	t.Run("triple hash ignores prefix", func(t *testing.T) {
		if c.GetID("Gain###knob") != c.GetID("Level###knob") {
			t.Error("### should hash only the part from ###")
		}
	})
	t.Run("never zero", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			if c.GetID(fmt.Sprint(i)) == 0 {
				t.Fatalf("GetID(%d) = 0", i)
			}
		}
	})
}

func TestPushID_ScopesLabels(t *testing.T) {
	c := newTestContext()
	root := c.GetID("Gain")
	c.PushID("channel 1")
	ch1 := c.GetID("Gain")
	c.PopID()
	c.PushID("channel 2")
	ch2 := c.GetID("Gain")
	c.PopID()

	if root == ch1 || root == ch2 || ch1 == ch2 {
		t.Errorf("ids not scoped: root=%d ch1=%d ch2=%d", root, ch1, ch2)
	}
	if c.GetID("Gain") != root {
		t.Error("PopID did not restore the root scope")
	}
}

func TestDebugMode_MisusePanics(t *testing.T) {
	tests := []struct {
		name   string
		substr string
		fn     func(c *Context)
	}{
		{"PopID without PushID", "PopID", func(c *Context) { c.PopID() }},
		{"EndGroup without BeginGroup", "EndGroup", func(c *Context) { c.EndGroup() }},
		{"PopStyleColor underflow", "PopStyleColor", func(c *Context) { c.PopStyleColor(2) }},
		{"End without Begin", "End called without Begin", func(c *Context) { c.End() }},
		{"Begin twice", "Begin called twice", func(c *Context) { c.Begin(); c.Begin() }},
		{"unbalanced PushID", "PushID", func(c *Context) { c.Begin(); c.PushID("x"); c.End() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext()
			c.SetDebug(true)
			expectPanic(t, tt.substr, func() { tt.fn(c) })
		})
	}
}

func TestMisuseIgnoredWithoutDebug(t *testing.T) {
	c := newTestContext()
	c.PopID()
	c.EndGroup()
	c.PopStyleColor(3)
	c.Begin()
	c.PushID("x")
	c.BeginGroup()
	c.PushStyleColor(ColButton, Color{A: 1})
	c.End()

	if len(c.idStack) != 0 || len(c.layout.groups) != 0 || len(c.colorStack) != 0 {
		t.Error("End did not recover unbalanced stacks")
	}
	if c.Style().Colors[ColButton] != DefaultStyle().Colors[ColButton] {
		t.Error("End did not restore pushed colors")
	}
}

func TestActiveItemClearedWhenNotSubmitted(t *testing.T) {
	c := newTestContext()
	v := 0.5
	cfg := KnobConfig{Size: 40, Flags: FlagNoTitle | FlagNoInput}
	c.InjectPress(28, 28)
	runFrames(c, 1, func() { c.Knob("k", &v, 0, 1, cfg) })
	if c.ActiveID() == 0 {
		t.Fatal("knob should be active after press")
	}
	// The knob disappears while still held.
	c.InjectMove(28, 20)
	runFrames(c, 1, func() {})
	if c.ActiveID() != 0 {
		t.Errorf("ActiveID = %d, want 0 after the item was not submitted", c.ActiveID())
	}
}

func TestTooltip(t *testing.T) {
	c := newTestContext()
	c.InjectHover(100, 100)
	runFrames(c, 1, func() { c.SetTooltip("hello") })

	var text, bg bool
	for _, cmd := range c.overlay.Commands() {
		switch cmd.Type {
		case CommandText:
			text = cmd.Text == "hello"
			if cmd.From.X <= 100 || cmd.From.Y <= 100 {
				t.Errorf("tooltip text at %v, want offset from the pointer", cmd.From)
			}
		case CommandRectFilled:
			bg = true
		}
	}
	if !text || !bg {
		t.Errorf("overlay missing tooltip: text=%v bg=%v", text, bg)
	}
	if c.drawList.Len() != 0 {
		t.Errorf("main draw list has %d commands, want 0", c.drawList.Len())
	}
}
