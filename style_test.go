package knobs

import "testing"

func TestPushPopStyleColor(t *testing.T) {
	c := newTestContext()
	orig := c.Style().Colors
	red := Color{R: 1, A: 1}
	green := Color{G: 1, A: 1}

	c.PushStyleColor(ColButton, red)
	c.PushStyleColor(ColButton, green)
	c.PushStyleColor(ColButtonActive, red)
	if c.Style().Colors[ColButton] != green {
		t.Errorf("ColButton = %v, want green", c.Style().Colors[ColButton])
	}

	c.PopStyleColor(2)
	if c.Style().Colors[ColButton] != red {
		t.Errorf("ColButton after Pop(2) = %v, want red", c.Style().Colors[ColButton])
	}
	if c.Style().Colors[ColButtonActive] != orig[ColButtonActive] {
		t.Error("ColButtonActive not restored")
	}
	c.PopStyleColor(1)
	if c.Style().Colors != orig {
		t.Error("colors not fully restored")
	}
}

func TestPushStyleColor_IgnoresUnknownIndex(t *testing.T) {
	c := newTestContext()
	c.PushStyleColor(colCount, Color{A: 1})
	if len(c.colorStack) != 0 {
		t.Errorf("stack = %d, want 0", len(c.colorStack))
	}
}

func TestColorSets(t *testing.T) {
	c := newTestContext()
	col := c.Style().Colors

	primary := c.primaryColors()
	if primary.Base != col[ColButtonActive] || primary.Hovered != col[ColButtonHovered] || primary.Active != col[ColButtonHovered] {
		t.Errorf("primary = %+v", primary)
	}
	secondary := c.secondaryColors()
	if secondary.Base != col[ColButtonActive].RGB(0.5) || secondary.Active.A != col[ColButtonHovered].A {
		t.Errorf("secondary = %+v", secondary)
	}
	track := c.trackColors()
	if track != UniformColorSet(col[ColButton]) {
		t.Errorf("track = %+v", track)
	}
}

func TestColorSetPick(t *testing.T) {
	cs := ColorSet{Base: Color{R: 1}, Hovered: Color{G: 1}, Active: Color{B: 1}}
	tests := []struct {
		active, hovered bool
		want            Color
	}{
		{false, false, cs.Base},
		{false, true, cs.Hovered},
		{true, false, cs.Active},
		{true, true, cs.Active},
	}
	for _, tt := range tests {
		if got := cs.pick(tt.active, tt.hovered); got != tt.want {
			t.Errorf("pick(%v, %v) = %v, want %v", tt.active, tt.hovered, got, tt.want)
		}
	}
}

func TestColorRGB(t *testing.T) {
	got := Color{R: 0.5, G: 1, B: 0.2, A: 0.7}.RGB(0.5)
	want := Color{R: 0.25, G: 0.5, B: 0.1, A: 0.7}
	if got != want {
		t.Errorf("RGB(0.5) = %v, want %v", got, want)
	}
}

func TestColorToRGBA_Premultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if got.A != 127 || got.R != 127 || got.G != 63 || got.B != 0 {
		t.Errorf("toRGBA = %+v, want premultiplied {127 63 0 127}", got)
	}
}
