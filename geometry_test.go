package knobs

import (
	"math"
	"testing"
)

func dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestPolar(t *testing.T) {
	c := Vec2{10, 20}
	tests := []struct {
		angle float64
		want  Vec2
	}{
		{0, Vec2{15, 20}},
		{math.Pi / 2, Vec2{10, 25}},
		{math.Pi, Vec2{5, 20}},
	}
	for _, tt := range tests {
		got := Polar(c, 5, tt.angle)
		if dist(got, tt.want) > 1e-9 {
			t.Errorf("Polar(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestArcBeziers_SegmentCount(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       int
	}{
		{"zero sweep", 1, 1, 0},
		{"quarter", 0, math.Pi / 2, 1},
		{"half", 0, math.Pi, 2},
		{"default knob range", DefaultAngleMin, DefaultAngleMax, 3},
		{"reversed", math.Pi, 0, 2},
		{"full turn", 0, 2 * math.Pi, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArcBeziers(nil, Vec2{}, 10, tt.start, tt.end)
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestArcBeziers_ZeroRadius(t *testing.T) {
	if got := ArcBeziers(nil, Vec2{}, 0, 0, math.Pi); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestArcBeziers_StaysOnCircle(t *testing.T) {
	c := Vec2{50, 50}
	const r = 40.0
	segs := ArcBeziers(nil, c, r, DefaultAngleMin, DefaultAngleMax)
	for i, b := range segs {
		for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
			p := b.At(u)
			// Quarter-turn cubic approximations stay within 0.03% of the radius.
			if d := dist(p, c); math.Abs(d-r) > r*3e-4 {
				t.Errorf("segment %d at %v: distance %v, want %v", i, u, d, r)
			}
		}
	}
}

func TestArcBeziers_Endpoints(t *testing.T) {
	c := Vec2{0, 0}
	segs := ArcBeziers(nil, c, 10, math.Pi, 0)
	if len(segs) == 0 {
		t.Fatal("no segments")
	}
	if p := segs[0].P0; dist(p, Polar(c, 10, math.Pi)) > 1e-9 {
		t.Errorf("start = %v, want (-10, 0)", p)
	}
	if p := segs[len(segs)-1].P1; dist(p, Polar(c, 10, 0)) > 1e-9 {
		t.Errorf("end = %v, want (10, 0)", p)
	}
	// Consecutive segments join.
	for i := 1; i < len(segs); i++ {
		if dist(segs[i-1].P1, segs[i].P0) > 1e-9 {
			t.Errorf("gap between segment %d and %d", i-1, i)
		}
	}
}

func TestArcBeziers_AppendsToBuffer(t *testing.T) {
	buf := make([]Bezier, 1, 8)
	got := ArcBeziers(buf, Vec2{}, 5, 0, math.Pi)
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestRegularPolygon(t *testing.T) {
	if got := RegularPolygon(Vec2{}, 1, 2); got != nil {
		t.Errorf("RegularPolygon(n=2) = %v, want nil", got)
	}
	pts := RegularPolygon(Vec2{3, 4}, 2, 12)
	if len(pts) != 12 {
		t.Fatalf("len = %d, want 12", len(pts))
	}
	for i, p := range pts {
		if d := dist(p, Vec2{3, 4}); math.Abs(d-2) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want 2", i, d)
		}
	}
}

func TestResolveAngles(t *testing.T) {
	tests := []struct {
		name             string
		inMin, inMax     float64
		wantMin, wantMax float64
	}{
		{"both zero", 0, 0, DefaultAngleMin, DefaultAngleMax},
		{"custom", math.Pi / 2, math.Pi, math.Pi / 2, math.Pi},
		{"negative min", -1, math.Pi, DefaultAngleMin, math.Pi},
		{"negative max", 1, -1, 1, DefaultAngleMax},
		{"zero min", 0, math.Pi, 0, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := resolveAngles(tt.inMin, tt.inMax)
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("resolveAngles(%v, %v) = (%v, %v), want (%v, %v)",
					tt.inMin, tt.inMax, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}
