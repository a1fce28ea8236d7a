package knobs

import "math"

const (
	defaultFloatFormat = "%.3f"
	defaultIntFormat   = "%d"
	defaultSteps       = 10
	// defaultSizeLines is the knob width in text line heights when no size
	// is given.
	defaultSizeLines = 4

	// Variants draw value arcs only once the value has left the minimum.
	minVisibleRatio = 0.01
	// arcThicknessBias keeps zero-size arcs visible.
	arcThicknessBias = 0.0001
)

// KnobConfig configures a knob. Every zero field selects a default.
type KnobConfig struct {
	// Speed is the value change per pixel dragged. 0 spreads the whole range
	// over 250 pixels.
	Speed float64
	// Format is a printf format for the value box and tooltip. Defaults to
	// "%.3f" for Knob and "%d" for KnobInt. "%i" is accepted for "%d".
	Format  string
	Variant Variant
	// Size is the knob diameter in pixels, scaled by Style.FontScale.
	// 0 uses four text line heights.
	Size  float64
	Flags Flags
	// Steps is the number of ticks on a stepped knob. Defaults to 10.
	Steps int
	// AngleMin and AngleMax bound the sweep in radians. A negative value, or
	// both left at zero, selects DefaultAngleMin / DefaultAngleMax.
	AngleMin, AngleMax float64
	// Default is the value a double-click resets to, clamped to the range.
	Default float64
	// ResetDuration is the length in seconds of an animated reset.
	// 0 uses Style.ResetDuration.
	ResetDuration float64
}

// knob is the per-call state of one knob: its geometry, interaction state
// and mapped angle. It lives for a single widget call.
type knob struct {
	ctx *Context

	radius   float64
	center   Vec2
	active   bool
	hovered  bool
	angleMin float64
	angleMax float64
	t        float64
	angle    float64
}

// Knob draws a float knob for *v within [vMin, vMax] and reports whether the
// value changed this frame.
func (c *Context) Knob(label string, v *float64, vMin, vMax float64, cfg KnobConfig) bool {
	nv, changed := c.baseKnob(label, *v, vMin, vMax, false, cfg)
	*v = nv
	return changed
}

// KnobInt draws an integer knob for *v within [vMin, vMax] and reports
// whether the value changed this frame.
func (c *Context) KnobInt(label string, v *int, vMin, vMax int, cfg KnobConfig) bool {
	nv, changed := c.baseKnob(label, float64(*v), float64(vMin), float64(vMax), true, cfg)
	if !changed {
		return false
	}
	iv := int(math.Round(nv))
	if iv == *v {
		return false
	}
	*v = iv
	return true
}

// baseKnob is the shared body of Knob and KnobInt.
func (c *Context) baseKnob(label string, v, vMin, vMax float64, isInt bool, cfg KnobConfig) (float64, bool) {
	format := normalizeFormat(cfg.Format)
	if format == "" {
		format = defaultFloatFormat
		if isInt {
			format = defaultIntFormat
		}
	}
	precision := FormatPrecision(format)
	if isInt {
		precision = 0
	}
	speed := cfg.Speed
	if speed == 0 {
		speed = defaultSpeed(vMin, vMax)
	}
	steps := cfg.Steps
	if steps == 0 {
		steps = defaultSteps
	}
	logScale := cfg.Flags&FlagLogarithmic != 0
	params := dragParams{
		speed:     speed,
		vMin:      vMin,
		vMax:      vMax,
		log:       logScale,
		eps:       LogEpsilon(format),
		precision: precision,
		axis:      axisFromFlags(cfg.Flags),
	}

	c.PushID(label)
	width := cfg.Size * c.style.FontScale
	if cfg.Size == 0 {
		width = c.font.LineHeight() * defaultSizeLines
	}

	c.BeginGroup()

	if cfg.Flags&FlagNoTitle == 0 {
		title := displayLabel(label)
		tw, _ := c.font.MeasureString(title)
		pos := c.layout.cursor
		pos.X += math.Max(0, (width-tw)*0.5)
		c.textItem(pos, title)
	}

	id := c.GetID(label)
	k, changed := c.newKnob(id, label, &v, width*0.5, params, cfg)

	if cfg.Flags&FlagValueTooltip != 0 && (k.hovered || k.active) {
		c.SetTooltip(FormatValue(format, v))
	}

	if cfg.Flags&FlagNoInput == 0 {
		boxID := c.GetID("###knob_drag")
		boxParams := params
		boxParams.axis = dragAxisX
		nv, boxChanged := c.inputBox(boxID, label, v, width, boxParams, format, isInt, cfg.Flags)
		if boxChanged {
			v = nv
			changed = true
			k.t = RatioFromValue(v, vMin, vMax, logScale, params.eps)
			k.angle = AngleForRatio(k.t, k.angleMin, k.angleMax)
			c.emit(EventValueChanged, id, label, v)
		}
	}

	k.render(cfg.Variant, steps)

	c.EndGroup()
	c.PopID()
	return v, changed
}

// newKnob lays out the knob square at the cursor, runs its interaction and
// updates *v. It reports whether *v changed.
func (c *Context) newKnob(id ID, label string, v *float64, radius float64, p dragParams, cfg KnobConfig) (*knob, bool) {
	pos := c.layout.cursor
	r := Rect{X: pos.X, Y: pos.Y, Width: radius * 2, Height: radius * 2}
	var hit HitShape = HitRect(r)
	if cfg.Flags&FlagRoundHit != 0 {
		hit = HitCircle{CenterX: pos.X + radius, CenterY: pos.Y + radius, Radius: radius}
	}
	st := c.buttonBehavior(id, hit)

	changed := false
	old := *v
	if st.pressed {
		c.cancelReset(id)
		c.emit(EventActivated, id, label, *v)
	}

	switch {
	case st.pressed && c.ptr.doubleClicked[MouseButtonLeft] && cfg.Flags&FlagNoReset == 0:
		def := resetTarget(cfg.Default, p.vMin, p.vMax)
		if cfg.Flags&FlagAnimateReset != 0 {
			d := cfg.ResetDuration
			if d <= 0 {
				d = c.style.ResetDuration
			}
			c.startReset(id, *v, def, d)
			if nv, ok := c.stepReset(id); ok {
				*v = nv
			}
		} else {
			*v = def
		}
		c.emit(EventReset, id, label, def)
	default:
		if nv, ok := c.stepReset(id); ok {
			*v = nv
		} else {
			*v, _ = c.dragBehavior(id, *v, p)
		}
	}
	if *v != old {
		changed = true
		c.emit(EventValueChanged, id, label, *v)
	}
	if st.released {
		c.emit(EventDeactivated, id, label, *v)
	}

	active := c.activeID == id
	c.itemAdd(id, r, st.hovered, active)

	angleMin, angleMax := resolveAngles(cfg.AngleMin, cfg.AngleMax)
	t := RatioFromValue(*v, p.vMin, p.vMax, p.log, p.eps)
	return &knob{
		ctx:      c,
		radius:   radius,
		center:   Vec2{pos.X + radius, pos.Y + radius},
		active:   active,
		hovered:  st.hovered,
		angleMin: angleMin,
		angleMax: angleMax,
		t:        t,
		angle:    AngleForRatio(t, angleMin, angleMax),
	}, changed
}

// resetTarget clamps the configured default into the knob's range.
func resetTarget(def, vMin, vMax float64) float64 {
	lo, hi := vMin, vMax
	if lo > hi {
		lo, hi = hi, lo
	}
	return clamp(def, lo, hi)
}

// --- Knob-relative drawing. Sizes and radii are fractions of the knob radius. ---

func (k *knob) color(cs ColorSet) Color {
	return cs.pick(k.active, k.hovered)
}

func (k *knob) drawDot(size, radius, angle float64, cs ColorSet, segments int) {
	k.ctx.drawList.AddCircleFilled(
		Polar(k.center, radius*k.radius, angle),
		size*k.radius,
		k.color(cs),
		segments)
}

func (k *knob) drawTick(start, end, width, angle float64, cs ColorSet) {
	k.ctx.drawList.AddLine(
		Polar(k.center, end*k.radius, angle),
		Polar(k.center, start*k.radius, angle),
		k.color(cs),
		width*k.radius)
}

func (k *knob) drawCircle(size float64, cs ColorSet) {
	k.ctx.drawList.AddCircleFilled(k.center, size*k.radius, k.color(cs), 0)
}

func (k *knob) drawArc(radius, size, start, end float64, cs ColorSet) {
	k.ctx.drawList.AddArc(
		k.center,
		radius*k.radius,
		start, end,
		size*k.radius*0.5+arcThicknessBias,
		k.color(cs))
}

// render draws the knob body for the given variant.
func (k *knob) render(variant Variant, steps int) {
	c := k.ctx
	primary := c.primaryColors()
	secondary := c.secondaryColors()
	track := c.trackColors()

	switch variant {
	case VariantTick:
		k.drawCircle(0.85, secondary)
		k.drawTick(0.5, 0.85, 0.08, k.angle, primary)

	case VariantDot:
		k.drawCircle(0.85, secondary)
		k.drawDot(0.12, 0.6, k.angle, primary, 12)

	case VariantWiper:
		k.drawCircle(0.7, secondary)
		k.drawArc(0.8, 0.41, k.angleMin, k.angleMax, track)
		if k.t > minVisibleRatio {
			k.drawArc(0.8, 0.43, k.angleMin, k.angle, primary)
		}

	case VariantWiperOnly:
		k.drawArc(0.8, 0.41, k.angleMin, k.angleMax, track)
		if k.t > minVisibleRatio {
			k.drawArc(0.8, 0.43, k.angleMin, k.angle, primary)
		}

	case VariantWiperDot:
		k.drawCircle(0.6, secondary)
		k.drawArc(0.85, 0.41, k.angleMin, k.angleMax, track)
		k.drawDot(0.1, 0.85, k.angle, primary, 12)

	case VariantStepped:
		for n := 0; n < steps; n++ {
			a := 0.0
			if steps > 1 {
				a = float64(n) / float64(steps-1)
			}
			k.drawTick(0.7, 0.9, 0.04, AngleForRatio(a, k.angleMin, k.angleMax), primary)
		}
		k.drawCircle(0.6, secondary)
		k.drawDot(0.12, 0.4, k.angle, primary, 12)

	case VariantSpace:
		k.drawCircle(0.3-k.t*0.1, secondary)
		if k.t > minVisibleRatio {
			k.drawArc(0.4, 0.15, k.angleMin-1.0, k.angle-1.0, primary)
			k.drawArc(0.6, 0.15, k.angleMin+1.0, k.angle+1.0, primary)
			k.drawArc(0.8, 0.15, k.angleMin+3.0, k.angle+3.0, primary)
		}
	}
}
