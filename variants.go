package knobs

// Shortcuts with one function per variant. Each is Knob with Variant, Format,
// Size and Flags set and everything else at its default.

// TickKnob draws a VariantTick knob.
func (c *Context) TickKnob(label string, v *float64, vMin, vMax float64, format string, size float64, flags Flags) bool {
	return c.Knob(label, v, vMin, vMax, KnobConfig{Variant: VariantTick, Format: format, Size: size, Flags: flags})
}

// DotKnob draws a VariantDot knob.
func (c *Context) DotKnob(label string, v *float64, vMin, vMax float64, format string, size float64, flags Flags) bool {
	return c.Knob(label, v, vMin, vMax, KnobConfig{Variant: VariantDot, Format: format, Size: size, Flags: flags})
}

// WiperKnob draws a VariantWiper knob.
func (c *Context) WiperKnob(label string, v *float64, vMin, vMax float64, format string, size float64, flags Flags) bool {
	return c.Knob(label, v, vMin, vMax, KnobConfig{Variant: VariantWiper, Format: format, Size: size, Flags: flags})
}

// WiperOnlyKnob draws a VariantWiperOnly knob.
func (c *Context) WiperOnlyKnob(label string, v *float64, vMin, vMax float64, format string, size float64, flags Flags) bool {
	return c.Knob(label, v, vMin, vMax, KnobConfig{Variant: VariantWiperOnly, Format: format, Size: size, Flags: flags})
}

// WiperDotKnob draws a VariantWiperDot knob.
func (c *Context) WiperDotKnob(label string, v *float64, vMin, vMax float64, format string, size float64, flags Flags) bool {
	return c.Knob(label, v, vMin, vMax, KnobConfig{Variant: VariantWiperDot, Format: format, Size: size, Flags: flags})
}

// SteppedKnob draws a VariantStepped knob with the given number of ticks.
func (c *Context) SteppedKnob(label string, v *float64, vMin, vMax float64, format string, size float64, flags Flags, steps int) bool {
	return c.Knob(label, v, vMin, vMax, KnobConfig{Variant: VariantStepped, Format: format, Size: size, Flags: flags, Steps: steps})
}

// SpaceKnob draws a VariantSpace knob.
func (c *Context) SpaceKnob(label string, v *float64, vMin, vMax float64, format string, size float64, flags Flags) bool {
	return c.Knob(label, v, vMin, vMax, KnobConfig{Variant: VariantSpace, Format: format, Size: size, Flags: flags})
}
