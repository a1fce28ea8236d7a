package knobs

// StyleColor indexes Style.Colors.
type StyleColor uint8

const (
	ColText           StyleColor = iota // labels and values
	ColTextDisabled                     // placeholder text
	ColFrameBg                          // input box background
	ColFrameBgHovered                   // input box background under the pointer
	ColFrameBgActive                    // input box background while dragged or edited
	ColButton                           // knob track
	ColButtonHovered                    // knob primary while hovered, secondary base
	ColButtonActive                     // knob primary base
	ColPopupBg                          // tooltip background
	ColBorder                           // tooltip and input border
	ColTextSelectedBg                   // edit caret

	colCount
)

// Style holds the colors and metrics shared by every widget in a Context.
type Style struct {
	Colors [colCount]Color

	ItemSpacing   Vec2    // gap between consecutive items
	FramePadding  Vec2    // padding inside the input box
	WindowPadding Vec2    // offset of the first item from the origin
	FrameRounding float64 // corner radius of the input box and tooltip

	// FontScale multiplies explicit knob sizes, matching a global font scale.
	FontScale float64

	// DoubleClickTime is the longest gap in seconds between two presses that
	// still counts as a double-click.
	DoubleClickTime float64
	// DoubleClickMaxDist is the farthest the pointer may travel in pixels
	// between the two presses.
	DoubleClickMaxDist float64

	// ResetDuration is the default duration in seconds of an animated reset.
	ResetDuration float64
}

// DefaultStyle returns the dark theme.
func DefaultStyle() Style {
	var s Style
	s.Colors[ColText] = Color{1, 1, 1, 1}
	s.Colors[ColTextDisabled] = Color{0.50, 0.50, 0.50, 1}
	s.Colors[ColFrameBg] = Color{0.16, 0.29, 0.48, 0.54}
	s.Colors[ColFrameBgHovered] = Color{0.26, 0.59, 0.98, 0.40}
	s.Colors[ColFrameBgActive] = Color{0.26, 0.59, 0.98, 0.67}
	s.Colors[ColButton] = Color{0.26, 0.59, 0.98, 0.40}
	s.Colors[ColButtonHovered] = Color{0.26, 0.59, 0.98, 1}
	s.Colors[ColButtonActive] = Color{0.06, 0.53, 0.98, 1}
	s.Colors[ColPopupBg] = Color{0.08, 0.08, 0.08, 0.94}
	s.Colors[ColBorder] = Color{0.43, 0.43, 0.50, 0.50}
	s.Colors[ColTextSelectedBg] = Color{0.26, 0.59, 0.98, 0.35}

	s.ItemSpacing = Vec2{8, 4}
	s.FramePadding = Vec2{4, 3}
	s.WindowPadding = Vec2{8, 8}
	s.FrameRounding = 2
	s.FontScale = 1
	s.DoubleClickTime = 0.30
	s.DoubleClickMaxDist = 6
	s.ResetDuration = 0.25
	return s
}

type colorMod struct {
	idx    StyleColor
	backup Color
}

// PushStyleColor overrides a style color until the matching PopStyleColor.
func (c *Context) PushStyleColor(idx StyleColor, col Color) {
	if idx >= colCount {
		return
	}
	c.colorStack = append(c.colorStack, colorMod{idx: idx, backup: c.style.Colors[idx]})
	c.style.Colors[idx] = col
}

// PopStyleColor restores the last n pushed colors.
func (c *Context) PopStyleColor(n int) {
	if n > len(c.colorStack) {
		c.misuse("PopStyleColor(%d) with %d pushed", n, len(c.colorStack))
		n = len(c.colorStack)
	}
	for ; n > 0; n-- {
		mod := c.colorStack[len(c.colorStack)-1]
		c.style.Colors[mod.idx] = mod.backup
		c.colorStack = c.colorStack[:len(c.colorStack)-1]
	}
}

// primaryColors is used for ticks, dots and the value arc.
func (c *Context) primaryColors() ColorSet {
	col := &c.style.Colors
	return ColorSet{
		Base:    col[ColButtonActive],
		Hovered: col[ColButtonHovered],
		Active:  col[ColButtonHovered],
	}
}

// secondaryColors is used for the knob body: the primary set at half brightness.
func (c *Context) secondaryColors() ColorSet {
	col := &c.style.Colors
	return ColorSet{
		Base:    col[ColButtonActive].RGB(0.5),
		Hovered: col[ColButtonHovered].RGB(0.5),
		Active:  col[ColButtonHovered].RGB(0.5),
	}
}

// trackColors is used for the unfilled part of wiper arcs.
func (c *Context) trackColors() ColorSet {
	return UniformColorSet(c.style.Colors[ColButton])
}
