package knobs

// groupData is the layout state saved by BeginGroup.
type groupData struct {
	start       Vec2
	indentX     float64
	lineMaxY    float64
	sameLine    bool
	prevLineEnd Vec2

	bounds    Rect
	hasBounds bool
	active    bool // an item inside is active
	hovered   bool // an item inside is hovered
}

// layoutState places items top to bottom, or left to right after SameLine.
type layoutState struct {
	origin      Vec2
	cursor      Vec2
	indentX     float64 // x where new lines start
	lineMaxY    float64 // bottom of the tallest item on the current line
	sameLine    bool    // the next item continues the current line
	prevLineEnd Vec2    // where SameLine continues from
	groups      []groupData
}

func (l *layoutState) reset(padding Vec2) {
	start := l.origin.Add(padding)
	l.cursor = start
	l.indentX = start.X
	l.lineMaxY = start.Y
	l.sameLine = false
	l.prevLineEnd = start
	l.groups = l.groups[:0]
}

// itemSize advances the cursor past r and grows the enclosing group.
func (l *layoutState) itemSize(r Rect, spacing Vec2) {
	bottom := r.Y + r.Height
	if l.sameLine {
		l.lineMaxY = max(l.lineMaxY, bottom)
	} else {
		l.lineMaxY = bottom
	}
	l.sameLine = false
	l.prevLineEnd = Vec2{r.X + r.Width + spacing.X, r.Y}
	l.cursor = Vec2{l.indentX, l.lineMaxY + spacing.Y}

	if n := len(l.groups); n > 0 {
		g := &l.groups[n-1]
		if g.hasBounds {
			g.bounds = g.bounds.Union(r)
		} else {
			g.bounds = r
			g.hasBounds = true
		}
	}
}

// noteItem records interaction state for the enclosing group.
func (l *layoutState) noteItem(hovered, active bool) {
	if n := len(l.groups); n > 0 {
		g := &l.groups[n-1]
		g.hovered = g.hovered || hovered
		g.active = g.active || active
	}
}

// SetOrigin moves the top-left corner the next frame's layout starts from.
// The style's WindowPadding is added on top.
func (c *Context) SetOrigin(x, y float64) {
	c.layout.origin = Vec2{x, y}
}

// CursorPos returns where the next item will be placed.
func (c *Context) CursorPos() Vec2 {
	return c.layout.cursor
}

// SetCursorPos moves the cursor for the next item and starts a new line there.
func (c *Context) SetCursorPos(x, y float64) {
	c.layout.cursor = Vec2{x, y}
	c.layout.lineMaxY = y
	c.layout.sameLine = false
}

// SameLine places the next item to the right of the previous one.
func (c *Context) SameLine() {
	c.layout.cursor = c.layout.prevLineEnd
	c.layout.sameLine = true
}

// Spacing adds vertical space before the next item.
func (c *Context) Spacing() {
	c.layout.cursor.Y += c.style.ItemSpacing.Y
}

// BeginGroup starts a group. Items inside stack from the current cursor and
// the whole group is then laid out, and queried with IsItem*, as one item.
func (c *Context) BeginGroup() {
	l := &c.layout
	l.groups = append(l.groups, groupData{
		start:       l.cursor,
		indentX:     l.indentX,
		lineMaxY:    l.lineMaxY,
		sameLine:    l.sameLine,
		prevLineEnd: l.prevLineEnd,
	})
	l.indentX = l.cursor.X
	l.sameLine = false
}

// EndGroup closes the innermost group.
func (c *Context) EndGroup() {
	l := &c.layout
	if len(l.groups) == 0 {
		c.misuse("EndGroup without BeginGroup")
		return
	}
	g := l.groups[len(l.groups)-1]
	l.groups = l.groups[:len(l.groups)-1]

	l.indentX = g.indentX
	l.lineMaxY = g.lineMaxY
	l.sameLine = g.sameLine
	l.prevLineEnd = g.prevLineEnd

	bounds := g.bounds
	if !g.hasBounds {
		bounds = Rect{X: g.start.X, Y: g.start.Y}
	}
	// The group keeps its items' interaction state for the IsItem* queries.
	hovered := g.hovered || (bounds.Contains(c.ptr.pos.X, c.ptr.pos.Y) && (c.activeID == 0 || g.active))
	c.lastItem = itemData{rect: bounds, hovered: hovered, active: g.active}
	l.noteItem(hovered, g.active)
	l.itemSize(bounds, c.style.ItemSpacing)
}
