package knobs

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// textEdit is the state of the value box being typed into. Only one box can
// be edited at a time.
type textEdit struct {
	id   ID
	buf  []rune
	rect Rect // box bounds as last submitted
	seen bool // the box was submitted this frame
}

// caretWidth is the width of the edit caret in pixels.
const caretWidth = 1

// inputBox is the value field under a knob. It drags like the knob along X;
// a double-click or Ctrl+click switches it to text entry.
func (c *Context) inputBox(id ID, label string, v, width float64, p dragParams, format string, isInt bool, flags Flags) (float64, bool) {
	pos := c.layout.cursor
	h := c.font.LineHeight() + c.style.FramePadding.Y*2
	r := Rect{X: pos.X, Y: pos.Y, Width: width, Height: h}

	if c.edit.id == id {
		return c.editBox(id, label, v, r, p, isInt, flags)
	}

	st := c.buttonBehavior(id, HitRect(r))
	changed := false
	if st.pressed {
		c.emit(EventActivated, id, label, v)
		if c.ptr.doubleClicked[MouseButtonLeft] || c.ptr.mods&ModCtrl != 0 {
			c.edit = textEdit{id: id, buf: []rune(FormatValue(format, v))}
			return c.editBox(id, label, v, r, p, isInt, flags)
		}
	} else {
		v, changed = c.dragBehavior(id, v, p)
	}
	if st.released {
		c.emit(EventDeactivated, id, label, v)
	}

	active := c.activeID == id
	bg := c.style.Colors[ColFrameBg]
	switch {
	case active:
		bg = c.style.Colors[ColFrameBgActive]
	case st.hovered:
		bg = c.style.Colors[ColFrameBgHovered]
	}
	c.drawList.AddRectFilled(r, bg, c.style.FrameRounding)

	s := FormatValue(format, v)
	tw, _ := c.font.MeasureString(s)
	c.drawList.AddText(
		Vec2{r.X + math.Max(c.style.FramePadding.X, (r.Width-tw)*0.5), r.Y + c.style.FramePadding.Y},
		c.style.Colors[ColText], s, c.font)

	c.itemAdd(id, r, st.hovered, active)
	return v, changed
}

// editBox runs one frame of text entry. Enter commits, Escape cancels and a
// press outside the box commits.
func (c *Context) editBox(id ID, label string, v float64, r Rect, p dragParams, isInt bool, flags Flags) (float64, bool) {
	c.edit.rect = r
	c.edit.seen = true

	for _, ch := range c.in.Chars {
		if unicode.IsPrint(ch) {
			c.edit.buf = append(c.edit.buf, ch)
		}
	}
	if c.in.Keys&EditKeyBackspace != 0 && len(c.edit.buf) > 0 {
		c.edit.buf = c.edit.buf[:len(c.edit.buf)-1]
	}

	commit := c.in.Keys&EditKeyEnter != 0 ||
		(c.ptr.pressed[MouseButtonLeft] && !r.Contains(c.ptr.pos.X, c.ptr.pos.Y))
	cancel := c.in.Keys&EditKeyEscape != 0

	changed := false
	if commit || cancel {
		if commit && !cancel {
			if nv, ok := parseTypedValue(string(c.edit.buf), p, isInt, flags); ok && nv != v {
				v = nv
				changed = true
			}
		}
		c.edit = textEdit{}
		// An item submitted earlier this frame may already hold the press.
		if c.activeID == id {
			c.clearActive()
		}
		c.emit(EventDeactivated, id, label, v)
	} else {
		c.activeID = id
		c.activeSeen = true
	}

	editing := c.edit.id == id
	c.drawList.AddRectFilled(r, c.style.Colors[ColFrameBgActive], c.style.FrameRounding)
	if editing {
		s := string(c.edit.buf)
		tw, _ := c.font.MeasureString(s)
		tp := Vec2{r.X + c.style.FramePadding.X, r.Y + c.style.FramePadding.Y}
		c.drawList.AddText(tp, c.style.Colors[ColText], s, c.font)
		c.drawList.AddRectFilled(
			Rect{X: tp.X + tw, Y: tp.Y, Width: caretWidth, Height: c.font.LineHeight()},
			c.style.Colors[ColText], 0)
	}

	c.itemAdd(id, r, r.Contains(c.ptr.pos.X, c.ptr.pos.Y), editing)
	return v, changed
}

// pressOutsideEdit reports whether a value box in text entry owns the
// pointer and this frame's press landed outside it.
func (c *Context) pressOutsideEdit() bool {
	return c.edit.id != 0 && c.activeID == c.edit.id &&
		c.ptr.pressed[MouseButtonLeft] &&
		!c.edit.rect.Contains(c.ptr.pos.X, c.ptr.pos.Y)
}

// parseTypedValue reads the number at the start of s, ignoring a unit
// suffix such as "dB" or "Hz". Values are clamped only with
// FlagAlwaysClamp; integer knobs round to the nearest whole number.
func parseTypedValue(s string, p dragParams, isInt bool, flags Flags) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && strings.IndexByte("+-.0123456789eE", s[end]) >= 0 {
		end++
	}
	// Back off a trailing exponent marker or sign that has no digits after it.
	var nv float64
	var err error
	for ; end > 0; end-- {
		nv, err = strconv.ParseFloat(s[:end], 64)
		if err == nil {
			break
		}
	}
	if end == 0 || math.IsNaN(nv) || math.IsInf(nv, 0) {
		return 0, false
	}
	if isInt {
		nv = math.Round(nv)
	}
	if flags&FlagAlwaysClamp != 0 {
		lo, hi := p.vMin, p.vMax
		if lo > hi {
			lo, hi = hi, lo
		}
		nv = clamp(nv, lo, hi)
	}
	return nv, true
}
