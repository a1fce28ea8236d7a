package knobs

import (
	"encoding/binary"
	"hash/fnv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ID identifies a widget across frames. It is derived from labels and the
// ID stack, never stored by callers.
type ID uint32

// itemData describes the last submitted item (or group).
type itemData struct {
	id      ID
	rect    Rect
	hovered bool
	active  bool
}

// itemState is the outcome of button-like behavior for one item this frame.
type itemState struct {
	hovered  bool
	held     bool
	pressed  bool // became active this frame
	released bool // stopped being active this frame
}

// Context is the immediate-mode host: it owns the input snapshot, the
// per-ID interaction state, the layout cursor, the style and the draw lists.
// A Context is driven from a single goroutine, normally Ebitengine's game loop.
type Context struct {
	style Style
	font  Font
	debug bool
	store EntityStore

	drawList *DrawList
	overlay  *DrawList
	tooltip  string

	// Input
	source      InputSource
	in          InputState
	ptr         pointerState
	injectQueue []syntheticEvent
	injectMods  KeyModifiers
	testRunner  *TestRunner

	// Frame clock
	time    float64
	frame   uint64
	inFrame bool

	// IDs and style overrides
	idStack    []ID
	colorStack []colorMod

	// Interaction
	activeID   ID
	activeSeen bool // the active item was submitted this frame
	lastItem   itemData
	itemCount  int

	// Drag accumulator for the active item
	dragID    ID
	dragAccum float64

	// Manual input box text editing
	edit textEdit

	// Running double-click reset animations
	resets map[ID]*resetTween

	// Layout
	layout layoutState

	handlers handlerRegistry

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	screenshotQueue []screenshotRequest
}

// NewContext creates a Context with the default style and font, reading
// input from Ebitengine.
func NewContext() *Context {
	return &Context{
		style:         DefaultStyle(),
		font:          DefaultFont(),
		drawList:      newDrawList(),
		overlay:       newDrawList(),
		source:        EbitenInput{},
		resets:        make(map[ID]*resetTween),
		ScreenshotDir: "screenshots",
	}
}

// Style returns a pointer to the context's style for direct mutation.
func (c *Context) Style() *Style {
	return &c.style
}

// SetFont replaces the font used for titles, values and tooltips.
func (c *Context) SetFont(f Font) {
	if f != nil {
		c.font = f
	}
}

// Font returns the current font.
func (c *Context) Font() Font {
	return c.font
}

// SetInputSource replaces the device reader. nil disables device polling;
// only injected events then change the input.
func (c *Context) SetInputSource(src InputSource) {
	c.source = src
}

// SetDebug enables per-frame stats on stderr and panics on API misuse.
func (c *Context) SetDebug(enabled bool) {
	c.debug = enabled
}

// SetEntityStore sets the optional event bridge. Knob events are forwarded
// to it in addition to the registered callbacks.
func (c *Context) SetEntityStore(store EntityStore) {
	c.store = store
}

// DrawList returns the main draw list for custom drawing between widgets.
func (c *Context) DrawList() *DrawList {
	return c.drawList
}

// Frame returns the number of frames begun so far.
func (c *Context) Frame() uint64 {
	return c.frame
}

// Time returns the frame clock in seconds.
func (c *Context) Time() float64 {
	return c.time
}

// Begin starts a frame: advances the clock, reads input and resets layout and
// draw lists. Call it at the top of the game's Update, before any widget.
func (c *Context) Begin() {
	if c.inFrame {
		c.misuse("Begin called twice without End")
	}
	c.frame++
	c.time += c.dt()

	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.readInput()
	c.ptr.update(&c.in, c.time, &c.style)

	c.drawList.Reset()
	c.overlay.Reset()
	c.tooltip = ""
	c.lastItem = itemData{}
	c.activeSeen = false
	c.edit.seen = false
	c.itemCount = 0
	c.layout.reset(c.style.WindowPadding)
	c.inFrame = true
}

// End finishes the frame. An active item that was not submitted this frame
// loses its active state, and a value box not submitted leaves text entry.
func (c *Context) End() {
	if !c.inFrame {
		c.misuse("End called without Begin")
		return
	}
	if c.activeID != 0 && !c.activeSeen {
		c.clearActive()
	}
	if c.edit.id != 0 && !c.edit.seen {
		c.edit = textEdit{}
	}
	c.dropStaleResets()
	if len(c.idStack) > 0 {
		c.misuse("%d PushID calls without PopID", len(c.idStack))
		c.idStack = c.idStack[:0]
	}
	if len(c.layout.groups) > 0 {
		c.misuse("%d BeginGroup calls without EndGroup", len(c.layout.groups))
		c.layout.groups = c.layout.groups[:0]
	}
	if len(c.colorStack) > 0 {
		c.misuse("%d PushStyleColor calls without PopStyleColor", len(c.colorStack))
		c.PopStyleColor(len(c.colorStack))
	}
	if c.tooltip != "" {
		c.renderTooltip()
	}
	c.debugLog(c.stats())
	c.inFrame = false
}

// Draw replays the frame's draw lists onto screen and captures any queued
// screenshots. Call it from the game's Draw.
func (c *Context) Draw(screen *ebiten.Image) {
	c.drawList.Flush(screen)
	c.overlay.Flush(screen)
	c.flushScreenshots(screen)
}

// dt is the fixed frame step in seconds.
func (c *Context) dt() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// --- IDs ---

// GetID returns the ID of label under the current ID stack.
func (c *Context) GetID(label string) ID {
	return hashLabel(c.seed(), label)
}

// PushID pushes label onto the ID stack so identical labels in different
// scopes get different IDs.
func (c *Context) PushID(label string) {
	c.idStack = append(c.idStack, c.GetID(label))
}

// PopID removes the last pushed ID.
func (c *Context) PopID() {
	if len(c.idStack) == 0 {
		c.misuse("PopID without PushID")
		return
	}
	c.idStack = c.idStack[:len(c.idStack)-1]
}

func (c *Context) seed() ID {
	if n := len(c.idStack); n > 0 {
		return c.idStack[n-1]
	}
	return 0
}

// hashLabel hashes label with seed. Text from "###" on replaces the whole
// label so the visible part can change without changing the ID.
func hashLabel(seed ID, label string) ID {
	if i := strings.Index(label, "###"); i >= 0 {
		label = label[i:]
	}
	h := fnv.New32a()
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(seed))
	_, _ = h.Write(b[:])
	_, _ = h.Write([]byte(label))
	id := ID(h.Sum32())
	if id == 0 {
		// 0 means "no item".
		id = 1
	}
	return id
}

// --- Interaction state ---

// ActiveID returns the item currently held or edited, or 0.
func (c *Context) ActiveID() ID {
	return c.activeID
}

func (c *Context) setActive(id ID) {
	c.activeID = id
	c.activeSeen = true
	c.dragID = id
	c.dragAccum = 0
}

func (c *Context) clearActive() {
	c.activeID = 0
	c.dragID = 0
	c.dragAccum = 0
}

// itemHoverable reports whether the pointer is over shape and no other item
// owns the pointer. A value box in text entry gives up the pointer to a press
// outside it, so the same press ends the edit and activates the item under it.
func (c *Context) itemHoverable(id ID, shape HitShape) bool {
	if c.activeID != 0 && c.activeID != id && !c.pressOutsideEdit() {
		return false
	}
	return shape.Contains(c.ptr.pos.X, c.ptr.pos.Y)
}

// buttonBehavior runs press/hold/release for an item whose hit area is shape.
func (c *Context) buttonBehavior(id ID, shape HitShape) itemState {
	var st itemState
	st.hovered = c.itemHoverable(id, shape)
	if st.hovered && c.ptr.pressed[MouseButtonLeft] {
		c.setActive(id)
		st.pressed = true
	}
	if c.activeID == id {
		c.activeSeen = true
		if c.ptr.down[MouseButtonLeft] {
			st.held = true
		} else {
			c.clearActive()
			st.released = true
		}
	}
	return st
}

// itemAdd registers an item for layout and for the IsItem* queries.
func (c *Context) itemAdd(id ID, r Rect, hovered, active bool) {
	c.itemCount++
	c.lastItem = itemData{id: id, rect: r, hovered: hovered, active: active}
	c.layout.noteItem(hovered, active)
	c.layout.itemSize(r, c.style.ItemSpacing)
}

// IsItemActive reports whether the last item (or group) is held or edited.
func (c *Context) IsItemActive() bool {
	return c.lastItem.active
}

// IsItemHovered reports whether the pointer is over the last item (or group).
func (c *Context) IsItemHovered() bool {
	return c.lastItem.hovered
}

// ItemRect returns the bounds of the last item (or group).
func (c *Context) ItemRect() Rect {
	return c.lastItem.rect
}

// --- Text and tooltips ---

// Text places a line of text at the cursor.
func (c *Context) Text(s string) {
	c.textItem(c.layout.cursor, s)
}

// textItem places a line of text at pos and registers it as an item.
func (c *Context) textItem(pos Vec2, s string) {
	w, _ := c.font.MeasureString(s)
	r := Rect{X: pos.X, Y: pos.Y, Width: w, Height: c.font.LineHeight()}
	c.drawList.AddText(pos, c.style.Colors[ColText], s, c.font)
	c.itemCount++
	c.layout.itemSize(r, c.style.ItemSpacing)
}

// SetTooltip shows s next to the pointer for this frame.
func (c *Context) SetTooltip(s string) {
	c.tooltip = s
}

const tooltipOffset = 16

func (c *Context) renderTooltip() {
	w, _ := c.font.MeasureString(c.tooltip)
	pad := c.style.WindowPadding
	r := Rect{
		X:      c.ptr.pos.X + tooltipOffset,
		Y:      c.ptr.pos.Y + tooltipOffset/2,
		Width:  w + pad.X*2,
		Height: c.font.LineHeight() + pad.Y*2,
	}
	c.overlay.AddRectFilled(r, c.style.Colors[ColPopupBg], c.style.FrameRounding)
	c.overlay.AddRect(r, c.style.Colors[ColBorder], c.style.FrameRounding, 1)
	c.overlay.AddText(Vec2{r.X + pad.X, r.Y + pad.Y}, c.style.Colors[ColText], c.tooltip, c.font)
}
