package knobs

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandCircleFilled CommandType = iota // filled circle or regular polygon
	CommandLine                            // stroked line segment
	CommandArc                             // stroked circular arc
	CommandRectFilled                      // filled, optionally rounded, rectangle
	CommandRect                            // stroked, optionally rounded, rectangle
	CommandText                            // single line of text
)

// DrawCommand is a single draw instruction recorded during a frame. Only the
// fields relevant to Type are set.
type DrawCommand struct {
	Type  CommandType
	Color Color

	// Circle and arc
	Center   Vec2
	Radius   float64
	Segments int // circle: >= 3 draws a regular polygon
	Start    float64
	End      float64

	// Line
	From, To Vec2

	// Stroke width for lines, arcs and stroked rects.
	Width float64

	// Rect
	Rect     Rect
	Rounding float64

	// Text, drawn with its top-left corner at From.
	Text string
	Font Font
}

// DrawList records draw commands for one frame. Commands are replayed in
// insertion order by Flush.
type DrawList struct {
	commands []DrawCommand
	bezBuf   []Bezier
}

const defaultCommandCap = 256

func newDrawList() *DrawList {
	return &DrawList{commands: make([]DrawCommand, 0, defaultCommandCap)}
}

// Commands returns the recorded commands. The slice is reused next frame.
func (dl *DrawList) Commands() []DrawCommand {
	return dl.commands
}

// Len returns the number of recorded commands.
func (dl *DrawList) Len() int {
	return len(dl.commands)
}

// Reset drops all recorded commands, keeping capacity.
func (dl *DrawList) Reset() {
	for i := range dl.commands {
		dl.commands[i] = DrawCommand{}
	}
	dl.commands = dl.commands[:0]
}

// AddCircleFilled records a filled circle. segments >= 3 draws a regular
// polygon with that many sides instead of a smooth circle.
func (dl *DrawList) AddCircleFilled(center Vec2, radius float64, col Color, segments int) {
	if radius <= 0 || col.A <= 0 {
		return
	}
	dl.commands = append(dl.commands, DrawCommand{
		Type: CommandCircleFilled, Color: col,
		Center: center, Radius: radius, Segments: segments,
	})
}

// AddLine records a line from a to b.
func (dl *DrawList) AddLine(from, to Vec2, col Color, width float64) {
	if width <= 0 || col.A <= 0 {
		return
	}
	dl.commands = append(dl.commands, DrawCommand{
		Type: CommandLine, Color: col,
		From: from, To: to, Width: width,
	})
}

// AddArc records an arc stroke along the circle from start to end (radians).
func (dl *DrawList) AddArc(center Vec2, radius, start, end, thickness float64, col Color) {
	if radius <= 0 || thickness <= 0 || col.A <= 0 || start == end {
		return
	}
	dl.commands = append(dl.commands, DrawCommand{
		Type: CommandArc, Color: col,
		Center: center, Radius: radius, Start: start, End: end, Width: thickness,
	})
}

// AddRectFilled records a filled rectangle.
func (dl *DrawList) AddRectFilled(r Rect, col Color, rounding float64) {
	if r.Width <= 0 || r.Height <= 0 || col.A <= 0 {
		return
	}
	dl.commands = append(dl.commands, DrawCommand{
		Type: CommandRectFilled, Color: col, Rect: r, Rounding: rounding,
	})
}

// AddRect records a rectangle outline.
func (dl *DrawList) AddRect(r Rect, col Color, rounding, thickness float64) {
	if r.Width <= 0 || r.Height <= 0 || thickness <= 0 || col.A <= 0 {
		return
	}
	dl.commands = append(dl.commands, DrawCommand{
		Type: CommandRect, Color: col, Rect: r, Rounding: rounding, Width: thickness,
	})
}

// AddText records a line of text with its top-left corner at pos.
func (dl *DrawList) AddText(pos Vec2, col Color, s string, font Font) {
	if s == "" || font == nil || col.A <= 0 {
		return
	}
	dl.commands = append(dl.commands, DrawCommand{
		Type: CommandText, Color: col, From: pos, Text: s, Font: font,
	})
}

// Flush renders every recorded command onto dst in order.
func (dl *DrawList) Flush(dst *ebiten.Image) {
	for i := range dl.commands {
		dl.drawCommand(dst, &dl.commands[i])
	}
}

func (dl *DrawList) drawCommand(dst *ebiten.Image, cmd *DrawCommand) {
	clr := cmd.Color.toRGBA()
	switch cmd.Type {
	case CommandCircleFilled:
		if cmd.Segments < 3 {
			vector.FillCircle(dst, float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius), clr, true)
			return
		}
		pts := RegularPolygon(cmd.Center, cmd.Radius, cmd.Segments)
		var path vector.Path
		path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()
		drawOp := &vector.DrawPathOptions{AntiAlias: true}
		drawOp.ColorScale.ScaleWithColor(clr)
		vector.FillPath(dst, &path, nil, drawOp)

	case CommandLine:
		vector.StrokeLine(dst,
			float32(cmd.From.X), float32(cmd.From.Y),
			float32(cmd.To.X), float32(cmd.To.Y),
			float32(cmd.Width), clr, true)

	case CommandArc:
		dl.bezBuf = ArcBeziers(dl.bezBuf[:0], cmd.Center, cmd.Radius, cmd.Start, cmd.End)
		if len(dl.bezBuf) == 0 {
			return
		}
		var path vector.Path
		path.MoveTo(float32(dl.bezBuf[0].P0.X), float32(dl.bezBuf[0].P0.Y))
		for _, b := range dl.bezBuf {
			path.CubicTo(
				float32(b.C1.X), float32(b.C1.Y),
				float32(b.C2.X), float32(b.C2.Y),
				float32(b.P1.X), float32(b.P1.Y))
		}
		strokeOp := &vector.StrokeOptions{Width: float32(cmd.Width), LineCap: vector.LineCapRound}
		drawOp := &vector.DrawPathOptions{AntiAlias: true}
		drawOp.ColorScale.ScaleWithColor(clr)
		vector.StrokePath(dst, &path, strokeOp, drawOp)

	case CommandRectFilled:
		r := cmd.Rect
		if cmd.Rounding <= 0 {
			vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, true)
			return
		}
		var path vector.Path
		roundRectPath(&path, r, cmd.Rounding)
		drawOp := &vector.DrawPathOptions{AntiAlias: true}
		drawOp.ColorScale.ScaleWithColor(clr)
		vector.FillPath(dst, &path, nil, drawOp)

	case CommandRect:
		r := cmd.Rect
		if cmd.Rounding <= 0 {
			vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(cmd.Width), clr, true)
			return
		}
		var path vector.Path
		roundRectPath(&path, r, cmd.Rounding)
		strokeOp := &vector.StrokeOptions{Width: float32(cmd.Width)}
		drawOp := &vector.DrawPathOptions{AntiAlias: true}
		drawOp.ColorScale.ScaleWithColor(clr)
		vector.StrokePath(dst, &path, strokeOp, drawOp)

	case CommandText:
		op := &text.DrawOptions{}
		op.GeoM.Translate(cmd.From.X, cmd.From.Y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, cmd.Text, cmd.Font.Face(), op)
	}
}

// roundRectPath traces a rectangle with quadratic corners of the given radius.
func roundRectPath(path *vector.Path, r Rect, rounding float64) {
	f := math.Min(rounding, math.Min(r.Width, r.Height)/2)
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	fl := float32(f)

	path.MoveTo(x+fl, y)
	path.LineTo(x+w-fl, y)
	path.QuadTo(x+w, y, x+w, y+fl)
	path.LineTo(x+w, y+h-fl)
	path.QuadTo(x+w, y+h, x+w-fl, y+h)
	path.LineTo(x+fl, y+h)
	path.QuadTo(x, y+h, x, y+h-fl)
	path.LineTo(x, y+fl)
	path.QuadTo(x, y, x+fl, y)
	path.Close()
}
