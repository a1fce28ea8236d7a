package knobs

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// screenshotRequest is one queued capture. A zero area captures the whole
// screen.
type screenshotRequest struct {
	label string
	area  Rect
}

// Screenshot queues a capture of the whole frame, written as a PNG to
// ScreenshotDir after the next Draw.
func (c *Context) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, screenshotRequest{label: label})
}

// ScreenshotItem queues a capture cropped to the last submitted item. After a
// Knob call that is the whole knob with its title and value box.
func (c *Context) ScreenshotItem(label string) {
	c.screenshotQueue = append(c.screenshotQueue, screenshotRequest{label: label, area: c.lastItem.rect})
}

// flushScreenshots reads the rendered frame once and writes every queued
// request. Called at the end of Draw.
func (c *Context) flushScreenshots(screen *ebiten.Image) {
	if len(c.screenshotQueue) == 0 {
		return
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	if err := os.MkdirAll(c.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[knobs] screenshot: mkdir %s: %v\n", c.ScreenshotDir, err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	frame := unpremultiply(pixels, b.Dx(), b.Dy())

	for i, req := range c.screenshotQueue {
		var img image.Image = frame
		if req.area.Width > 0 && req.area.Height > 0 {
			img = frame.SubImage(pixelBounds(req.area).Intersect(frame.Rect))
		}
		name := screenshotName(c.frame, i, req.label)
		if err := writePNG(filepath.Join(c.ScreenshotDir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[knobs] screenshot: %v\n", err)
		}
	}
}

// screenshotName orders files by frame, then by queue position.
func screenshotName(frame uint64, idx int, label string) string {
	return fmt.Sprintf("knobs_f%06d_%02d_%s.png", frame, idx, sanitizeLabel(label))
}

// pixelBounds returns the smallest pixel rectangle covering r.
func pixelBounds(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)))
}

// unpremultiply converts the premultiplied RGBA bytes returned by
// ReadPixels to a straight-alpha image suitable for PNG encoding.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("knobs: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("knobs: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. An empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
