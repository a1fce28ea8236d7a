package knobs

import (
	"fmt"
	"os"
)

// debugStats holds per-frame counters. Only printed when debug is enabled.
type debugStats struct {
	frame        uint64
	itemCount    int
	commandCount int
	overlayCount int
	activeID     ID
	resets       int
}

func (c *Context) stats() debugStats {
	return debugStats{
		frame:        c.frame,
		itemCount:    c.itemCount,
		commandCount: c.drawList.Len(),
		overlayCount: c.overlay.Len(),
		activeID:     c.activeID,
		resets:       len(c.resets),
	}
}

// debugLog prints frame stats to stderr.
func (c *Context) debugLog(stats debugStats) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[knobs] frame %d | items: %d | commands: %d | overlay: %d | active: %#08x | resets: %d\n",
		stats.frame, stats.itemCount, stats.commandCount, stats.overlayCount, uint32(stats.activeID), stats.resets)
}

// misuse reports unbalanced API calls. In debug mode it panics with a
// descriptive message; otherwise the caller recovers silently.
func (c *Context) misuse(format string, args ...any) {
	if c.debug {
		panic(fmt.Sprintf("knobs debug: "+format, args...))
	}
}
