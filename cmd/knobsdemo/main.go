// Knobsdemo shows every knob variant on linear and logarithmic ranges.
// Pass --script to replay a JSON test script and exit when it finishes.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/phanxgames/knobs"
)

const windowTitle = "Knobs Demo"

// CLI defines the demo's flags.
type CLI struct {
	Width         int     `flag:"" default:"720" env:"KNOBS_WIDTH" help:"Window width in pixels"`
	Height        int     `flag:"" default:"360" env:"KNOBS_HEIGHT" help:"Window height in pixels"`
	Scale         float64 `flag:"" default:"1" env:"KNOBS_SCALE" help:"Font scale applied to explicit knob sizes"`
	LogVariant    string  `flag:"" default:"wiper-only" enum:"tick,dot,wiper,wiper-only,wiper-dot,stepped,space" help:"Variant of the logarithmic knobs"`
	AnimateReset  bool    `flag:"" help:"Animate double-click resets"`
	ShowFPS       bool    `flag:"" name:"fps" help:"Show the FPS overlay"`
	Debug         bool    `flag:"" env:"KNOBS_DEBUG" help:"Print per-frame stats and panic on API misuse"`
	Script        string  `flag:"" optional:"" type:"existingfile" help:"JSON test script to replay"`
	ScreenshotDir string  `flag:"" default:"screenshots" help:"Directory for script screenshots"`
	LogLevel      string  `flag:"" default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

// demo holds the values the knobs edit between frames.
type demo struct {
	gain, mix, pitch, dry float64
	wet                   int
	vertical              float64
	freqs                 [5]float64

	logVariant knobs.Variant
	flags      knobs.Flags
}

// freqRanges are the logarithmic knob ranges, covering positive, zero-based,
// zero-crossing, all-negative and empty ranges.
var freqRanges = [5][2]float64{
	{20, 20000},
	{0, 20000},
	{-20000, 20000},
	{-20000, -20},
	{0, 0},
}

// Run executes the demo.
func (c *CLI) Run() error {
	variant, ok := knobs.ParseVariant(c.LogVariant)
	if !ok {
		return fmt.Errorf("unknown variant %q", c.LogVariant)
	}

	ctx := knobs.NewContext()
	ctx.SetDebug(c.Debug)
	ctx.ScreenshotDir = c.ScreenshotDir
	ctx.Style().FontScale = c.Scale

	if c.Script != "" {
		data, err := os.ReadFile(c.Script)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		runner, err := knobs.LoadTestScript(data)
		if err != nil {
			return err
		}
		ctx.SetTestRunner(runner)
		slog.Info("replaying test script", "path", c.Script, "screenshots", c.ScreenshotDir)
	}

	d := &demo{logVariant: variant}
	if c.AnimateReset {
		d.flags |= knobs.FlagAnimateReset
	}

	ctx.OnReset(func(ev knobs.KnobEvent) {
		slog.Debug("knob reset", "label", ev.Label, "value", ev.Value)
	})
	ctx.OnDeactivated(func(ev knobs.KnobEvent) {
		slog.Debug("knob released", "label", ev.Label, "value", ev.Value, "frame", ev.Frame)
	})

	return knobs.Run(d.frame, knobs.RunConfig{
		Title:   windowTitle,
		Width:   c.Width,
		Height:  c.Height,
		ShowFPS: c.ShowFPS,
		Context: ctx,
	})
}

func (d *demo) frame(c *knobs.Context) {
	c.Text("Linear")

	c.Knob("Gain", &d.gain, -6, 6, knobs.KnobConfig{
		Speed: 0.1, Format: "%.1fdB", Variant: knobs.VariantTick, Flags: d.flags,
	})

	c.SameLine()
	c.Knob("Mix", &d.mix, -1, 1, knobs.KnobConfig{
		Speed: 0.1, Format: "%.1f", Variant: knobs.VariantStepped, Flags: d.flags | knobs.FlagNoReset,
	})
	// Reset by hand, the way callers did before resets were built in.
	if c.IsItemActive() && c.IsMouseDoubleClicked(knobs.MouseButtonLeft) {
		d.mix = 0
	}

	c.SameLine()
	c.PushStyleColor(knobs.ColButtonActive, knobs.Color{R: 1, A: 0.7})
	c.PushStyleColor(knobs.ColButtonHovered, knobs.Color{R: 1, A: 1})
	c.PushStyleColor(knobs.ColButton, knobs.Color{G: 1, A: 1})
	c.Knob("Pitch", &d.pitch, -6, 6, knobs.KnobConfig{
		Speed: 0.1, Format: "%.1f", Variant: knobs.VariantWiperOnly, Flags: d.flags,
	})
	c.PopStyleColor(3)

	c.SameLine()
	c.Knob("Dry", &d.dry, -6, 6, knobs.KnobConfig{
		Speed: 0.1, Format: "%.1f", Variant: knobs.VariantStepped, Steps: 10,
		AngleMin: math.Pi / 2, AngleMax: math.Pi, Flags: d.flags,
	})

	c.SameLine()
	c.KnobInt("Wet", &d.wet, 1, 10, knobs.KnobConfig{
		Speed: 0.1, Format: "%i", Variant: knobs.VariantStepped, Steps: 10, Default: 1, Flags: d.flags,
	})

	c.SameLine()
	c.Knob("Vertical", &d.vertical, 0, 10, knobs.KnobConfig{
		Speed: 0.1, Format: "%.1f", Variant: knobs.VariantSpace,
		Flags: d.flags | knobs.FlagDragVertical | knobs.FlagValueTooltip,
	})

	c.Spacing()
	c.Text("Logarithmic")
	for i := range d.freqs {
		if i > 0 {
			c.SameLine()
		}
		r := freqRanges[i]
		c.Knob(fmt.Sprintf("f#%d", i), &d.freqs[i], r[0], r[1], knobs.KnobConfig{
			Speed: 20, Format: "%.1fHz", Variant: d.logVariant,
			Flags: d.flags | knobs.FlagLogarithmic, Default: r[0],
		})
	}
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("knobsdemo"),
		kong.Description("Rotary knob widgets on Ebitengine."),
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cli.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
