// Package knobs provides rotary knob widgets for an immediate-mode UI on
// [Ebitengine].
//
// A knob maps a numeric value onto an angle between a minimum and maximum
// sweep angle, draws itself in one of several visual variants and lets the
// user change the value by dragging. Every frame the application calls the
// widget functions again with the current value; there is no retained widget
// tree.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	gain := 0.5
//	knobs.Run(func(c *knobs.Context) {
//		c.Knob("Gain", &gain, -6, 6, knobs.KnobConfig{
//			Format:  "%.1fdB",
//			Variant: knobs.VariantTick,
//		})
//	}, knobs.RunConfig{Title: "Knobs", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and bracket the widget
// calls with [Context.Begin] and [Context.End] in Update, then call
// [Context.Draw] from Draw:
//
//	func (g *Game) Update() error {
//		g.ui.Begin()
//		g.ui.Knob("Mix", &g.mix, 0, 1, knobs.KnobConfig{})
//		g.ui.End()
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image) { g.ui.Draw(s) }
//
// # Interaction
//
// Dragging the knob changes the value, by default spreading the full range
// over 250 pixels. Shift speeds the drag up and Alt slows it down. A
// double-click resets to [KnobConfig.Default], optionally animated with
// [FlagAnimateReset]. Below each knob sits a value box that also drags, and
// turns into a text field on double-click or Ctrl+click.
//
// [FlagLogarithmic] maps the value on a logarithmic scale, which suits
// frequencies and gains spanning several decades.
//
// # Variants
//
// [VariantTick], [VariantDot], [VariantWiper], [VariantWiperOnly],
// [VariantWiperDot], [VariantStepped] and [VariantSpace] differ only in how
// the body is drawn. Colors come from the [Style], and [Context.PushStyleColor]
// overrides them for the knobs that follow.
//
// # Events
//
// Besides the bool each widget returns, [Context.OnValueChanged] and its
// siblings register callbacks, and [Context.SetEntityStore] forwards every
// event to an ECS world (see the knobs/ecs package for a [Donburi] adapter).
//
// # Testing
//
// [Context.SetInputSource] replaces the Ebitengine input reader, and the
// Inject functions queue synthetic pointer and keyboard input consumed one
// event per frame. [LoadTestScript] drives the same injections from JSON and
// queues screenshots for visual checks.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package knobs
