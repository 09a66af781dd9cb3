// Package skillfield lays out a set of skills on a 2D canvas and animates
// how they react to the pointer.
//
// The package is the engine only; it has no rendering or windowing
// dependency. The Ebitengine host lives in skillfield/host.
//
// # Quick start
//
//	set, err := skillfield.LoadSkillSet(os.DirFS("data"), "skills.json")
//	// handle err
//	engine, err := skillfield.NewEngine(set.Skills, skillfield.DefaultConfig(), skillfield.Options{})
//	// handle err
//	engine.Resize(1000, 900, 1)
//
//	// per pointer event
//	engine.PointerMove(x, y)
//	engine.PointerLeave()
//
//	// per frame
//	engine.Tick(1.0 / 60)
//	states = engine.Snapshot(states[:0])
//
// # Placement
//
// [Placer] scatters items around the viewport center by rejection sampling.
// Each item gets up to MaxAttempts candidates; a candidate is rejected when it
// falls outside the padded bounds or closer than MinDistance to an earlier
// item. When the budget runs out the last candidate is kept and the item is
// flagged [Item.PlacementExhausted]. Dense sets therefore degrade to overlap
// instead of failing.
//
// # Interaction
//
// At most one item is focused: the nearest one whose hover radius
// (BaseSize * HoverRadiusFactor) contains the pointer. In play mode, focusing
// an item also colors and swells its neighbors with a linear falloff; each
// neighbor settles back after DecayDelay unless it was focused meanwhile.
//
// Decays run on a [Scheduler]. The default [TickScheduler] is a virtual clock
// advanced by [Engine.Tick], so tests control time directly.
//
// # Animation
//
// [Engine.Tick] moves each item's size and rotation a fixed fraction toward
// their targets (exponential smoothing), optionally scaled by frame time.
package skillfield
