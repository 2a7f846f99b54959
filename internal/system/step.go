package system

import (
	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
)

// SimulationClock carries frame time not yet consumed by fixed steps.
// After StepWorld, 0 <= Remainder < step size.
type SimulationClock struct {
	Remainder float64
}

// stepEpsilon is the relative tolerance applied when comparing the clock to
// the step size, so that deltas summing to exactly one step are not lost to
// rounding.
const stepEpsilon = 1e-9

// StepWorld advances the simulation by the frame delta dt and returns the
// number of pipeline steps taken.
//
// With a fixed timestep dt is added to the clock and the world advances in
// whole steps of p.Params.Dt, carrying the rest to the next frame. Body poses
// are copied into Interpolation components just before the last step of the
// frame. With a variable timestep the world advances once by dt.
func StepWorld(w *ecs.World, p *Physics, dt float64) int {
	if p.Events.AutoClear() {
		p.Events.Clear()
	}

	steps := 0
	params := p.Params
	if p.Config.FixedTimestep {
		h := params.Dt
		eps := h * stepEpsilon
		p.Clock.Remainder += dt
		for h > 0 && p.Clock.Remainder+eps >= h {
			if p.Clock.Remainder-h+eps < h {
				snapshotPoses(w, p)
			}
			if p.Config.PhysicsPipelineActive {
				p.Pipeline.Step(p.Config.Gravity, params, p.Bodies, p.Colliders, p.Joints, p.Filters, p.Events)
				steps++
			}
			p.Clock.Remainder -= h
			if p.Clock.Remainder < 0 {
				p.Clock.Remainder = 0
			}
		}
	} else if p.Config.PhysicsPipelineActive && dt > 0 {
		params.Dt = dt
		p.Pipeline.Step(p.Config.Gravity, params, p.Bodies, p.Colliders, p.Joints, p.Filters, p.Events)
		steps++
	}

	if p.Config.QueryPipelineActive {
		p.Query.Update(p.Bodies, p.Colliders)
	}
	return steps
}

func snapshotPoses(w *ecs.World, p *Physics) {
	for _, id := range w.Query(component.CBodyHandle, component.CInterpolation) {
		h := w.Get(id, component.CBodyHandle).(component.BodyHandle).Handle
		b, ok := p.Bodies.Get(h)
		if !ok {
			continue
		}
		w.Add(id, component.Interpolation{Previous: b.Position(), Valid: true})
	}
}
