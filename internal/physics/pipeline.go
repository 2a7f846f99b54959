package physics

import (
	"time"

	"github.com/jakecoffman/cp"
)

// IntegrationParameters configure a single step.
type IntegrationParameters struct {
	// Dt is the step length in seconds; the fixed-timestep size.
	Dt float64
	// Iterations is the number of solver iterations per step.
	Iterations uint
}

// DefaultIntegrationParameters returns 60 Hz steps with 10 solver iterations.
func DefaultIntegrationParameters() IntegrationParameters {
	return IntegrationParameters{Dt: 1.0 / 60.0, Iterations: 10}
}

// Counters record pipeline timings.
type Counters struct {
	Steps    uint64
	LastStep time.Duration
}

type pairKey struct{ a, b ColliderHandle }

// Pipeline advances a simulation and relays the events it produces.
type Pipeline struct {
	Counters Counters

	space   *cp.Space
	bodies  *BodySet
	filters *PairFilters
	events  EventHandler
	// pairs whose start has been reported and whose end has not
	active map[pairKey]bool
}

func NewPipeline() *Pipeline {
	return &Pipeline{active: make(map[pairKey]bool)}
}

// Step advances every body, collider and joint by params.Dt. Pairs are
// filtered through filters and events go to events; both may be nil.
// Joints take part through the space shared with bodies.
func (p *Pipeline) Step(gravity cp.Vector, params IntegrationParameters, bodies *BodySet,
	colliders *ColliderSet, joints *JointSet, filters *PairFilters, events EventHandler) {
	if p.space != bodies.space {
		p.install(bodies.space)
	}
	p.bodies = bodies
	p.filters = filters
	p.events = events

	start := time.Now()
	bodies.space.SetGravity(gravity)
	if params.Iterations > 0 {
		bodies.space.Iterations = params.Iterations
	}
	bodies.space.Step(params.Dt)
	p.Counters.LastStep = time.Since(start)
	p.Counters.Steps++
}

func (p *Pipeline) install(space *cp.Space) {
	h := space.NewCollisionHandler(collisionType, collisionType)
	h.BeginFunc = p.begin
	h.PreSolveFunc = p.preSolve
	h.SeparateFunc = p.separate
	p.space = space
	p.active = make(map[pairKey]bool)
}

func (p *Pipeline) pair(arb *cp.Arbiter) (PairContext, bool) {
	sa, sb := arb.Shapes()
	ha, ok1 := sa.UserData.(ColliderHandle)
	hb, ok2 := sb.UserData.(ColliderHandle)
	if !ok1 || !ok2 {
		return PairContext{}, false
	}
	if hb.Index < ha.Index {
		sa, sb = sb, sa
		ha, hb = hb, ha
	}
	ctx := PairContext{
		Collider1: ha,
		Collider2: hb,
		Sensor:    sa.Sensor() || sb.Sensor(),
	}
	ctx.Body1, _ = sa.Body().UserData.(BodyHandle)
	ctx.Body2, _ = sb.Body().UserData.(BodyHandle)
	if p.bodies != nil {
		if b, ok := p.bodies.Get(ctx.Body1); ok {
			ctx.UserData1 = b.UserData()
		}
		if b, ok := p.bodies.Get(ctx.Body2); ok {
			ctx.UserData2 = b.UserData()
		}
	}
	return ctx, true
}

func (p *Pipeline) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	ctx, ok := p.pair(arb)
	if !ok {
		return true
	}
	if p.filters.Decide(ctx) == SkipPair {
		return false
	}
	p.active[pairKey{ctx.Collider1, ctx.Collider2}] = true
	if p.events == nil {
		return true
	}
	if ctx.Sensor {
		p.events.HandleIntersectionEvent(IntersectionEvent{
			Collider1: ctx.Collider1, Collider2: ctx.Collider2, Intersecting: true,
		})
	} else {
		p.events.HandleContactEvent(ContactEvent{
			Kind: ContactStarted, Collider1: ctx.Collider1, Collider2: ctx.Collider2,
		})
	}
	return true
}

func (p *Pipeline) preSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	ctx, ok := p.pair(arb)
	if !ok || ctx.Sensor {
		return true
	}
	switch p.filters.Decide(ctx) {
	case ComputeImpulses:
		return true
	case SkipImpulses:
		return false
	default:
		return arb.Ignore()
	}
}

func (p *Pipeline) separate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	ctx, ok := p.pair(arb)
	if !ok {
		return
	}
	key := pairKey{ctx.Collider1, ctx.Collider2}
	if !p.active[key] {
		return
	}
	delete(p.active, key)
	if p.events == nil {
		return
	}
	if ctx.Sensor {
		p.events.HandleIntersectionEvent(IntersectionEvent{
			Collider1: ctx.Collider1, Collider2: ctx.Collider2, Intersecting: false,
		})
	} else {
		p.events.HandleContactEvent(ContactEvent{
			Kind: ContactStopped, Collider1: ctx.Collider1, Collider2: ctx.Collider2,
		})
	}
}
