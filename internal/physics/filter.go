package physics

// PairDecision tells the pipeline what to do with a candidate pair.
type PairDecision uint8

const (
	// ComputeImpulses processes the pair normally.
	ComputeImpulses PairDecision = iota
	// SkipImpulses keeps reporting the pair but does not resolve it.
	SkipImpulses
	// SkipPair drops the pair entirely: no events, no resolution.
	SkipPair
)

// PairContext describes a candidate pair. Collider1 always has the lower
// handle index.
type PairContext struct {
	Collider1, Collider2 ColliderHandle
	Body1, Body2         BodyHandle
	UserData1, UserData2 uint64
	// Sensor is set when at least one collider is a sensor.
	Sensor bool
}

// PairFilter vetoes or downgrades contact and intersection pairs before the
// solver runs.
type PairFilter interface {
	FilterPair(ctx PairContext) PairDecision
}

// PairFilterFunc adapts a function to PairFilter.
type PairFilterFunc func(ctx PairContext) PairDecision

func (f PairFilterFunc) FilterPair(ctx PairContext) PairDecision { return f(ctx) }

// PairFilters is the registry of filters handed to Pipeline.Step.
//
// Every registered filter of the relevant list is consulted in registration
// order and the most restrictive decision wins. An empty list means
// ComputeImpulses.
type PairFilters struct {
	contact      []PairFilter
	intersection []PairFilter
}

func NewPairFilters() *PairFilters { return &PairFilters{} }

// AddContactFilter registers f for pairs of solid colliders.
func (pf *PairFilters) AddContactFilter(f PairFilter) *PairFilters {
	pf.contact = append(pf.contact, f)
	return pf
}

// AddIntersectionFilter registers f for pairs involving a sensor.
func (pf *PairFilters) AddIntersectionFilter(f PairFilter) *PairFilters {
	pf.intersection = append(pf.intersection, f)
	return pf
}

func (pf *PairFilters) ContactFilters() []PairFilter {
	if pf == nil {
		return nil
	}
	return append([]PairFilter(nil), pf.contact...)
}

func (pf *PairFilters) IntersectionFilters() []PairFilter {
	if pf == nil {
		return nil
	}
	return append([]PairFilter(nil), pf.intersection...)
}

// Decide evaluates the filters relevant to ctx.
func (pf *PairFilters) Decide(ctx PairContext) PairDecision {
	if pf == nil {
		return ComputeImpulses
	}
	list := pf.contact
	if ctx.Sensor {
		list = pf.intersection
	}
	d := ComputeImpulses
	for _, f := range list {
		if got := f.FilterPair(ctx); got > d {
			d = got
			if d == SkipPair {
				break
			}
		}
	}
	return d
}
