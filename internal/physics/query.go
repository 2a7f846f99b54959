package physics

import (
	"cmp"
	"slices"

	"github.com/jakecoffman/cp"
)

// QueryPipeline answers spatial queries from the cp space's broadphase. Update
// binds it to a simulation and refreshes the cached shape bounds; queries made
// before the first Update find nothing.
type QueryPipeline struct {
	space     *cp.Space
	colliders *ColliderSet
}

func NewQueryPipeline() *QueryPipeline { return &QueryPipeline{} }

// Update binds the pipeline to the space behind bodies and recomputes every
// collider's bounds from its body's current transform.
func (q *QueryPipeline) Update(bodies *BodySet, colliders *ColliderSet) {
	q.space, q.colliders = bodies.space, colliders
	colliders.Each(func(_ ColliderHandle, c *Collider) {
		if q.space.ContainsShape(c.shape) {
			c.shape.CacheBB()
		}
	})
}

// Len returns the number of live colliders the space indexes.
func (q *QueryPipeline) Len() int {
	if q.space == nil {
		return 0
	}
	n := 0
	q.space.EachShape(func(s *cp.Shape) {
		if _, ok := q.resolve(s); ok {
			n++
		}
	})
	return n
}

// IntersectionsWithPoint returns the colliders containing p, sensors included,
// in handle order.
func (q *QueryPipeline) IntersectionsWithPoint(p cp.Vector) []ColliderHandle {
	return q.query(cp.NewBBForCircle(p, 0), func(s *cp.Shape) bool {
		return s.PointQuery(p).Distance <= 0
	})
}

// IntersectionsWithAABB returns the colliders whose bounds overlap bb, in
// handle order.
func (q *QueryPipeline) IntersectionsWithAABB(bb cp.BB) []ColliderHandle {
	return q.query(bb, nil)
}

func (q *QueryPipeline) query(bb cp.BB, accept func(*cp.Shape) bool) []ColliderHandle {
	if q.space == nil {
		return nil
	}
	var out []ColliderHandle
	q.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(s *cp.Shape, _ interface{}) {
		h, ok := q.resolve(s)
		if !ok || (accept != nil && !accept(s)) {
			return
		}
		out = append(out, h)
	}, nil)
	slices.SortFunc(out, func(a, b ColliderHandle) int {
		return cmp.Or(cmp.Compare(a.Index, b.Index), cmp.Compare(a.Generation, b.Generation))
	})
	return out
}

// resolve maps a cp shape back to its live collider handle.
func (q *QueryPipeline) resolve(s *cp.Shape) (ColliderHandle, bool) {
	h, ok := s.UserData.(ColliderHandle)
	if !ok || !q.colliders.Contains(h) {
		return InvalidColliderHandle, false
	}
	return h, true
}
