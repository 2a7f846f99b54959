package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Defaults applied by NewCollider.
const (
	DefaultDensity  = 1.0
	DefaultFriction = 0.5
)

// collisionType is shared by every shape so a single cp handler sees all pairs.
const collisionType cp.CollisionType = 1

// ShapeKind enumerates the supported collider geometries.
type ShapeKind uint8

const (
	ShapeBall ShapeKind = iota
	ShapeCuboid
	ShapeSegment
)

// Shape is collider geometry in collider-local coordinates.
type Shape struct {
	Kind        ShapeKind
	Radius      float64   // ball radius, segment thickness
	HalfExtents cp.Vector // cuboid
	A, B        cp.Vector // segment endpoints
}

// Ball returns a circle of radius r centered on the collider origin.
func Ball(r float64) Shape { return Shape{Kind: ShapeBall, Radius: r} }

// Cuboid returns an axis-aligned box with the given half extents.
func Cuboid(hx, hy float64) Shape {
	return Shape{Kind: ShapeCuboid, HalfExtents: cp.Vector{X: hx, Y: hy}}
}

// Segment returns a line segment from a to b with the given thickness.
func Segment(a, b cp.Vector, radius float64) Shape {
	return Shape{Kind: ShapeSegment, A: a, B: b, Radius: radius}
}

func (s Shape) validate() error {
	switch s.Kind {
	case ShapeBall:
		if !(s.Radius > 0) || !finite(s.Radius) {
			return fmt.Errorf("%w: ball radius %v", ErrInvalidShape, s.Radius)
		}
	case ShapeCuboid:
		hx, hy := s.HalfExtents.X, s.HalfExtents.Y
		if !(hx > 0) || !(hy > 0) || !finite(hx) || !finite(hy) {
			return fmt.Errorf("%w: cuboid half extents (%v, %v)", ErrInvalidShape, hx, hy)
		}
	case ShapeSegment:
		if s.A == s.B || s.Radius < 0 || !finite(s.Radius) {
			return fmt.Errorf("%w: degenerate segment", ErrInvalidShape)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidShape, s.Kind)
	}
	return nil
}

// ColliderSpec describes a collider that has not been created yet.
type ColliderSpec struct {
	Shape Shape
	// Translation is relative to the parent body.
	Translation cp.Vector
	// Density feeds the parent's mass; zero means DefaultDensity.
	Density     float64
	Friction    float64
	Restitution float64
	Sensor      bool
}

// NewCollider returns a spec with default density and friction.
func NewCollider(shape Shape) ColliderSpec {
	return ColliderSpec{Shape: shape, Density: DefaultDensity, Friction: DefaultFriction}
}

func (s ColliderSpec) WithTranslation(x, y float64) ColliderSpec {
	s.Translation = cp.Vector{X: x, Y: y}
	return s
}

func (s ColliderSpec) WithDensity(d float64) ColliderSpec {
	s.Density = d
	return s
}

func (s ColliderSpec) WithFriction(f float64) ColliderSpec {
	s.Friction = f
	return s
}

func (s ColliderSpec) WithRestitution(r float64) ColliderSpec {
	s.Restitution = r
	return s
}

// AsSensor turns the collider into a sensor: it reports intersections but
// never generates contact forces.
func (s ColliderSpec) AsSensor() ColliderSpec {
	s.Sensor = true
	return s
}

// Validate reports whether the spec can be built.
func (s ColliderSpec) Validate() error {
	if err := s.Shape.validate(); err != nil {
		return err
	}
	if !finite(s.Translation.X) || !finite(s.Translation.Y) {
		return fmt.Errorf("%w: non-finite translation", ErrInvalidShape)
	}
	if s.Density < 0 || s.Friction < 0 || s.Restitution < 0 {
		return fmt.Errorf("%w: negative material property", ErrInvalidShape)
	}
	return nil
}

// Collider is a live collider owned by a ColliderSet.
type Collider struct {
	handle ColliderHandle
	parent BodyHandle
	spec   ColliderSpec
	shape  *cp.Shape
}

func (c *Collider) Handle() ColliderHandle { return c.handle }

// Parent returns the body the collider is attached to.
func (c *Collider) Parent() BodyHandle { return c.parent }

func (c *Collider) Shape() Shape { return c.spec.Shape }
func (c *Collider) IsSensor() bool { return c.spec.Sensor }
func (c *Collider) Friction() float64 { return c.spec.Friction }
func (c *Collider) Restitution() float64 { return c.spec.Restitution }

// Position returns the collider's world transform.
func (c *Collider) Position() Isometry {
	b := c.shape.Body()
	body := Isometry{Translation: b.Position(), Rotation: b.Angle()}
	return body.Compose(Isometry{Translation: c.spec.Translation})
}

// Offset returns the collider's transform relative to its parent body.
func (c *Collider) Offset() Isometry { return Isometry{Translation: c.spec.Translation} }

// AABB returns the bounding box computed by the engine at the last step.
func (c *Collider) AABB() cp.BB { return c.shape.BB() }

// ContainsPoint tests a world-space point against the shape cp placed at the
// body's transform as of the last step.
func (c *Collider) ContainsPoint(p cp.Vector) bool {
	return c.shape.PointQuery(p).Distance <= 0
}

// ColliderSet owns every collider of a simulation.
type ColliderSet struct {
	colliders arena[*Collider]
}

func NewColliderSet() *ColliderSet { return &ColliderSet{} }

// Insert creates a collider attached to parent.
func (s *ColliderSet) Insert(spec ColliderSpec, parent BodyHandle, bodies *BodySet) (ColliderHandle, error) {
	if err := spec.Validate(); err != nil {
		return InvalidColliderHandle, err
	}
	body, ok := bodies.Get(parent)
	if !ok {
		return InvalidColliderHandle, fmt.Errorf("%w: %v", ErrUnknownBody, parent)
	}

	t := spec.Translation
	var shape *cp.Shape
	switch spec.Shape.Kind {
	case ShapeBall:
		shape = cp.NewCircle(body.body, spec.Shape.Radius, t)
	case ShapeCuboid:
		he := spec.Shape.HalfExtents
		shape = cp.NewBox2(body.body, cp.BB{L: t.X - he.X, B: t.Y - he.Y, R: t.X + he.X, T: t.Y + he.Y}, 0)
	case ShapeSegment:
		a := cp.Vector{X: spec.Shape.A.X + t.X, Y: spec.Shape.A.Y + t.Y}
		b := cp.Vector{X: spec.Shape.B.X + t.X, Y: spec.Shape.B.Y + t.Y}
		shape = cp.NewSegment(body.body, a, b, spec.Shape.Radius)
	}
	shape.SetFriction(spec.Friction)
	shape.SetElasticity(spec.Restitution)
	shape.SetSensor(spec.Sensor)
	shape.SetCollisionType(collisionType)
	bodies.space.AddShape(shape)
	if body.IsDynamic() {
		d := spec.Density
		if d == 0 {
			d = DefaultDensity
		}
		shape.SetDensity(d)
	}

	rec := &Collider{parent: parent, spec: spec, shape: shape}
	idx, gen := s.colliders.insert(rec)
	rec.handle = ColliderHandle{Index: idx, Generation: gen}
	shape.UserData = rec.handle
	body.colliders = append(body.colliders, rec.handle)
	body.refreshMass()
	return rec.handle, nil
}

// Get resolves a handle.
func (s *ColliderSet) Get(h ColliderHandle) (*Collider, bool) {
	return s.colliders.get(h.Index, h.Generation)
}

// Contains reports whether h refers to a live collider.
func (s *ColliderSet) Contains(h ColliderHandle) bool {
	_, ok := s.Get(h)
	return ok
}

func (s *ColliderSet) Len() int { return s.colliders.len() }

// Each visits every live collider in handle index order.
func (s *ColliderSet) Each(f func(ColliderHandle, *Collider)) {
	s.colliders.each(func(_, _ uint32, c *Collider) { f(c.handle, c) })
}

// Remove detaches a collider from its parent body without removing the body.
// It reports false, and does nothing, for an unknown or removed handle.
func (s *ColliderSet) Remove(h ColliderHandle, bodies *BodySet, wakeParent bool) bool {
	rec, ok := s.Get(h)
	if !ok {
		return false
	}
	// The shape leaves the space before the slot is freed so separation
	// callbacks fired by cp still see a resolvable handle.
	if bodies.space.ContainsShape(rec.shape) {
		bodies.space.RemoveShape(rec.shape)
	}
	if body, ok := bodies.Get(rec.parent); ok {
		body.dropCollider(h)
		body.refreshMass()
		if wakeParent {
			body.body.Activate()
		}
	}
	rec.shape.UserData = nil
	s.colliders.remove(h.Index, h.Generation)
	return true
}
