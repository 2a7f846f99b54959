package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// BodyStatus selects how the solver treats a body.
type BodyStatus uint8

const (
	BodyDynamic   BodyStatus = iota // moved by forces and contacts
	BodyStatic                      // never moves
	BodyKinematic                   // moved only by its velocity
)

func (s BodyStatus) String() string {
	switch s {
	case BodyDynamic:
		return "dynamic"
	case BodyStatic:
		return "static"
	case BodyKinematic:
		return "kinematic"
	}
	return fmt.Sprintf("BodyStatus(%d)", uint8(s))
}

// BodySpec describes a body that has not been created yet.
type BodySpec struct {
	Status          BodyStatus
	Translation     cp.Vector
	Rotation        float64
	LinearVelocity  cp.Vector
	AngularVelocity float64
	// Mass is used while the body has no collider with a density; zero means 1.
	Mass               float64
	TranslationsLocked bool
	RotationsLocked    bool
	UserData           uint64
}

// NewBodySpec returns a spec for a body with the given status at the origin.
func NewBodySpec(status BodyStatus) BodySpec { return BodySpec{Status: status} }

// NewDynamicBody returns a spec for a dynamic body at the origin.
func NewDynamicBody() BodySpec { return NewBodySpec(BodyDynamic) }

// NewStaticBody returns a spec for a static body at the origin.
func NewStaticBody() BodySpec { return NewBodySpec(BodyStatic) }

// NewKinematicBody returns a spec for a kinematic body at the origin.
func NewKinematicBody() BodySpec { return NewBodySpec(BodyKinematic) }

func (s BodySpec) WithTranslation(x, y float64) BodySpec {
	s.Translation = cp.Vector{X: x, Y: y}
	return s
}

func (s BodySpec) WithRotation(angle float64) BodySpec {
	s.Rotation = angle
	return s
}

func (s BodySpec) WithLinearVelocity(x, y float64) BodySpec {
	s.LinearVelocity = cp.Vector{X: x, Y: y}
	return s
}

func (s BodySpec) WithAngularVelocity(w float64) BodySpec {
	s.AngularVelocity = w
	return s
}

func (s BodySpec) WithMass(m float64) BodySpec {
	s.Mass = m
	return s
}

func (s BodySpec) WithUserData(data uint64) BodySpec {
	s.UserData = data
	return s
}

// LockTranslations keeps the body at its position while still letting it rotate.
func (s BodySpec) LockTranslations() BodySpec {
	s.TranslationsLocked = true
	return s
}

// LockRotations gives the body infinite rotational inertia.
func (s BodySpec) LockRotations() BodySpec {
	s.RotationsLocked = true
	return s
}

// Validate reports whether the spec can be built.
func (s BodySpec) Validate() error {
	if s.Status > BodyKinematic {
		return fmt.Errorf("%w: status %v", ErrInvalidBody, s.Status)
	}
	for _, f := range []float64{s.Translation.X, s.Translation.Y, s.Rotation,
		s.LinearVelocity.X, s.LinearVelocity.Y, s.AngularVelocity} {
		if !finite(f) {
			return fmt.Errorf("%w: non-finite transform or velocity", ErrInvalidBody)
		}
	}
	if s.Mass < 0 || !finite(s.Mass) {
		return fmt.Errorf("%w: mass %v", ErrInvalidBody, s.Mass)
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Body is a live rigid body owned by a BodySet.
type Body struct {
	handle    BodyHandle
	spec      BodySpec
	body      *cp.Body
	colliders []ColliderHandle
	joints    []JointHandle
}

func (b *Body) Handle() BodyHandle { return b.handle }
func (b *Body) Status() BodyStatus { return b.spec.Status }
func (b *Body) IsDynamic() bool { return b.spec.Status == BodyDynamic }
func (b *Body) IsStatic() bool { return b.spec.Status == BodyStatic }
func (b *Body) IsKinematic() bool { return b.spec.Status == BodyKinematic }
func (b *Body) UserData() uint64 { return b.spec.UserData }
func (b *Body) Translation() cp.Vector { return b.body.Position() }
func (b *Body) Rotation() float64 { return b.body.Angle() }
func (b *Body) Mass() float64 { return b.body.Mass() }
func (b *Body) IsSleeping() bool { return b.body.IsSleeping() }

// Position returns the body's current world transform.
func (b *Body) Position() Isometry {
	return Isometry{Translation: b.body.Position(), Rotation: b.body.Angle()}
}

func (b *Body) LinearVelocity() cp.Vector { return b.body.Velocity() }
func (b *Body) AngularVelocity() float64 { return b.body.AngularVelocity() }

// SetLinearVelocity overrides the body's velocity. Static bodies ignore it.
func (b *Body) SetLinearVelocity(v cp.Vector, wake bool) {
	if b.IsStatic() {
		return
	}
	b.body.SetVelocity(v.X, v.Y)
	if wake {
		b.body.Activate()
	}
}

// SetAngularVelocity overrides the body's spin. Static bodies ignore it.
func (b *Body) SetAngularVelocity(w float64, wake bool) {
	if b.IsStatic() {
		return
	}
	b.body.SetAngularVelocity(w)
	if wake {
		b.body.Activate()
	}
}

// ApplyImpulse applies an impulse through the body's center.
func (b *Body) ApplyImpulse(impulse cp.Vector, wake bool) {
	if !b.IsDynamic() {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(impulse, b.body.Position())
	if wake {
		b.body.Activate()
	}
}

// Colliders returns the handles of the colliders attached to the body.
func (b *Body) Colliders() []ColliderHandle {
	return append([]ColliderHandle(nil), b.colliders...)
}

// Joints returns the handles of the joints attached to the body.
func (b *Body) Joints() []JointHandle {
	return append([]JointHandle(nil), b.joints...)
}

// refreshMass restores the fallback mass of a dynamic body left without
// massive shapes and reapplies the rotation lock, both of which cp resets
// whenever shapes come and go.
func (b *Body) refreshMass() {
	if !b.IsDynamic() {
		return
	}
	if b.body.Mass() <= 0 || !finite(b.body.Mass()) {
		m := b.spec.Mass
		if m == 0 {
			m = 1
		}
		b.body.SetMass(m)
		b.body.SetMoment(m)
	}
	if b.spec.RotationsLocked {
		b.body.SetMoment(math.Inf(1))
	}
}

func (b *Body) dropCollider(h ColliderHandle) {
	for i, c := range b.colliders {
		if c == h {
			b.colliders = append(b.colliders[:i], b.colliders[i+1:]...)
			return
		}
	}
}

func (b *Body) dropJoint(h JointHandle) {
	for i, j := range b.joints {
		if j == h {
			b.joints = append(b.joints[:i], b.joints[i+1:]...)
			return
		}
	}
}

// BodySet owns every body of a simulation, and the cp space that colliders and
// joints are added to.
type BodySet struct {
	space  *cp.Space
	bodies arena[*Body]
}

// NewBodySet creates an empty set backed by a fresh space.
func NewBodySet() *BodySet {
	return &BodySet{space: cp.NewSpace()}
}

// Insert creates a body from spec.
func (s *BodySet) Insert(spec BodySpec) (BodyHandle, error) {
	if err := spec.Validate(); err != nil {
		return InvalidBodyHandle, err
	}

	var cb *cp.Body
	switch spec.Status {
	case BodyStatic:
		cb = cp.NewStaticBody()
	case BodyKinematic:
		cb = cp.NewKinematicBody()
	default:
		m := spec.Mass
		if m == 0 {
			m = 1
		}
		cb = cp.NewBody(m, m)
	}
	cb.SetPosition(spec.Translation)
	cb.SetAngle(spec.Rotation)
	if spec.Status != BodyStatic {
		cb.SetVelocity(spec.LinearVelocity.X, spec.LinearVelocity.Y)
		cb.SetAngularVelocity(spec.AngularVelocity)
	}
	if spec.TranslationsLocked && spec.Status == BodyDynamic {
		cb.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(body, gravity, damping, dt)
			body.SetVelocity(0, 0)
		})
		cb.SetPositionUpdateFunc(func(body *cp.Body, dt float64) {
			p := body.Position()
			cp.BodyUpdatePosition(body, dt)
			body.SetPosition(p)
		})
	}
	s.space.AddBody(cb)

	rec := &Body{spec: spec, body: cb}
	idx, gen := s.bodies.insert(rec)
	rec.handle = BodyHandle{Index: idx, Generation: gen}
	cb.UserData = rec.handle
	rec.refreshMass()
	return rec.handle, nil
}

// Get resolves a handle.
func (s *BodySet) Get(h BodyHandle) (*Body, bool) {
	return s.bodies.get(h.Index, h.Generation)
}

// Contains reports whether h refers to a live body.
func (s *BodySet) Contains(h BodyHandle) bool {
	_, ok := s.Get(h)
	return ok
}

// Len returns the number of live bodies.
func (s *BodySet) Len() int { return s.bodies.len() }

// Each visits every live body in handle index order.
func (s *BodySet) Each(f func(BodyHandle, *Body)) {
	s.bodies.each(func(_, _ uint32, b *Body) { f(b.handle, b) })
}

// Remove deletes a body together with every collider and joint attached to
// it. It reports false, and does nothing, for an unknown or removed handle.
func (s *BodySet) Remove(h BodyHandle, colliders *ColliderSet, joints *JointSet) bool {
	rec, ok := s.Get(h)
	if !ok {
		return false
	}
	for _, ch := range rec.Colliders() {
		colliders.Remove(ch, s, false)
	}
	for _, jh := range rec.Joints() {
		joints.Remove(jh, s, true)
	}
	if s.space.ContainsBody(rec.body) {
		s.space.RemoveBody(rec.body)
	}
	rec.body.UserData = nil
	s.bodies.remove(h.Index, h.Generation)
	return true
}
