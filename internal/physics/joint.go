package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// JointKind enumerates the supported joints.
type JointKind uint8

const (
	JointBall     JointKind = iota // anchors coincide, free rotation
	JointFixed                     // anchors coincide, relative angle frozen
	JointDistance                  // anchors keep their initial distance
	JointSpring                    // damped spring between anchors
)

// JointSpec describes a joint between two bodies. Anchors are in the local
// frame of the first and second body respectively.
type JointSpec struct {
	Kind       JointKind
	AnchorA    cp.Vector
	AnchorB    cp.Vector
	RestLength float64
	Stiffness  float64
	Damping    float64
}

// BallJoint pins AnchorA on the first body to AnchorB on the second.
func BallJoint(anchorA, anchorB cp.Vector) JointSpec {
	return JointSpec{Kind: JointBall, AnchorA: anchorA, AnchorB: anchorB}
}

// FixedJoint welds the two bodies at the anchors.
func FixedJoint(anchorA, anchorB cp.Vector) JointSpec {
	return JointSpec{Kind: JointFixed, AnchorA: anchorA, AnchorB: anchorB}
}

// DistanceJoint keeps the anchors at the distance they have when created.
func DistanceJoint(anchorA, anchorB cp.Vector) JointSpec {
	return JointSpec{Kind: JointDistance, AnchorA: anchorA, AnchorB: anchorB}
}

// SpringJoint connects the anchors with a damped spring.
func SpringJoint(anchorA, anchorB cp.Vector, restLength, stiffness, damping float64) JointSpec {
	return JointSpec{
		Kind:       JointSpring,
		AnchorA:    anchorA,
		AnchorB:    anchorB,
		RestLength: restLength,
		Stiffness:  stiffness,
		Damping:    damping,
	}
}

// Validate reports whether the spec can be built.
func (s JointSpec) Validate() error {
	for _, f := range []float64{s.AnchorA.X, s.AnchorA.Y, s.AnchorB.X, s.AnchorB.Y} {
		if !finite(f) {
			return fmt.Errorf("%w: non-finite anchor", ErrInvalidJoint)
		}
	}
	switch s.Kind {
	case JointBall, JointFixed, JointDistance:
	case JointSpring:
		if !(s.Stiffness > 0) || s.Damping < 0 || s.RestLength < 0 {
			return fmt.Errorf("%w: spring stiffness %v damping %v rest %v",
				ErrInvalidJoint, s.Stiffness, s.Damping, s.RestLength)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidJoint, s.Kind)
	}
	return nil
}

// Joint is a live joint owned by a JointSet. A joint may be realized by more
// than one cp constraint.
type Joint struct {
	handle      JointHandle
	spec        JointSpec
	body1       BodyHandle
	body2       BodyHandle
	constraints []*cp.Constraint
}

func (j *Joint) Handle() JointHandle { return j.handle }
func (j *Joint) Kind() JointKind { return j.spec.Kind }
func (j *Joint) Spec() JointSpec { return j.spec }

// Bodies returns the two bodies the joint connects.
func (j *Joint) Bodies() (BodyHandle, BodyHandle) { return j.body1, j.body2 }

// JointSet owns every joint of a simulation.
type JointSet struct {
	joints arena[*Joint]
}

func NewJointSet() *JointSet { return &JointSet{} }

// Insert creates a joint between body1 and body2.
func (s *JointSet) Insert(bodies *BodySet, body1, body2 BodyHandle, spec JointSpec) (JointHandle, error) {
	if err := spec.Validate(); err != nil {
		return InvalidJointHandle, err
	}
	if body1 == body2 {
		return InvalidJointHandle, fmt.Errorf("%w: both ends on %v", ErrInvalidJoint, body1)
	}
	b1, ok := bodies.Get(body1)
	if !ok {
		return InvalidJointHandle, fmt.Errorf("%w: %v", ErrUnknownBody, body1)
	}
	b2, ok := bodies.Get(body2)
	if !ok {
		return InvalidJointHandle, fmt.Errorf("%w: %v", ErrUnknownBody, body2)
	}

	a, b := b1.body, b2.body
	var cs []*cp.Constraint
	switch spec.Kind {
	case JointBall:
		cs = append(cs, cp.NewPivotJoint2(a, b, spec.AnchorA, spec.AnchorB))
	case JointFixed:
		rel := b.Angle() - a.Angle()
		cs = append(cs,
			cp.NewPivotJoint2(a, b, spec.AnchorA, spec.AnchorB),
			cp.NewRotaryLimitJoint(a, b, rel, rel))
	case JointDistance:
		cs = append(cs, cp.NewPinJoint(a, b, spec.AnchorA, spec.AnchorB))
	case JointSpring:
		cs = append(cs, cp.NewDampedSpring(a, b, spec.AnchorA, spec.AnchorB,
			spec.RestLength, spec.Stiffness, spec.Damping))
	}

	rec := &Joint{spec: spec, body1: body1, body2: body2, constraints: cs}
	idx, gen := s.joints.insert(rec)
	rec.handle = JointHandle{Index: idx, Generation: gen}
	for _, c := range cs {
		bodies.space.AddConstraint(c)
	}
	b1.joints = append(b1.joints, rec.handle)
	b2.joints = append(b2.joints, rec.handle)
	return rec.handle, nil
}

// Get resolves a handle.
func (s *JointSet) Get(h JointHandle) (*Joint, bool) {
	return s.joints.get(h.Index, h.Generation)
}

// Contains reports whether h refers to a live joint.
func (s *JointSet) Contains(h JointHandle) bool {
	_, ok := s.Get(h)
	return ok
}

func (s *JointSet) Len() int { return s.joints.len() }

// Each visits every live joint in handle index order.
func (s *JointSet) Each(f func(JointHandle, *Joint)) {
	s.joints.each(func(_, _ uint32, j *Joint) { f(j.handle, j) })
}

// Remove deletes a joint. It reports false, and does nothing, for an unknown
// or removed handle.
func (s *JointSet) Remove(h JointHandle, bodies *BodySet, wakeBodies bool) bool {
	rec, ok := s.Get(h)
	if !ok {
		return false
	}
	for _, c := range rec.constraints {
		if bodies.space.ContainsConstraint(c) {
			bodies.space.RemoveConstraint(c)
		}
	}
	for _, bh := range []BodyHandle{rec.body1, rec.body2} {
		if body, ok := bodies.Get(bh); ok {
			body.dropJoint(h)
			if wakeBodies {
				body.body.Activate()
			}
		}
	}
	s.joints.remove(h.Index, h.Generation)
	return true
}
