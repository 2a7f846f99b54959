package physics

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestJointInsertErrors(t *testing.T) {
	bodies, colliders, joints := newSets()
	a, _ := bodies.Insert(NewDynamicBody())
	b, _ := bodies.Insert(NewDynamicBody())
	gone, _ := bodies.Insert(NewDynamicBody())
	bodies.Remove(gone, colliders, joints)

	tests := []struct {
		name   string
		b1, b2 BodyHandle
		spec   JointSpec
		err    error
	}{
		{"same body", a, a, BallJoint(cp.Vector{}, cp.Vector{}), ErrInvalidJoint},
		{"removed body", a, gone, BallJoint(cp.Vector{}, cp.Vector{}), ErrUnknownBody},
		{"bad spring", a, b, SpringJoint(cp.Vector{}, cp.Vector{}, 1, 0, 0), ErrInvalidJoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := joints.Insert(bodies, tt.b1, tt.b2, tt.spec)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v; got %v", tt.err, err)
			}
		})
	}
	if joints.Len() != 0 {
		t.Errorf("expected no joints; got %d", joints.Len())
	}
}

func TestJointKinds(t *testing.T) {
	specs := map[string]JointSpec{
		"ball":     BallJoint(cp.Vector{X: 1}, cp.Vector{X: -1}),
		"fixed":    FixedJoint(cp.Vector{X: 1}, cp.Vector{X: -1}),
		"distance": DistanceJoint(cp.Vector{}, cp.Vector{}),
		"spring":   SpringJoint(cp.Vector{}, cp.Vector{}, 2, 10, 1),
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			bodies, _, joints := newSets()
			a, _ := bodies.Insert(NewStaticBody())
			b, _ := bodies.Insert(NewDynamicBody().WithTranslation(2, 0))
			h, err := joints.Insert(bodies, a, b, spec)
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			j, ok := joints.Get(h)
			if !ok {
				t.Fatal("joint does not resolve")
			}
			if j.Kind() != spec.Kind {
				t.Errorf("expected kind %d; got %d", spec.Kind, j.Kind())
			}
			b1, b2 := j.Bodies()
			if b1 != a || b2 != b {
				t.Errorf("expected bodies %v %v; got %v %v", a, b, b1, b2)
			}
			if !joints.Remove(h, bodies, true) {
				t.Fatal("expected removal to succeed")
			}
			for _, c := range j.constraints {
				if bodies.space.ContainsConstraint(c) {
					t.Error("constraint left in the space")
				}
			}
		})
	}
}

func TestJointHoldsBodiesTogether(t *testing.T) {
	bodies, colliders, joints := newSets()
	anchor, _ := bodies.Insert(NewStaticBody())
	bob, _ := bodies.Insert(NewDynamicBody().WithTranslation(2, 0))
	colliders.Insert(NewCollider(Ball(0.2)), bob, bodies)
	if _, err := joints.Insert(bodies, anchor, bob, DistanceJoint(cp.Vector{}, cp.Vector{})); err != nil {
		t.Fatalf("insert: %v", err)
	}

	p := NewPipeline()
	params := DefaultIntegrationParameters()
	for range 120 {
		p.Step(cp.Vector{Y: -9.81}, params, bodies, colliders, joints, nil, nil)
	}
	b, _ := bodies.Get(bob)
	d := b.Translation().Length()
	if d < 1.9 || d > 2.1 {
		t.Errorf("expected pendulum length near 2; got %v", d)
	}
}
