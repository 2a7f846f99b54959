package system

import (
	"testing"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"

	"github.com/jakecoffman/cp"
)

func ballJoint() physics.JointSpec {
	return physics.BallJoint(cp.Vector{X: 1}, cp.Vector{X: -1})
}

func TestJointWaitsForBothBodies(t *testing.T) {
	// Each order in which the two bodies can appear relative to the joint.
	orders := []struct {
		name   string
		frames [][]string
	}{
		{"joint first", [][]string{{"joint"}, {"a"}, {"b"}}},
		{"bodies first", [][]string{{"a"}, {"b"}, {"joint"}}},
		{"b then joint then a", [][]string{{"b"}, {"joint"}, {"a"}}},
		{"same frame", [][]string{{"joint", "a", "b"}}},
	}
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			w, p := newPhysicsWorld(DefaultConfig())
			a, b := w.CreateEntity(), w.CreateEntity()
			j := w.CreateEntity()
			var haveA, haveB, haveJ bool
			for _, frame := range tt.frames {
				for _, what := range frame {
					switch what {
					case "a":
						w.Add(a, component.BodyBuilder{Spec: physics.NewDynamicBody()})
						haveA = true
					case "b":
						w.Add(b, component.BodyBuilder{Spec: physics.NewDynamicBody().WithTranslation(2, 0)})
						haveB = true
					case "joint":
						w.Add(j, component.JointBuilder{Spec: ballJoint(), Entity1: a, Entity2: b})
						haveJ = true
					}
				}
				mustCreate(t, w, p)
				want := haveA && haveB && haveJ
				if got := w.Has(j, component.CJointHandle); got != want {
					t.Fatalf("joint handle present=%t; want %t", got, want)
				}
				if w.Has(j, component.CJointBuilder) == want && haveJ {
					t.Fatalf("joint builder present=%t with handle=%t", !want, want)
				}
			}
			jh := w.Get(j, component.CJointHandle).(component.JointHandle)
			if jh.Entity1 != a || jh.Entity2 != b {
				t.Errorf("endpoints %d %d; want %d %d", jh.Entity1, jh.Entity2, a, b)
			}
			joint, ok := p.Joints.Get(jh.Handle)
			if !ok {
				t.Fatal("joint handle does not resolve")
			}
			b1, b2 := joint.Bodies()
			ha, _ := p.Maps.Body(a)
			hb, _ := p.Maps.Body(b)
			if b1 != ha || b2 != hb {
				t.Errorf("joint bodies %v %v; want %v %v", b1, b2, ha, hb)
			}
			if e, _ := p.Maps.JointEntity(jh.Handle); e != j {
				t.Errorf("reverse joint map gives %d; want %d", e, j)
			}
		})
	}
}

func TestJointToMissingEntityStaysPending(t *testing.T) {
	w, p := newPhysicsWorld(DefaultConfig())
	a := w.Spawn(component.BodyBuilder{Spec: physics.NewDynamicBody()})
	j := w.Spawn(component.JointBuilder{Spec: ballJoint(), Entity1: a, Entity2: ecs.EntityID(999)})
	for range 3 {
		mustCreate(t, w, p)
	}
	if !w.Has(j, component.CJointBuilder) || w.Has(j, component.CJointHandle) {
		t.Error("joint to a missing entity was resolved")
	}
}

func TestJointSameBodyIsAnError(t *testing.T) {
	w, p := newPhysicsWorld(DefaultConfig())
	a := w.Spawn(component.BodyBuilder{Spec: physics.NewDynamicBody()})
	j := w.Spawn(component.JointBuilder{Spec: ballJoint(), Entity1: a, Entity2: a})
	if err := CreateBodiesAndColliders(w, p); err != nil {
		t.Fatalf("CreateBodiesAndColliders: %v", err)
	}
	if err := CreateJoints(w, p); err == nil {
		t.Fatal("expected an error for a joint on a single body")
	}
	if !w.Has(j, component.CJointBuilder) {
		t.Error("failing joint builder was consumed")
	}
}
