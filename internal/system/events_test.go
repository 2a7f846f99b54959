package system

import (
	"testing"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/physics"
)

func TestEventQueueOrder(t *testing.T) {
	q := NewEventQueue(false)
	for i := range 3 {
		q.HandleContactEvent(physics.ContactEvent{Collider1: physics.ColliderHandle{Index: uint32(i)}})
	}
	q.HandleIntersectionEvent(physics.IntersectionEvent{Intersecting: true})
	if q.Len() != 4 {
		t.Fatalf("Len %d; want 4", q.Len())
	}
	for i := range 3 {
		e, ok := q.PopContact()
		if !ok || e.Collider1.Index != uint32(i) {
			t.Fatalf("pop %d: got %v, %t", i, e, ok)
		}
	}
	if _, ok := q.PopContact(); ok {
		t.Error("pop from an empty contact queue succeeded")
	}
	if got := q.IntersectionEvents(); len(got) != 1 || !got[0].Intersecting {
		t.Errorf("drained intersections %v", got)
	}
	if _, ok := q.PopIntersection(); ok {
		t.Error("intersection queue not drained")
	}
}

func TestAutoClearIsolatesSteps(t *testing.T) {
	w, p := newPhysicsWorld(fixedConfig())
	p.Events.HandleContactEvent(physics.ContactEvent{Kind: physics.ContactStopped})
	StepWorld(w, p, p.Params.Dt)
	if p.Events.Len() != 0 {
		t.Errorf("stale event survived an auto-cleared step: %d pending", p.Events.Len())
	}

	p.Events.SetAutoClear(false)
	p.Events.HandleContactEvent(physics.ContactEvent{Kind: physics.ContactStopped})
	StepWorld(w, p, p.Params.Dt)
	if p.Events.Len() != 1 {
		t.Errorf("expected the event to be kept without auto-clear; got %d", p.Events.Len())
	}
}

func TestContactEventsReachQueue(t *testing.T) {
	w, p := newPhysicsWorld(fixedConfig())
	p.Events.SetAutoClear(false)
	ground := w.Spawn(
		component.BodyBuilder{Spec: physics.NewStaticBody()},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Cuboid(20, 0.5))},
	)
	ball := fallingBall(t, w, p, 2)
	for range 120 {
		StepWorld(w, p, p.Params.Dt)
	}
	events := p.Events.ContactEvents()
	if len(events) == 0 || events[0].Kind != physics.ContactStarted {
		t.Fatalf("expected a contact start; got %v", events)
	}
	gh, _ := p.Maps.Collider(ground)
	bh, _ := p.Maps.Collider(ball)
	e := events[0]
	if !(e.Collider1 == gh && e.Collider2 == bh) && !(e.Collider1 == bh && e.Collider2 == gh) {
		t.Errorf("event names %v %v; want %v and %v", e.Collider1, e.Collider2, gh, bh)
	}
	if id, ok := p.Maps.ColliderEntity(e.Collider1); !ok || (id != ground && id != ball) {
		t.Errorf("event collider maps to entity %d", id)
	}
}

func TestFilterSeesBodyUserData(t *testing.T) {
	w, p := newPhysicsWorld(fixedConfig())
	w.Spawn(
		component.BodyBuilder{Spec: physics.NewStaticBody().WithUserData(1)},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Cuboid(20, 0.5))},
	)
	ball := w.Spawn(
		component.BodyBuilder{Spec: physics.NewDynamicBody().WithTranslation(0, 2).WithUserData(2)},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Ball(0.5))},
	)
	mustCreate(t, w, p)
	var seen []physics.PairContext
	p.Filters.AddContactFilter(physics.PairFilterFunc(func(ctx physics.PairContext) physics.PairDecision {
		seen = append(seen, ctx)
		return physics.SkipPair
	}))
	for range 120 {
		StepWorld(w, p, p.Params.Dt)
	}
	if len(seen) == 0 {
		t.Fatal("filter never consulted")
	}
	if u := seen[0].UserData1 + seen[0].UserData2; u != 3 {
		t.Errorf("filter saw user data %d and %d", seen[0].UserData1, seen[0].UserData2)
	}
	if y := ballY(t, p, ball); y > 0 {
		t.Errorf("skipped pair still collided: ball at y=%v", y)
	}
}
