package factory

import (
	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"

	"github.com/gdamore/tcell/v2"
)

// PlayerColor is the render color of the player body.
var PlayerColor = tcell.NewHexColor(0xFF0000)

// NewGround creates a static cuboid of half extents (hx, hy) centered on
// (x, y) and rotated by angle.
func NewGround(w *ecs.World, x, y, angle, hx, hy float64) ecs.EntityID {
	return w.Spawn(
		component.BodyBuilder{Spec: physics.NewStaticBody().WithTranslation(x, y).WithRotation(angle)},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Cuboid(hx, hy))},
	)
}

// NewBox creates a dynamic cuboid that is drawn interpolated.
func NewBox(w *ecs.World, x, y, hx, hy float64) ecs.EntityID {
	return w.Spawn(
		component.BodyBuilder{Spec: physics.NewDynamicBody().WithTranslation(x, y)},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Cuboid(hx, hy)).WithDensity(1)},
		component.Interpolation{},
	)
}

// NewBall creates a dynamic ball that is drawn interpolated.
func NewBall(w *ecs.World, x, y, r float64) ecs.EntityID {
	return w.Spawn(
		component.BodyBuilder{Spec: physics.NewDynamicBody().WithTranslation(x, y)},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Ball(r)).WithDensity(1)},
		component.Interpolation{},
	)
}

// NewSensor creates a static cuboid sensor.
func NewSensor(w *ecs.World, x, y, hx, hy float64) ecs.EntityID {
	return w.Spawn(
		component.BodyBuilder{Spec: physics.NewStaticBody().WithTranslation(x, y)},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Cuboid(hx, hy)).AsSensor()},
	)
}

// NewBody creates an entity with only a body; colliders can be hung off it
// with NewChildCollider.
func NewBody(w *ecs.World, spec physics.BodySpec) ecs.EntityID {
	return w.Spawn(component.BodyBuilder{Spec: spec}, component.Interpolation{})
}

// NewChildCollider creates a collider entity attached to the body of parent.
func NewChildCollider(w *ecs.World, parent ecs.EntityID, spec physics.ColliderSpec) ecs.EntityID {
	return w.Spawn(
		component.ColliderBuilder{Spec: spec},
		component.Parent{Entity: parent},
	)
}

// NewJoint creates a joint entity between the bodies of a and b. The joint is
// built once both bodies exist.
func NewJoint(w *ecs.World, a, b ecs.EntityID, spec physics.JointSpec) ecs.EntityID {
	return w.Spawn(component.JointBuilder{Spec: spec, Entity1: a, Entity2: b})
}

// NewPlayer creates the keyboard-steered cuboid. speed is in presentation
// units per second and is divided by the configured scale when applied.
func NewPlayer(w *ecs.World, x, y, hx, hy, speed float64) ecs.EntityID {
	return w.Spawn(
		component.BodyBuilder{Spec: physics.NewDynamicBody().WithTranslation(x, y).LockRotations()},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Cuboid(hx, hy))},
		component.Player{Speed: speed},
		component.RenderColor{Color: PlayerColor},
		component.Interpolation{},
	)
}
