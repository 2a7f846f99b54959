package component

import (
	"math"
	"testing"

	"ecs-chipmunk/internal/physics"

	"github.com/jakecoffman/cp"
)

func iso(x, y, r float64) physics.Isometry {
	return physics.Isometry{Translation: cp.Vector{X: x, Y: y}, Rotation: r}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestInterpolationLerp(t *testing.T) {
	ip := Interpolation{Previous: iso(0, 0, 0), Valid: true}
	tests := []struct {
		name    string
		current physics.Isometry
		alpha   float64
		want    physics.Isometry
	}{
		{"start", iso(2, 4, 1), 0, iso(0, 0, 0)},
		{"half", iso(2, 4, 1), 0.5, iso(1, 2, 0.5)},
		{"end", iso(2, 4, 1), 1, iso(2, 4, 1)},
		{"clamped", iso(2, 4, 1), 3, iso(2, 4, 1)},
		{"short way", iso(0, 0, 2*math.Pi-0.2), 0.5, iso(0, 0, -0.1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ip.Lerp(tt.current, tt.alpha)
			if !near(got.Translation.X, tt.want.Translation.X) ||
				!near(got.Translation.Y, tt.want.Translation.Y) ||
				!near(got.Rotation, tt.want.Rotation) {
				t.Errorf("got %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestInterpolationInvalidReturnsCurrent(t *testing.T) {
	cur := iso(3, 3, 0.3)
	if got := (Interpolation{}).Lerp(cur, 0.5); got != cur {
		t.Errorf("got %+v; want %+v", got, cur)
	}
}
