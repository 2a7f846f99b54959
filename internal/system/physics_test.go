package system

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/physics"
)

func TestLoadConfigOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.json")
	data := `{"gravity": {"x": 0, "y": -20}, "fixed_timestep": true, "dt": 0.01}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Gravity.Y != -20 || !cfg.FixedTimestep {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Scale != 1 || !cfg.PhysicsPipelineActive || !cfg.QueryPipelineActive {
		t.Errorf("defaults lost: %+v", cfg)
	}

	_, p := newPhysicsWorld(cfg)
	if p.Params.Dt != 0.01 {
		t.Errorf("step size %v; want 0.01", p.Params.Dt)
	}
	if p.Params.Iterations != 10 {
		t.Errorf("iterations %d; want default 10", p.Params.Iterations)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"scale": -1}`), 0o644)
	if _, err := LoadConfig(bad); err == nil {
		t.Error("negative scale accepted")
	}
	garbled := filepath.Join(dir, "garbled.json")
	os.WriteFile(garbled, []byte(`{`), 0o644)
	if _, err := LoadConfig(garbled); err == nil {
		t.Error("garbled file accepted")
	}
}

func TestAlphaTracksRemainder(t *testing.T) {
	w, p := newPhysicsWorld(fixedConfig())
	StepWorld(w, p, p.Params.Dt*1.5)
	if a := p.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("alpha %v; want 0.5", a)
	}
}

func TestUpdateStepsPastBuildErrors(t *testing.T) {
	w, p := newPhysicsWorld(DefaultConfig())
	ball := fallingBall(t, w, p, 5)
	doomed := fallingBall(t, w, p, 20)
	w.Spawn(
		component.BodyBuilder{Spec: physics.NewDynamicBody().WithTranslation(5, 5)},
		component.ColliderBuilder{Spec: physics.NewCollider(physics.Ball(0))},
	)
	w.Add(ball, component.JointBuilder{Spec: ballJoint(), Entity1: ball, Entity2: ball})
	w.DestroyEntity(doomed)

	total := 0
	for frame := range 5 {
		steps, err := Update(w, p, 0.01)
		if !errors.Is(err, physics.ErrInvalidShape) || !errors.Is(err, physics.ErrInvalidJoint) {
			t.Fatalf("frame %d: got %v; want both build errors", frame, err)
		}
		total += steps
	}
	if total != 5 {
		t.Errorf("took %d steps over 5 failing frames; want 5", total)
	}
	if y := ballY(t, p, ball); y >= 5 {
		t.Errorf("ball frozen at y=%v", y)
	}
	assertGone(t, w, p, doomed)
	if p.Bodies.Len() != 1 || p.Colliders.Len() != 1 {
		t.Errorf("engine holds %d bodies, %d colliders; want 1, 1", p.Bodies.Len(), p.Colliders.Len())
	}
}
