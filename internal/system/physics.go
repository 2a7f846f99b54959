package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"

	"github.com/jakecoffman/cp"
)

// Config holds the knobs application code may change between frames.
type Config struct {
	Gravity cp.Vector `json:"gravity"`
	// Scale converts world units to presentation units (terminal cells per
	// meter for the renderer).
	Scale float64 `json:"scale"`
	// PhysicsPipelineActive stops the simulation when false; time still
	// accumulates in fixed-timestep mode.
	PhysicsPipelineActive bool `json:"physics_pipeline_active"`
	QueryPipelineActive   bool `json:"query_pipeline_active"`
	// FixedTimestep advances the world in sub-steps of IntegrationParameters.Dt
	// instead of one step of the frame delta.
	FixedTimestep bool `json:"fixed_timestep"`
	// Dt and Iterations override the integration parameters when non-zero.
	Dt         float64 `json:"dt,omitempty"`
	Iterations uint    `json:"iterations,omitempty"`
}

// DefaultConfig returns earth gravity, unit scale, both pipelines active and
// a variable timestep.
func DefaultConfig() Config {
	return Config{
		Gravity:               cp.Vector{X: 0, Y: -9.81},
		Scale:                 1,
		PhysicsPipelineActive: true,
		QueryPipelineActive:   true,
	}
}

// LoadConfig reads a JSON file over DefaultConfig. Keys absent from the file
// keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Scale <= 0 {
		return cfg, fmt.Errorf("parse config %s: scale must be positive, got %v", path, cfg.Scale)
	}
	return cfg, nil
}

// Physics bundles the simulation resources the systems share. It is owned by
// one goroutine; only Events may be drained from elsewhere.
type Physics struct {
	Config    Config
	Params    physics.IntegrationParameters
	Pipeline  *physics.Pipeline
	Query     *physics.QueryPipeline
	Bodies    *physics.BodySet
	Colliders *physics.ColliderSet
	Joints    *physics.JointSet
	Filters   *physics.PairFilters
	Events    *EventQueue
	Clock     SimulationClock
	Maps      *EntityMaps
	// Logger receives creation and destruction traces; nil disables them.
	Logger *log.Logger
}

// Setup creates the physics resources for w and registers the handle
// components whose removal the destruction pass must observe.
func Setup(w *ecs.World, cfg Config) *Physics {
	w.Track(component.CBodyHandle)
	w.Track(component.CColliderHandle)
	w.Track(component.CJointHandle)

	params := physics.DefaultIntegrationParameters()
	if cfg.Dt > 0 {
		params.Dt = cfg.Dt
	}
	if cfg.Iterations > 0 {
		params.Iterations = cfg.Iterations
	}
	return &Physics{
		Config:    cfg,
		Params:    params,
		Pipeline:  physics.NewPipeline(),
		Query:     physics.NewQueryPipeline(),
		Bodies:    physics.NewBodySet(),
		Colliders: physics.NewColliderSet(),
		Joints:    physics.NewJointSet(),
		Filters:   physics.NewPairFilters(),
		Events:    NewEventQueue(true),
		Maps:      NewEntityMaps(),
	}
}

// Alpha is the interpolation factor between the previous and current body
// poses: the fraction of a fixed step left in the clock. It is 1 with a
// variable timestep.
func (p *Physics) Alpha() float64 {
	if !p.Config.FixedTimestep || p.Params.Dt <= 0 {
		return 1
	}
	return p.Clock.Remainder / p.Params.Dt
}

// Body resolves the live body held by entity id.
func (p *Physics) Body(id ecs.EntityID) (*physics.Body, bool) {
	h, ok := p.Maps.Body(id)
	if !ok {
		return nil, false
	}
	return p.Bodies.Get(h)
}

func (p *Physics) logf(format string, args ...any) {
	if p.Logger != nil {
		p.Logger.Printf(format, args...)
	}
}

// Update runs one frame of the synchronization systems in order and returns
// the number of simulation steps taken. A failing creation pass does not stop
// the frame: the world still steps and destroys, and the errors are joined.
func Update(w *ecs.World, p *Physics, dt float64) (int, error) {
	var errs []error
	for _, create := range []func(*ecs.World, *Physics) error{
		CreateBodiesAndColliders,
		AttachColliders,
		CreateJoints,
	} {
		if err := create(w, p); err != nil {
			errs = append(errs, err)
		}
	}
	steps := StepWorld(w, p, dt)
	DestroyBodiesAndColliders(w, p)
	return steps, errors.Join(errs...)
}
