package demo

import (
	"fmt"

	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/scene"
	"ecs-chipmunk/internal/system"
)

// RunHeadless simulates frames frames of the named scene at the configured
// frame rate without a screen and returns the session summary. It is meant
// for profiling.
func RunHeadless(opts Options, frames int) (SessionLog, error) {
	if opts.Scene == "" {
		opts.Scene = scene.Default
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	s, ok := scene.ByName(opts.Scene)
	if !ok {
		return SessionLog{}, fmt.Errorf("unknown scene %q", opts.Scene)
	}

	w := ecs.NewWorld()
	p := system.Setup(w, opts.Config)
	p.Logger = opts.Logger
	update := s.Setup(w, p)

	log := SessionLog{Scene: s.Name, FixedTimestep: p.Config.FixedTimestep}
	dt := 1 / float64(opts.FrameRate)
	for i := range frames {
		steps, err := system.Update(w, p, dt)
		if err != nil {
			return log, fmt.Errorf("frame %d: %w", i, err)
		}
		log.Frames++
		log.Steps += steps
		log.Seconds += dt
		if update != nil {
			update(w, p, scene.Frame{Elapsed: log.Seconds})
		}
		bodies, colliders, joints := p.Maps.Len()
		log.MaxBodies = max(log.MaxBodies, bodies)
		log.MaxColliders = max(log.MaxColliders, colliders)
		log.MaxJoints = max(log.MaxJoints, joints)
	}
	return log, nil
}
