// ecs-chipmunk runs the physics demo scenes in the terminal.
//
//	go run . -scene joints -fixed
//	go run . -scene joints -v -log physics.log
//	go run . -scene boxes -frames 600 -profile cpu
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"ecs-chipmunk/internal/demo"
	"ecs-chipmunk/internal/scene"
	"ecs-chipmunk/internal/system"

	"github.com/pkg/profile"
)

func main() {
	os.Exit(run())
}

// run holds the program so deferred cleanup, the profile writer included,
// completes before main exits.
func run() int {
	sceneName := flag.String("scene", scene.Default, "Scene to start with: "+strings.Join(scene.Names(), ", "))
	fixed := flag.Bool("fixed", false, "Advance the simulation in fixed steps with interpolated drawing")
	configFile := flag.String("config", "", "Path to a JSON physics configuration")
	verbose := flag.Bool("v", false, "Log body, collider and joint lifecycle to the -log file")
	logPath := flag.String("log", "ecs-chipmunk.log", "File -v appends to; - writes to stderr and needs -frames")
	frames := flag.Int("frames", 0, "Simulate this many frames without a screen and print a summary")
	prof := flag.String("profile", "", "Write a cpu or mem profile to the working directory")
	flag.Parse()

	cfg := system.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = system.LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	if *fixed {
		cfg.FixedTimestep = true
	}

	opts := demo.Options{Scene: *sceneName, Config: cfg}
	if *verbose {
		out, closeLog, err := openLog(*logPath, *frames > 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		defer closeLog()
		opts.Logger = log.New(out, "physics: ", log.Lmicroseconds)
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown profile %q\n", *prof)
		return 2
	}

	if *frames > 0 {
		summary, err := demo.RunHeadless(opts, *frames)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Printf("%s: %d frames, %d steps, %.2fs simulated, up to %d bodies %d colliders %d joints\n",
			summary.Scene, summary.Frames, summary.Steps, summary.Seconds,
			summary.MaxBodies, summary.MaxColliders, summary.MaxJoints)
		return 0
	}

	d, err := demo.NewTerminal(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	d.Run()
	return 0
}

// openLog opens the destination of the lifecycle traces. Stderr ("-") is only
// allowed headless, since the terminal UI owns the screen.
func openLog(path string, headless bool) (io.Writer, func(), error) {
	if path == "-" {
		if !headless {
			return nil, nil, fmt.Errorf("-log - needs -frames: the terminal UI draws over stderr")
		}
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
