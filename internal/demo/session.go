package demo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// SessionLog records one visit to a scene.
type SessionLog struct {
	Scene         string    `json:"scene"`
	Started       time.Time `json:"started"`
	Seconds       float64   `json:"seconds"` // simulated time
	Frames        int       `json:"frames"`
	Steps         int       `json:"steps"`
	FixedTimestep bool      `json:"fixed_timestep"`
	MaxBodies     int       `json:"max_bodies"`
	MaxColliders  int       `json:"max_colliders"`
	MaxJoints     int       `json:"max_joints"`
	Errors        int       `json:"errors"`
}

// saveSessionLog appends the finished visit as a single JSON line to
// sessions.jsonl. Errors are discarded so a disk problem never stops the demo.
func saveSessionLog(log SessionLog) {
	dir, err := sessionLogDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}

// sessionLogDir returns the directory where session logs are stored:
// $XDG_DATA_HOME/ecs-chipmunk, defaulting to ~/.local/share/ecs-chipmunk.
func sessionLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ecs-chipmunk"), nil
}
