// ecs-chipmunk-server serves the physics demo over SSH. Every connection gets
// its own world. Build:
//
//	go build -o ecs-chipmunk-server ./cmd/server
//
// Usage:
//
//	./ecs-chipmunk-server [--port 2222] [--key server_host_key] [--max-sessions 8]
//
// Connect, optionally naming a scene:
//
//	ssh -t -p 2222 localhost joints
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"ecs-chipmunk/internal/demo"
	"ecs-chipmunk/internal/scene"
	internalssh "ecs-chipmunk/internal/ssh"
	"ecs-chipmunk/internal/system"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	maxSessions := flag.Int("max-sessions", 8, "Maximum number of concurrent demo sessions")
	configFile := flag.String("config", "", "Path to a JSON physics configuration")
	flag.Parse()

	cfg := system.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = system.LoadConfig(*configFile); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	signer := loadOrCreateHostKey(*keyFile)
	h := newHub(*maxSessions, cfg)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("ecs-chipmunk SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost [scene]", *port)
	log.Fatal(srv.ListenAndServe())
}

// ─── sessions ───────────────────────────────────────────────────────────────

// allowedTerms are the TERM values a client may select. The value ends up in
// the process environment for terminfo lookup, so it is never taken verbatim.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// hub runs one demo per SSH session up to a fixed number at a time.
type hub struct {
	slots chan struct{}
	cfg   system.Config
}

func newHub(maxSessions int, cfg system.Config) *hub {
	return &hub{slots: make(chan struct{}, max(maxSessions, 1)), cfg: cfg}
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the demo so the SSH session stays open.
func (h *hub) handleSession(s gossh.Session) {
	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The server is full. Try again later.")
		return
	}

	tty, err := internalssh.NewTty(s)
	if err != nil {
		fmt.Fprintln(s, "The demo requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	name := scene.Default
	if args := s.Command(); len(args) > 0 {
		name = args[0]
	}
	if _, ok := scene.ByName(name); !ok {
		fmt.Fprintf(s, "Unknown scene %q. Scenes: %s\n", sanitizeName(name), strings.Join(scene.Names(), ", "))
		return
	}

	term := tty.Term()
	if !allowedTerms[term] {
		term = defaultTerm
	}
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	user := sanitizeName(s.User())
	log.Printf("%s connected from %s: %s", user, s.RemoteAddr(), name)
	d, err := demo.New(screen, demo.Options{Scene: name, Config: h.cfg})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Demo setup failed: %v\n", err)
		return
	}
	d.Run()
	log.Printf("%s disconnected", user)
}

// maxNameBytes bounds user-supplied names before they reach logs.
const maxNameBytes = 16

// sanitizeName drops control characters from s and truncates it to
// maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	signer, pemBytes, err := newHostKey()
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	_ = os.WriteFile(path, pemBytes, 0600)
	return signer
}

// newHostKey generates an ed25519 signer and its PEM encoding.
func newHostKey() (gossh.Signer, []byte, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "ecs-chipmunk server")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal: %w", err)
	}
	return signer, pem.EncodeToMemory(block), nil
}
