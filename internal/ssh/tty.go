// Package ssh adapts gliderlabs/ssh sessions to tcell so a demo can run on a
// remote terminal.
package ssh

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned for sessions opened without a terminal.
var ErrNoPty = errors.New("ssh: session has no pty")

// Tty implements tcell.Tty on top of one SSH session.
type Tty struct {
	session gossh.Session
	term    string
	winCh   <-chan gossh.Window

	mu        sync.Mutex
	window    gossh.Window
	onSize    func()
	following bool
	closed    bool
}

// NewTty wraps s, which must have requested a pty.
func NewTty(s gossh.Session) (*Tty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	return &Tty{session: s, term: pty.Term, window: pty.Window, winCh: winCh}, nil
}

// Term is the TERM value the client sent with its pty request.
func (t *Tty) Term() string { return t.term }

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close ends the session once; later calls are no-ops.
func (t *Tty) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	return t.session.Close()
}

// Start, Stop and Drain have nothing to do: the channel is already open and
// writes are not buffered.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts following window changes until the
// client stops sending them.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	follow := !t.following
	t.following = true
	t.mu.Unlock()
	if !follow {
		return
	}

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			cb := t.onSize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}()
}
