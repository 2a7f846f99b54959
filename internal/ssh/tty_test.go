package ssh

import (
	"errors"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeSession implements the parts of gossh.Session a Tty uses.
type fakeSession struct {
	gossh.Session
	pty    gossh.Pty
	hasPty bool
	winCh  chan gossh.Window
	closes int
}

func (f *fakeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	return f.pty, f.winCh, f.hasPty
}

func (f *fakeSession) Close() error {
	f.closes++
	return nil
}

func TestNewTtyRequiresPty(t *testing.T) {
	_, err := NewTty(&fakeSession{})
	if !errors.Is(err, ErrNoPty) {
		t.Fatalf("expected ErrNoPty; got %v", err)
	}
}

func TestTtyWindowSizeFollowsResizes(t *testing.T) {
	s := &fakeSession{
		pty:    gossh.Pty{Term: "xterm-256color", Window: gossh.Window{Width: 80, Height: 24}},
		hasPty: true,
		winCh:  make(chan gossh.Window),
	}
	tty, err := NewTty(s)
	if err != nil {
		t.Fatalf("NewTty: %v", err)
	}
	if tty.Term() != "xterm-256color" {
		t.Errorf("got term %q", tty.Term())
	}
	if ws, _ := tty.WindowSize(); ws.Width != 80 || ws.Height != 24 {
		t.Errorf("got %dx%d; want 80x24", ws.Width, ws.Height)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	s.winCh <- gossh.Window{Width: 120, Height: 40}
	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not called")
	}
	if ws, _ := tty.WindowSize(); ws.Width != 120 || ws.Height != 40 {
		t.Errorf("got %dx%d; want 120x40", ws.Width, ws.Height)
	}
	close(s.winCh)
}

func TestTtyCloseOnce(t *testing.T) {
	s := &fakeSession{hasPty: true}
	tty, _ := NewTty(s)
	tty.Close()
	tty.Close()
	if s.closes != 1 {
		t.Errorf("session closed %d times; want 1", s.closes)
	}
}
