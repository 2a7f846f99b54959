package main

import (
	"bytes"
	"strings"
	"testing"

	"ecs-chipmunk/internal/system"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテスト名前です", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
		{"invalid utf-8 dropped", "ab\xffcd", "abcd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
		{"xterm-kitty", "xterm-kitty", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
	if !allowedTerms[defaultTerm] {
		t.Errorf("default term %q is not allowed", defaultTerm)
	}
}

// fakeSession records what the handler writes before a screen exists.
type fakeSession struct {
	gossh.Session
	out     bytes.Buffer
	hasPty  bool
	command []string
}

func (f *fakeSession) Write(b []byte) (int, error) { return f.out.Write(b) }
func (f *fakeSession) Command() []string           { return f.command }
func (f *fakeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	return gossh.Pty{Term: "xterm"}, nil, f.hasPty
}

func TestHandleSessionRejections(t *testing.T) {
	cases := []struct {
		name    string
		session *fakeSession
		full    bool
		want    string
	}{
		{"server full", &fakeSession{hasPty: true}, true, "server is full"},
		{"no pty", &fakeSession{}, false, "requires a PTY"},
		{"unknown scene", &fakeSession{hasPty: true, command: []string{"nope\x1b"}}, false, `Unknown scene "nope"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHub(1, system.DefaultConfig())
			if tc.full {
				h.slots <- struct{}{}
			}
			h.handleSession(tc.session)
			if got := tc.session.out.String(); !strings.Contains(got, tc.want) {
				t.Errorf("got %q; want it to contain %q", got, tc.want)
			}
			if !tc.full && len(h.slots) != 0 {
				t.Error("session slot not released")
			}
		})
	}
}

func TestNewHubKeepsOneSlot(t *testing.T) {
	if got := cap(newHub(0, system.DefaultConfig()).slots); got != 1 {
		t.Errorf("got %d slots; want 1", got)
	}
}

func TestHostKeyRoundTrip(t *testing.T) {
	signer, pemBytes, err := newHostKey()
	if err != nil {
		t.Fatalf("newHostKey: %v", err)
	}
	parsed, err := xssh.ParsePrivateKey(pemBytes)
	if err != nil {
		t.Fatalf("parse generated key: %v", err)
	}
	if !bytes.Equal(parsed.PublicKey().Marshal(), signer.PublicKey().Marshal()) {
		t.Error("persisted key does not match the signer")
	}
}

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	path := t.TempDir() + "/host_key"
	first := loadOrCreateHostKey(path)
	second := loadOrCreateHostKey(path)
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("second load generated a new key")
	}
}
