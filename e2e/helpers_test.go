// ABOUTME: E2E harness: builds the pebbletree binary once and drives it through a PTY
// ABOUTME: Output is ANSI-stripped before matching so assertions see plain text

package e2e

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/mauromedda/pebbletree/pkg/tui/canvas"
)

var binPath string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	dir, err := os.MkdirTemp("", "pebbletree-e2e")
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating temp dir: %v\n", err)
		os.Exit(1)
	}
	binPath = filepath.Join(dir, "pebbletree")
	build := exec.Command("go", "build", "-o", binPath, "../cmd/pebbletree")
	build.Stdout, build.Stderr = os.Stdout, os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "building pebbletree: %v\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// testEnv isolates the binary from the user's config.
func testEnv(t *testing.T) []string {
	t.Helper()
	return append(os.Environ(),
		"HOME="+t.TempDir(),
		"TERM=xterm-256color",
		"PEBBLETREE_BACKGROUND=dark",
	)
}

// ptySession is a running binary attached to a pseudo-terminal.
type ptySession struct {
	cmd  *exec.Cmd
	tty  *os.File
	mu   sync.Mutex
	out  bytes.Buffer
	done chan error
}

func startApp(t *testing.T, args ...string) *ptySession {
	t.Helper()

	cmd := exec.Command(binPath, args...)
	cmd.Env = testEnv(t)
	cmd.Dir = t.TempDir()

	tty, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 100})
	if err != nil {
		t.Fatalf("starting pebbletree: %v", err)
	}

	s := &ptySession{cmd: cmd, tty: tty, done: make(chan error, 1)}
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := tty.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	go func() { s.done <- cmd.Wait() }()
	return s
}

// text returns everything written so far with escape sequences removed.
func (s *ptySession) text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return canvas.StripANSI(s.out.String())
}

func (s *ptySession) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.text(), want) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out after %v waiting for %q; output:\n%s", timeout, want, s.text())
}

// send types keys one at a time so each arrives as its own key event.
func (s *ptySession) send(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if _, err := io.WriteString(s.tty, k); err != nil {
			t.Fatalf("writing %q: %v", k, err)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (s *ptySession) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	if _, err := s.tty.Write([]byte{c & 0x1f}); err != nil {
		t.Fatalf("writing ctrl+%c: %v", c, err)
	}
}

func (s *ptySession) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case err := <-s.done:
		if err != nil {
			t.Fatalf("pebbletree exited with %v; output:\n%s", err, s.text())
		}
	case <-time.After(timeout):
		t.Fatalf("pebbletree did not exit within %v; output:\n%s", timeout, s.text())
	}
}

func (s *ptySession) close() {
	_ = s.cmd.Process.Kill()
	_ = s.tty.Close()
}

// runPrint runs the binary without a terminal, feeding stdin.
func runPrint(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(binPath, append([]string{"--print"}, args...)...)
	cmd.Env = testEnv(t)
	cmd.Dir = t.TempDir()
	cmd.Stdin = strings.NewReader(stdin)
	var out bytes.Buffer
	cmd.Stdout, cmd.Stderr = &out, &out

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return out.String(), 0
	case errors.As(err, &exitErr):
		return out.String(), exitErr.ExitCode()
	default:
		t.Fatalf("running pebbletree: %v", err)
		return "", -1
	}
}
