package device

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"
)

// HelperCommand is the hidden CLI subcommand that runs the helper side
const HelperCommand = "locate-helper"

// Process is a launched helper
type Process interface {
	Alive() bool
	Kill() error
}

// Launcher starts the helper that will write its result to fixPath
type Launcher interface {
	Launch(ctx context.Context, fixPath string, helperTimeout time.Duration) (Process, error)
}

// ExecLauncher runs the helper as a child process of Executable
type ExecLauncher struct {
	Executable string
	ExtraArgs  []string
}

// NewSelfLauncher re-executes the running binary in helper mode
func NewSelfLauncher() (*ExecLauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate own executable: %w", err)
	}
	return &ExecLauncher{Executable: exe}, nil
}

// HelperArgs builds the command line understood by the helper subcommand
func HelperArgs(fixPath string, helperTimeout time.Duration) []string {
	return []string{HelperCommand, "--out", fixPath, "--timeout", helperTimeout.String()}
}

// Launch starts the child. The child is not bound to ctx; the requester kills it explicitly.
func (l *ExecLauncher) Launch(ctx context.Context, fixPath string, helperTimeout time.Duration) (Process, error) {
	args := append(append([]string{}, l.ExtraArgs...), HelperArgs(fixPath, helperTimeout)...)
	cmd := exec.Command(l.Executable, args...)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start location helper: %w", err)
	}

	p := &execProcess{cmd: cmd, done: make(chan struct{})}
	go func() {
		p.waitErr = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

type execProcess struct {
	cmd     *exec.Cmd
	done    chan struct{}
	waitErr error
	once    sync.Once
}

// Alive reports whether the child has not exited yet
func (p *execProcess) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Kill terminates the child and waits for it to be reaped
func (p *execProcess) Kill() error {
	var err error
	p.once.Do(func() {
		if !p.Alive() {
			return
		}
		err = p.cmd.Process.Kill()
		<-p.done
	})
	return err
}
