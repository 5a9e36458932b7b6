package daemon

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/spyoungtech/ahk-rewrite/internal/errors"
)

// maxStderrBufferSize caps the retained stderr buffer. The callback still
// receives every line; only the buffer kept for crash reports stops growing.
const maxStderrBufferSize = 1 * 1024 * 1024

// interpreterArgs are passed before the script path on every launch:
// UTF-8 I/O code page and errors routed to stdout per the daemon contract.
var interpreterArgs = []string{"/CP65001", "/ErrorStdOut"}

// Supervisor spawns, monitors, and terminates one interpreter process.
type Supervisor struct {
	log            *slog.Logger
	exePath        string
	scriptPath     string
	cwd            string
	env            map[string]string
	stderrCallback func(string)

	mu          sync.Mutex
	cmd         *exec.Cmd
	stdin       io.WriteCloser
	stdout      io.ReadCloser
	stderr      io.ReadCloser
	stdinClosed bool
	closing     bool
	exited      bool
	exitErr     error

	startTime time.Time
	stderrWg  sync.WaitGroup
	stderrMu  sync.Mutex
	stderrBuf strings.Builder
	reapOnce  sync.Once
	crashErr  *errors.DaemonCrashedError
}

// SupervisorConfig holds the launch parameters for one daemon process.
type SupervisorConfig struct {
	ExePath    string
	ScriptPath string
	Cwd        string
	Env        map[string]string
	Stderr     func(string)
}

// NewSupervisor creates a supervisor. The process is not launched until Start.
func NewSupervisor(log *slog.Logger, cfg SupervisorConfig) *Supervisor {
	return &Supervisor{
		log:            log.With("component", "supervisor"),
		exePath:        cfg.ExePath,
		scriptPath:     cfg.ScriptPath,
		cwd:            cfg.Cwd,
		env:            cfg.Env,
		stderrCallback: cfg.Stderr,
	}
}

// Start launches the interpreter with the bootstrap script and wires up the
// stdio pipes. Returns SpawnError if the process fails to launch.
func (s *Supervisor) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		return errors.ErrChannelAlreadyStarted
	}

	args := make([]string, 0, len(interpreterArgs)+1)
	args = append(args, interpreterArgs...)
	args = append(args, s.scriptPath)

	s.log.Info("Starting daemon process", "exe", s.exePath, "script", s.scriptPath)

	//nolint:gosec // G204: launching a configured interpreter is the point
	cmd := exec.Command(s.exePath, args...)
	cmd.Dir = s.cwd
	cmd.Env = buildEnv(s.env)
	setProcAttributes(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &errors.SpawnError{Path: s.exePath, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &errors.SpawnError{Path: s.exePath, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &errors.SpawnError{Path: s.exePath, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		return &errors.SpawnError{Path: s.exePath, Err: err}
	}

	s.cmd = cmd
	s.stdin = stdin
	s.stdout = stdout
	s.stderr = stderr
	s.startTime = time.Now()

	s.stderrWg.Add(1)

	go s.readStderr(stderr)

	s.log.Info("Daemon process started", "pid", cmd.Process.Pid)

	return nil
}

// readStderr buffers stderr lines for crash reporting and forwards them to
// the callback. Runs until the pipe closes when the process exits.
func (s *Supervisor) readStderr(r io.Reader) {
	defer s.stderrWg.Done()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		s.stderrMu.Lock()

		if s.stderrBuf.Len() < maxStderrBufferSize {
			if s.stderrBuf.Len() > 0 {
				s.stderrBuf.WriteString("\n")
			}

			s.stderrBuf.WriteString(line)
		}

		s.stderrMu.Unlock()

		if s.stderrCallback != nil {
			s.stderrCallback(line)
		}
	}

	if err := scanner.Err(); err != nil {
		s.log.Debug("Stderr scanner error", "error", err)
	}
}

// Stdout returns the process's stdout stream for frame reading.
func (s *Supervisor) Stdout() io.Reader {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stdout
}

// Write sends raw bytes to the process's stdin. Callers serialize.
func (s *Supervisor) Write(data []byte) error {
	s.mu.Lock()
	stdin := s.stdin
	closed := s.stdinClosed
	s.mu.Unlock()

	if stdin == nil {
		return errors.ErrChannelNotStarted
	}

	if closed {
		return errors.ErrStdinClosed
	}

	if _, err := stdin.Write(data); err != nil {
		return fmt.Errorf("write to daemon stdin: %w", err)
	}

	return nil
}

// CloseStdin signals end of input. The daemon script exits its read loop on
// EOF, so this is the graceful shutdown path.
func (s *Supervisor) CloseStdin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdin == nil || s.stdinClosed {
		return nil
	}

	s.stdinClosed = true

	return s.stdin.Close()
}

// Alive reports whether the process is running.
func (s *Supervisor) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cmd != nil && !s.exited
}

// StartTime returns when the process was launched.
func (s *Supervisor) StartTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.startTime
}

// Pid returns the daemon's process id, or 0 if not running.
func (s *Supervisor) Pid() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil || s.cmd.Process == nil {
		return 0
	}

	return s.cmd.Process.Pid
}

// BeginShutdown marks the supervisor as intentionally stopping so a
// subsequent process exit is not reported as a crash.
func (s *Supervisor) BeginShutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closing = true
	s.stdinClosed = true
}

// Kill forcefully terminates the process. Safe to call multiple times or on
// an already-exited process.
func (s *Supervisor) Kill() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closing = true

	if s.cmd == nil || s.cmd.Process == nil || s.exited {
		return nil
	}

	s.log.Debug("Killing daemon process", "pid", s.cmd.Process.Pid)

	if err := s.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill daemon process (pid %d): %w", s.cmd.Process.Pid, err)
	}

	return nil
}

// Reap waits for the process to exit and records the outcome. Called by the
// channel's reader after stdout reaches EOF (the pipe readers must finish
// before Wait). Returns nil for an intentional shutdown, otherwise a
// DaemonCrashedError carrying the exit code and buffered stderr.
func (s *Supervisor) Reap() *errors.DaemonCrashedError {
	s.reapOnce.Do(func() {
		s.stderrWg.Wait()

		err := s.cmd.Wait()

		s.mu.Lock()
		s.exited = true
		s.exitErr = err
		closing := s.closing
		s.mu.Unlock()

		if closing {
			s.log.Debug("Daemon process terminated during shutdown")

			return
		}

		exitCode := 0

		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		s.stderrMu.Lock()
		stderrOutput := s.stderrBuf.String()
		s.stderrMu.Unlock()

		s.log.Error("Daemon process exited unexpectedly",
			"exit_code", exitCode,
			"stderr", stderrOutput,
			"uptime", time.Since(s.startTime),
		)

		s.crashErr = &errors.DaemonCrashedError{
			ExitCode: exitCode,
			Stderr:   stderrOutput,
			Err:      err,
		}
	})

	return s.crashErr
}

// buildEnv merges extra variables over the host environment.
func buildEnv(extra map[string]string) []string {
	env := os.Environ()
	for k, v := range extra {
		env = append(env, k+"="+v)
	}

	return env
}
