package window

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/go-vgo/robotgo"
	"go.uber.org/zap"
)

// launchPollInterval is how often EnsureOpen re-checks for the process
// after launching it, and launchTimeout bounds that wait.
const (
	launchPollInterval = 250 * time.Millisecond
	launchTimeout      = 10 * time.Second
)

// ProcessLocator finds the application window through its process. The
// zero settle after activation is deliberate: callers re-read the frame
// before every click anyway.
type ProcessLocator struct {
	// ProcessName is matched case-insensitively against the running
	// process list, e.g. "CalculatorApp.exe".
	ProcessName string

	// LaunchPath starts the application when it is not running, e.g.
	// "calc.exe" or "/System/Applications/Calculator.app".
	LaunchPath string

	Logger *zap.Logger
}

// Frame reads the window's current origin from the process bounds.
func (l *ProcessLocator) Frame(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}

	pid, err := l.findPid()
	if err != nil {
		return Frame{}, err
	}

	x, y, w, h := robotgo.GetBounds(pid)
	if w == 0 && h == 0 {
		return Frame{}, fmt.Errorf("%w: process %d has no visible window", ErrUnavailable, pid)
	}

	return Frame{X: x, Y: y, Visible: true}, nil
}

// EnsureOpen activates the application window, launching the process first
// when it is not running.
func (l *ProcessLocator) EnsureOpen(ctx context.Context) error {
	pid, err := l.findPid()
	if err == nil {
		l.Logger.Info("activating application window",
			zap.String("process", l.ProcessName),
			zap.Int("pid", pid),
		)
		if err := robotgo.ActivePid(pid); err != nil {
			return fmt.Errorf("%w: activating pid %d: %v", ErrUnavailable, pid, err)
		}
		return nil
	}

	l.Logger.Info("launching application",
		zap.String("process", l.ProcessName),
		zap.String("path", l.LaunchPath),
	)
	if err := l.launch(ctx); err != nil {
		return err
	}

	// The window appears some time after the process starts; poll until
	// the process is listed or the launch window closes.
	deadline := time.After(launchTimeout)
	ticker := time.NewTicker(launchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return fmt.Errorf("%w: %q did not appear within %s", ErrUnavailable, l.ProcessName, launchTimeout)
		case <-ticker.C:
			if pid, err := l.findPid(); err == nil {
				if err := robotgo.ActivePid(pid); err != nil {
					return fmt.Errorf("%w: activating pid %d: %v", ErrUnavailable, pid, err)
				}
				return nil
			}
		}
	}
}

// findPid scans the process list for the target application.
func (l *ProcessLocator) findPid() (int, error) {
	processes, err := robotgo.Process()
	if err != nil {
		return 0, fmt.Errorf("%w: listing processes: %v", ErrUnavailable, err)
	}

	for _, proc := range processes {
		if strings.EqualFold(proc.Name, l.ProcessName) {
			return proc.Pid, nil
		}
	}

	return 0, fmt.Errorf("%w: process %q not running", ErrUnavailable, l.ProcessName)
}

// launch starts the application the way each platform expects.
func (l *ProcessLocator) launch(ctx context.Context) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", l.LaunchPath)
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", "-a", l.LaunchPath)
	default:
		cmd = exec.CommandContext(ctx, l.LaunchPath)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: launching %q: %v", ErrUnavailable, l.LaunchPath, err)
	}
	return nil
}
