// Package window locates the target application's window on screen. It is
// the boundary to the operating system: everything above it works with the
// Frame value it reports and never caches one, since the window can move
// between clicks.
package window

import (
	"context"
	"errors"
)

// ErrUnavailable means the window is not visible or its frame could not be
// obtained. Transient: the caller may retry after EnsureOpen.
var ErrUnavailable = errors.New("calculator window unavailable")

// Frame is the window's current screen origin and visibility.
type Frame struct {
	X       int
	Y       int
	Visible bool
}

// Locator supplies the target window's current frame and can launch or
// focus the application when it is not running.
type Locator interface {
	// Frame reads the window's current origin. Implementations must not
	// cache: a fresh read is required before every click.
	Frame(ctx context.Context) (Frame, error)

	// EnsureOpen launches the application if it is not running and brings
	// its window to the foreground.
	EnsureOpen(ctx context.Context) error
}
