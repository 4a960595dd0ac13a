// Package automation turns resolved button presses into real clicks. The
// coordinate arithmetic is pure; the Executor owns the only side effects in
// the pipeline.
package automation

import (
	"fmt"

	"github.com/hsinghweb/eag-v2-s13/internal/instruction"
	"github.com/hsinghweb/eag-v2-s13/internal/registry"
	"github.com/hsinghweb/eag-v2-s13/internal/window"
)

// ClickTarget is an absolute screen coordinate for one press, tagged with
// the originating symbol for diagnostics.
type ClickTarget struct {
	Symbol instruction.Symbol `json:"symbol"`
	X      int                `json:"x"`
	Y      int                `json:"y"`
}

// Resolve computes the absolute click coordinate for an element: the window
// origin plus the element's centroid. Pure and deterministic; fails only
// when the frame reports the window as not visible.
func Resolve(sym instruction.Symbol, desc registry.ElementDescriptor, frame window.Frame) (ClickTarget, error) {
	if !frame.Visible {
		return ClickTarget{}, fmt.Errorf("%w: cannot resolve %q", window.ErrUnavailable, sym)
	}

	return ClickTarget{
		Symbol: sym,
		X:      frame.X + desc.Box.Left + desc.Box.Width/2,
		Y:      frame.Y + desc.Box.Top + desc.Box.Height/2,
	}, nil
}
