// Package calculator composes the instruction pipeline into the three
// operations exposed to callers: open the application, run a natural
// language instruction, press a single button. Handlers in this package
// are a thin transport wrapper; all logic lives in the components the
// Controller is wired with.
package calculator

import (
	"context"

	"github.com/hsinghweb/eag-v2-s13/internal/automation"
	"github.com/hsinghweb/eag-v2-s13/internal/instruction"
	"github.com/hsinghweb/eag-v2-s13/internal/window"
)

// Controller wires the parser, compiler, registry and executor together.
// All collaborators are injected so tests can run the full pipeline with
// fakes.
type Controller struct {
	Locator  window.Locator
	Executor *automation.Executor
}

// OpenApplication launches or focuses the calculator window.
func (c *Controller) OpenApplication(ctx context.Context) error {
	return c.Locator.EnsureOpen(ctx)
}

// RunInstruction parses a natural-language instruction, compiles it into
// button presses and clicks them in order. The returned report describes
// every press, including partial progress when a click fails mid-sequence.
func (c *Controller) RunInstruction(ctx context.Context, text string) (automation.Report, error) {
	steps, err := instruction.Parse(text)
	if err != nil {
		return automation.Report{FailedIndex: -1}, err
	}

	symbols, err := instruction.Compile(steps)
	if err != nil {
		return automation.Report{FailedIndex: -1}, err
	}

	// No press has been attempted yet when opening fails, so the report
	// carries the compiled sequence but no clicks.
	if err := c.Locator.EnsureOpen(ctx); err != nil {
		return automation.Report{Symbols: symbols, FailedIndex: -1}, err
	}

	return c.Executor.Execute(ctx, symbols)
}

// PressButton clicks a single named button, e.g. "7", "+", "square".
func (c *Controller) PressButton(ctx context.Context, name string) (automation.Report, error) {
	symbols := []instruction.Symbol{instruction.Symbol(name)}

	if err := c.Locator.EnsureOpen(ctx); err != nil {
		return automation.Report{Symbols: symbols, FailedIndex: -1}, err
	}

	return c.Executor.Execute(ctx, symbols)
}
