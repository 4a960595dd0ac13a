package automation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/hsinghweb/eag-v2-s13/internal/instruction"
	"github.com/hsinghweb/eag-v2-s13/internal/registry"
	"github.com/hsinghweb/eag-v2-s13/internal/window"
)

// tracer is the executor's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("automation")

// Clicker is the low-level click primitive, supplied externally.
type Clicker interface {
	Click(x, y int) error
}

// ClickResult records one attempted press.
type ClickResult struct {
	Symbol instruction.Symbol `json:"symbol"`
	X      int                `json:"x"`
	Y      int                `json:"y"`
	OK     bool               `json:"ok"`
	Error  string             `json:"error,omitempty"`
}

// Report is the outcome of executing a press sequence. FailedIndex is -1
// when every press succeeded; otherwise it is the index of the press that
// failed, and no later press was attempted.
type Report struct {
	Symbols     []instruction.Symbol `json:"symbols"`
	Clicks      []ClickResult        `json:"clicks"`
	FailedIndex int                  `json:"failed_index"`
}

// Executor issues clicks strictly in sequence order. Each press depends on
// the visible state left by the one before it, so there is no parallelism
// and no retry: a failed press aborts the remainder and the partial report
// says how far execution got. Clicks already issued are not rolled back.
type Executor struct {
	Registry *registry.Registry
	Locator  window.Locator
	Clicker  Clicker

	// Settle is how long the UI gets to render between presses.
	Settle time.Duration

	Logger *zap.Logger
}

// Execute resolves and clicks every symbol in order, re-reading the window
// frame before each press because the window may have moved as a side
// effect of a prior one. The context is checked between presses so an
// external abort never interrupts a press mid-flight.
func (e *Executor) Execute(ctx context.Context, symbols []instruction.Symbol) (Report, error) {
	ctx, span := tracer.Start(ctx, "automation.execute",
		trace.WithAttributes(attribute.Int("press.count", len(symbols))),
	)
	defer span.End()

	report := Report{Symbols: symbols, FailedIndex: -1}

	for i, sym := range symbols {
		if err := ctx.Err(); err != nil {
			report.FailedIndex = i
			span.SetStatus(codes.Error, "cancelled")
			return report, fmt.Errorf("press %d (%s): %w", i, sym, err)
		}

		target, err := e.press(ctx, i, sym)
		if err != nil {
			report.Clicks = append(report.Clicks, ClickResult{
				Symbol: sym, X: target.X, Y: target.Y, Error: err.Error(),
			})
			report.FailedIndex = i
			span.RecordError(err)
			span.SetStatus(codes.Error, fmt.Sprintf("failed at press %d", i))
			return report, fmt.Errorf("press %d (%s): %w", i, sym, err)
		}

		report.Clicks = append(report.Clicks, ClickResult{
			Symbol: sym, X: target.X, Y: target.Y, OK: true,
		})

		if i < len(symbols)-1 {
			if err := e.settle(ctx); err != nil {
				report.FailedIndex = i + 1
				span.SetStatus(codes.Error, "cancelled")
				return report, fmt.Errorf("press %d (%s): %w", i+1, symbols[i+1], err)
			}
		}
	}

	span.SetStatus(codes.Ok, "")
	return report, nil
}

// press resolves one symbol to a screen coordinate and clicks it.
func (e *Executor) press(ctx context.Context, index int, sym instruction.Symbol) (ClickTarget, error) {
	_, span := tracer.Start(ctx, fmt.Sprintf("automation.press.%d", index),
		trace.WithAttributes(
			attribute.Int("press.index", index),
			attribute.String("press.symbol", string(sym)),
		),
	)
	defer span.End()

	desc, err := e.Registry.Resolve(string(sym))
	if err != nil {
		return ClickTarget{}, err
	}

	frame, err := e.Locator.Frame(ctx)
	if err != nil {
		return ClickTarget{}, err
	}

	target, err := Resolve(sym, desc, frame)
	if err != nil {
		return ClickTarget{}, err
	}

	span.SetAttributes(
		attribute.Int("press.x", target.X),
		attribute.Int("press.y", target.Y),
	)

	e.Logger.Info("clicking button",
		zap.String("symbol", string(sym)),
		zap.String("element", desc.ID),
		zap.Int("x", target.X),
		zap.Int("y", target.Y),
	)

	if err := e.Clicker.Click(target.X, target.Y); err != nil {
		return target, fmt.Errorf("clicking %q at (%d,%d): %w", sym, target.X, target.Y, err)
	}

	return target, nil
}

// settle waits for the UI to render before the next coordinate is trusted.
func (e *Executor) settle(ctx context.Context) error {
	if e.Settle <= 0 {
		return nil
	}

	timer := time.NewTimer(e.Settle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
