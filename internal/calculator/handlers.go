package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/hsinghweb/eag-v2-s13/internal/automation"
	"github.com/hsinghweb/eag-v2-s13/internal/instruction"
	"github.com/hsinghweb/eag-v2-s13/internal/observability"
	"github.com/hsinghweb/eag-v2-s13/internal/registry"
	"github.com/hsinghweb/eag-v2-s13/internal/window"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// statusForError maps pipeline errors onto HTTP statuses: parsing failures
// are the caller's to correct, a registry miss means the element map is
// stale, an unavailable window is transient, and anything else is a failed
// click downstream.
func statusForError(err error) int {
	switch {
	case errors.Is(err, instruction.ErrUnsupportedInstruction),
		errors.Is(err, instruction.ErrNumberParse),
		errors.Is(err, instruction.ErrAmbiguousOperand):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrButtonNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, window.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// handleOpen handles POST /calculator/open.
func (c *Controller) handleOpen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.open",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	if err := c.OpenApplication(ctx); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "open", "opening application", err, statusForError(err), w)
		return
	}

	span.SetStatus(codes.Ok, "")
	logger.Info("application opened", zap.String("request_id", requestID))

	writeJSON(w, http.StatusOK, OpenResponse{Opened: true, RequestID: requestID})
}

// handleRun handles POST /calculator/run — the full instruction pipeline.
func (c *Controller) handleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.run",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "run", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if req.Instruction == "" {
		observability.RecordError(ctx, span, logger, errorCounter, "run", "missing instruction", errors.New("instruction is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.instruction", req.Instruction))

	start := time.Now()
	report, err := c.RunInstruction(ctx, req.Instruction)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(attribute.String("operation", "run"))
	instructionCounter.Add(ctx, 1, attrs)
	clickHistogram.Record(ctx, elapsed, attrs)
	sequenceGauge.Record(ctx, int64(len(report.Symbols)), attrs)
	recordClickMetrics(ctx, report)

	if err != nil {
		writeReportError(ctx, span, logger, w, "run", req.Instruction, report, err)
		return
	}

	span.AddEvent("instruction.complete", trace.WithAttributes(
		attribute.Int("press.count", len(report.Clicks)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("instruction executed",
		zap.String("instruction", req.Instruction),
		zap.Int("presses", len(report.Clicks)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeJSON(w, http.StatusOK, runResponse(req.Instruction, report, "", requestID))
}

// handlePress handles POST /calculator/press — a single named button.
func (c *Controller) handlePress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.press",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req PressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if req.Button == "" {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "missing button", errors.New("button is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.button", req.Button))

	report, err := c.PressButton(ctx, req.Button)
	recordClickMetrics(ctx, report)

	if err != nil {
		writeReportError(ctx, span, logger, w, "press", "", report, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	logger.Info("button pressed",
		zap.String("button", req.Button),
		zap.String("request_id", requestID),
	)

	writeJSON(w, http.StatusOK, runResponse("", report, "", requestID))
}

// recordClickMetrics counts issued clicks, succeeded and failed alike.
func recordClickMetrics(ctx context.Context, report automation.Report) {
	for _, c := range report.Clicks {
		clickCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("symbol", string(c.Symbol)),
			attribute.Bool("ok", c.OK),
		))
	}
}

// writeReportError responds with the mapped status and the partial report,
// so the caller can see which presses landed before the failure.
func writeReportError(ctx context.Context, span trace.Span, logger *zap.Logger, w http.ResponseWriter, opName, instr string, report automation.Report, err error) {
	requestID := observability.RequestIDFromContext(ctx)

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", opName)))

	logger.Error("calculator operation failed",
		zap.String("operation", opName),
		zap.Error(err),
		zap.Int("failed_index", report.FailedIndex),
		zap.String("request_id", requestID),
	)

	writeJSON(w, statusForError(err), runResponse(instr, report, err.Error(), requestID))
}

func runResponse(instr string, report automation.Report, errMsg, requestID string) RunResponse {
	symbols := make([]string, len(report.Symbols))
	for i, s := range report.Symbols {
		symbols[i] = string(s)
	}
	return RunResponse{
		Instruction: instr,
		Symbols:     symbols,
		Clicks:      report.Clicks,
		FailedIndex: report.FailedIndex,
		Error:       errMsg,
		RequestID:   requestID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
