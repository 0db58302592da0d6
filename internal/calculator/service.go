package calculator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go-chi-calculator/internal/history"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/programmer"
	"go-chi-calculator/internal/result"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArity            = errors.New("wrong number of arguments")
	ErrNotInteger       = errors.New("argument must be a whole number")
)

// Service dispatches operations, classifies their results and records every
// accepted calculation in the history. It is shared by the HTTP, console and
// MCP front ends.
type Service struct {
	history *history.Store
}

// NewService returns a service that records into store.
func NewService(store *history.Store) *Service {
	if err := InitMetrics(); err != nil {
		observability.Logger.Warn("calculator metrics unavailable", zap.Error(err))
	}
	return &Service{history: store}
}

// History returns the store the service records into.
func (s *Service) History() *history.Store {
	return s.history
}

func checkArgs(op Operation, args []float64) error {
	if !op.Variadic && len(args) != len(op.Params) {
		return fmt.Errorf("%w: %s takes %d (%s), got %d", ErrArity, op.Name, len(op.Params), strings.Join(op.Params, ", "), len(args))
	}
	if op.Integer {
		for i, a := range args {
			if math.IsInf(a, 0) || a != math.Trunc(a) {
				return fmt.Errorf("%w: %s = %s", ErrNotInteger, op.Params[i], result.FormatNumber(a))
			}
		}
	}
	return nil
}

// apply runs op and classifies the value without recording anything.
func apply(op Operation, args []float64) result.Outcome {
	value := op.Fn(args)
	cause := result.None
	if op.Cause != nil {
		cause = op.Cause(args, value)
	}
	return result.Format(op.Label, op.Describe(args), value, cause)
}

// Evaluate runs the floating-point operation registered as name. Undefined
// or overflowing results come back as NaN or infinite values; errors are
// reserved for unknown operations and malformed argument lists.
func (s *Service) Evaluate(ctx context.Context, name string, args []float64) (result.Outcome, error) {
	ctx, span := tracer.Start(ctx, "calculator."+name,
		trace.WithAttributes(
			attribute.String("calculator.operation", name),
			attribute.Int("calculator.args", len(args)),
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	defer span.End()

	op, ok := Lookup(name)
	if !ok {
		return result.Outcome{}, s.reject(ctx, span, name, fmt.Errorf("%w: %q", ErrUnknownOperation, name))
	}
	if err := checkArgs(op, args); err != nil {
		return result.Outcome{}, s.reject(ctx, span, name, err)
	}

	start := time.Now()
	out := apply(op, args)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	s.observe(ctx, span, op.Name, op.Mode, out, elapsed)
	s.remember(ctx, out.History)

	observability.LoggerWithTrace(ctx).Info("calculator operation completed",
		zap.String("operation", op.Name),
		zap.Float64s("args", args),
		zap.String("result", out.Display),
		zap.String("class", out.Class.String()),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)

	return out, nil
}

// FourOutcome holds the results of FourOperations.
type FourOutcome struct {
	Addition       result.Outcome
	Subtraction    result.Outcome
	Multiplication result.Outcome
	Division       result.Outcome
	History        string
}

// FourOperations applies the four basic operations to a and b and records
// them as a single history entry.
func (s *Service) FourOperations(ctx context.Context, a, b float64) FourOutcome {
	ctx, span := tracer.Start(ctx, "calculator.four",
		trace.WithAttributes(
			attribute.Float64("calculator.operand.a", a),
			attribute.Float64("calculator.operand.b", b),
		),
	)
	defer span.End()

	args := []float64{a, b}
	run := func(name string) result.Outcome {
		op, _ := Lookup(name)
		out := apply(op, args)
		s.observe(ctx, span, op.Name, op.Mode, out, 0)
		return out
	}

	out := FourOutcome{
		Addition:       run("add"),
		Subtraction:    run("subtract"),
		Multiplication: run("multiply"),
		Division:       run("divide"),
	}

	parts := make([]string, 0, 4)
	for _, o := range []result.Outcome{out.Addition, out.Subtraction, out.Multiplication, out.Division} {
		_, expr, _ := strings.Cut(o.History, ": ")
		parts = append(parts, expr)
	}
	out.History = "Four operations: " + strings.Join(parts, ", ")
	s.remember(ctx, out.History)

	return out
}

// ChainStepOutcome records one executed chain step.
type ChainStepOutcome struct {
	Op      string
	Value   float64
	Outcome result.Outcome
}

// ChainOutcome is the result of Chain.
type ChainOutcome struct {
	Initial float64
	Steps   []ChainStepOutcome
	Result  result.Outcome
	History string
}

// Chain applies binary operations to a running total, one child span per
// step, and records the whole chain as one history entry.
func (s *Service) Chain(ctx context.Context, initial float64, steps []ChainStep) (ChainOutcome, error) {
	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(
			attribute.Float64("chain.initial", initial),
			attribute.Int("chain.steps_count", len(steps)),
		),
	)
	defer span.End()

	if len(steps) == 0 {
		return ChainOutcome{}, s.reject(ctx, span, "chain", fmt.Errorf("%w: no steps provided", ErrArity))
	}

	running := initial
	cause := result.None
	out := ChainOutcome{Initial: initial, Steps: make([]ChainStepOutcome, 0, len(steps))}
	desc := []string{result.FormatNumber(initial)}

	for i, step := range steps {
		op, ok := Lookup(step.Op)
		if !ok || op.Variadic || len(op.Params) != 2 {
			err := fmt.Errorf("%w: %q at step %d", ErrUnknownOperation, step.Op, i)
			return ChainOutcome{}, s.reject(ctx, span, step.Op, err)
		}

		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d.%s", i, op.Name),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.operation", op.Name),
				attribute.Float64("chain.step.input", running),
				attribute.Float64("chain.step.value", step.Value),
			),
		)

		stepStart := time.Now()
		stepOut := apply(op, []float64{running, step.Value})
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		s.observe(ctx, stepSpan, op.Name, op.Mode, stepOut, stepElapsed)
		stepSpan.End()

		running = stepOut.Value
		switch {
		case stepOut.Class == result.Finite:
			cause = result.None
		case stepOut.Cause != result.None:
			cause = stepOut.Cause
		}
		out.Steps = append(out.Steps, ChainStepOutcome{Op: op.Name, Value: step.Value, Outcome: stepOut})
		desc = append(desc, op.Name+" "+result.FormatNumber(step.Value))
	}

	out.Result = result.Outcome{
		Value:   running,
		Class:   result.Classify(running),
		Cause:   cause,
		Display: result.Display(running, cause),
	}
	out.History = "Chain: " + strings.Join(desc, " -> ") + " = " + out.Result.Display
	s.remember(ctx, out.History)

	span.SetAttributes(attribute.String("chain.result", out.Result.Display))
	span.SetStatus(codes.Ok, "")

	observability.LoggerWithTrace(ctx).Info("chained calculation completed",
		zap.Float64("initial", initial),
		zap.String("result", out.Result.Display),
		zap.Int("steps", len(steps)),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	return out, nil
}

// IntOutcome is the result of a programmer-mode operation.
type IntOutcome struct {
	Operation       string
	Args            []int64
	Value           int64
	Representations programmer.Representations
	History         string
}

// EvaluateInt runs the programmer operation registered as name.
func (s *Service) EvaluateInt(ctx context.Context, name string, args []int64) (IntOutcome, error) {
	ctx, span := tracer.Start(ctx, "programmer."+name,
		trace.WithAttributes(attribute.String("calculator.operation", name)),
	)
	defer span.End()

	op, ok := LookupInt(name)
	if !ok {
		return IntOutcome{}, s.reject(ctx, span, name, fmt.Errorf("%w: %q", ErrUnknownOperation, name))
	}
	if len(args) != len(op.Params) {
		err := fmt.Errorf("%w: %s takes %d (%s), got %d", ErrArity, op.Name, len(op.Params), strings.Join(op.Params, ", "), len(args))
		return IntOutcome{}, s.reject(ctx, span, name, err)
	}

	value, err := op.Fn(args)
	if err != nil {
		return IntOutcome{}, s.reject(ctx, span, name, err)
	}

	out := IntOutcome{
		Operation:       op.Name,
		Args:            args,
		Value:           value,
		Representations: programmer.Represent(value),
		History:         op.Label + ": " + op.Describe(args) + " = " + strconv.FormatInt(value, 10) + op.Suffix,
	}

	attrs := metric.WithAttributes(attribute.String("operation", op.Name), attribute.String("mode", string(ModeProgrammer)))
	opsCounter.Add(ctx, 1, attrs)
	span.SetAttributes(attribute.Int64("calculator.result", value))
	span.SetStatus(codes.Ok, "")
	s.remember(ctx, out.History)

	observability.LoggerWithTrace(ctx).Info("programmer operation completed",
		zap.String("operation", op.Name),
		zap.Int64s("args", args),
		zap.Int64("result", value),
	)

	return out, nil
}

// ConversionOutcome is the result of Convert.
type ConversionOutcome struct {
	Input           string
	From            programmer.Base
	To              programmer.Base
	Value           int64
	Output          string
	Representations programmer.Representations
	History         string
}

// Convert reads input in base from and renders it in base to.
func (s *Service) Convert(ctx context.Context, from, to programmer.Base, input string) (ConversionOutcome, error) {
	ctx, span := tracer.Start(ctx, "programmer.convert",
		trace.WithAttributes(
			attribute.String("convert.from", from.String()),
			attribute.String("convert.to", to.String()),
		),
	)
	defer span.End()

	value, err := programmer.Parse(input, from)
	if err != nil {
		return ConversionOutcome{}, s.reject(ctx, span, "convert", err)
	}

	output := programmer.Format(value, to)
	out := ConversionOutcome{
		Input:           input,
		From:            from,
		To:              to,
		Value:           value,
		Output:          output,
		Representations: programmer.Represent(value),
		History:         from.Label() + " " + strings.TrimSpace(input) + " = " + to.Label() + " " + output,
	}

	opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "convert"), attribute.String("mode", string(ModeProgrammer))))
	span.SetStatus(codes.Ok, "")
	s.remember(ctx, out.History)

	return out, nil
}

// SaveHistory persists the history and logs where it went.
func (s *Service) SaveHistory(ctx context.Context) error {
	if err := s.history.Save(ctx); err != nil {
		observability.LoggerWithTrace(ctx).Error("saving history failed", zap.Error(err))
		return err
	}
	observability.LoggerWithTrace(ctx).Info("history saved",
		zap.String("location", s.history.Location()),
		zap.Int("entries", s.history.Len()),
	)
	return nil
}

// LoadHistory replaces the history with the persisted one. It reports
// false when nothing had been saved yet.
func (s *Service) LoadHistory(ctx context.Context) (bool, error) {
	logger := observability.LoggerWithTrace(ctx)

	found, err := s.history.Load(ctx)
	if err != nil {
		logger.Error("loading history failed", zap.Error(err))
		return false, err
	}
	if !found {
		logger.Info("no history file found", zap.String("location", s.history.Location()))
		return false, nil
	}

	logger.Info("history loaded",
		zap.String("location", s.history.Location()),
		zap.Int("entries", s.history.Len()),
	)
	return true, nil
}

// ClearHistory empties the history.
func (s *Service) ClearHistory(ctx context.Context) {
	s.history.Clear()
	observability.LoggerWithTrace(ctx).Info("history cleared")
}

// observe records metrics and span data for a classified outcome.
func (s *Service) observe(ctx context.Context, span trace.Span, name string, mode Mode, out result.Outcome, elapsed float64) {
	attrs := metric.WithAttributes(attribute.String("operation", name), attribute.String("mode", string(mode)))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	if out.Class == result.Finite {
		resultGauge.Record(ctx, out.Value, attrs)
		span.SetAttributes(attribute.Float64("calculator.result", out.Value))
	} else {
		specialCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", name),
			attribute.String("class", out.Class.String()),
		))
		span.SetAttributes(attribute.String("calculator.result", out.Display))
	}

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("display", out.Display),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")
}

// reject records a malformed-input error on the span and error counter and
// returns it unchanged.
func (s *Service) reject(ctx context.Context, span trace.Span, name string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", name)))

	observability.LoggerWithTrace(ctx).Warn("calculator input rejected",
		zap.String("operation", name),
		zap.Error(err),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)
	return err
}

// remember appends text to the history. A rejected entry is logged and
// never fails the calculation that produced it.
func (s *Service) remember(ctx context.Context, text string) {
	if err := s.history.AddEntry(text); err != nil {
		observability.LoggerWithTrace(ctx).Warn("could not add entry to history", zap.Error(err))
	}
}
