// Package generation turns trip parameters into an itinerary or packing list
// using an external text model. Each call runs the same straight-line
// pipeline: build a prompt, invoke the model once, extract the JSON payload,
// parse it strictly and then after repair, and synthesize a result from the
// request alone when nothing usable comes back.
//
// Model failures are returned to the caller; malformed output never is.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 90 * time.Second

var tracer = otel.Tracer("github.com/pkordes/trip-planner/backend/internal/generation")

// Model is a text-generation service: one prompt in, one text blob out.
// Implementations must not retry or stream.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator runs the pipeline against a Model. It holds no per-call state and
// is safe for concurrent use.
type Generator struct {
	model   Model
	timeout time.Duration
	log     *slog.Logger
	metrics *Metrics
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithMetrics records outcomes and model latency in m.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// NewGenerator constructs a Generator backed by model.
func NewGenerator(model Model, opts ...Option) *Generator {
	g := &Generator{model: model, timeout: DefaultTimeout, log: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Itinerary generates a day-by-day plan with exactly req.DayCount() days.
func (g *Generator) Itinerary(ctx context.Context, req domain.GenerationRequest) (domain.ItineraryResult, error) {
	ctx, span := tracer.Start(ctx, "generation.Itinerary")
	defer span.End()

	if err := checkSpan(req); err != nil {
		return domain.ItineraryResult{}, fmt.Errorf("generation.Generator.Itinerary: %w", err)
	}

	text, err := g.invoke(ctx, ModeItinerary, BuildPrompt(req, ModeItinerary))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		return domain.ItineraryResult{}, fmt.Errorf("generation.Generator.Itinerary: %w", err)
	}

	wire, outcome, err := Parse[itineraryWire](ExtractJSON(text))
	if err == nil {
		if result, ok := normalizeItinerary(req, wire); ok {
			g.finish(ctx, span, ModeItinerary, outcome)
			return result, nil
		}
		err = errors.New("no days in model output")
	}

	g.log.WarnContext(ctx, "itinerary output unusable, using fallback",
		"destination", req.Destination, "error", err)
	g.log.DebugContext(ctx, "unusable model output", "text", text)
	g.finish(ctx, span, ModeItinerary, OutcomeFallback)
	return FallbackItinerary(req), nil
}

// PackingList generates a categorised packing list for the trip.
func (g *Generator) PackingList(ctx context.Context, req domain.GenerationRequest) (domain.PackingListResult, error) {
	ctx, span := tracer.Start(ctx, "generation.PackingList")
	defer span.End()

	if err := checkSpan(req); err != nil {
		return domain.PackingListResult{}, fmt.Errorf("generation.Generator.PackingList: %w", err)
	}

	text, err := g.invoke(ctx, ModePackingList, BuildPrompt(req, ModePackingList))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		return domain.PackingListResult{}, fmt.Errorf("generation.Generator.PackingList: %w", err)
	}

	wire, outcome, err := Parse[packingWire](ExtractJSON(text))
	if err == nil {
		if result, ok := normalizePackingList(wire); ok {
			g.finish(ctx, span, ModePackingList, outcome)
			return result, nil
		}
		err = errors.New("no items in model output")
	}

	g.log.WarnContext(ctx, "packing list output unusable, using fallback",
		"destination", req.Destination, "error", err)
	g.log.DebugContext(ctx, "unusable model output", "text", text)
	g.finish(ctx, span, ModePackingList, OutcomeFallback)
	return FallbackPackingList(req), nil
}

// invoke makes the single model call under the configured timeout and
// classifies any failure as ErrRateLimited or ErrUpstream.
func (g *Generator) invoke(ctx context.Context, mode Mode, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := g.model.Generate(ctx, prompt)
	g.metrics.observeModel(mode, time.Since(start))
	if err != nil {
		g.metrics.recordOutcome(mode, OutcomeError)
		if IsRateLimited(err) {
			g.log.WarnContext(ctx, "model service rate limited", "mode", mode, "error", err)
			if errors.Is(err, domain.ErrRateLimited) {
				return "", err
			}
			return "", fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
		}
		g.log.ErrorContext(ctx, "model call failed", "mode", mode, "error", err)
		return "", fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	return text, nil
}

func (g *Generator) finish(ctx context.Context, span interface{ SetAttributes(...attribute.KeyValue) }, mode Mode, o Outcome) {
	span.SetAttributes(attribute.String("generation.mode", string(mode)), attribute.String("generation.outcome", string(o)))
	g.metrics.recordOutcome(mode, o)
	if o == OutcomeRepaired {
		g.log.InfoContext(ctx, "model output needed repair", "mode", mode)
	}
}

// IsRateLimited reports whether err signals quota exhaustion or rate
// limiting, either by wrapping domain.ErrRateLimited or by its message.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota")
}

func checkSpan(req domain.GenerationRequest) error {
	n := req.DayCount()
	if n < 1 {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if n > domain.MaxTripDays {
		return fmt.Errorf("%w: trips are limited to %d days", domain.ErrValidation, domain.MaxTripDays)
	}
	return nil
}
