package server

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pulse-ui/pulse/pkg/protocol"
)

const tracerName = "github.com/pulse-ui/pulse/pkg/server"

// tracer wraps span creation around event processing. When tracing is
// disabled the zero value produces no-op spans via the global provider,
// which defaults to a no-op tracer.
type tracer struct {
	enabled bool
	tr      trace.Tracer
}

func newTracer(enabled bool) tracer {
	return tracer{enabled: enabled, tr: otel.Tracer(tracerName)}
}

// eventSpan starts a span for one client event. The returned finish
// function records the outcome and op count.
func (t tracer) eventSpan(ctx context.Context, sessionID string, f *protocol.EventFrame) (context.Context, func(ops int, err error)) {
	if !t.enabled {
		return ctx, func(int, error) {}
	}

	ctx, span := t.tr.Start(ctx, "pulse.event "+f.Name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("pulse.session_id", sessionID),
			attribute.String("pulse.event_type", f.Name),
			attribute.Int64("pulse.node_id", int64(f.Node)),
		),
	)

	return ctx, func(ops int, err error) {
		span.SetAttributes(attribute.Int("pulse.ops_sent", ops))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
