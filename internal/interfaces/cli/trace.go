package cli

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var cliTracer = otel.Tracer("fpl-cli/internal/interfaces/cli")

// startCommandSpan opens the root span of one invocation.
func startCommandSpan(ctx context.Context, command string) (context.Context, trace.Span) {
	return cliTracer.Start(ctx, "cli."+command, trace.WithSpanKind(trace.SpanKindInternal))
}
