package logs

import "context"

// Span identifies one unit of work, such as a script run or a REPL line.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok && span != ""
}
