package logs

import (
	"context"
	"fmt"
)

// WrapSpan annotates err with the span of ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanFrom(ctx)
	if !ok {
		return err
	}
	return fmt.Errorf("%w [span %s]", err, span)
}
