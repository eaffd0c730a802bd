package logger

import (
	"context"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super   *ctxValue
	Details []LoggingDetail
}

// ContextWith attaches logging details to the context,
// and every log entry made with the returned context will include them.
func ContextWith(ctx context.Context, lds ...LoggingDetail) context.Context {
	if len(lds) == 0 {
		return ctx
	}
	var v ctxValue
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	v.Details = append(v.Details, lds...)
	return context.WithValue(ctx, ctxKeyDetails{}, &v)
}

// getLoggingDetailsFromContext returns the details attached to the context,
// ordered from the outermost to the innermost, so later details overwrite earlier ones.
func getLoggingDetailsFromContext(ctx context.Context) []LoggingDetail {
	if ctx == nil {
		return nil
	}
	v, ok := lookupValue(ctx)
	if !ok {
		return nil
	}
	var chain []*ctxValue
	for ; v != nil; v = v.Super {
		chain = append(chain, v)
	}
	var lds []LoggingDetail
	for i := len(chain) - 1; 0 <= i; i-- {
		lds = append(lds, chain[i].Details...)
	}
	return lds
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	if ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue); ok {
		return ptr, true
	}
	return nil, false
}
