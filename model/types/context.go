package types

import "context"

type runContextKey string

// RunContextKey run context
var RunContextKey = runContextKey("run-context")

// EnsureRunContext ensures the context carries a run value map and stores the supplied key/value pairs in it.
func EnsureRunContext(ctx context.Context, pairs ...string) context.Context {
	v := ctx.Value(RunContextKey)
	if v == nil {
		ctx = context.WithValue(ctx, RunContextKey, map[string]string{})
	}
	values := ctx.Value(RunContextKey).(map[string]string)
	for i := 0; i+1 < len(pairs); i += 2 {
		values[pairs[i]] = pairs[i+1]
	}
	return ctx
}

// RunValue returns a run context value or empty string
func RunValue(ctx context.Context, key string) string {
	values, ok := ctx.Value(RunContextKey).(map[string]string)
	if !ok {
		return ""
	}
	return values[key]
}
