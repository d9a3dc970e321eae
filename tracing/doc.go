// Package tracing wraps OpenTelemetry so that simulation runs can be recorded
// as spans. Applications that never call Init get no-op spans.
package tracing
