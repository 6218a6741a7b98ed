// Package tracing is a thin wrapper around OpenTelemetry tracing.  Document
// loading, validation, annotation and external simulation runs are
// instrumented through StartSpan/EndSpan; applications that do not install a
// provider pay only for no-op spans.
package tracing
