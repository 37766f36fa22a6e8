// Package tracing integrates OpenTelemetry with the registry so that
// discovery, validation and reload cycles show up as spans. All
// instrumentation is kept in a separate package so that callers which do not
// enable tracing only pay for no-op spans.
package tracing
