// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: Severity, a stable numeric Code, a human
// message, the primary source.Span, and optional Notes with secondary spans.
// Producers emit through a Reporter so they stay decoupled from storage;
// BagReporter aggregates into a Bag, which supports capping, sorting, and
// deduplication for deterministic output.
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in the driver layer.
package diag
