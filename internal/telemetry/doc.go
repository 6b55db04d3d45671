// Package telemetry exposes Prometheus metrics and OpenTelemetry spans for
// manifest generation.
//
// Metrics implements the manifest generator's Recorder:
//
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//	gen := manifest.New(store, manifest.WithRecorder(m))
//
// TracedStore wraps a storage backend so every directory and file
// operation becomes a child span of the generation span.
package telemetry
