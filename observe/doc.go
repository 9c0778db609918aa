// Package observe turns the step callback of package search into a stream
// of Step values delivered to pluggable sinks.
//
// The search calls its step function synchronously and tolerates one that
// blocks. Pipe hands each step to a bounded channel (capacity 4 unless
// WithCapacity says otherwise) drained by a single worker goroutine, so a
// slow sink applies backpressure to the search instead of growing memory.
//
// Sinks:
//
//   - Recorder keeps the frames a renderer would draw: accepted states in
//     order, how often each state was considered, and the predecessor links
//     of accepted states. Every(n) keeps one frame in n.
//   - LogSink writes one slog record per step.
//   - MetricSink counts steps and records accepted costs with OpenTelemetry.
//   - PromSink exports the same counts as Prometheus collectors.
//   - Multi fans a step out to several sinks.
//
// Typical use:
//
//	rec := observe.NewRecorder[gridgraph.Point, int]()
//	pipe := observe.NewPipe[gridgraph.Point, int](ctx, rec)
//	route, err := gg.ShortestPath(from, to, gridgraph.WithOnStep(pipe.OnStep()))
//	if cerr := pipe.Close(); cerr != nil { ... }
package observe
