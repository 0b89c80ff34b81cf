// Package metrics scores a match frame by frame. Per-side metrics are named
// "<metric>_<side>", e.g. "misses_bottom".
package metrics
