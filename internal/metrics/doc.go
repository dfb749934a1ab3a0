// Package metrics records per-run counters for the algorithm commands and
// exposes them in the Prometheus text exposition format.
//
// A Recorder owns a private registry so that tests and repeated runs in the
// same process do not collide on the global default registry.
package metrics
