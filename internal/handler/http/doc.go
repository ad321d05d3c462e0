// Package http implements the read-only status API of a supervisor run.
// It exposes the run's mode, lifecycle state and run ID, a liveness probe
// and the build version. Tracing and request logging are handled by
// middleware before a request reaches a route handler. Supervisor state and
// request counters are exported for Prometheus at /metrics.
package http
