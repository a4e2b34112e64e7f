// Package orchestration coordinates one prime sweep with its progress
// display, metrics, tracing and optional run statistics. It decouples the
// sweep from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
