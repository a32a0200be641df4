// Package metrics exports traversal activity as Prometheus metrics.
//
// What:
//
//   - Collector implements traversal.Observer and counts steps, visits,
//     searches, continuations, resets and algorithm switches, plus the
//     current frontier size.
//   - Metrics live on a private registry so several collectors (tests,
//     sessions) never collide on the process-wide default registry.
//   - Handler serves the registry over HTTP (promhttp); Write and WriteFile
//     dump it in the text exposition format (expfmt) for headless runs.
//
// Metric names:
//
//	graphwalk_steps_total{algorithm,outcome}
//	graphwalk_visits_total{algorithm}
//	graphwalk_searches_started_total{algorithm}
//	graphwalk_searches_finished_total{algorithm}
//	graphwalk_continuations_total
//	graphwalk_resets_total
//	graphwalk_algorithm_switches_total{to}
//	graphwalk_frontier_size
//
// Thread safety: counters are safe for concurrent scrape while the stepper
// goroutine updates them.
package metrics
