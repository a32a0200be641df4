// Package graphwalk steps graph searches one visit at a time so you can
// watch a frontier grow and drain.
//
// What is graphwalk?
//
//	An authored set of positioned vertices, each with its own neighbor list,
//	walked by one of four interchangeable searches:
//		• BFS: FIFO queue, discovery order
//		• Priority BFS: highest declared vertex priority first
//		• DFS: LIFO stack
//		• Best-first: nearest to the goal first, halting on the goal
//
// Every step pops one vertex, colors it, and queues its unvisited
// neighbors. Switching algorithm mid-search carries the open set over.
// Disconnected graphs are covered by reseeding from the next unvisited
// vertex.
//
// Layout:
//
//	core/       — vertex arena, adjacency, ordinal names, edge synthesis
//	frontier/   — queue, stack and priority heaps behind one interface
//	traversal/  — Stepper: Initialize, Start, Step, Reset, SwitchAlgorithm
//	render/     — per-vertex colors and labels, status text, terminal canvas
//	scene/      — YAML/HCL scene files, validation, hot reload
//	builder/    — generated shapes: path, cycle, star, wheel, complete, grid, random
//	metrics/    — Prometheus collector observing the stepper
//	logging/    — zap setup and the in-memory log pane sink
//	config/     — defaults, .env and GRAPHWALK_* environment
//	tui/        — bubbletea board: click or space to step
//	cmd/graphwalk — CLI: run, play, version
//
// Quick ASCII example, BFS from A:
//
//	    A───B        step 1: visit A   Queue: B, C
//	    │   │        step 2: visit B   Queue: C, D
//	    C───D        step 3: visit C   Queue: D
//	                 step 4: visit D   Queue:
//
//	go install github.com/katalvlaran/graphwalk/cmd/graphwalk@latest
package graphwalk
