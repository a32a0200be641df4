// Package traversal provides a step-driven walker over a core.Graph that
// runs breadth-first, priority breadth-first, depth-first and greedy
// best-first searches one vertex at a time.
//
// What
//
//   - A Stepper owns the frontier, the insertion-ordered visited set and a
//     lifecycle state (Idle → Searching → Finished).
//   - Every Step performs exactly one pop-visit-expand cycle and reports a
//     StepResult; an external loop (TUI, headless player, test) sets the pace.
//   - Observers receive lifecycle notifications, which is how rendering and
//     metrics attach without the walker knowing about either.
//
// Algorithms
//
//   - BFS:         FIFO queue, discovery order.
//   - PriorityBFS: queue ordered by the highest declared vertex priority;
//     ties pop in insertion order.
//   - DFS:         LIFO stack over declared adjacency.
//   - BestFirst:   queue ordered by Euclidean distance to the goal. It halts
//     when the goal is visited and accumulates no path cost.
//
// SwitchAlgorithm cycles BFS → PriorityBFS → DFS → BestFirst → BFS. During a
// search the open set is moved into the new frontier and visited progress is
// kept.
//
// Disconnected graphs
//
//	When the frontier empties before every vertex is visited, the non-goal
//	modes reseed it with the first unvisited vertex in declaration order, so
//	a full run visits every vertex exactly once.
//
// Complexity (V = |Vertices|, E = |adjacency entries|)
//
//   - Full run: O(V + E) for BFS/DFS, O((V + E) log V) for the heap modes.
//   - Memory:   O(V) for frontier and visited set.
//
// Usage
//
//	st, err := traversal.New(g, traversal.WithAlgorithm(traversal.DFS))
//	if err != nil {
//		// ErrGraphNil or ErrOptionViolation
//	}
//	st.Initialize()
//	for st.State() == traversal.Searching {
//		res := st.Step()
//		fmt.Println(g.Name(res.Vertex), st.Status())
//	}
package traversal
