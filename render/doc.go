// Package render keeps the presentation side-table for a traversal and
// draws it to a terminal.
//
// A Board is a traversal.Observer. It records, per vertex ID, the current
// color and label, and per synthesized edge, the line endpoints and color.
// The walker never touches presentation state; it only emits notifications
// that the Board folds into its table.
//
// Colors
//
//   - Neutral:     not visited in the current search (green).
//   - Visiting:    the vertex visited by the latest step (red).
//   - Visited:     visited earlier in the current search (dim red).
//   - AlreadySeen: popped again after being visited (gray).
//
// Canvas projects vertex positions onto a character grid, draws edges as
// Bresenham lines and styles each cell with lipgloss.
package render
