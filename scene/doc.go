// Package scene loads graph authoring files and turns them into a
// core.Graph plus the start/goal designation for a traversal.
//
// Two formats carry the same Definition:
//
//	# diamond.yaml
//	name: diamond
//	start: a
//	goal: d
//	vertices:
//	  - key: a
//	    name: A
//	    position: [0, 0]
//	    neighbors: [b, c]
//
//	# diamond.hcl
//	name  = "diamond"
//	start = "a"
//	goal  = "d"
//	vertex "a" {
//	  name      = "A"
//	  position  = [0, 0]
//	  neighbors = ["b", "c"]
//	}
//
// Neighbors reference vertex keys. Adjacency is directed as authored; the
// walker follows it as written and edge synthesis deduplicates pairs.
//
// A Watcher reloads the file on change. Relabel applies name and priority
// edits to a live graph when the topology is unchanged, which keeps a
// running search intact while labels are refreshed.
package scene
