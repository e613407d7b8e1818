// Package coarsen computes a coarse/fine (C/F) splitting of the nodes of a
// strength-of-connection graph, via the classical Ruge-Stuben priority-bucket
// algorithm or the CLJP parallel-style maximum independent set.
package coarsen

// Label is a node's role in the C/F splitting.
type Label int

const (
	FNode   Label = 0 // fine node
	CNode   Label = 1 // coarse node
	UNode   Label = 2 // undecided (internal to the selection loop)
	PreFNode Label = 3 // provisionally fine, pending the two-phase promotion (ClassicalSplitter only)
)
