// Package graph_test demonstrates the public ingest/checkpoint/read cycle.
package graph_test

import (
	"fmt"

	"github.com/mlcsrgraph/mlcsr/graph"
)

// ExampleGraph_checkpointCycle builds two edges, publishes them, then
// deletes one and publishes again, observing the adjacency change.
func ExampleGraph_checkpointCycle() {
	g, err := graph.InMemory(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := g.AddEdge(0, 1); err != nil {
		fmt.Println("error:", err)
		return
	}
	ref, err := g.AddEdge(0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := g.Checkpoint(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("after first checkpoint:", g.OutDegree(0))

	if err := g.DeleteEdge(ref); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Checkpoint(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("after deleting one edge:", g.OutDegree(0))

	// Output:
	// after first checkpoint: 2
	// after deleting one edge: 1
}
