package betweenness_test

import (
	"fmt"

	"github.com/mlcsrgraph/mlcsr/betweenness"
	"github.com/mlcsrgraph/mlcsr/graph"
)

// ExampleCompute finds the sole cut vertex on a three-vertex line.
func ExampleCompute() {
	g, err := graph.InMemory(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	if err := g.Checkpoint(); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := betweenness.Compute(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.ScoreOf(1))
	// Output:
	// 1
}
