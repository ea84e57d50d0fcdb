package matching_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/matching"
)

// ExampleComputeMaximumMatching assigns five employees to five jobs.
//
//	employee  job1 job2 job3 job4 job5
//	   1        1    1    1    1    1
//	   2        1    0    0    1    0
//	   3        0    1    0    1    0
//	   4        0    1    0    1    1
//	   5        1    0    0    0    0
func ExampleComputeMaximumMatching() {
	g, _ := bipartite.FromMatrix([][]bool{
		{true, true, true, true, true},
		{true, false, false, true, false},
		{false, true, false, true, false},
		{false, true, false, true, true},
		{true, false, false, false, false},
	})
	fmt.Println(matching.ComputeMaximumMatching(g, 5, 5))
	// Output:
	// 5
}

// ExampleEngine_Run prints the assignment itself, not only its size.
func ExampleEngine_Run() {
	g, _ := bipartite.NewGraph(3, 3)
	_ = g.AddPair(1, 1)
	_ = g.AddPair(1, 2)
	_ = g.AddPair(2, 1)
	_ = g.AddPair(3, 2)
	_ = g.AddPair(3, 3)

	e, err := matching.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := e.Run(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("size:", res.Size)
	for _, p := range res.Pairs {
		fmt.Printf("L%d - R%d\n", p.Left, p.Right)
	}
	// Output:
	// size: 3
	// L1 - R2
	// L2 - R1
	// L3 - R3
}
