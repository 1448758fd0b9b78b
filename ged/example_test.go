package ged_test

import (
	"fmt"

	"github.com/katalvlaran/graphedit/builder"
	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
	"github.com/katalvlaran/graphedit/ged"
	"github.com/katalvlaran/graphedit/iso"
)

// ExampleExact closes a labeled path into a triangle and checks the witness.
func ExampleExact() {
	path := builder.MustStructure("path", false, []string{"a", "b", "c"},
		[]builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2)})
	triangle := builder.MustStructure("triangle", false, []string{"a", "b", "c"},
		[]builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2), builder.E(2, 0)})

	costs := costmodel.CostMap{
		edit.DeleteNode:  2,
		edit.AddNode:     3,
		edit.DeleteEdge:  4,
		edit.AddEdge:     5,
		edit.RelabelNode: 1,
	}
	opts := ged.DefaultOptions()
	opts.Relabel = true

	x, err := ged.NewExact(costs, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	d, err := x.Similarity(path, triangle)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("distance:", d)
	fmt.Print(x.EditList())

	edited, err := x.EditList().Apply(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("isomorphic:", iso.Isomorphic(edited, triangle, iso.WithNodeLabels()))
	// Output:
	// distance: 5
	// edits=1 cost=5
	//   0: ADD_EDGE(2->0, label="") cost=5
	// isomorphic: true
}

// ExampleNew compares every engine on one node against the empty graph.
func ExampleNew() {
	one := builder.MustStructure("one", false, []string{"node 0"}, nil)
	empty := core.NewGraph()
	costs := costmodel.CostMap{edit.DeleteNode: 2, edit.AddNode: 3, edit.DeleteEdge: 4, edit.AddEdge: 5}

	for _, algo := range ged.Algorithms() {
		eng, err := ged.New(algo, costs, ged.DefaultOptions())
		if err != nil {
			fmt.Println(err)
			return
		}
		d, _ := eng.Similarity(one, empty)
		fmt.Printf("%-10s %g\n", algo, d)
	}
	// Output:
	// exact      2
	// simple     2
	// bipartite  2
	// hausdorff  2
	// lowerbound 2
}
