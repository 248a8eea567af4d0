package grid_test

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
)

// ExampleFilledWith builds a small grid and renders it.
func ExampleFilledWith() {
	g, _ := grid.FilledWith(2, 2, 'x')
	fmt.Print(g)
	// Output:
	// xx
	// xx
}

// ExampleGrid_Fill floods a map whose orthogonal paths are blocked:
// the two dots touch the walls diagonally, so the whole map is one region.
func ExampleGrid_Fill() {
	g, _ := grid.Parse("#..#\n####")
	n := g.Fill(1, 0, '+')
	fmt.Println("filled:", n)
	fmt.Print(g)
	// Output:
	// filled: 8
	// ++++
	// ++++
}

// ExampleGrid_Neighbors shows the fixed enumeration order on an interior tile and a corner.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(10, 10)
	fmt.Println(g.Neighbors(5, 5))
	fmt.Println(g.Neighbors(0, 0))
	fmt.Println(g.Neighbors(100, 100))
	// Output:
	// [{5 4} {6 5} {5 6} {4 5} {6 6} {6 4} {4 4} {4 6}]
	// [{1 0} {0 1} {1 1}]
	// []
}

// ExampleGrid_Get shows that out-of-range reads report absence instead of failing.
func ExampleGrid_Get() {
	g, _ := grid.Parse("ab\ncd")
	tile, ok := g.Get(1, 1)
	fmt.Printf("%c %v\n", tile, ok)
	_, ok = g.Get(2, 0)
	fmt.Println(ok)
	// Output:
	// d true
	// false
}
