package edgetable_test

import (
	"fmt"

	"github.com/katvale/solvecore/edgetable"
)

// ExampleTable shows the symmetric lookup: both label orders resolve to
// one canonical edge, and Dir reports which way the query ran.
func ExampleTable() {
	tab := edgetable.New()
	tab.AddEdge("box1;right", "box2;left")

	fwd, _ := tab.GetEdge("box1;right", "box2;left")
	rev, _ := tab.GetEdge("box2;left", "box1;right")
	fmt.Println(fwd.ID, fwd.Dir, rev.Dir)

	// Output:
	// box1;right;box2;left 1 -1
}

// ExampleTable_allocate shows the owning-handle protocol: every taker
// of a shared edge holds one handle, and the edge disappears exactly
// when the last handle is released.
func ExampleTable_allocate() {
	tab := edgetable.New()

	a := tab.Allocate("A", "B")
	b := tab.Allocate("B", "A")

	fmt.Println(a.Release(), tab.Len())
	fmt.Println(b.Release(), tab.Len())

	// Output:
	// false 1
	// true 0
}
