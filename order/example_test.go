package order_test

import (
	"fmt"

	"github.com/katalvlaran/trio/order"
)

// ExampleArrange interleaves three group buckets round-robin: the biggest
// group leads every round, so the head of the permutation is maximally
// diverse.
func ExampleArrange() {
	groups := []string{"a", "b", "a", "", "a", "b"}
	fmt.Println(order.Arrange(groups))
	// Output:
	// [0 1 3 2 5 4]
}
