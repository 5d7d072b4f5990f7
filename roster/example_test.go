package roster_test

import (
	"fmt"

	"github.com/katalvlaran/trio/roster"
)

// ExampleParseList parses wire tokens into participants; a token without
// a slash is simply ungrouped.
func ExampleParseList() {
	ps, _ := roster.ParseList("A/x, B/y, C")
	for _, p := range ps {
		fmt.Println(p.Token())
	}
	// Output:
	// A/x
	// B/y
	// C/
}

// ExampleSized shows the warn-and-proceed policy: the explicit size list
// wins over a mismatched requested count.
func ExampleSized() {
	ps, warns, _ := roster.Sized(5, []int{3, 3})
	for _, w := range warns {
		fmt.Println(w)
	}
	fmt.Println("participants:", len(ps))
	// Output:
	// roster: requested 5 participants but group sizes sum to 6; using explicit sizes
	// participants: 6
}
