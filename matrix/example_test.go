package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/spath/matrix"
)

// ExampleParseString loads a matrix that uses -1 for "no edge".
func ExampleParseString() {
	m, err := matrix.ParseString(`
0  2 -1
-1 0  3
1 -1  0
`, matrix.WithSentinel(-1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// 0 2 inf
	// inf 0 3
	// 1 inf 0
}
