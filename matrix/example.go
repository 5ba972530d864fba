// SPDX-License-Identifier: MIT

package matrix

// ExampleSentinel is the "no edge" value used by ExampleText.
const ExampleSentinel = 999

// ExampleText is the built-in 9-vertex directed road network.
// It is mostly symmetric; 1→7 costs 8 while 7→1 costs 11.
const ExampleText = `0 4 999 999 999 999 999 8 999
4 0 8 999 999 999 999 8 999
999 8 0 7 999 4 999 999 2
999 999 7 0 9 14 999 999 999
999 999 999 9 0 10 999 999 999
999 999 4 14 10 0 2 999 999
999 999 999 999 999 2 0 1 6
8 11 999 999 999 999 1 0 7
999 999 2 999 999 999 6 7 0
`

// Example returns ExampleText parsed with ExampleSentinel.
func Example() *Costs {
	m, err := ParseString(ExampleText, WithSentinel(ExampleSentinel))
	if err != nil {
		panic("matrix: built-in example is malformed: " + err.Error())
	}

	return m
}
