// Package core_test verifies that a built AdjacencyList can be read concurrently.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spath/core"
)

// TestConcurrentReaders hammers Neighbors/Edges/PathWeight from many
// goroutines; run with -race to catch accidental writes on read paths.
func TestConcurrentReaders(t *testing.T) {
	const n = 64
	g, err := core.NewAdjacencyList(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, int64(i%5)))
	}

	const readers = 50
	errs := make(chan error, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			_ = g.Neighbors(r % n)
			_ = g.Edges()
			_, err := core.PathWeight(g, []int{0, 1, 2, 3})
			errs <- err
		}(r)
	}
	wg.Wait()
	close(errs)

	// *testing.T is only touched from the test goroutine.
	for err := range errs {
		require.NoError(t, err)
	}
}
