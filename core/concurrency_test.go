// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightsliars/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every neighbour appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	errCh := make(chan error, num)
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errCh <- g.AddEdge("X", fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	deg, err := g.Degree("X")
	require.NoError(t, err)
	require.Equal(t, num, deg)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersAndCloners mixes readers, cloners and a writer.
func TestConcurrentReadersAndCloners(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("R%d", i), fmt.Sprintf("R%d", i+1)))
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = g.Clone()
			_ = g.AdjacencyList()
		}()
		go func(i int) {
			defer wg.Done()
			_ = g.AddEdge(fmt.Sprintf("W%d", i), "R0")
			_, _ = g.NeighborIDs("R0")
		}(i)
	}
	wg.Wait()

	deg, err := g.Degree("R0")
	require.NoError(t, err)
	require.Equal(t, 21, deg)
}
