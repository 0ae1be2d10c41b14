// Package metrics_test verifies thread-safety of Metrics under concurrent use.
package metrics_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvmath/metrics"
	"github.com/stretchr/testify/require"
)

// TestConcurrentInc ensures that concurrent increments of shared and private
// keys are never lost.
func TestConcurrentInc(t *testing.T) {
	m := metrics.New()
	const (
		workers = 64
		perWork = 500
	)
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			own := fmt.Sprintf("worker-%d", id)
			for j := 0; j < perWork; j++ {
				m.Inc("shared")
				m.Inc(own)
			}
		}(i)
	}
	wg.Wait()

	v, ok := m.Get("shared")
	require.True(t, ok)
	require.Equal(t, int64(workers*perWork), v)
	require.Equal(t, workers+1, m.Len())
	for i := 0; i < workers; i++ {
		v, ok = m.Get(fmt.Sprintf("worker-%d", i))
		require.True(t, ok)
		require.Equal(t, int64(perWork), v)
	}
}

// TestConcurrentIncAndDump mixes writers with String/Snapshot readers to
// verify no races or panics occur; dumps taken mid-flight need not agree.
func TestConcurrentIncAndDump(t *testing.T) {
	m := metrics.New()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			m.Inc(fmt.Sprintf("k%d", id%10))
		}(i)
		go func() {
			defer wg.Done()
			_ = m.String()
			_ = m.Snapshot()
		}()
	}
	wg.Wait()

	var total int64
	for _, v := range m.Snapshot() {
		total += v
	}
	require.Equal(t, int64(rounds), total)
}
