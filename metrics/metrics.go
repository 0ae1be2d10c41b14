// SPDX-License-Identifier: MIT

// Package metrics provides Metrics, a thread-safe map of named int64 counters.
//
// Storage is a sharded concurrent map: every key hashes to one shard guarded
// by its own sync.RWMutex, so increments of keys on different shards never
// contend and each increment is atomic for its key.
//
// Consistency:
//   - Inc/Add on one key are linearizable.
//   - No ordering is guaranteed between increments of different keys.
//   - String, Snapshot and Keys lock shards one at a time; they are not a
//     consistent snapshot when increments race with them.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/samber/lo"
)

// lineFormat is the dump format of one counter.
const lineFormat = "%s: %d\n"

// Metrics is a concurrent string → int64 counter map.
// The zero value is not usable; construct with New. A *Metrics may be shared
// by any number of goroutines.
type Metrics struct {
	data cmap.ConcurrentMap[string, int64]
}

// New returns an empty Metrics.
func New() *Metrics {
	return &Metrics{data: cmap.New[int64]()}
}

// Inc increments the counter for key by one, creating it at 1 when absent.
// It never fails.
func (m *Metrics) Inc(key string) {
	m.Add(key, 1)
}

// Add adds delta to the counter for key, creating it at delta when absent,
// and returns the new value. The read-modify-write runs under the key's
// shard lock.
func (m *Metrics) Add(key string, delta int64) int64 {
	return m.data.Upsert(key, delta, func(exist bool, current, inc int64) int64 {
		if !exist {
			return inc
		}

		return current + inc
	})
}

// Get returns the counter for key and whether it exists.
func (m *Metrics) Get(key string) (int64, bool) {
	return m.data.Get(key)
}

// Len returns the number of counters.
func (m *Metrics) Len() int {
	return m.data.Count()
}

// Keys returns every counter name in ascending order.
func (m *Metrics) Keys() []string {
	keys := lo.Keys(m.data.Items())
	sort.Strings(keys)

	return keys
}

// Snapshot copies all counters into a plain map.
func (m *Metrics) Snapshot() map[string]int64 {
	return m.data.Items()
}

// WriteTo writes one "<key>: <value>" line per counter to w.
// Line order is unspecified.
func (m *Metrics) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for t := range m.data.IterBuffered() {
		n, err := fmt.Fprintf(w, lineFormat, t.Key, t.Val)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("metrics: write %q: %w", t.Key, err)
		}
	}

	return total, nil
}

// String renders every counter as a "<key>: <value>" line.
// Line order is unspecified.
func (m *Metrics) String() string {
	var b strings.Builder
	_, _ = m.WriteTo(&b)

	return b.String()
}
