// SPDX-License-Identifier: MIT
package metrics_test

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvmath/metrics"
	"github.com/stretchr/testify/require"
)

// dumpLines splits a dump into sorted lines, dropping the trailing newline.
func dumpLines(s string) []string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	sort.Strings(lines)

	return lines
}

func TestInc_Dump(t *testing.T) {
	m := metrics.New()
	m.Inc("x")
	m.Inc("x")
	m.Inc("x")
	m.Inc("y")

	if diff := cmp.Diff([]string{"x: 3", "y: 1"}, dumpLines(m.String())); diff != "" {
		t.Fatalf("dump (-want +got):\n%s", diff)
	}
	require.True(t, strings.HasSuffix(m.String(), "\n"))
}

func TestEmpty(t *testing.T) {
	m := metrics.New()
	require.Equal(t, "", m.String())
	require.Equal(t, 0, m.Len())
	require.Empty(t, m.Keys())
	_, ok := m.Get("missing")
	require.False(t, ok)
}

func TestAddGetKeys(t *testing.T) {
	m := metrics.New()
	require.Equal(t, int64(5), m.Add("b", 5))
	require.Equal(t, int64(3), m.Add("b", -2))
	m.Inc("a")

	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, int64(3), v)
	require.Equal(t, 2, m.Len())
	require.Equal(t, []string{"a", "b"}, m.Keys())
	require.Equal(t, map[string]int64{"a": 1, "b": 3}, m.Snapshot())
}

func TestSnapshot_IsACopy(t *testing.T) {
	m := metrics.New()
	m.Inc("k")
	snap := m.Snapshot()
	snap["k"] = 100

	v, _ := m.Get("k")
	require.Equal(t, int64(1), v)
}

// TestSharedPointer: copies of the handle observe the same counters.
func TestSharedPointer(t *testing.T) {
	m := metrics.New()
	alias := m
	alias.Inc("shared")
	v, ok := m.Get("shared")
	require.True(t, ok)
	require.Equal(t, int64(1), v)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTo(t *testing.T) {
	m := metrics.New()
	m.Inc("hits")
	m.Add("misses", 2)

	var b strings.Builder
	n, err := m.WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, int64(b.Len()), n)
	require.Equal(t, []string{"hits: 1", "misses: 2"}, dumpLines(b.String()))

	_, err = m.WriteTo(failingWriter{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}
