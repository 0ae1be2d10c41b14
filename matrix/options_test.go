// SPDX-License-Identifier: MIT
package matrix_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewOptions_Defaults(t *testing.T) {
	o, err := matrix.NewOptions()
	require.NoError(t, err)
	require.Equal(t, runtime.GOMAXPROCS(0), o.Workers())
	require.Equal(t, matrix.DefaultMinRowsPerTask, o.MinRowsPerTask())
}

// TestNewOptions_Setters covers last-writer-wins and domain validation.
func TestNewOptions_Setters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []matrix.Option
		wantWorkers int
		wantMinRows int
		wantErr     error
	}{
		{"workers", []matrix.Option{matrix.WithWorkers(3)}, 3, matrix.DefaultMinRowsPerTask, nil},
		{"min rows", []matrix.Option{matrix.WithWorkers(1), matrix.WithMinRowsPerTask(5)}, 1, 5, nil},
		{"last wins", []matrix.Option{matrix.WithWorkers(2), matrix.WithWorkers(7)}, 7, matrix.DefaultMinRowsPerTask, nil},
		{"zero workers", []matrix.Option{matrix.WithWorkers(0)}, 0, 0, matrix.ErrBadOption},
		{"negative workers", []matrix.Option{matrix.WithWorkers(-1)}, 0, 0, matrix.ErrBadOption},
		{"zero min rows", []matrix.Option{matrix.WithMinRowsPerTask(0)}, 0, 0, matrix.ErrBadOption},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			o, err := matrix.NewOptions(tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantWorkers, o.Workers())
			require.Equal(t, tc.wantMinRows, o.MinRowsPerTask())
		})
	}
}
