// SPDX-License-Identifier: MIT
package matrix_test

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestDefaultOptions_Documented verifies that the zero configuration equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultRankEpsilon, o.Eps)
	require.NotNil(t, o.Logger)
	require.False(t, o.Logger.Enabled(context.Background(), slog.LevelError), "default logger discards")
}

func TestOptions_LastWins(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithEpsilon(1e-3),
		nil, // nil options are skipped
		matrix.WithEpsilon(1e-6),
		matrix.WithLogger(l),
	)
	require.Equal(t, 1e-6, o.Eps)
	require.Same(t, l, o.Logger)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithLogger(nil) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
