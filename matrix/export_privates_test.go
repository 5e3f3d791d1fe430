// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose the resolved Options to matrix_test ONLY, without widening the prod API.
//   - Compiled only by `go test` (file name ends in _test.go, package matrix).

import "log/slog"

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Eps    float64
	Logger *slog.Logger
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Logger: o.logger}
}
