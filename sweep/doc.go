// SPDX-License-Identifier: MIT

// Package sweep drives an external population-dynamics simulator over a sequence
// of parameter values and collects one (parameter, robustness) point per value.
//
// The simulator is a capability (Simulator). ProcessSimulator is the production
// implementation: it feeds "<step>\n<parameter>\n" on stdin, waits for exit,
// then reads a scalar from a fixed side-channel file. Any metric file left over
// from a previous run is removed before launch, so a value is only ever read
// from the process that just terminated.
//
// Driver.Run is strictly sequential. A failed invocation (non-zero exit,
// timeout, missing or malformed metric) records robustness 0 with Failed set,
// emits one log line and the sweep moves on: N values always give N points.
// Only cancellation of the caller's context stops a sweep early.
//
// Optimum is a linear scan; the first maximum wins.
package sweep
