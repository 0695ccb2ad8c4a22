// SPDX-License-Identifier: MIT

// Package metrics records sweep telemetry in a private Prometheus registry.
//
// Exposed series:
//
//	pollinet_sweep_invocations_total{outcome}   counter
//	pollinet_sweep_invocation_seconds           histogram
//	pollinet_sweep_best_robustness              gauge
//	pollinet_sweep_last_parameter               gauge
//
// The tool is a batch CLI, so there is no HTTP endpoint: WriteTextfile dumps
// the registry in the text exposition format for node_exporter's textfile
// collector. Every method is safe on a nil *Registry and does nothing.
package metrics
