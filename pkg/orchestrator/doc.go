// Package orchestrator wires the loader -> extractor -> transformer ->
// renderer pipeline behind a single entry point with dependency-injection
// friendly options.
package orchestrator
