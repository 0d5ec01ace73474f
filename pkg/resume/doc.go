// Package resume defines the Parsed Record produced by the extractor and
// consumed by renderers. Every scalar field defaults to the empty string and
// every sequence to an empty, non-nil slice so renderers can emit a fully
// populated output schema without nil checks. A Record is built once per run
// and treated as immutable after the extractor returns it.
package resume
