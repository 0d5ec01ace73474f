// Package extract declares the extractor contract: a pure function from the
// text of a LaTeX résumé to a resume.Record. The implementation lives in
// internal/extract and is constructed through cvgen.NewExtractor or the
// orchestrator defaults.
//
// Project technologies are inferred, not read: tokens that look like
// capitalised identifiers (an upper-case letter followed by letters, digits,
// '+', '#' or '.') are collected from the project description, de-duplicated
// in first-seen order and capped. Sentence-initial plain words such as
// "Built" or "Designed" are skipped. The heuristic misses lower-case names and
// keeps ordinary capitalised words that appear mid-sentence; callers should
// treat the list as a hint.
package extract
