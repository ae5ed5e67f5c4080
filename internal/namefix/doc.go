// Package namefix implements the name normalization engine: bracket-balance
// validation over the two delimiter families, fullwidth glyph rewriting,
// keyword re-tagging and relocation, version-token wrapping, and whitespace
// normalization.
//
// The engine is a fixed ordered sequence of rewrite passes over one string.
// Validation runs first, on the untouched input; every later pass is total
// and assumes well-formed nesting. A [Normalizer] holds only compiled
// configuration, so one instance can normalize many names concurrently.
//
// Types:
//   - Rules (keyword set, strip literals, glyph table)
//   - BracketRange (matched pair offsets for one string snapshot)
//   - DelimiterError (unmatched opening/closing, carries the name)
//
// Functions:
//   - ScanBrackets(s, open, close) → ranges: stack-based extent scan
//   - Validate(name): both families, fail fast, no mutation
//   - (*Normalizer).Name(raw) / Filename(raw): the pipeline entry points
package namefix
