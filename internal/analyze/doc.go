// Package analyze implements the deterministic text analysis stages of the
// reading pipeline: whitespace/punctuation normalization, tokenization,
// the hard-word classifier and the syllabifier. All functions are pure;
// the only shared state is the read-only lexicon passed in by the caller.
package analyze
