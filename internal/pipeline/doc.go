// Package pipeline contains the core processing logic: it stages an
// uploaded document, extracts and normalizes its text, flags hard words
// with their syllable breakdowns, synthesizes audio and persists one
// record per successful run. The staged upload is removed on every exit
// path, including panics. This package serves as the coordinator between
// the extract, analyze, audio and store components.
package pipeline
