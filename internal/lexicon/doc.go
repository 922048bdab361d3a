// Package lexicon provides the process-wide lexical resources used by the
// text analysis stages: a pronunciation dictionary in CMUdict format and a
// small curated set of common English words. Both are loaded once at
// startup and are immutable afterwards, so a single Lexicon can be shared
// by any number of concurrent pipeline runs without locking.
package lexicon
