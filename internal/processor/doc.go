// Package processor wires the command line flags to the document
// pipeline and handles single-file and batch runs.
package processor
