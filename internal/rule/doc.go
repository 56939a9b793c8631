// Package rule implements one build rule: its commands, input and output
// files, the staleness verdict derived from filesystem timestamps, and the
// per-output diagnostics explaining that verdict. A Rule snapshots its
// input timestamps at construction and is immutable afterwards.
package rule
