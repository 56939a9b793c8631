// Package app wires the document loader, the filesystem oracle and the
// report writer together, and owns application-level configuration and
// logger construction.
package app
