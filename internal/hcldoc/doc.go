// Package hcldoc is the concrete HCL binding for the document tree. It
// parses HCL source and flattens it into doctree tags: a block becomes a
// tag whose positional values are its labels and whose children come from
// its body; an attribute becomes a child tag whose values are the
// attribute's evaluated scalars (a tuple or list contributes its elements
// in order). Children keep the order they were written in.
package hcldoc
