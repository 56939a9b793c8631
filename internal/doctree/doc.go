// Package doctree defines the format-agnostic document tree that rule
// parsing consumes: an ordered sequence of named tags, each carrying
// ordered typed scalar values and ordered child tags. Scalars are
// cty.Value so consumers can ask "is this a string" without knowing the
// concrete grammar that produced the tree.
package doctree
