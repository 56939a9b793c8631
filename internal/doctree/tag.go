package doctree

import (
	"github.com/zclconf/go-cty/cty"
)

// Tag is one node of the document tree.
type Tag struct {
	// Name of the tag, e.g. "rule" or "cmd".
	Name string
	// Values are the tag's positional scalar values, in document order.
	Values []cty.Value
	// Children are the tag's nested tags, in document order.
	Children []*Tag
}

// Document is the ordered top-level tag sequence of one parsed document.
type Document struct {
	Tags []*Tag
}

// ChildrenNamed returns the children whose name equals name, preserving
// document order.
func (t *Tag) ChildrenNamed(name string) []*Tag {
	var out []*Tag
	for _, child := range t.Children {
		if child.Name == name {
			out = append(out, child)
		}
	}
	return out
}
