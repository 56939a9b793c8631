package hcldoc

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/smake/internal/ctxlog"
	"github.com/vk/smake/internal/doctree"
)

// Loader parses HCL source into the format-agnostic document tree.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile parses the HCL file at path into a document tree.
func (l *Loader) LoadFile(ctx context.Context, path string) (*doctree.Document, error) {
	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}
	return l.document(ctx, path, file)
}

// Parse parses in-memory HCL source into a document tree. The filename is
// used in diagnostics only.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*doctree.Document, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	return l.document(ctx, filename, file)
}

func (l *Loader) document(ctx context.Context, name string, file *hcl.File) (*doctree.Document, error) {
	// The native syntax body exposes blocks and attributes with source
	// ranges, which the generic hcl.Body interface hides.
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected HCL body implementation %T", name, file.Body)
	}
	tags, err := tagsFromBody(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	ctxlog.FromContext(ctx).Debug("Document loaded.", "file", name, "tags", len(tags))
	return &doctree.Document{Tags: tags}, nil
}

// tagsFromBody converts a body's blocks and attributes into tags, ordered
// by their position in the source so that blocks and attributes interleave
// the way they were written.
func tagsFromBody(body *hclsyntax.Body) ([]*doctree.Tag, error) {
	type entry struct {
		tag *doctree.Tag
		pos int
	}
	var entries []entry

	for _, block := range body.Blocks {
		children, err := tagsFromBody(block.Body)
		if err != nil {
			return nil, err
		}
		values := make([]cty.Value, 0, len(block.Labels))
		for _, label := range block.Labels {
			values = append(values, cty.StringVal(label))
		}
		entries = append(entries, entry{
			tag: &doctree.Tag{Name: block.Type, Values: values, Children: children},
			pos: block.TypeRange.Start.Byte,
		})
	}

	for _, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute %q: %w", attr.Name, diags)
		}
		entries = append(entries, entry{
			tag: &doctree.Tag{Name: attr.Name, Values: scalars(val)},
			pos: attr.NameRange.Start.Byte,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].pos < entries[j].pos })
	tags := make([]*doctree.Tag, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
	}
	return tags, nil
}

// scalars flattens a tuple or list into its elements; any other value is
// a single scalar.
func scalars(val cty.Value) []cty.Value {
	if val.IsKnown() && !val.IsNull() && (val.Type().IsTupleType() || val.Type().IsListType()) {
		var out []cty.Value
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			out = append(out, v)
		}
		return out
	}
	return []cty.Value{val}
}
