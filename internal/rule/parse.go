package rule

import (
	"context"
	"fmt"

	"github.com/vk/smake/internal/ctxlog"
	"github.com/vk/smake/internal/doctree"
	"github.com/vk/smake/internal/fsinfo"
	"github.com/zclconf/go-cty/cty"
)

// TagName is the document tag that declares a rule.
const TagName = "rule"

// Child tag names recognized inside a rule tag.
const (
	cmdTag = "cmd"
	inTag  = "in"
	outTag = "out"
)

// FromTag validates one document tag and converts it into a Rule. Any
// structural violation, or a filesystem failure while snapshotting input
// timestamps, fails the whole conversion; a partial rule is never
// produced.
func FromTag(ctx context.Context, fs fsinfo.Stat, tag *doctree.Tag) (*Rule, error) {
	if tag.Name != TagName {
		return nil, fmt.Errorf("tag %q is not a rule", tag.Name)
	}
	if len(tag.Values) != 1 {
		return nil, fmt.Errorf("rule tag wants exactly one name value, got %d", len(tag.Values))
	}
	name, err := stringValue(tag.Values[0])
	if err != nil {
		return nil, fmt.Errorf("rule name: %w", err)
	}
	if name == "" {
		return nil, fmt.Errorf("rule name is empty")
	}

	cmds, err := childValues(tag, cmdTag)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	if len(cmds) == 0 {
		return nil, fmt.Errorf("rule %q has no %q entries", name, cmdTag)
	}
	inputs, err := childValues(tag, inTag)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	outputs, err := childValues(tag, outTag)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}

	ctxlog.FromContext(ctx).Debug("Rule tag validated.",
		"rule", name, "cmds", len(cmds), "inputs", len(inputs), "outputs", len(outputs))
	return New(ctx, fs, name, cmds, inputs, outputs)
}

// childValues concatenates the values of every child tag with the given
// name, in child order then value order. Every value must be a string.
func childValues(tag *doctree.Tag, name string) ([]string, error) {
	var out []string
	for _, child := range tag.ChildrenNamed(name) {
		for i, v := range child.Values {
			s, err := stringValue(v)
			if err != nil {
				return nil, fmt.Errorf("%s value %d: %w", name, i+1, err)
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// stringValue unwraps a scalar that must be a known, non-null string.
func stringValue(v cty.Value) (string, error) {
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.String) {
		return "", fmt.Errorf("value is %s, want string", v.Type().FriendlyName())
	}
	return v.AsString(), nil
}
