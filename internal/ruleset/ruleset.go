// Package ruleset converts a whole parsed document into the ordered
// collection of its validated rules. The conversion is all-or-nothing: a
// document with one malformed rule is an invalid document, not a document
// with one fewer rule.
package ruleset

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/smake/internal/ctxlog"
	"github.com/vk/smake/internal/doctree"
	"github.com/vk/smake/internal/fsinfo"
	"github.com/vk/smake/internal/rule"
)

// Set is the ordered collection of rules parsed from one document.
type Set struct {
	rules []*rule.Rule
}

// FromDocument applies rule.FromTag to every top-level "rule" tag of doc,
// in document order. The fold short-circuits: the first tag that fails to
// parse aborts the conversion and no Set is returned.
func FromDocument(ctx context.Context, fs fsinfo.Stat, doc *doctree.Document) (*Set, error) {
	set := &Set{}
	nth := 0
	for _, tag := range doc.Tags {
		if tag.Name != rule.TagName {
			continue
		}
		nth++
		r, err := rule.FromTag(ctx, fs, tag)
		if err != nil {
			return nil, fmt.Errorf("rule tag #%d: %w", nth, err)
		}
		set.rules = append(set.rules, r)
	}
	ctxlog.FromContext(ctx).Debug("Document converted to rule set.", "rules", set.Len())
	return set, nil
}

// Rules returns the rules in document order.
func (s *Set) Rules() []*rule.Rule { return s.rules }

// Len returns the number of rules in the set.
func (s *Set) Len() int { return len(s.rules) }

// Lookup returns the first rule with the given name, or nil if the set
// has none. Name uniqueness is a convention, not an invariant, so earlier
// declarations win.
func (s *Set) Lookup(name string) *rule.Rule {
	for _, r := range s.rules {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// String renders the set as its rules' one-line summaries joined by
// newlines.
func (s *Set) String() string {
	lines := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
