package rule

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/vk/smake/internal/ctxlog"
	"github.com/vk/smake/internal/fsinfo"
)

// Rule is one named unit of work. All inputs must exist at construction
// time; a missing input fails construction rather than degrading into a
// "needs update" verdict, because a rule with an unreadable input cannot
// answer whether its outputs are current.
type Rule struct {
	name    string
	cmds    []string
	inputs  []string
	outputs []string

	// inputTimes is index-aligned with inputs and frozen at construction.
	inputTimes   []time.Time
	updateNeeded bool

	fs fsinfo.Stat
}

// New builds a Rule from validated fields, reading the last-modified time
// of every input and deriving the staleness verdict. The verdict is true
// when any output is missing or strictly older than the newest input, when
// the rule declares no outputs, or when it declares no inputs (nothing to
// compare against is treated as infinitely recent).
func New(ctx context.Context, fs fsinfo.Stat, name string, cmds, inputs, outputs []string) (*Rule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule has no name")
	}
	if len(cmds) == 0 {
		return nil, fmt.Errorf("rule %q has no commands", name)
	}

	r := &Rule{
		name:    name,
		cmds:    cmds,
		inputs:  inputs,
		outputs: outputs,
		fs:      fs,
	}

	r.inputTimes = make([]time.Time, 0, len(inputs))
	for _, in := range inputs {
		mt, err := fs.ModTime(in)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		r.inputTimes = append(r.inputTimes, mt)
	}
	r.updateNeeded = r.computeUpdateNeeded()

	ctxlog.FromContext(ctx).Debug("Rule constructed.",
		"rule", name, "inputs", len(inputs), "outputs", len(outputs),
		"needs_update", r.updateNeeded)
	return r, nil
}

func (r *Rule) computeUpdateNeeded() bool {
	if len(r.outputs) == 0 {
		// Nothing to check freshness against.
		return true
	}
	if len(r.inputs) == 0 {
		// The newest input is infinitely recent.
		return true
	}
	latest := r.latestInput()
	for _, out := range r.outputs {
		mt, err := r.fs.ModTime(out)
		if err != nil || mt.Before(latest) {
			return true
		}
	}
	return false
}

// latestInput returns the newest cached input timestamp.
func (r *Rule) latestInput() time.Time {
	var latest time.Time
	for _, t := range r.inputTimes {
		if t.After(latest) {
			latest = t
		}
	}
	return latest
}

// Name returns the rule's identifier.
func (r *Rule) Name() string { return r.name }

// Commands returns the rule's commands in declaration order.
func (r *Rule) Commands() []string { return r.cmds }

// Inputs returns the rule's input file paths in declaration order.
func (r *Rule) Inputs() []string { return r.inputs }

// Outputs returns the rule's output file paths in declaration order.
func (r *Rule) Outputs() []string { return r.outputs }

// NeedsUpdate reports the staleness verdict computed at construction.
func (r *Rule) NeedsUpdate() bool { return r.updateNeeded }

// UpdateInfo explains, for one output file, whether it needs updating
// and why.
type UpdateInfo struct {
	// Output is the output file path.
	Output string
	// NeedsUpdate is true when the output is missing or stale.
	NeedsUpdate bool
	// Exists is true when the output currently exists.
	Exists bool
	// Input names the first declared input newer than the output, when
	// that is the reason the output is stale. Empty otherwise.
	Input string
}

// String renders the record as a human-readable sentence.
func (i UpdateInfo) String() string {
	switch {
	case !i.Exists:
		return fmt.Sprintf("%q nonexistent, needs update.", i.Output)
	case i.NeedsUpdate:
		return fmt.Sprintf("%q is older than %q, needs update.", i.Output, i.Input)
	default:
		return fmt.Sprintf("%q is newest, does not need update.", i.Output)
	}
}

// UpdateInfo yields one diagnostic record per output, in output order.
// Output timestamps are read fresh on every iteration, so the sequence is
// restartable and reflects the live filesystem; the cached input snapshot
// and the Rule itself are never modified.
func (r *Rule) UpdateInfo() iter.Seq[UpdateInfo] {
	return func(yield func(UpdateInfo) bool) {
		for _, out := range r.outputs {
			if !yield(r.outputInfo(out)) {
				return
			}
		}
	}
}

func (r *Rule) outputInfo(out string) UpdateInfo {
	mt, err := r.fs.ModTime(out)
	if err != nil {
		return UpdateInfo{Output: out, NeedsUpdate: true}
	}
	// Only the first newer input is reported, a single actionable
	// explanation per output.
	for i, t := range r.inputTimes {
		if t.After(mt) {
			return UpdateInfo{
				Output:      out,
				NeedsUpdate: true,
				Exists:      true,
				Input:       r.inputs[i],
			}
		}
	}
	return UpdateInfo{Output: out, Exists: true}
}

// String renders the compact one-line summary of the rule.
func (r *Rule) String() string {
	verdict := "does not need update"
	if r.updateNeeded {
		verdict = "needs update"
	}
	return fmt.Sprintf("[%s] -> [%s] via %q (%s)",
		strings.Join(r.inputs, ", "),
		strings.Join(r.outputs, ", "),
		strings.Join(r.cmds, "; "),
		verdict)
}

// Describe renders the summary followed by one bulleted diagnostic line
// per output.
func (r *Rule) Describe() string {
	var b strings.Builder
	b.WriteString(r.String())
	for info := range r.UpdateInfo() {
		b.WriteString("\n  * ")
		b.WriteString(info.String())
	}
	return b.String()
}
