package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/smake/internal/ctxlog"
	"github.com/vk/smake/internal/fsinfo"
	"github.com/vk/smake/internal/hcldoc"
	"github.com/vk/smake/internal/rule"
	"github.com/vk/smake/internal/ruleset"
)

// App encapsulates the application's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader *hcldoc.Loader
	fs     fsinfo.Stat
	config *Config
}

// NewApp constructs the application with its own isolated logger. The
// report goes to outW, log output to logW.
func NewApp(outW, logW io.Writer, config *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(config.LogLevel, config.LogFormat, logW),
		loader: hcldoc.NewLoader(),
		fs:     fsinfo.OS(),
		config: config,
	}
}

// Run loads the rule document, converts it into a rule set, and writes
// the staleness report for the configured targets.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Loading rule document.", "path", a.config.FilePath)

	doc, err := a.loader.LoadFile(ctx, a.config.FilePath)
	if err != nil {
		return err
	}

	set, err := ruleset.FromDocument(ctx, a.fs, doc)
	if err != nil {
		return fmt.Errorf("%s: %w", a.config.FilePath, err)
	}
	a.logger.Debug("Rule set ready.", "rules", set.Len())

	if len(a.config.Targets) == 0 {
		return a.report(set.Rules())
	}

	rules := make([]*rule.Rule, 0, len(a.config.Targets))
	for _, name := range a.config.Targets {
		r := set.Lookup(name)
		if r == nil {
			return fmt.Errorf("target %q not found", name)
		}
		rules = append(rules, r)
	}
	return a.report(rules)
}

func (a *App) report(rules []*rule.Rule) error {
	for _, r := range rules {
		line := r.String()
		if a.config.Verbose {
			line = r.Describe()
		}
		if _, err := fmt.Fprintln(a.outW, line); err != nil {
			return err
		}
	}
	return nil
}
