// Package demo runs the hoard walkthrough: short, linear exercises of the
// seq, assoc, and text packages whose intermediate values are written to an
// output stream as text or JSON.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/hoard/pkg/types"
)

// Runner executes walkthrough sections and writes their reports.
type Runner struct {
	out    io.Writer
	log    *slog.Logger
	hasher string
	json   bool
}

// New returns a Runner writing to out. Empty config fields fall back to
// types.DefaultConfig. A nil logger discards log records.
func New(out io.Writer, logger *slog.Logger, cfg types.Config) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	hasher := cfg.Hasher
	if hasher == "" {
		hasher = types.HasherSeeded
	}
	return &Runner{
		out:    out,
		log:    logger,
		hasher: hasher,
		json:   cfg.Output == types.OutputJSON,
	}
}

// Run executes the named sections in the given order. An empty list runs
// every section. It returns an error wrapping types.ErrSectionUnknown for an
// unrecognised name, before any section runs.
func (r *Runner) Run(sections []string) error {
	if len(sections) == 0 {
		sections = types.DefaultSections
	}
	for _, name := range sections {
		if _, ok := r.section(name); !ok {
			return fmt.Errorf("section %q: %w", name, types.ErrSectionUnknown)
		}
	}
	for _, name := range sections {
		fn, _ := r.section(name)
		r.log.Debug("section start", "section", name)
		rep, err := fn()
		if err != nil {
			return fmt.Errorf("run %s section: %w", name, err)
		}
		if err := r.write(rep); err != nil {
			return fmt.Errorf("write %s report: %w", name, err)
		}
		r.log.Info("section done", "section", name, "steps", len(rep.Steps))
	}
	return nil
}

func (r *Runner) section(name string) (func() (*Report, error), bool) {
	switch name {
	case types.SectionSequence:
		return r.Sequence, true
	case types.SectionMap:
		return r.Map, true
	case types.SectionText:
		return r.Text, true
	}
	return nil, false
}

func (r *Runner) write(rep *Report) error {
	if r.json {
		return rep.writeJSON(r.out)
	}
	return rep.writeText(r.out)
}
