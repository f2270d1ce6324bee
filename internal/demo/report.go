package demo

import (
	"encoding/json"
	"fmt"
	"io"
)

// Step is one labelled value produced by a walkthrough section.
type Step struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Report collects the steps of one section in order.
type Report struct {
	Section string `json:"section"`
	Steps   []Step `json:"steps"`
}

func (r *Report) add(label string, value any) {
	r.Steps = append(r.Steps, Step{Label: label, Value: value})
}

// writeText prints a heading and one "label: value" line per step.
func (r *Report) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "== %s\n", r.Section); err != nil {
		return err
	}
	for _, s := range r.Steps {
		if _, err := fmt.Fprintf(w, "%s: %v\n", s.Label, s.Value); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON prints the report as a single JSON line.
func (r *Report) writeJSON(w io.Writer) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal %s report: %w", r.Section, err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
