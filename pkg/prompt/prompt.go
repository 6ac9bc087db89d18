// Package prompt asks an ordered list of questions and collects the
// answers. The terminal side lives behind Asker so callers can be driven
// by defaults or by a fake in tests.
package prompt

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Input Kind = iota
	Confirm
)

// Question is one prompt in a sequence. Default is used for Input
// questions and DefaultYes for Confirm questions. Validate is optional
// and only applies to Input answers.
type Question struct {
	Name       string
	Message    string
	Kind       Kind
	Default    string
	DefaultYes bool
	Validate   func(string) error
}

type Asker interface {
	Input(message, def string, validate func(string) error) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// Answers holds the collected values keyed by question name.
type Answers struct {
	strings map[string]string
	bools   map[string]bool
}

func (a Answers) String(name string) string {
	return a.strings[name]
}

func (a Answers) Bool(name string) bool {
	return a.bools[name]
}

type Runner struct {
	asker Asker
}

func NewRunner(asker Asker) *Runner {
	return &Runner{asker: asker}
}

// Run asks the questions in order and stops at the first error.
func (r *Runner) Run(questions []Question) (Answers, error) {
	answers := Answers{
		strings: make(map[string]string),
		bools:   make(map[string]bool),
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.Name == "" {
			return Answers{}, fmt.Errorf("question %q has no name", q.Message)
		}
		if seen[q.Name] {
			return Answers{}, fmt.Errorf("duplicate question name %q", q.Name)
		}
		seen[q.Name] = true
	}

	for _, q := range questions {
		switch q.Kind {
		case Input:
			answer, err := r.asker.Input(q.Message, q.Default, q.Validate)
			if err != nil {
				return Answers{}, fmt.Errorf("failed to read %s: %w", q.Name, err)
			}
			answers.strings[q.Name] = answer
		case Confirm:
			answer, err := r.asker.Confirm(q.Message, q.DefaultYes)
			if err != nil {
				return Answers{}, fmt.Errorf("failed to read %s: %w", q.Name, err)
			}
			answers.bools[q.Name] = answer
		default:
			return Answers{}, fmt.Errorf("question %s has unknown kind %d", q.Name, q.Kind)
		}
	}

	return answers, nil
}

// Defaults answers every question with its default value. Validators
// still run, so a missing required default is reported.
type Defaults struct{}

func (Defaults) Input(_ string, def string, validate func(string) error) (string, error) {
	if validate != nil {
		if err := validate(def); err != nil {
			return "", err
		}
	}
	return def, nil
}

func (Defaults) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

// NoPathSeparator rejects answers that would place a file name in
// another directory. Empty answers are accepted.
func NoPathSeparator(s string) error {
	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("%q must not contain a path separator", s)
	}
	return nil
}
