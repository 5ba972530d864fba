// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// answers is what the interactive session collected.
type answers struct {
	UseExample bool
	Order      int
	Matrix     string
	Source     string // as typed; empty when not asked
}

// prompter asks the user for the graph and, if askSource, the source vertex.
type prompter interface {
	Ask(askSource bool) (answers, error)
}

// huhPrompter drives the interactive session with huh forms.
type huhPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *huhPrompter) Ask(askSource bool) (answers, error) {
	var a answers

	first := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Use the built-in example graph?").
			Affirmative("Yes").
			Negative("No, enter a matrix").
			Value(&a.UseExample),
	)).WithInput(p.in).WithOutput(p.out)
	if err := first.Run(); err != nil {
		return answers{}, err
	}

	var fields []huh.Field
	var orderText string
	if !a.UseExample {
		fields = append(fields,
			huh.NewInput().
				Title("Vertex count").
				Value(&orderText).
				Validate(validatePositive),
			huh.NewText().
				Title("Cost matrix").
				Description("One row per line, cells separated by spaces; inf or - for no edge.").
				Lines(10).
				Value(&a.Matrix).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("matrix is empty")
					}
					return nil
				}),
		)
	}
	if askSource {
		fields = append(fields,
			huh.NewInput().
				Title("Source vertex").
				Value(&a.Source).
				Validate(validateNonNegative),
		)
	}
	if len(fields) > 0 {
		second := huh.NewForm(huh.NewGroup(fields...)).WithInput(p.in).WithOutput(p.out)
		if err := second.Run(); err != nil {
			return answers{}, err
		}
	}

	if !a.UseExample {
		// validated above
		a.Order, _ = strconv.Atoi(strings.TrimSpace(orderText))
	}

	return a, nil
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("%q is not a positive integer", s)
	}

	return nil
}

func validateNonNegative(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("%q is not a vertex index", s)
	}

	return nil
}

// isTerminal reports whether v is a file descriptor attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
