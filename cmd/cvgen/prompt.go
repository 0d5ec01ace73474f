package main

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrSelectionAborted is returned when the user interrupts the prompt.
var ErrSelectionAborted = errors.New("document selection aborted")

// Picker chooses one document among several candidates.
type Picker interface {
	Pick(ctx context.Context, candidates []string) (string, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context, candidates []string) (string, error)

func (fn PickerFunc) Pick(ctx context.Context, candidates []string) (string, error) {
	return fn(ctx, candidates)
}

type surveyPicker struct{}

func (surveyPicker) Pick(ctx context.Context, candidates []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", errors.New("no candidates to choose from")
	}

	options := make([]string, len(candidates))
	for i, candidate := range candidates {
		options[i] = filepath.Base(candidate)
	}

	var chosen int
	prompt := &survey.Select{
		Message: "Several résumé documents found. Which one should be used?",
		Options: options,
		Default: options[0],
	}
	if err := survey.AskOne(prompt, &chosen); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrSelectionAborted
		}
		return "", err
	}
	return candidates[chosen], nil
}
