// Package prompt wraps the interactive questions asked by the gridkit CLI.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// Driver abstracts the terminal implementation so the CLI flow can be tested
// without a real terminal.
type Driver interface {
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by survey.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return indexOf(cfg.Options, out), nil
}

// Choose asks the user to pick one of options and returns the chosen value.
// A single option is returned without prompting.
func Choose(ctx context.Context, driver Driver, message string, options []string, current string) (string, error) {
	switch len(options) {
	case 0:
		return "", fmt.Errorf("prompt: %s: no options available", message)
	case 1:
		return options[0], nil
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: indexOf(options, current),
		PageSize:     10,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("prompt: %s: invalid selection %d", message, idx)
	}
	return options[idx], nil
}

// ConfirmOverwrite asks before replacing an existing file. Paths that do not
// exist yet are confirmed without prompting.
func ConfirmOverwrite(ctx context.Context, driver Driver, path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("prompt: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("prompt: %s is a directory", path)
	}
	return driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Overwrite %s?", path),
		Default: false,
		Help:    "The existing file is replaced with the generated output.",
	})
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
