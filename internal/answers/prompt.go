package answers

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cast"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks a single question. The question's Default holds the value
// to pre-fill.
type Prompter interface {
	Ask(ctx context.Context, q Question) (any, error)
}

// SurveyPrompter asks questions on the terminal.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a terminal prompter. Options are passed to
// every survey.AskOne call (e.g. survey.WithStdio in tests).
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

func (p *SurveyPrompter) Ask(ctx context.Context, q Question) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := p.opts
	if q.Required {
		opts = append(append([]survey.AskOpt{}, opts...), survey.WithValidator(survey.Required))
	}

	switch q.Kind {
	case Confirm:
		var out bool
		prompt := &survey.Confirm{Message: q.Message, Default: cast.ToBool(q.Default)}
		if err := survey.AskOne(prompt, &out, opts...); err != nil {
			return nil, translateSurveyErr(err)
		}
		return out, nil
	case Select:
		var out string
		prompt := &survey.Select{Message: q.Message, Options: q.Choices}
		if def := cast.ToString(q.Default); contains(q.Choices, def) {
			prompt.Default = def
		}
		if err := survey.AskOne(prompt, &out, opts...); err != nil {
			return nil, translateSurveyErr(err)
		}
		return out, nil
	default:
		var out string
		prompt := &survey.Input{Message: q.Message, Default: cast.ToString(q.Default)}
		if err := survey.AskOne(prompt, &out, opts...); err != nil {
			return nil, translateSurveyErr(err)
		}
		return out, nil
	}
}

// DefaultsPrompter answers every question with its default. It backs
// --yes and non-interactive runs.
type DefaultsPrompter struct{}

func (DefaultsPrompter) Ask(ctx context.Context, q Question) (any, error) {
	return q.Default, ctx.Err()
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
