package main

import (
	"context"
	"errors"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/forms"
)

var errAborted = errors.New("formelement: prompt aborted")

// prompter asks for a value for one element. Returning "" keeps the
// element's current value.
type prompter interface {
	Input(ctx context.Context, message, current, help string) (string, error)
	Select(ctx context.Context, message string, choices []string, current string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(ctx context.Context, message, current, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: message,
		Help:    help,
		Default: current,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(ctx context.Context, message string, choices []string, current string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: choices,
	}
	for _, choice := range choices {
		if choice == current {
			prompt.Default = current
			break
		}
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// promptValues asks for every element's value and hands answers that differ
// from the current value to store.
func promptValues(ctx context.Context, p prompter, els []*forms.Element, store func(string, attr.Value)) error {
	for _, el := range els {
		current := el.Value()
		currentText := ""
		if !current.IsNull() {
			currentText = current.String()
		}

		message := el.Label()
		if message == "" {
			message = el.Name()
		}
		help, _ := el.Option("description", attr.Null()).AsString()

		var (
			answer string
			err    error
		)
		if choices, ok := el.Option("choices", attr.Null()).AsMap(); ok && len(choices) > 0 {
			answer, err = p.Select(ctx, message, choiceKeys(choices), currentText)
			if err == nil {
				if chosen, ok := choices[answer]; ok {
					if !chosen.Equal(current) {
						store(el.Name(), chosen)
					}
					continue
				}
			}
		} else {
			answer, err = p.Input(ctx, message, currentText, help)
		}
		if err != nil {
			return err
		}
		if answer != "" && answer != currentText {
			store(el.Name(), attr.String(answer))
		}
	}
	return nil
}

func choiceKeys(choices map[string]attr.Value) []string {
	keys := make([]string, 0, len(choices))
	for key := range choices {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
