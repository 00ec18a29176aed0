package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var errAborted = errors.New("prompt aborted")

// promptValues asks for datalist values, one per line. Blank lines are
// dropped.
func promptValues(ctx context.Context, key string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw string
	prompt := &survey.Multiline{
		Message: fmt.Sprintf("Values for %q (one per line)", key),
		Help:    "Each line becomes one <option> in the rendered datalist.",
	}
	if err := survey.AskOne(prompt, &raw); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil, errAborted
		}
		return nil, err
	}
	return splitValues(raw), nil
}

func splitValues(raw string) []string {
	var values []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		values = append(values, line)
	}
	return values
}
