package resolve

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Prompter asks the user questions during an interactive resolution pass.
// The prompt resolver uses Input for values and Confirm for skip decisions;
// tests substitute a scripted implementation.
type Prompter interface {
	// Input asks a single line-input question. The default value is shown to
	// the user; an empty answer means "use the default".
	Input(message, defaultValue string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(message string, defaultValue bool) (bool, error)
}

// TermPrompter is the pterm-backed Prompter used against a real terminal.
type TermPrompter struct {
	// DisableColor disables colored output.
	DisableColor bool
}

// NewTermPrompter creates a terminal prompter.
func NewTermPrompter(disableColor bool) *TermPrompter {
	if disableColor {
		pterm.DisableColor()
	}
	return &TermPrompter{DisableColor: disableColor}
}

// Input reads one line of text input.
func (p *TermPrompter) Input(message, defaultValue string) (string, error) {
	if defaultValue != "" {
		message = fmt.Sprintf("%s (default: %s)", message, defaultValue)
	}

	result, err := pterm.DefaultInteractiveTextInput.
		WithMultiLine(false).
		Show(message)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return result, nil
}

// Confirm reads a yes/no answer.
func (p *TermPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(message)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return result, nil
}
