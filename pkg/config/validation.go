package config

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	variableNamePattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	directiveTypePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks a configuration after defaults have been merged. Every
// problem is collected; the caller gets all of them at once.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	addError := func(field, message string) {
		errs = append(errs, ValidationError{Field: field, Message: message})
	}

	for i, name := range cfg.CIIndicators {
		if !variableNamePattern.MatchString(name) {
			addError(fmt.Sprintf("ci_indicators[%d]", i), fmt.Sprintf("%q is not a valid environment variable name", name))
		}
	}

	for i, name := range cfg.DeprecatedVars {
		if !variableNamePattern.MatchString(name) {
			addError(fmt.Sprintf("deprecated_vars[%d]", i), fmt.Sprintf("%q is not a valid environment variable name", name))
		}
	}

	// Directive tags are lowercase identifiers ("default", "local-only",
	// plugin tags alike). Unknown tags are allowed here: plugins register
	// theirs after the config loads.
	for i, tag := range cfg.SkipDirectives {
		if !directiveTypePattern.MatchString(tag) {
			addError(fmt.Sprintf("skip_directives[%d]", i), fmt.Sprintf("%q is not a valid directive type", tag))
		}
	}

	if cfg.Plugins.Keyring.Enabled && cfg.Plugins.Keyring.Service == "" {
		addError("plugins.keyring.service", "service name is required when the keyring plugin is enabled")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
