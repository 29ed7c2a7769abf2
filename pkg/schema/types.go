// Package schema defines the variable schema model for EnvForge and the two
// operations that produce schemas: parsing annotated example files and merging
// a workspace root schema with an app schema.
//
// A schema is an ordered list of variable definitions. Order is significant:
// the resolution pipeline walks it front to back, and copy directives may only
// reference variables that appear earlier.
package schema

import "fmt"

// Requirement indicates whether a variable must be present in the final env file.
type Requirement string

const (
	// RequirementRequired marks a variable that must end up with a value.
	RequirementRequired Requirement = "required"

	// RequirementOptional marks a variable that may be absent or empty.
	RequirementOptional Requirement = "optional"
)

// DirectiveType selects the resolution strategy for a variable.
//
// The bundled set is closed; plugins may introduce additional types, which the
// parser preserves verbatim when they are declared up front (see ParseOptions).
type DirectiveType string

const (
	// DirectivePlaceholder uses the example value, or synthesizes a marker.
	DirectivePlaceholder DirectiveType = "placeholder"

	// DirectiveDefault uses a declared literal, falling back to the example value.
	DirectiveDefault DirectiveType = "default"

	// DirectivePrompt asks the user for a value interactively.
	DirectivePrompt DirectiveType = "prompt"

	// DirectiveCopy copies the value of another variable resolved earlier.
	DirectiveCopy DirectiveType = "copy"

	// DirectiveComputed names a compute strategy; no bundled implementations exist.
	DirectiveComputed DirectiveType = "computed"

	// DirectiveLocalOnly is only ever filled in on interactive local machines.
	DirectiveLocalOnly DirectiveType = "local-only"
)

// Directive is the declared resolution strategy attached to a variable
// definition. Exactly one payload field is meaningful per type:
// DefaultValue for default and local-only, CopyFrom for copy, ComputeType for
// computed, and Argument for plugin-defined types. Placeholder and prompt
// carry no payload.
type Directive struct {
	Type DirectiveType

	// DefaultValue is the literal for default and local-only directives.
	DefaultValue string

	// CopyFrom names the source variable for copy directives.
	CopyFrom string

	// ComputeType identifies the compute strategy for computed directives.
	ComputeType string

	// Argument is the raw colon-argument for plugin-defined directive types.
	Argument string

	// Raw is the original tag text as it appeared in the example file,
	// e.g. "@copy:DATABASE_URL". Plugin sources may pattern-match on it.
	Raw string
}

// String returns the directive in its annotation form.
func (d Directive) String() string {
	if d.Raw != "" {
		return d.Raw
	}
	return "@" + string(d.Type)
}

// VariableDefinition is one entry of a schema: a variable name, the literal
// example value from the example file, and the annotation metadata parsed from
// the comment block above the assignment.
type VariableDefinition struct {
	// Name is unique within a merged schema.
	Name string

	// ExampleValue is the literal right-hand side of the assignment, untrimmed.
	// May be empty.
	ExampleValue string

	// Requirement defaults to required unless the annotation says otherwise.
	Requirement Requirement

	// Directive is the declared resolution strategy.
	Directive Directive

	// Description is the free-text portion of the comment block.
	Description string

	// RawAnnotation is the full comment block, preserved for diagnostics and
	// for plugin pattern matching.
	RawAnnotation string
}

// Required reports whether the variable must end up with a value.
func (d VariableDefinition) Required() bool {
	return d.Requirement == RequirementRequired
}

// Schema is an ordered sequence of variable definitions. Names are unique
// after merging; within a single parsed file the parser enforces uniqueness
// with last-definition-wins.
type Schema []VariableDefinition

// Find returns the definition with the given name.
func (s Schema) Find(name string) (VariableDefinition, bool) {
	for _, def := range s {
		if def.Name == name {
			return def, true
		}
	}
	return VariableDefinition{}, false
}

// Names returns the variable names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, def := range s {
		names[i] = def.Name
	}
	return names
}

// Validate checks structural invariants: non-empty unique names.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, def := range s {
		if def.Name == "" {
			return fmt.Errorf("schema contains a definition with an empty name")
		}
		if _, dup := seen[def.Name]; dup {
			return fmt.Errorf("schema contains duplicate definition for %q", def.Name)
		}
		seen[def.Name] = struct{}{}
	}
	return nil
}
