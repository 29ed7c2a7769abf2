package schema

import (
	"bufio"
	"regexp"
	"strings"
)

// assignmentPattern matches NAME=value lines. The value is everything after
// the first '=', untrimmed.
var assignmentPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// ParseOptions configures the directive parser.
type ParseOptions struct {
	// PluginDirectives lists additional directive tags (without the leading
	// '@') contributed by registered plugins. Tags outside the bundled set
	// and this list degrade to placeholder.
	PluginDirectives []string
}

// Parse turns example-file text into an ordered schema.
//
// Every NAME=value line yields one definition, in file order. The comment
// block immediately above the assignment (no blank line in between) supplies
// the directive tag, the requirement marker and the description. A malformed
// or unrecognized directive tag degrades to placeholder; parsing never fails
// on annotation content.
//
// Duplicate names within one file: the last definition wins, keeping the
// position of its own assignment line.
func Parse(text string, opts *ParseOptions) Schema {
	known := make(map[string]struct{})
	if opts != nil {
		for _, tag := range opts.PluginDirectives {
			known[strings.TrimPrefix(tag, "@")] = struct{}{}
		}
	}

	var (
		out     Schema
		index   = make(map[string]int)
		pending []string
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			// A blank line detaches any accumulated comment block.
			pending = nil

		case strings.HasPrefix(trimmed, "#"):
			pending = append(pending, trimmed)

		default:
			m := assignmentPattern.FindStringSubmatch(line)
			if m == nil {
				// Not an assignment; whatever comments preceded it do not
				// belong to the next variable either.
				pending = nil
				continue
			}

			def := buildDefinition(m[1], m[2], pending, known)
			pending = nil

			if i, seen := index[def.Name]; seen {
				// Last definition wins; drop the earlier one entirely.
				out = append(out[:i], out[i+1:]...)
				for name, j := range index {
					if j > i {
						index[name] = j - 1
					}
				}
			}
			index[def.Name] = len(out)
			out = append(out, def)
		}
	}

	return out
}

// buildDefinition assembles one VariableDefinition from an assignment and its
// preceding comment block.
func buildDefinition(name, value string, block []string, known map[string]struct{}) VariableDefinition {
	def := VariableDefinition{
		Name:          name,
		ExampleValue:  value,
		Requirement:   RequirementRequired,
		Directive:     Directive{Type: DirectivePlaceholder},
		RawAnnotation: strings.Join(block, "\n"),
	}

	var description []string
	for _, line := range block {
		body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if !strings.HasPrefix(body, "@") {
			if body != "" {
				description = append(description, body)
			}
			continue
		}

		if body == "@optional" {
			def.Requirement = RequirementOptional
			continue
		}

		// Later directive tags override earlier ones in the same block.
		def.Directive = parseDirective(body, known)
		if def.Directive.Type == DirectiveLocalOnly {
			def.Requirement = RequirementOptional
		}
	}
	def.Description = strings.Join(description, "\n")

	return def
}

// parseDirective interprets a single "@tag" or "@tag:argument" annotation.
// Anything it does not recognize becomes a placeholder directive; the raw tag
// text is preserved either way.
func parseDirective(tag string, known map[string]struct{}) Directive {
	d := Directive{Raw: tag}

	body := strings.TrimPrefix(tag, "@")
	name, arg, _ := strings.Cut(body, ":")
	if name == "" {
		d.Type = DirectivePlaceholder
		return d
	}

	switch DirectiveType(name) {
	case DirectivePlaceholder:
		d.Type = DirectivePlaceholder
	case DirectivePrompt:
		d.Type = DirectivePrompt
	case DirectiveDefault:
		d.Type = DirectiveDefault
		d.DefaultValue = arg
	case DirectiveCopy:
		d.Type = DirectiveCopy
		d.CopyFrom = arg
	case DirectiveComputed:
		d.Type = DirectiveComputed
		d.ComputeType = arg
	case DirectiveLocalOnly:
		d.Type = DirectiveLocalOnly
		d.DefaultValue = arg
	default:
		if _, ok := known[name]; ok {
			d.Type = DirectiveType(name)
			d.Argument = arg
		} else {
			d.Type = DirectivePlaceholder
		}
	}

	return d
}
