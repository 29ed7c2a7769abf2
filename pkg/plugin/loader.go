package plugin

import "fmt"

// Descriptor is a static plugin declaration resolved at startup. The
// descriptor list replaces dynamic module loading: which plugins exist is
// decided at build/configuration time, and constructing one either succeeds
// or surfaces a typed load error.
type Descriptor struct {
	// Name identifies the plugin before construction, for error reporting.
	Name string

	// New constructs the plugin. Called once per registry.
	New func() (*Plugin, error)
}

// LoadError is a typed plugin load failure.
type LoadError struct {
	Plugin string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load plugin %q: %v", e.Plugin, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadAll constructs and registers every described plugin. A failing plugin
// does not stop the others from loading; all failures come back as typed load
// errors for the caller to report.
func LoadAll(reg *Registry, descriptors []Descriptor) []*LoadError {
	var failures []*LoadError
	for _, d := range descriptors {
		if d.New == nil {
			failures = append(failures, &LoadError{
				Plugin: d.Name,
				Err:    fmt.Errorf("descriptor has no constructor"),
			})
			continue
		}

		p, err := d.New()
		if err != nil {
			failures = append(failures, &LoadError{Plugin: d.Name, Err: err})
			continue
		}
		if err := reg.Register(p); err != nil {
			failures = append(failures, &LoadError{Plugin: d.Name, Err: err})
		}
	}
	return failures
}
