// Package secrets detects secret-bearing environment variables by name and
// masks their values before anything prints them. Detection is name-based
// only: values are never inspected, so a detector is safe to run over
// unresolved or placeholder values.
package secrets

import "strings"

// defaultNameFragments are matched case-insensitively against variable names.
var defaultNameFragments = []string{
	"PASSWORD",
	"PASSWD",
	"SECRET",
	"TOKEN",
	"APIKEY",
	"API_KEY",
	"ACCESS_KEY",
	"PRIVATE_KEY",
	"CREDENTIAL",
	"AUTH",
	"SESSION_ID",
	"CERT",
	"DSN",
}

// partialShowChars is how many leading characters a masked value keeps.
const partialShowChars = 4

// Detector classifies variable names as secret-bearing.
type Detector struct {
	fragments []string
}

// NewDetector creates a detector with the default name fragments plus any
// extra fragments. Extras are matched the same way, case-insensitively.
func NewDetector(extra ...string) *Detector {
	fragments := make([]string, 0, len(defaultNameFragments)+len(extra))
	fragments = append(fragments, defaultNameFragments...)
	for _, f := range extra {
		fragments = append(fragments, strings.ToUpper(f))
	}
	return &Detector{fragments: fragments}
}

// IsSecret reports whether the variable name looks secret-bearing.
func (d *Detector) IsSecret(name string) bool {
	upper := strings.ToUpper(name)
	for _, fragment := range d.fragments {
		if strings.Contains(upper, fragment) {
			return true
		}
	}
	return false
}

// Mask returns the value masked if the name is secret-bearing, otherwise the
// value unchanged.
func (d *Detector) Mask(name, value string) string {
	if !d.IsSecret(name) {
		return value
	}
	return MaskValue(value)
}

// MaskValue partially masks a value: the first few characters stay visible,
// the rest collapses to a fixed marker. Short values are masked entirely so
// the marker never leaks most of the secret.
func MaskValue(value string) string {
	if len(value) <= partialShowChars*2 {
		return "***"
	}
	return value[:partialShowChars] + "***"
}
