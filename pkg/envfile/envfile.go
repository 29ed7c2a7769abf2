// Package envfile reads and renders actual env files.
//
// Values are taken exactly as written, everything after the first '=' with no
// trimming, and the original text is preserved line for line so a file can be
// written back without disturbing comments, blank lines or ordering.
package envfile

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var assignmentPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// File is a parsed actual env file.
type File struct {
	// Path is where the file was loaded from, if it was loaded from disk.
	Path string

	// Values maps variable name to its exact value.
	Values map[string]string

	// Names lists variable names in file order.
	Names []string

	lines     []string
	lineIndex map[string]int
}

// Parse builds a File from raw env-file text.
// For duplicate names the last assignment wins, matching shell semantics.
func Parse(text string) *File {
	f := &File{
		Values:    make(map[string]string),
		lineIndex: make(map[string]int),
	}

	if text != "" {
		f.lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	}

	for i, line := range f.lines {
		m := assignmentPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, value := m[1], m[2]
		if _, seen := f.Values[name]; !seen {
			f.Names = append(f.Names, name)
		}
		f.Values[name] = value
		f.lineIndex[name] = i
	}

	return f
}

// Load reads and parses the env file at path. A missing file is not an error:
// it yields an empty File so callers can treat "no env file yet" and "empty
// env file" the same way.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		f := Parse("")
		f.Path = path
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	f := Parse(string(data))
	f.Path = path
	return f, nil
}

// Has reports whether name is assigned in the file, empty values included.
func (f *File) Has(name string) bool {
	_, ok := f.Values[name]
	return ok
}

// Set assigns a value, rewriting the existing line in place or appending a new
// assignment at the end of the file.
func (f *File) Set(name, value string) {
	line := name + "=" + value
	if i, ok := f.lineIndex[name]; ok {
		f.lines[i] = line
	} else {
		f.lineIndex[name] = len(f.lines)
		f.lines = append(f.lines, line)
		f.Names = append(f.Names, name)
	}
	f.Values[name] = value
}

// Render returns the file text, original lines preserved, with a trailing
// newline when the file is non-empty.
func (f *File) Render() string {
	if len(f.lines) == 0 {
		return ""
	}
	return strings.Join(f.lines, "\n") + "\n"
}

// Write renders the file back to its path (or the given path if the file was
// built from text).
func (f *File) Write(path string) error {
	if path == "" {
		path = f.Path
	}
	if path == "" {
		return fmt.Errorf("no path to write env file to")
	}
	if err := os.WriteFile(path, []byte(f.Render()), 0600); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}
	return nil
}
