// Package workspace models a multi-app workspace and its file conventions:
// a shared example file at the root plus one example and one actual env file
// per app under apps/.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	// ExampleFileName is the annotated example file read per app and at the root.
	ExampleFileName = ".env.example"

	// EnvFileName is the actual env file the schema is resolved against.
	EnvFileName = ".env"

	appsDirName = "apps"
)

// App describes one application in the workspace.
type App struct {
	// Name is the app directory name under apps/.
	Name string

	// Dir is the absolute app directory.
	Dir string
}

// ExampleFile returns the path of the app's annotated example file.
func (a *App) ExampleFile() string {
	return filepath.Join(a.Dir, ExampleFileName)
}

// EnvFile returns the path of the app's actual env file.
func (a *App) EnvFile() string {
	return filepath.Join(a.Dir, EnvFileName)
}

// Workspace is a directory tree holding a shared root example file and apps.
type Workspace struct {
	Root string
}

// New returns a workspace rooted at dir.
func New(dir string) *Workspace {
	return &Workspace{Root: dir}
}

// RootExampleFile returns the path of the shared example file.
func (w *Workspace) RootExampleFile() string {
	return filepath.Join(w.Root, ExampleFileName)
}

// RootEnvFile returns the path of the shared actual env file.
func (w *Workspace) RootEnvFile() string {
	return filepath.Join(w.Root, EnvFileName)
}

// Apps lists the apps in the workspace, sorted by name. A directory under
// apps/ counts as an app only if it carries an example file.
func (w *Workspace) Apps() ([]*App, error) {
	appsDir := filepath.Join(w.Root, appsDirName)
	entries, err := os.ReadDir(appsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read apps directory: %w", err)
	}

	var apps []*App
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		app := &App{Name: entry.Name(), Dir: filepath.Join(appsDir, entry.Name())}
		if _, err := os.Stat(app.ExampleFile()); err != nil {
			continue
		}
		apps = append(apps, app)
	}

	sort.Slice(apps, func(i, j int) bool { return apps[i].Name < apps[j].Name })
	return apps, nil
}

// App returns the named app, or an error if it does not exist in the workspace.
func (w *Workspace) App(name string) (*App, error) {
	apps, err := w.Apps()
	if err != nil {
		return nil, err
	}
	for _, app := range apps {
		if app.Name == name {
			return app, nil
		}
	}
	return nil, fmt.Errorf("app %q not found in workspace %s", name, w.Root)
}
