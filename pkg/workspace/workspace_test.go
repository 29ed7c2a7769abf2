package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func scaffold(t *testing.T, appNames []string, withExample map[string]bool) *Workspace {
	t.Helper()
	root := t.TempDir()
	for _, name := range appNames {
		dir := filepath.Join(root, "apps", name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if withExample[name] {
			if err := os.WriteFile(filepath.Join(dir, ExampleFileName), []byte("PORT=8080\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return New(root)
}

func TestAppsSortedAndFiltered(t *testing.T) {
	ws := scaffold(t,
		[]string{"web", "api", "scratch"},
		map[string]bool{"web": true, "api": true},
	)

	apps, err := ws.Apps()
	if err != nil {
		t.Fatalf("Apps: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("expected 2 apps, got %d", len(apps))
	}
	// scratch has no example file and is not an app.
	if apps[0].Name != "api" || apps[1].Name != "web" {
		t.Errorf("unexpected order: %s, %s", apps[0].Name, apps[1].Name)
	}
}

func TestAppsMissingDirectory(t *testing.T) {
	ws := New(t.TempDir())
	apps, err := ws.Apps()
	if err != nil {
		t.Fatalf("Apps: %v", err)
	}
	if apps != nil {
		t.Errorf("expected no apps, got %v", apps)
	}
}

func TestAppLookup(t *testing.T) {
	ws := scaffold(t, []string{"api"}, map[string]bool{"api": true})

	app, err := ws.App("api")
	if err != nil {
		t.Fatalf("App: %v", err)
	}
	if app.ExampleFile() != filepath.Join(ws.Root, "apps", "api", ExampleFileName) {
		t.Errorf("unexpected example path %s", app.ExampleFile())
	}
	if app.EnvFile() != filepath.Join(ws.Root, "apps", "api", EnvFileName) {
		t.Errorf("unexpected env path %s", app.EnvFile())
	}

	if _, err := ws.App("ghost"); err == nil {
		t.Error("expected an error for an unknown app")
	}
}
