package plugin

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EnvForge/envforge/pkg/resolve"
	"github.com/EnvForge/envforge/pkg/schema"
	"github.com/EnvForge/envforge/pkg/workspace"
)

func staticSource(directiveType, value string) *ValueSourceProvider {
	return &ValueSourceProvider{
		DirectiveType: directiveType,
		ResolveFunc: func(def schema.VariableDefinition, rctx *resolve.Context) (*resolve.ResolvedValue, error) {
			return &resolve.ResolvedValue{Value: value, Source: resolve.Source(directiveType)}, nil
		},
	}
}

func TestRegistryRegisterFlattens(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(&Plugin{
		Name:          "alpha",
		Sources:       []*ValueSourceProvider{staticSource("vault", "v")},
		IgnoreMissing: []string{"MANAGED_ELSEWHERE"},
		Hooks:         &Hooks{},
	}))
	require.NoError(t, reg.Register(&Plugin{
		Name:     "beta",
		Sources:  []*ValueSourceProvider{staticSource("consul", "c")},
		Commands: []Command{{Name: "push", Run: func(ctx context.Context, args []string) error { return nil }}},
	}))

	assert.Len(t, reg.Plugins(), 2)
	assert.Len(t, reg.Sources(), 2)
	assert.Len(t, reg.Commands(), 1)
	assert.Empty(t, reg.DeploymentProviders())
	assert.Equal(t, []string{"vault", "consul"}, reg.DirectiveTypes())
	assert.Equal(t, []string{"MANAGED_ELSEWHERE"}, reg.IgnoreMissing())
}

func TestRegistryRejectsInvalid(t *testing.T) {
	reg := NewRegistry()

	assert.Error(t, reg.Register(nil))
	assert.Error(t, reg.Register(&Plugin{}))

	require.NoError(t, reg.Register(&Plugin{Name: "dup"}))
	assert.Error(t, reg.Register(&Plugin{Name: "dup"}))

	err := reg.Register(&Plugin{
		Name:    "broken",
		Sources: []*ValueSourceProvider{{Pattern: "(unclosed"}},
	})
	assert.Error(t, err)
}

func TestValueSourceProviderMatching(t *testing.T) {
	byType := staticSource("vault", "v")
	require.NoError(t, byType.compile())

	byPattern := &ValueSourceProvider{
		Pattern:     `^@secret:`,
		ResolveFunc: byType.ResolveFunc,
	}
	require.NoError(t, byPattern.compile())

	vaultDef := schema.VariableDefinition{
		Name:      "A",
		Directive: schema.Directive{Type: schema.DirectiveType("vault"), Raw: "@vault:db"},
	}
	secretDef := schema.VariableDefinition{
		Name:      "B",
		Directive: schema.Directive{Type: schema.DirectivePlaceholder, Raw: "@secret:db/password"},
	}

	assert.True(t, byType.Matches(vaultDef))
	assert.False(t, byType.Matches(secretDef))
	assert.True(t, byPattern.Matches(secretDef))
	assert.False(t, byPattern.Matches(vaultDef))
}

func TestPluginSourceBeatsBundledResolver(t *testing.T) {
	// End to end through the pipeline: a plugin claiming the bundled
	// "default" type takes precedence over the bundled default resolver.
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Plugin{
		Name:    "override",
		Sources: []*ValueSourceProvider{staticSource(string(schema.DirectiveDefault), "plugin-value")},
	}))

	s := schema.Schema{{
		Name:        "PORT",
		Requirement: schema.RequirementRequired,
		Directive:   schema.Directive{Type: schema.DirectiveDefault, DefaultValue: "8080"},
	}}

	rctx := &resolve.Context{CurrentValues: map[string]string{}}
	resolutions, err := resolve.NewPipeline(reg.Sources()...).Run(s, rctx)
	require.NoError(t, err)
	require.Len(t, resolutions, 1)
	assert.Equal(t, "plugin-value", resolutions[0].Result.Value)
}

func TestHooksRunInOrderAndAbort(t *testing.T) {
	var order []string
	hook := func(name string, err error) *Hooks {
		return &Hooks{
			OnInit: func(ctx context.Context) error {
				order = append(order, name)
				return err
			},
		}
	}

	reg := NewRegistry()
	require.NoError(t, reg.Register(&Plugin{Name: "one", Hooks: hook("one", nil)}))
	require.NoError(t, reg.Register(&Plugin{Name: "two", Hooks: hook("two", fmt.Errorf("boom"))}))
	require.NoError(t, reg.Register(&Plugin{Name: "three", Hooks: hook("three", nil)}))

	err := reg.RunOnInit(context.Background())
	require.Error(t, err)

	var hookErr *HookError
	require.ErrorAs(t, err, &hookErr)
	assert.Equal(t, "two", hookErr.Plugin)
	assert.Equal(t, "onInit", hookErr.Hook)

	// The failure aborts the chain: three never ran.
	assert.Equal(t, []string{"one", "two"}, order)
}

func TestSyncHooksReceiveApp(t *testing.T) {
	var got *workspace.App
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Plugin{
		Name: "observer",
		Hooks: &Hooks{
			BeforeSync: func(ctx context.Context, app *workspace.App) error {
				got = app
				return nil
			},
		},
	}))

	app := &workspace.App{Name: "api"}
	require.NoError(t, reg.RunBeforeSync(context.Background(), app))
	require.NoError(t, reg.RunAfterSync(context.Background(), app))
	assert.Equal(t, app, got)
}

func TestLoadAllCollectsTypedErrors(t *testing.T) {
	reg := NewRegistry()
	descriptors := []Descriptor{
		{Name: "good", New: func() (*Plugin, error) { return &Plugin{Name: "good"}, nil }},
		{Name: "bad", New: func() (*Plugin, error) { return nil, fmt.Errorf("no backend") }},
		{Name: "nil-constructor"},
		{Name: "also-good", New: func() (*Plugin, error) { return &Plugin{Name: "also-good"}, nil }},
	}

	failures := LoadAll(reg, descriptors)

	// Failures do not stop the rest from loading.
	require.Len(t, failures, 2)
	assert.Equal(t, "bad", failures[0].Plugin)
	assert.Equal(t, "nil-constructor", failures[1].Plugin)
	assert.Len(t, reg.Plugins(), 2)
}
