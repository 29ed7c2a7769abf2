package builtin

import (
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/EnvForge/envforge/pkg/plugin"
	"github.com/EnvForge/envforge/pkg/resolve"
	"github.com/EnvForge/envforge/pkg/schema"
)

// KeyringDirective is the directive tag the keyring plugin claims.
const KeyringDirective = "keyring"

// SourceKeyring tags values read from the OS keyring.
const SourceKeyring resolve.Source = "keyring"

// KeyringPlugin describes the OS keyring value source: variables annotated
// `@keyring` or `@keyring:<key>` are read from the system keyring under the
// configured service name. The key defaults to the variable name.
func KeyringPlugin(service string) plugin.Descriptor {
	return plugin.Descriptor{
		Name: "keyring",
		New: func() (*plugin.Plugin, error) {
			if service == "" {
				return nil, fmt.Errorf("keyring service name is not configured")
			}
			return &plugin.Plugin{
				Name:    "keyring",
				Version: "1.0.0",
				Sources: []*plugin.ValueSourceProvider{
					{
						DirectiveType: KeyringDirective,
						ResolveFunc:   keyringResolver(service),
					},
				},
			}, nil
		},
	}
}

// keyringResolver reads the secret for a definition. A missing or unreadable
// secret falls back to the placeholder with a warning; a value resolution
// pass always completes.
func keyringResolver(service string) resolve.ResolverFunc {
	return func(def schema.VariableDefinition, rctx *resolve.Context) (*resolve.ResolvedValue, error) {
		key := def.Directive.Argument
		if key == "" {
			key = def.Name
		}

		secret, err := keyring.Get(service, key)
		if err != nil {
			return &resolve.ResolvedValue{
				Value:   def.ExampleValue,
				Source:  resolve.SourcePlaceholder,
				Warning: fmt.Sprintf("Keyring entry %s/%s not found for %s: %v", service, key, def.Name, err),
			}, nil
		}

		return &resolve.ResolvedValue{Value: secret, Source: SourceKeyring}, nil
	}
}

// Descriptors returns the bundled plugin descriptors selected by the given
// switches, in their canonical registration order.
func Descriptors(exprEnabled, keyringEnabled bool, keyringService string) []plugin.Descriptor {
	var out []plugin.Descriptor
	if exprEnabled {
		out = append(out, ExprPlugin())
	}
	if keyringEnabled {
		out = append(out, KeyringPlugin(keyringService))
	}
	return out
}
