package config

import (
	"strings"

	"github.com/spf13/viper"
)

// MergeDefaults fills in built-in defaults for any missing values.
func MergeDefaults(cfg *Config) {
	if len(cfg.CIIndicators) == 0 {
		cfg.CIIndicators = []string{
			"CI",
			"GITHUB_ACTIONS",
			"GITLAB_CI",
			"BUILDKITE",
			"CIRCLECI",
			"JENKINS_URL",
			"TEAMCITY_VERSION",
		}
	}
	if cfg.Plugins.Keyring.Enabled && cfg.Plugins.Keyring.Service == "" {
		cfg.Plugins.Keyring.Service = "envforge"
	}
}

// applyEnvironmentOverrides applies ENVFORGE_* environment variables on top of
// the file configuration. Priority: ENV > user config file > defaults.
func applyEnvironmentOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// ENVFORGE_CI_INDICATORS: comma-separated replacement for the table.
	if raw := v.GetString("CI_INDICATORS"); raw != "" {
		cfg.CIIndicators = splitList(raw)
	}

	// ENVFORGE_SKIP_DIRECTIVES: comma-separated directive types.
	if raw := v.GetString("SKIP_DIRECTIVES"); raw != "" {
		cfg.SkipDirectives = splitList(raw)
	}

	// ENVFORGE_DEPRECATED_VARS: comma-separated variable names.
	if raw := v.GetString("DEPRECATED_VARS"); raw != "" {
		cfg.DeprecatedVars = splitList(raw)
	}

	if v.IsSet("PLUGIN_EXPR") {
		cfg.Plugins.Expr = v.GetBool("PLUGIN_EXPR")
	}
	if v.IsSet("PLUGIN_KEYRING") {
		cfg.Plugins.Keyring.Enabled = v.GetBool("PLUGIN_KEYRING")
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
