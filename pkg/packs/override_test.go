package packs

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scrubjay/pkg/config"
	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseConfig(t *testing.T, data string) config.PackageConfig {
	t.Helper()
	cfg, err := config.ParsePackageConfig([]byte(data))
	require.NoError(t, err)
	return cfg
}

func TestBuildOverrides_Defaults(t *testing.T) {
	o, err := BuildOverrides("/pkg", config.PackageConfig{})
	require.NoError(t, err)

	assert.Equal(t, DecisionIgnore, o.Decide(".ignore", false))
	assert.Equal(t, DecisionIgnore, o.Decide(".scrubjay.toml", false))
	assert.Equal(t, DecisionNone, o.Decide(".vimrc", false))
	assert.Equal(t, DecisionNone, o.Decide("a.txt", false))
}

func TestBuildOverrides_Scripts(t *testing.T) {
	cfg := parseConfig(t, `
[hooks.pre_install]
script = "setup.sh"

[hooks.post_install]
script = "bin/after.sh"

[hooks.pre_uninstall]
script = "setup.sh"
`)
	o, err := BuildOverrides("/pkg", cfg)
	require.NoError(t, err)

	assert.Equal(t, DecisionIgnore, o.Decide("setup.sh", false))
	assert.Equal(t, DecisionIgnore, o.Decide("bin/after.sh", false))
	// only the script path is excluded, not its directory
	assert.Equal(t, DecisionNone, o.Decide("bin", true))
}

func TestBuildOverrides_AbsoluteScriptInsidePackage(t *testing.T) {
	cfg := parseConfig(t, `
[hooks.pre_install]
script = "/pkg/bin/setup.sh"
`)
	o, err := BuildOverrides("/pkg", cfg)
	require.NoError(t, err)

	assert.Equal(t, DecisionIgnore, o.Decide("bin/setup.sh", false))
	assert.Equal(t, DecisionNone, o.Decide("setup.sh", false))
}

func TestBuildOverrides_MetacharactersMatchLiterally(t *testing.T) {
	cfg := parseConfig(t, `
[hooks.pre_install]
script = "[ab].sh"
`)
	o, err := BuildOverrides("/pkg", cfg)
	require.NoError(t, err)

	assert.Equal(t, DecisionIgnore, o.Decide("[ab].sh", false))
	assert.Equal(t, DecisionNone, o.Decide("a.sh", false))
}

func TestBuildOverrides_ScriptOutsidePackage(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "parent", script: "../setup.sh"},
		{name: "absolute", script: filepath.Join(string(filepath.Separator), "usr", "bin", "setup")},
		{name: "root itself", script: "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.PackageConfig{Hooks: config.Hooks{
				PreInstall: &config.Hook{Script: &tt.script},
			}}
			_, err := BuildOverrides("/pkg", cfg)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrOverrideBuild))
		})
	}
}

func TestOverrideBuilder(t *testing.T) {
	t.Run("invalid glob", func(t *testing.T) {
		_, err := NewOverrideBuilder("/pkg").Add("![z-a]").Build()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrOverrideBuild))
		assert.Equal(t, "![z-a]", errors.GetErrorDetails(err)["glob"])
	})

	t.Run("bare negation", func(t *testing.T) {
		_, err := NewOverrideBuilder("/pkg").Add("!").Build()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrOverrideBuild))
	})

	t.Run("first match wins", func(t *testing.T) {
		o, err := NewOverrideBuilder("/pkg").Add("keep.txt").Add("!*.txt").Build()
		require.NoError(t, err)
		assert.Equal(t, DecisionInclude, o.Decide("keep.txt", false))
		assert.Equal(t, DecisionIgnore, o.Decide("other.txt", false))
	})

	t.Run("whitelist excludes unmatched", func(t *testing.T) {
		o, err := NewOverrideBuilder("/pkg").Add("*.conf").Build()
		require.NoError(t, err)
		assert.Equal(t, DecisionInclude, o.Decide("a.conf", false))
		assert.Equal(t, DecisionIgnore, o.Decide("a.txt", false))
	})

	t.Run("nil override", func(t *testing.T) {
		var o *Override
		assert.Equal(t, DecisionNone, o.Decide("a", false))
	})
}
