package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, ".", cfg.ConfigPath)
	assert.Equal(t, "protodiff", cfg.ConfigName)
	assert.Equal(t, FormatText, cfg.Report.Format)
	assert.Equal(t, ColorAuto, cfg.Report.Color)
	assert.False(t, cfg.Report.Summary)
	assert.Empty(t, cfg.Schema.ImportPaths)
	assert.False(t, cfg.Schema.LegacyDefaults)
}

func TestNew_ReturnsFreshConfig(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	a.Report.Format = FormatJSON

	b, err := New()
	require.NoError(t, err)
	assert.Equal(t, FormatText, b.Report.Format)
}

func TestSetDefaultConfig_UpdatesDefaultConfig(t *testing.T) {
	old := GetDefaultConfig()
	t.Cleanup(func() { SetDefaultConfig(old) })

	SetDefaultConfig(`
report:
  format: "yaml"
`)
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Report.Format)
	assert.Equal(t, "protodiff", cfg.ConfigName)
}

func TestMergeStrings_SrcOverridesDest(t *testing.T) {
	src := `
report:
  summary: true
`
	dest := `
report:
  format: json
  summary: false
`
	result, err := mergeStrings(src, dest, false, yaml.MergeOptions{})
	require.NoError(t, err)

	cfg := &Config{}
	require.NoError(t, yaml3.Unmarshal([]byte(result), cfg))
	assert.Equal(t, FormatJSON, cfg.Report.Format)
	assert.True(t, cfg.Report.Summary)
}

func TestMergeStrings_InvalidYAML(t *testing.T) {
	tests := []struct {
		name string
		src  string
		dest string
	}{
		{name: "invalid src", src: "invalid_yaml: [unclosed_list", dest: "debug: true"},
		{name: "invalid dest", src: "debug: true", dest: "invalid_yaml: {unclosed_map"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := mergeStrings(tt.src, tt.dest, false, yaml.MergeOptions{})
			assert.Error(t, err)
			assert.Empty(t, result)
		})
	}
}
