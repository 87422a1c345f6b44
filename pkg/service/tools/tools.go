package tools

import (
	"context"
	"fmt"
	"os"

	"go.keploy.io/protodiff/config"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ConfigGuide is appended to generated config files.
var ConfigGuide = `
# Example on using include paths
#schema:
#  importPaths:
#    - ./third_party/proto
#    - /usr/local/include
#
# legacyDefaults compares uint32, double, bool, string and enum
# defaults the way earlier releases did (old field against itself).
#  legacyDefaults: false
#
# report.format is one of text, yaml or json.
# report.color is one of auto, on or off.
`

type Tools struct {
	logger *zap.Logger
}

func NewTools(logger *zap.Logger) *Tools {
	return &Tools{
		logger: logger,
	}
}

// CreateConfig writes configData, or the default configuration when it is
// empty, to filePath followed by a commented guide.
func (t *Tools) CreateConfig(_ context.Context, filePath string, configData string) error {
	var node yaml.Node

	if configData == "" {
		configData = config.GetDefaultConfig()
	}

	if err := yaml.Unmarshal([]byte(configData), &node); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if len(node.Content) == 0 {
		return fmt.Errorf("config is empty")
	}
	results, err := yaml.Marshal(node.Content[0])
	if err != nil {
		return fmt.Errorf("failed to marshal the config: %w", err)
	}

	finalOutput := append(results, []byte(ConfigGuide)...)
	if err := os.WriteFile(filePath, finalOutput, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	t.logger.Info("Config file generated successfully", zap.String("path", filePath))
	return nil
}
