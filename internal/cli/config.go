// Config loading for the surveyor CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/surveyor/internal/source"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyCategory      = "category"
	cfgKeyProperty      = "property"
	cfgKeyRulePrefix    = "rule_prefix"
	cfgKeyFormat        = "report_format"
	cfgKeySeverity      = "severity"
	cfgKeyReportDir     = "report_dir"
	cfgKeySourceBackend = "source.backend"
	cfgKeySourcePath    = "source.path"
)

// Rule defaults. These mirror the demonstration inputs the checker ships
// with; a real project overrides them in config.yaml or by flag.
const (
	defaultCategory   = "Windows"
	defaultProperty   = "OmniClass Number"
	defaultRulePrefix = "23.30.20"
	defaultFormat     = "PDF"
	defaultSeverity   = "ERROR"
	defaultBackend    = source.BackendJSON
	defaultModelPath  = "model.json"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyCategory, defaultCategory)
	v.SetDefault(cfgKeyProperty, defaultProperty)
	v.SetDefault(cfgKeyRulePrefix, defaultRulePrefix)
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeySeverity, defaultSeverity)
	v.SetDefault(cfgKeySourceBackend, defaultBackend)
	v.SetDefault(cfgKeySourcePath, defaultModelPath)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
