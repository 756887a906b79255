package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/surveyor/internal/paths"
	"github.com/mesh-intelligence/surveyor/internal/source"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Category   string           `yaml:"category"`
	Property   string           `yaml:"property"`
	RulePrefix string           `yaml:"rule_prefix"`
	Format     string           `yaml:"report_format"`
	Severity   string           `yaml:"severity"`
	ReportDir  string           `yaml:"report_dir,omitempty"`
	Source     configFileSource `yaml:"source"`
}

type configFileSource struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

func newInitCmd() *cobra.Command {
	var backend, modelPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize surveyor configuration",
		Long:  "Create the configuration directory with a default config.yaml and prepare the model source.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, backend, modelPath)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", defaultBackend, "model source backend (json or sqlite)")
	cmd.Flags().StringVar(&modelPath, "model", defaultModelPath, "model source path")

	return cmd
}

func runInit(cmd *cobra.Command, backend, modelPath string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("resolve config directory: %s", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("create config directory: %s", err))
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := writeConfigIfMissing(configPath, backend, modelPath); err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("write config: %s", err))
	}

	srcCfg := source.Config{Backend: backend, Path: modelPath}
	if err := source.Init(srcCfg); err != nil {
		return exitError(cmd, exitUserError, fmt.Sprintf("prepare model source: %s", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Surveyor initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, backend, modelPath string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Category:   defaultCategory,
		Property:   defaultProperty,
		RulePrefix: defaultRulePrefix,
		Format:     defaultFormat,
		Severity:   defaultSeverity,
		Source: configFileSource{
			Backend: backend,
			Path:    modelPath,
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// exitError prints the error to stderr and returns the given exit code.
func exitError(cmd *cobra.Command, code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
