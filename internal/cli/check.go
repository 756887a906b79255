package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/surveyor/internal/paths"
	"github.com/mesh-intelligence/surveyor/internal/source"
	"github.com/mesh-intelligence/surveyor/pkg/check"
	"github.com/mesh-intelligence/surveyor/pkg/report"
)

func newCheckCmd() *cobra.Command {
	var (
		category   string
		property   string
		rulePrefix string
		format     string
		severity   string
		backend    string
		modelPath  string
		reportDir  string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a compliance check over the configured model",
		Long: "Fetch the model graph from the configured source, classify the\n" +
			"configured parameter of every matching object, render the report,\n" +
			"and fail when any parameter is missing or invalid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config directory: %w", err)
			}
			v, err := loadConfig(configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags override config.yaml values.
			overrides := map[string]string{
				cfgKeyCategory:      category,
				cfgKeyProperty:      property,
				cfgKeyRulePrefix:    rulePrefix,
				cfgKeyFormat:        format,
				cfgKeySeverity:      severity,
				cfgKeySourceBackend: backend,
				cfgKeySourcePath:    modelPath,
			}
			for key, val := range overrides {
				if val != "" {
					v.Set(key, val)
				}
			}

			cfg := check.RuleConfig{
				Category:   v.GetString(cfgKeyCategory),
				Property:   v.GetString(cfgKeyProperty),
				RulePrefix: v.GetString(cfgKeyRulePrefix),
				Format:     check.Format(v.GetString(cfgKeyFormat)),
				Severity:   check.Severity(v.GetString(cfgKeySeverity)),
			}
			srcCfg := source.Config{
				Backend: v.GetString(cfgKeySourceBackend),
				Path:    v.GetString(cfgKeySourcePath),
			}

			src, err := source.Open(srcCfg)
			if err != nil {
				return fmt.Errorf("open model source: %w", err)
			}

			runID := check.NewRunID()
			rctx := newConsoleContext(runID)
			runner := &check.Runner{
				RunID:   runID,
				Config:  cfg,
				Source:  src,
				Context: rctx,
			}

			logrus.WithFields(logrus.Fields{
				"run_id":   runner.RunID,
				"category": cfg.Category,
				"property": cfg.Property,
				"backend":  srcCfg.Backend,
			}).Debug("starting compliance check")

			results, err := runner.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("run check: %w", err)
			}

			dir, err := paths.ResolveReportDir(reportDir, v.GetString(cfgKeyReportDir))
			if err != nil {
				return fmt.Errorf("resolve report directory: %w", err)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create report directory: %w", err)
			}

			path, err := report.Generate(results, cfg, dir)
			if err != nil {
				return fmt.Errorf("generate report: %w", err)
			}

			renderSummary(cmd, results)
			fmt.Fprintf(cmd.OutOrStdout(), "Report file: %s\n", path)

			if rctx.failed {
				return fmt.Errorf("compliance check failed: %s", rctx.verdict)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "object category to inspect")
	cmd.Flags().StringVar(&property, "property", "", "parameter name to classify")
	cmd.Flags().StringVar(&rulePrefix, "rule-prefix", "", "value prefix a passing parameter must carry")
	cmd.Flags().StringVar(&format, "format", "", "report format (PDF, HTML, JSON)")
	cmd.Flags().StringVar(&severity, "severity", "", "reporting threshold mode (ERROR, WARN, INFO)")
	cmd.Flags().StringVar(&backend, "backend", "", "model source backend (json or sqlite)")
	cmd.Flags().StringVar(&modelPath, "model", "", "model source path")
	cmd.Flags().StringVar(&reportDir, "report-dir", "", "report output directory")

	return cmd
}

// renderSummary prints the per-object outcome table.
func renderSummary(cmd *cobra.Command, results check.Results) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "TYPE", "FAMILY", "ID", "STATUS"})
	for _, outcome := range check.AggregatedOutcomes {
		for _, obj := range results[outcome] {
			table.Append([]string{obj.Name, obj.Type, obj.Family, obj.ID, string(outcome)})
		}
	}
	table.Render()
}
