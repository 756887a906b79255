package report

import (
	"encoding/json"
	"os"

	"github.com/mesh-intelligence/surveyor/pkg/check"
)

// jsonReport is the on-disk JSON report shape: the assessment criteria the
// run was configured with, then the bucketed results.
type jsonReport struct {
	Criteria jsonCriteria  `json:"assessment_criteria"`
	Results  check.Results `json:"results"`
}

type jsonCriteria struct {
	Category string `json:"category"`
	Property string `json:"property"`
	Value    string `json:"value"`
}

func writeJSON(results check.Results, cfg check.RuleConfig, path string) error {
	doc := jsonReport{
		Criteria: jsonCriteria{
			Category: cfg.Category,
			Property: cfg.Property,
			Value:    cfg.RulePrefix,
		},
		Results: results,
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
