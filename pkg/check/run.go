package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/surveyor/pkg/model"
)

// Source supplies the root of the model graph. Acquisition is a
// collaborator concern; the evaluator only consumes the returned node.
type Source interface {
	FetchRoot(ctx context.Context) (*model.Node, error)
}

// RunContext is the hosting execution context a run reports into. It
// receives per-bucket messages attached to the affected objects and the
// overall run verdict.
type RunContext interface {
	AttachError(category string, objectIDs []string, message string)
	AttachInfo(category string, objectIDs []string, message string)
	MarkRunSuccess(message string)
	MarkRunFailed(message string)
}

// Runner drives one compliance check invocation end to end: fetch the
// root, evaluate the graph, attach per-bucket messages, and mark the run
// verdict. Runners are single-use; RunID identifies the invocation.
type Runner struct {
	RunID   string
	Config  RuleConfig
	Source  Source
	Context RunContext
}

// NewRunID returns a fresh UUIDv7 run identifier. Callers wiring a
// RunContext that carries the run ID generate it here first, then hand it
// to the Runner.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewRunner creates a Runner with a fresh run ID.
func NewRunner(cfg RuleConfig, src Source, rctx RunContext) *Runner {
	return &Runner{
		RunID:   NewRunID(),
		Config:  cfg,
		Source:  src,
		Context: rctx,
	}
}

// Run executes the invocation. Configuration and acquisition failures
// abort the run with an error; classification itself cannot fail. The
// aggregated results are returned for the reporting collaborator even when
// the run verdict is a failure.
func (r *Runner) Run(ctx context.Context) (Results, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	root, err := r.Source.FetchRoot(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch root: %w", err)
	}

	results := EvaluateGraph(root, r.Config)
	r.attach(results)
	r.verdict(results)
	return results, nil
}

// attach emits one message per outcome bucket with at least one identified
// object. Missing and invalid buckets route as errors, the valid bucket as
// informational.
func (r *Runner) attach(results Results) {
	for _, outcome := range AggregatedOutcomes {
		objs := results[outcome]

		ids := make([]string, 0, len(objs))
		details := make([]string, 0, len(objs))
		for _, obj := range objs {
			if obj.ID == "" {
				continue
			}
			ids = append(ids, obj.ID)
			details = append(details, fmt.Sprintf("%s (Type: %s, ID: %s)", obj.Name, obj.Type, obj.ID))
		}
		if len(ids) == 0 {
			continue
		}

		message := fmt.Sprintf("Found %d objects with %s parameters: %s",
			len(objs), outcome, strings.Join(details, "; "))
		category := capitalize(string(outcome))

		switch outcome {
		case OutcomeMissing, OutcomeInvalid:
			r.Context.AttachError(category, ids, message)
		default:
			r.Context.AttachInfo(category, ids, message)
		}
	}
}

// verdict marks the run failed when any parameter is missing or invalid,
// reporting the per-outcome rates, and successful otherwise.
func (r *Runner) verdict(results Results) {
	missing := len(results[OutcomeMissing])
	invalid := len(results[OutcomeInvalid])
	valid := len(results[OutcomeValid])

	if missing == 0 && invalid == 0 {
		r.Context.MarkRunSuccess("All parameters are valid.")
		return
	}

	total := missing + invalid + valid
	rates := fmt.Sprintf("Pass rate: %.2f%%, Invalid rate: %.2f%%, Missing rate: %.2f%%",
		percent(valid, total), percent(invalid, total), percent(missing, total))
	r.Context.MarkRunFailed("Run failed due to parameter issues. " + rates)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
