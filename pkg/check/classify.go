package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/surveyor/pkg/model"
	"github.com/mesh-intelligence/surveyor/pkg/rules"
	"github.com/mesh-intelligence/surveyor/pkg/traversal"
)

// Outcome is the classification result of one parameter evaluation.
// Outcomes are mutually exclusive and never revised.
type Outcome string

// The four parameter outcomes.
const (
	OutcomeSkipped Outcome = "skipped"
	OutcomeMissing Outcome = "missing"
	OutcomeValid   Outcome = "valid"
	OutcomeInvalid Outcome = "invalid"
)

// AggregatedOutcomes lists the outcomes that appear as Results buckets, in
// reporting order. Skipped parameters are not aggregated.
var AggregatedOutcomes = []Outcome{OutcomeMissing, OutcomeValid, OutcomeInvalid}

// ObjectSummary identifies the container of an evaluated parameter in
// reports and attached messages.
type ObjectSummary struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Family string `json:"family"`
	ID     string `json:"id"`
}

// Results buckets evaluated objects by parameter outcome. The missing,
// valid, and invalid buckets are always present, possibly empty.
type Results map[Outcome][]ObjectSummary

// Count returns the total number of summarized objects across buckets.
func (r Results) Count() int {
	total := 0
	for _, objs := range r {
		total += len(objs)
	}
	return total
}

// Classify evaluates a single parameter node against the rule
// configuration. It is a pure function: every parameter maps to exactly one
// outcome, deterministically.
//
// Unrecognized parameters are skipped; recognized ones are missing when the
// value is absent or empty, valid when the value starts with the configured
// rule prefix, and invalid otherwise.
func Classify(param *model.Node, cfg RuleConfig) Outcome {
	if !rules.IsRecognizedParameter(param) {
		return OutcomeSkipped
	}
	if rules.ValueMissing(param) {
		return OutcomeMissing
	}
	if strings.HasPrefix(valueString(param.Value), cfg.RulePrefix) {
		return OutcomeValid
	}
	return OutcomeInvalid
}

// EvaluateGraph walks the extraction stream under root and classifies the
// configured parameter of every container matching the configured category.
// Containers of other categories, or without a parameter named
// cfg.Property, are ignored entirely; skipped outcomes are likewise not
// placed in any bucket.
func EvaluateGraph(root *model.Node, cfg RuleConfig) Results {
	results := Results{}
	for _, o := range AggregatedOutcomes {
		results[o] = []ObjectSummary{}
	}

	isCategory := rules.CategoryIs(cfg.Category)
	for p := range traversal.Extract(root) {
		obj := p.Node
		if !isCategory(obj) || len(obj.Parameters) == 0 {
			continue
		}
		param := findParameter(obj, cfg.Property)
		if param == nil {
			continue
		}
		outcome := Classify(param, cfg)
		if outcome == OutcomeSkipped {
			continue
		}

		summary := Summarize(obj)
		if obj.ID == "" && p.InstanceID != "" {
			// A definition without an id is reported under the identity
			// inherited from the instance that placed it.
			summary.ID = p.InstanceID
		}
		results[outcome] = append(results[outcome], summary)
	}
	return results
}

// Summarize derives the report identity of an evaluated container. Type and
// family come from the container's definition when it is an instance-like
// wrapper, from the container itself otherwise, defaulting to Unknown.
func Summarize(obj *model.Node) ObjectSummary {
	typ, family := typeAndFamily(obj)
	return ObjectSummary{
		Name:   model.NameOf(obj),
		Type:   typ,
		Family: family,
		ID:     model.IDOf(obj),
	}
}

func typeAndFamily(obj *model.Node) (string, string) {
	if obj != nil && obj.Definition != nil {
		return model.TypeOf(obj.Definition), model.FamilyOf(obj.Definition)
	}
	return model.TypeOf(obj), model.FamilyOf(obj)
}

// findParameter returns the first parameter node whose name matches, with
// keys visited in sorted order for determinism. Matching is on the
// parameter's own name, not the mapping key.
func findParameter(obj *model.Node, property string) *model.Node {
	nameIs := rules.NameIs(property)
	keys := make([]string, 0, len(obj.Parameters))
	for k := range obj.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if param := obj.Parameters[k]; nameIs(param) {
			return param
		}
	}
	return nil
}

// valueString renders a parameter value for prefix matching. Values are
// normally strings; anything else is matched on its printed form.
func valueString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
