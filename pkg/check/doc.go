// Package check implements the compliance evaluator: it classifies
// parameters of matched nodes against a rule configuration and aggregates
// the classified results into outcome buckets. The aggregated Results value
// is the sole interface handed to reporting collaborators.
package check
