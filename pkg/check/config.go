package check

import "errors"

// Format selects the rendering of the compliance report.
type Format string

// Supported report formats.
const (
	FormatPDF  Format = "PDF"
	FormatHTML Format = "HTML"
	FormatJSON Format = "JSON"
)

// Severity sets the reporting threshold mode. It is accepted and validated
// but not yet consulted by classification or aggregation; the upstream
// feature is incomplete and no gating behavior is inferred here.
type Severity string

// Supported severity modes.
const (
	SeverityError Severity = "ERROR"
	SeverityWarn  Severity = "WARN"
	SeverityInfo  Severity = "INFO"
)

// Config validation errors.
var (
	ErrCategoryEmpty     = errors.New("category must not be empty")
	ErrPropertyEmpty     = errors.New("property must not be empty")
	ErrRulePrefixEmpty   = errors.New("rule prefix must not be empty")
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrUnknownSeverity   = errors.New("unknown severity mode")
)

// knownFormats lists the formats Validate accepts.
var knownFormats = map[Format]bool{
	FormatPDF:  true,
	FormatHTML: true,
	FormatJSON: true,
}

// knownSeverities lists the severity modes Validate accepts.
var knownSeverities = map[Severity]bool{
	SeverityError: true,
	SeverityWarn:  true,
	SeverityInfo:  true,
}

// RuleConfig is the immutable per-invocation rule configuration: which
// category of objects to inspect, which parameter to read, and the value
// prefix that parameter must carry to pass.
type RuleConfig struct {
	Category   string   `json:"category" yaml:"category"`
	Property   string   `json:"property" yaml:"property"`
	RulePrefix string   `json:"rule_prefix" yaml:"rule_prefix"`
	Format     Format   `json:"report_format" yaml:"report_format"`
	Severity   Severity `json:"severity" yaml:"severity"`
}

// Validate checks that the RuleConfig is well-formed. It returns a sentinel
// error from this package on failure.
func (c RuleConfig) Validate() error {
	if c.Category == "" {
		return ErrCategoryEmpty
	}
	if c.Property == "" {
		return ErrPropertyEmpty
	}
	if c.RulePrefix == "" {
		return ErrRulePrefixEmpty
	}
	if !knownFormats[c.Format] {
		return ErrUnsupportedFormat
	}
	if !knownSeverities[c.Severity] {
		return ErrUnknownSeverity
	}
	return nil
}
