package types

// Severity ranks a contract problem.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// OutputFormat selects how the developer CLI renders a normalized document.
type OutputFormat string

const (
	FormatNone OutputFormat = ""
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// KitConfig holds settings for the extractor-kit developer CLI.
type KitConfig struct {
	// Format selects the rendering of the normalized document after validation.
	// Empty prints only the problem report.
	Format OutputFormat `json:"format" yaml:"format"`

	// Strict promotes warnings to failures.
	Strict bool `json:"strict" yaml:"strict"`
}
