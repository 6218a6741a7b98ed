package validator

import "fmt"

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue codes.
const (
	CodeStructure         = "structure"
	CodeUnresolvedTarget  = "unresolved-target"
	CodeBadTarget         = "bad-target"
	CodeUnknownAlgorithm  = "unknown-algorithm"
	CodeBadKisaoID        = "bad-kisao-id"
	CodeBadParameterValue = "bad-parameter-value"
	CodeUnknownParameter  = "unknown-parameter"
	CodeUnknownLanguage   = "unknown-language"
)

// Issue is a single validation finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

func (i *Issue) String() string {
	return fmt.Sprintf("%s [%s] %s", i.Severity, i.Code, i.Message)
}

// Error makes an issue usable wherever an error is expected, for example as
// the status recorded on a tracing span.
func (i *Issue) Error() string {
	return i.String()
}

// Report aggregates the findings of a validation run.
type Report struct {
	DocumentURL string   `json:"documentURL,omitempty"`
	ModelURL    string   `json:"modelURL,omitempty"`
	Issues      []*Issue `json:"issues,omitempty"`
}

func (r *Report) add(severity Severity, code, format string, args ...interface{}) {
	r.Issues = append(r.Issues, &Issue{
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errors returns the error-severity issues.
func (r *Report) Errors() []*Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r *Report) Warnings() []*Issue {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(severity Severity) []*Issue {
	var result []*Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			result = append(result, issue)
		}
	}
	return result
}

// OK reports whether the run found no errors; warnings do not fail a
// document.
func (r *Report) OK() bool {
	return len(r.Errors()) == 0
}
