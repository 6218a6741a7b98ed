package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssue_Error(t *testing.T) {
	issue := &Issue{
		Severity: SeverityError,
		Code:     CodeUnresolvedTarget,
		Message:  "variable yVariable1_1 target does not resolve",
	}
	var err error = issue
	assert.EqualValues(t, "error [unresolved-target] variable yVariable1_1 target does not resolve", err.Error())
	assert.EqualValues(t, issue.String(), issue.Error())
}

func TestReport_Severities(t *testing.T) {
	report := &Report{}
	report.add(SeverityWarning, CodeUnknownParameter, "simulation %s carries unknown parameter", "simulation1")
	assert.True(t, report.OK())
	assert.Len(t, report.Warnings(), 1)

	report.add(SeverityError, CodeBadKisaoID, "bad id")
	assert.False(t, report.OK())
	assert.Len(t, report.Errors(), 1)
}
