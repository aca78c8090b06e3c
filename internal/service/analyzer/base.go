// internal/service/analyzer/base.go
package analyzer

import (
	"github.com/protouch/protouch/internal/report"
)

// CategoryResult is the outcome of one category analyzer: a 0-100 score
// and the issues that drove it
type CategoryResult struct {
	Score  int
	Issues []report.Issue
}

// scoreFromIssues starts at 100 and deducts per issue severity, clamped
// to [0,100]
func scoreFromIssues(issues []report.Issue) int {
	score := 100
	for _, issue := range issues {
		switch issue.Severity {
		case report.SeverityHigh:
			score -= 15
		case report.SeverityMedium:
			score -= 10
		case report.SeverityLow:
			score -= 5
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// result builds a CategoryResult with the derived score
func result(issues []report.Issue) CategoryResult {
	return CategoryResult{Score: scoreFromIssues(issues), Issues: issues}
}
