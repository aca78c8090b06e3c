// internal/report/view/view.go
package view

import (
	"math"

	"github.com/protouch/protouch/internal/gate"
	"github.com/protouch/protouch/internal/report"
)

// Axis keys and Korean display labels, in radar order
const (
	AxisUsability     = "usability"
	AxisAccessibility = "accessibility"
	AxisVisual        = "visual"
	AxisPerformance   = "performance"
	AxisSEO           = "seo"
)

// RadarAxis is one of the five radar chart axes
type RadarAxis struct {
	Key   string            `json:"key"`
	Label string            `json:"label"`
	Score int               `json:"score"`
	Color report.ColorToken `json:"color"`
}

// Assessment is the 종합 평가 panel, built from the radar aggregates
type Assessment struct {
	Average   int      `json:"average"`
	Strongest string   `json:"strongest"`
	Weakest   string   `json:"weakest"`
	Weak      []string `json:"weak"`
	Strong    []string `json:"strong"`
	GradeText string   `json:"gradeText"`
}

// VisualBlock is the single visual comparison shown on an issue card.
// Kind is one of "color", "beforeAfter", "mockup".
type VisualBlock struct {
	Kind     string `json:"kind"`
	Before   string `json:"before,omitempty"`
	After    string `json:"after,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// IssueCard is one rendered issue, in original report order
type IssueCard struct {
	Index          int             `json:"index"`
	Category       string          `json:"category"`
	Severity       report.Severity `json:"severity"`
	SeverityLabel  string          `json:"severityLabel"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Recommendation string          `json:"recommendation"`
	Visual         *VisualBlock    `json:"visual,omitempty"`
}

// ReportView is the full dashboard payload for one analysis result. The
// section past SEO carries the gate decision; locked viewers receive the
// content blurred beneath the subscription overlay.
type ReportView struct {
	URL             string                  `json:"url"`
	SiteName        string                  `json:"siteName"`
	AnalysisDate    string                  `json:"analysisDate"`
	AuthorName      string                  `json:"authorName"`
	AuthorContact   string                  `json:"authorContact"`
	ScreenshotURL   string                  `json:"screenshotUrl,omitempty"`
	Score           report.Score            `json:"score"`
	Rank            report.Rank             `json:"rank"`
	OverallColor    report.ColorToken       `json:"overallColor"`
	SEO             report.SEOReport        `json:"seo"`
	Radar           []RadarAxis             `json:"radar"`
	Assessment      Assessment              `json:"assessment"`
	Gate            gate.Decision           `json:"gate"`
	Issues          []IssueCard             `json:"issues"`
	ImprovedDesigns []report.ImprovedDesign `json:"improvedDesigns,omitempty"`
}

// BuildRadar assembles the five radar axes from a score, deriving the SEO
// axis through the shared fallback
func BuildRadar(s report.Score) []RadarAxis {
	seo := s.DerivedSEO()
	axes := []struct {
		key, label string
		score      int
	}{
		{AxisUsability, "사용성", s.Usability},
		{AxisAccessibility, "접근성", s.Accessibility},
		{AxisVisual, "시각", s.Visual},
		{AxisPerformance, "성능", s.Performance},
		{AxisSEO, "SEO", seo},
	}
	radar := make([]RadarAxis, 0, len(axes))
	for _, a := range axes {
		radar = append(radar, RadarAxis{
			Key:   a.key,
			Label: a.label,
			Score: a.score,
			Color: report.ColorFor(a.score),
		})
	}
	return radar
}

// BuildAssessment derives the overall-assessment aggregates from the radar
// axes. The same aggregates feed the 종합 평가 panel; they are computed once
// here and never re-derived elsewhere.
func BuildAssessment(radar []RadarAxis, overall int) Assessment {
	sum := 0
	best, worst := radar[0], radar[0]
	weak := []string{}
	strong := []string{}
	for _, a := range radar {
		sum += a.Score
		if a.Score > best.Score {
			best = a
		}
		if a.Score < worst.Score {
			worst = a
		}
		if a.Score < 60 {
			weak = append(weak, a.Label)
		}
		if a.Score >= 80 {
			strong = append(strong, a.Label)
		}
	}
	rank := report.RankFor(overall)
	return Assessment{
		Average:   int(math.Round(float64(sum) / float64(len(radar)))),
		Strongest: best.Label,
		Weakest:   worst.Label,
		Weak:      weak,
		Strong:    strong,
		GradeText: rank.Letter + " 등급 · " + rank.Percentile + " · " + rank.Description,
	}
}

// buildVisual selects exactly one visual variant per issue: the tagged
// example when present, else the mockup image, else nothing
func buildVisual(issue report.Issue) *VisualBlock {
	if ve := issue.VisualExample; ve != nil {
		switch ve.Kind {
		case report.VisualColor:
			return &VisualBlock{Kind: "color", Before: ve.Before, After: ve.After}
		case report.VisualSpacing, report.VisualSize:
			return &VisualBlock{Kind: "beforeAfter", Before: ve.Before, After: ve.After}
		}
	}
	if issue.ImprovedDesignURL != "" {
		return &VisualBlock{Kind: "mockup", ImageURL: issue.ImprovedDesignURL}
	}
	return nil
}

// BuildIssueCards renders every issue, in stored order, one card per entry
func BuildIssueCards(issues []report.Issue) []IssueCard {
	cards := make([]IssueCard, 0, len(issues))
	for i, issue := range issues {
		cards = append(cards, IssueCard{
			Index:          i + 1,
			Category:       issue.Category,
			Severity:       issue.Severity,
			SeverityLabel:  issue.Severity.Label(),
			Title:          issue.Title,
			Description:    issue.Description,
			Recommendation: issue.Recommendation,
			Visual:         buildVisual(issue),
		})
	}
	return cards
}

// BuildReportView assembles the complete dashboard payload for a viewer
func BuildReportView(r *report.AnalysisResult, sess gate.Session) ReportView {
	radar := BuildRadar(r.Score)
	return ReportView{
		URL:             r.URL,
		SiteName:        r.SiteName,
		AnalysisDate:    r.AnalysisDate,
		AuthorName:      r.AuthorName,
		AuthorContact:   r.AuthorContact,
		ScreenshotURL:   r.ScreenshotURL,
		Score:           r.Score,
		Rank:            report.RankFor(r.Score.Overall),
		OverallColor:    report.ColorFor(r.Score.Overall),
		SEO:             r.SEOReportOrDefault(),
		Radar:           radar,
		Assessment:      BuildAssessment(radar, r.Score.Overall),
		Gate:            gate.Decide(sess),
		Issues:          BuildIssueCards(r.Issues),
		ImprovedDesigns: r.ImprovedDesignURLs,
	}
}
