// internal/report/model.go
package report

import (
	"math"
	"time"
)

// Severity levels for detected issues
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Emoji returns the marker used for this severity in generated documents
func (s Severity) Emoji() string {
	switch s {
	case SeverityHigh:
		return "🔴"
	case SeverityMedium:
		return "🟡"
	case SeverityLow:
		return "🟢"
	}
	return "⚪"
}

// Label returns the Korean display label for the severity
func (s Severity) Label() string {
	switch s {
	case SeverityHigh:
		return "긴급"
	case SeverityMedium:
		return "중요"
	case SeverityLow:
		return "권장"
	}
	return string(s)
}

// VisualKind discriminates the visual example variants
type VisualKind string

const (
	VisualColor   VisualKind = "color"
	VisualSpacing VisualKind = "spacing"
	VisualSize    VisualKind = "size"
)

// VisualExample is a tagged before/after comparison attached to an issue.
// Exactly one kind per issue; Kind selects how Before/After are interpreted
// (hex color pair for color, size strings for spacing and size).
type VisualExample struct {
	Kind   VisualKind `json:"type"`
	Before string     `json:"before"`
	After  string     `json:"after"`
}

// Issue is a single detected UI/UX problem
type Issue struct {
	Category          string         `json:"category"`
	Severity          Severity       `json:"severity"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Recommendation    string         `json:"recommendation"`
	VisualExample     *VisualExample `json:"visualExample,omitempty"`
	ImprovedDesignURL string         `json:"improvedDesignUrl,omitempty"`
}

// ImprovedDesign is an AI-generated mockup keyed by issue
type ImprovedDesign struct {
	IssueID     int    `json:"issueId"`
	IssueTitle  string `json:"issueTitle"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// Score holds the per-category scores, each an integer in [0,100].
// SEO is optional; consumers must go through DerivedSEO so every surface
// shows the same number when it is absent.
type Score struct {
	Overall       int  `json:"overall"`
	Usability     int  `json:"usability"`
	Accessibility int  `json:"accessibility"`
	Visual        int  `json:"visual"`
	Performance   int  `json:"performance"`
	SEO           *int `json:"seo,omitempty"`
}

// DerivedSEO returns the SEO score, falling back to
// round((performance+accessibility)/2) when no SEO score was measured.
func (s Score) DerivedSEO() int {
	if s.SEO != nil {
		return *s.SEO
	}
	return int(math.Round(float64(s.Performance+s.Accessibility) / 2))
}

// CoreWebVitals is the LCP/FID/CLS triple
type CoreWebVitals struct {
	LCP float64 `json:"lcp"`
	FID float64 `json:"fid"`
	CLS float64 `json:"cls"`
}

// MetaTags records which SEO meta tags were present on the page
type MetaTags struct {
	Title       bool `json:"title"`
	Description bool `json:"description"`
	Keywords    bool `json:"keywords"`
	OpenGraph   bool `json:"openGraph"`
}

// SEOReport is the detailed SEO sub-report
type SEOReport struct {
	Score          int           `json:"score"`
	MetaTags       MetaTags      `json:"metaTags"`
	HeadingGrade   string        `json:"headingGrade"`
	AltCoverage    int           `json:"altCoverage"`
	InternalLinks  int           `json:"internalLinks"`
	ExternalLinks  int           `json:"externalLinks"`
	Vitals         CoreWebVitals `json:"coreWebVitals"`
	StructuredData bool          `json:"structuredData"`
}

// AnalysisResult is the canonical report record for one analyzed site.
// It is immutable once created: exporters and the renderer read it, never
// mutate it, and always enumerate issues in the stored order.
type AnalysisResult struct {
	URL                string           `json:"url"`
	SiteName           string           `json:"siteName"`
	SiteAddress        string           `json:"siteAddress,omitempty"`
	AnalysisDate       string           `json:"analysisDate"`
	AuthorName         string           `json:"authorName"`
	AuthorContact      string           `json:"authorContact"`
	ScreenshotURL      string           `json:"screenshotUrl,omitempty"`
	ImprovedDesignURLs []ImprovedDesign `json:"improvedDesignUrls,omitempty"`
	Issues             []Issue          `json:"issues"`
	Score              Score            `json:"score"`
	SEO                *SEOReport       `json:"seo,omitempty"`
}

// SEOReportOrDefault returns the detailed SEO sub-report, synthesizing a
// default from the performance/accessibility scores when none was produced.
// The fallback is expected behavior for engines that skip the SEO pass.
func (r *AnalysisResult) SEOReportOrDefault() SEOReport {
	if r.SEO != nil {
		return *r.SEO
	}
	return SEOReport{
		Score:        r.Score.DerivedSEO(),
		HeadingGrade: "B",
		AltCoverage:  r.Score.Accessibility,
		Vitals: CoreWebVitals{
			LCP: 2.5,
			FID: 100,
			CLS: 0.1,
		},
	}
}

// ParsedDate returns the analysis date, falling back to now when the
// stored ISO string does not parse.
func (r *AnalysisResult) ParsedDate() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.AnalysisDate); err == nil {
			return t
		}
	}
	return time.Now()
}
