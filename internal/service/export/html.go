// internal/service/export/html.go
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/protouch/protouch/internal/report"
)

// BuildReportHTML assembles the self-contained print document for one
// analysis result. Each section is built by its own function so the score
// panel, chart, methodology block and issue blocks stay independently
// testable.
func BuildReportHTML(r *report.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(headerSection(r))
	b.WriteString(scorePanelSection(r))
	b.WriteString(barChartSection(r.Score))
	b.WriteString(methodologySection())
	b.WriteString(`<section class="issues"><h2>발견된 문제점</h2>`)
	for i, issue := range r.Issues {
		b.WriteString(issueBlock(i+1, issue))
	}
	b.WriteString(`</section>`)
	return documentShell(r.SiteName, b.String())
}

// documentShell wraps the report body in a standalone HTML document with
// inlined styles. Print CSS hides .no-print elements from the rasterized
// output.
func documentShell(title, body string) string {
	return `<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>` + html.EscapeString(title) + ` - ProTouch 분석 보고서</title>
<style>
body { font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; color: #1a1a1a; margin: 0; padding: 24px; }
h1 { font-size: 24px; margin: 0 0 4px; }
h2 { font-size: 18px; border-bottom: 2px solid #1a1a1a; padding-bottom: 6px; margin-top: 28px; }
h3 { font-size: 15px; margin: 0 0 8px; }
.meta { color: #555; font-size: 12px; margin-bottom: 16px; }
.score-panel { display: flex; align-items: center; gap: 24px; border: 1px solid #ddd; border-radius: 8px; padding: 20px; }
.score-number { font-size: 48px; font-weight: 700; }
.rank-badge { font-size: 32px; font-weight: 700; border: 3px solid currentColor; border-radius: 50%; width: 64px; height: 64px; display: flex; align-items: center; justify-content: center; }
.percentile { font-size: 14px; color: #555; }
.issue-block { border: 1px solid #e5e5e5; border-radius: 8px; padding: 16px; margin: 12px 0; page-break-inside: avoid; }
.badge { display: inline-block; font-size: 11px; border-radius: 4px; padding: 2px 8px; margin-right: 6px; color: #fff; }
.badge-category { background: #64748b; }
.swatch { display: inline-block; width: 48px; height: 24px; border: 1px solid #ccc; border-radius: 4px; vertical-align: middle; }
.before-after { font-size: 13px; margin-top: 8px; }
.methodology { font-size: 13px; color: #444; }
.methodology li { margin: 4px 0; }
@media print {
  .no-print { display: none !important; }
  body { padding: 0; }
}
</style>
</head>
<body>
` + body + `
</body>
</html>`
}

// headerSection renders the identification metadata block
func headerSection(r *report.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(`<header><h1>ProTouch UI/UX 분석 보고서</h1><div class="meta">`)
	fmt.Fprintf(&b, `<div>사이트: %s (%s)</div>`, html.EscapeString(r.SiteName), html.EscapeString(r.URL))
	if r.SiteAddress != "" {
		fmt.Fprintf(&b, `<div>주소: %s</div>`, html.EscapeString(r.SiteAddress))
	}
	fmt.Fprintf(&b, `<div>분석일: %s</div>`, html.EscapeString(r.AnalysisDate))
	fmt.Fprintf(&b, `<div>담당자: %s (%s)</div>`, html.EscapeString(r.AuthorName), html.EscapeString(r.AuthorContact))
	b.WriteString(`</div></header>`)
	return b.String()
}

// scorePanelSection renders the overall score, rank badge and percentile
func scorePanelSection(r *report.AnalysisResult) string {
	rank := report.RankFor(r.Score.Overall)
	color := report.ColorFor(r.Score.Overall)
	return fmt.Sprintf(`<section class="score-panel">
<div class="score-number" style="color:%s">%d</div>
<div class="rank-badge" style="color:%s">%s</div>
<div><div class="percentile">%s</div><div>%s</div></div>
</section>`,
		color, r.Score.Overall,
		color, rank.Letter,
		html.EscapeString(rank.Percentile), html.EscapeString(rank.Description))
}

// coreCategories are the four axes shown on the bar chart, in fixed order
var coreCategories = []struct {
	label string
	get   func(report.Score) int
}{
	{"사용성", func(s report.Score) int { return s.Usability }},
	{"접근성", func(s report.Score) int { return s.Accessibility }},
	{"시각", func(s report.Score) int { return s.Visual }},
	{"성능", func(s report.Score) int { return s.Performance }},
}

// barChartSection renders an inline SVG bar chart for the four core
// category scores, bar length proportional to score and fill keyed by the
// pass/fail color
func barChartSection(s report.Score) string {
	const (
		chartWidth = 520
		barHeight  = 22
		barGap     = 12
		labelWidth = 70
	)
	maxBar := chartWidth - labelWidth - 40

	var b strings.Builder
	height := len(coreCategories)*(barHeight+barGap) + barGap
	b.WriteString(`<section><h2>카테고리별 점수</h2>`)
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, chartWidth, height)
	for i, cat := range coreCategories {
		score := cat.get(s)
		if score < 0 {
			score = 0
		} else if score > 100 {
			score = 100
		}
		y := barGap + i*(barHeight+barGap)
		barW := maxBar * score / 100
		fmt.Fprintf(&b, `<text x="0" y="%d" font-size="13">%s</text>`, y+barHeight-6, cat.label)
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" rx="4" fill="%s"/>`,
			labelWidth, y, barW, barHeight, report.ColorFor(score))
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="12">%d</text>`,
			labelWidth+barW+6, y+barHeight-6, score)
	}
	b.WriteString(`</svg></section>`)
	return b.String()
}

// methodologySection is the fixed 분석 기준 boilerplate, not derived from
// the analysis data
func methodologySection() string {
	return `<section class="methodology"><h2>분석 기준</h2>
<ul>
<li><strong>사용성</strong>: 내비게이션 구조, 인터랙션 일관성, 모바일 대응을 평가합니다.</li>
<li><strong>접근성</strong>: WCAG 2.1 기준의 명도 대비, 대체 텍스트, 키보드 접근성을 평가합니다.</li>
<li><strong>시각 디자인</strong>: 색상 체계, 타이포그래피, 레이아웃 균형을 평가합니다.</li>
<li><strong>성능</strong>: 로딩 속도, 리소스 최적화, Core Web Vitals를 평가합니다.</li>
<li><strong>SEO</strong>: 메타 태그, 헤딩 구조, 구조화 데이터를 평가합니다.</li>
</ul>
<p>각 항목은 0-100점으로 산정되며 60점 미만은 개선 권고 대상입니다.</p>
</section>`
}

// severityBadge renders a severity badge colored by level
func severityBadge(s report.Severity) string {
	color := "#22c55e"
	switch s {
	case report.SeverityHigh:
		color = "#ef4444"
	case report.SeverityMedium:
		color = "#f59e0b"
	}
	return fmt.Sprintf(`<span class="badge" style="background:%s">%s</span>`, color, s.Label())
}

// issueBlock renders one numbered issue with category/severity badges and,
// when present, the same visual example semantics as the dashboard cards
func issueBlock(n int, issue report.Issue) string {
	var b strings.Builder
	b.WriteString(`<div class="issue-block">`)
	fmt.Fprintf(&b, `<h3>%d. %s</h3>`, n, html.EscapeString(issue.Title))
	fmt.Fprintf(&b, `<div><span class="badge badge-category">%s</span>%s</div>`,
		html.EscapeString(issue.Category), severityBadge(issue.Severity))
	fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(issue.Description))
	fmt.Fprintf(&b, `<p><strong>개선 방안:</strong> %s</p>`, html.EscapeString(issue.Recommendation))
	if ve := issue.VisualExample; ve != nil {
		switch ve.Kind {
		case report.VisualColor:
			fmt.Fprintf(&b, `<div class="before-after">개선 전 <span class="swatch" style="background:%s"></span> → 개선 후 <span class="swatch" style="background:%s"></span></div>`,
				html.EscapeString(ve.Before), html.EscapeString(ve.After))
		case report.VisualSpacing, report.VisualSize:
			fmt.Fprintf(&b, `<div class="before-after">개선 전: <code>%s</code> → 개선 후: <code>%s</code></div>`,
				html.EscapeString(ve.Before), html.EscapeString(ve.After))
		}
	}
	b.WriteString(`</div>`)
	return b.String()
}
