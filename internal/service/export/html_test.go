package export

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/protouch/protouch/internal/report"
)

var issueBlockRe = regexp.MustCompile(`<h3>\d+\. `)

func TestReportHTMLEnumeratesAllIssues(t *testing.T) {
	r := scenarioResult()
	html := BuildReportHTML(r)

	if got := len(issueBlockRe.FindAllString(html, -1)); got != len(r.Issues) {
		t.Fatalf("report HTML has %d numbered issue blocks, want %d", got, len(r.Issues))
	}

	first := strings.Index(html, "<h3>1. 명도 대비 부족</h3>")
	second := strings.Index(html, "<h3>2. 터치 영역 과소</h3>")
	third := strings.Index(html, "<h3>3. 대체 텍스트 누락</h3>")
	if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
		t.Errorf("issue blocks out of original order: positions %d, %d, %d", first, second, third)
	}
}

func TestReportHTMLScorePanel(t *testing.T) {
	r := scenarioResult()
	html := scorePanelSection(r)

	if !strings.Contains(html, ">45<") {
		t.Error("score panel must show the overall number")
	}
	if !strings.Contains(html, ">F<") || !strings.Contains(html, "하위 20%") {
		t.Error("score panel must show rank F with its percentile for overall 45")
	}
	if !strings.Contains(html, string(report.ColorFail)) {
		t.Error("overall 45 must use the fail color token")
	}
}

func TestBarChartProportionalAndColored(t *testing.T) {
	s := report.Score{Usability: 100, Accessibility: 50, Visual: 60, Performance: 0}
	svg := barChartSection(s)

	if !strings.Contains(svg, "<svg") {
		t.Fatal("bar chart must be inline SVG")
	}
	if strings.Count(svg, "<rect") != 4 {
		t.Errorf("bar chart has %d bars, want 4 core categories", strings.Count(svg, "<rect"))
	}
	if !strings.Contains(svg, string(report.ColorPass)) || !strings.Contains(svg, string(report.ColorFail)) {
		t.Error("bar fills must use the pass/fail color tokens")
	}
	// a zero score produces a zero-width bar, not a negative one
	if !strings.Contains(svg, `width="0"`) {
		t.Error("score 0 must render a zero-width bar")
	}
}

func TestIssueBlockVisualVariants(t *testing.T) {
	colorBlock := issueBlock(1, report.Issue{
		Title: "색 대비", Category: "접근성", Severity: report.SeverityHigh,
		VisualExample: &report.VisualExample{Kind: report.VisualColor, Before: "#aaa", After: "#111"},
	})
	if !strings.Contains(colorBlock, `class="swatch" style="background:#aaa"`) ||
		!strings.Contains(colorBlock, `class="swatch" style="background:#111"`) {
		t.Error("color example must render two swatches")
	}

	sizeBlock := issueBlock(2, report.Issue{
		Title: "버튼 크기", Category: "사용성", Severity: report.SeverityMedium,
		VisualExample: &report.VisualExample{Kind: report.VisualSize, Before: "28px", After: "44px"},
	})
	if !strings.Contains(sizeBlock, "<code>28px</code>") || !strings.Contains(sizeBlock, "<code>44px</code>") {
		t.Error("size example must render the before/after pair")
	}
	if strings.Contains(sizeBlock, "swatch") {
		t.Error("size example must not render color swatches")
	}

	plain := issueBlock(3, report.Issue{Title: "기타", Category: "시각", Severity: report.SeverityLow})
	if strings.Contains(plain, "before-after") {
		t.Error("issue without visual example must not render a comparison")
	}
}

func TestReportHTMLEscapesUserData(t *testing.T) {
	r := scenarioResult()
	r.SiteName = `<script>alert("x")</script>`
	html := BuildReportHTML(r)
	if strings.Contains(html, `<script>alert`) {
		t.Error("user-provided metadata must be HTML-escaped")
	}
}

func TestReportHTMLMethodologyFixed(t *testing.T) {
	a := BuildReportHTML(scenarioResult())
	other := scenarioResult()
	other.Score.Overall = 95
	b := BuildReportHTML(other)

	section := methodologySection()
	if !strings.Contains(a, section) || !strings.Contains(b, section) {
		t.Error("분석 기준 section is static boilerplate and must not vary with the data")
	}
}

func TestExportFileNames(t *testing.T) {
	at := time.Date(2026, 8, 20, 10, 30, 45, 123*int(time.Millisecond), time.UTC)

	pdf := PDFFileName("내 쇼핑몰", at)
	if pdf != "ProTouch-분석보고서-내-쇼핑몰-20260820-103045123.pdf" {
		t.Errorf("pdf filename = %q", pdf)
	}

	md := GuidelineFileName("shop/v2", at)
	if md != "ProTouch-AI지침서-shop-v2-20260820-103045123.md" {
		t.Errorf("guideline filename = %q", md)
	}

	later := at.Add(time.Millisecond)
	if PDFFileName("a", at) == PDFFileName("a", later) {
		t.Error("exports one millisecond apart must get distinct filenames")
	}
}
