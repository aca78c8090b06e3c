package export

import (
	"regexp"
	"strings"
	"testing"

	"github.com/protouch/protouch/internal/report"
)

func scenarioResult() *report.AnalysisResult {
	return &report.AnalysisResult{
		URL:           "https://shop.example.kr",
		SiteName:      "테스트몰",
		AnalysisDate:  "2026-08-20T10:00:00Z",
		AuthorName:    "박개선",
		AuthorContact: "park@protouch.kr",
		Score: report.Score{
			Overall:       45,
			Usability:     40,
			Accessibility: 50,
			Visual:        55,
			Performance:   48,
		},
		Issues: []report.Issue{
			{
				Category: "접근성", Severity: report.SeverityHigh,
				Title: "명도 대비 부족", Description: "본문 대비가 2.1:1에 불과합니다",
				Recommendation: "본문 색상을 어둡게 조정하세요",
				VisualExample:  &report.VisualExample{Kind: report.VisualColor, Before: "#aaaaaa", After: "#1a1a1a"},
			},
			{
				Category: "사용성", Severity: report.SeverityHigh,
				Title: "터치 영역 과소", Description: "모바일 버튼이 28px로 너무 작습니다",
				Recommendation: "최소 44px 터치 영역을 확보하세요",
				VisualExample:  &report.VisualExample{Kind: report.VisualSize, Before: "28px", After: "44px"},
			},
			{
				Category: "접근성", Severity: report.SeverityLow,
				Title: "대체 텍스트 누락", Description: "배너 이미지 3건에 alt가 없습니다",
				Recommendation: "의미 있는 대체 텍스트를 작성하세요",
			},
		},
	}
}

var issueHeaderRe = regexp.MustCompile(`(?m)^### \d+\. `)

func TestGuidelineEnumeratesAllIssuesInOrder(t *testing.T) {
	r := scenarioResult()
	doc := BuildGuideline(r)

	if got := len(issueHeaderRe.FindAllString(doc, -1)); got != len(r.Issues) {
		t.Fatalf("guideline has %d numbered issue sections, want %d", got, len(r.Issues))
	}

	// original order preserved, no severity reordering of the sections
	first := strings.Index(doc, "1. 🔴 명도 대비 부족")
	second := strings.Index(doc, "2. 🔴 터치 영역 과소")
	third := strings.Index(doc, "3. 🟢 대체 텍스트 누락")
	if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
		t.Errorf("issue sections out of original order: positions %d, %d, %d", first, second, third)
	}
}

func TestGuidelineIdempotence(t *testing.T) {
	r := scenarioResult()
	if BuildGuideline(r) != BuildGuideline(r) {
		t.Error("BuildGuideline is not byte-identical across calls with the same input")
	}
}

func TestGuidelineScenarioLowScore(t *testing.T) {
	doc := BuildGuideline(scenarioResult())

	if !strings.Contains(doc, "F 등급") {
		t.Error("overall 45 must render as F grade")
	}

	// the urgent summary bucket lists exactly the two high-severity issues
	urgent := doc[strings.Index(doc, "### 🔴 긴급"):strings.Index(doc, "### 🟡 중요")]
	if got := strings.Count(urgent, "\n- "); got != 2 {
		t.Errorf("urgent section lists %d items, want 2:\n%s", got, urgent)
	}
}

func TestGuidelineSeverityBuckets(t *testing.T) {
	r := scenarioResult()
	buckets := BucketBySeverity(r.Issues)
	if buckets.Total() != len(r.Issues) {
		t.Errorf("bucket total = %d, want %d", buckets.Total(), len(r.Issues))
	}
	if len(buckets.High) != 2 || len(buckets.Medium) != 0 || len(buckets.Low) != 1 {
		t.Errorf("buckets = %d/%d/%d, want 2/0/1", len(buckets.High), len(buckets.Medium), len(buckets.Low))
	}
}

func TestCategoryTallyFirstOccurrenceOrder(t *testing.T) {
	order, counts := CategoryTally(scenarioResult().Issues)
	if len(order) != 2 || order[0] != "접근성" || order[1] != "사용성" {
		t.Errorf("category order = %v, want [접근성 사용성]", order)
	}
	if counts["접근성"] != 2 || counts["사용성"] != 1 {
		t.Errorf("category counts = %v", counts)
	}
}

func TestGuidelineRepeatsDesignConstraintPerIssue(t *testing.T) {
	r := scenarioResult()
	doc := BuildGuideline(r)
	// once per issue plus the appendix color line is a different heading,
	// so count the constraint block marker itself
	if got := strings.Count(doc, "디자인 시스템 제약"); got != len(r.Issues) {
		t.Errorf("design constraint block appears %d times, want once per issue (%d)", got, len(r.Issues))
	}
}

func TestGuidelineFourStepProcedure(t *testing.T) {
	doc := BuildGuideline(scenarioResult())
	for _, step := range []string{"1. 현황 분석", "2. 변경 적용", "3. 테스트", "4. 검증"} {
		if strings.Count(doc, step) != 3 {
			t.Errorf("procedure step %q must appear once per issue", step)
		}
	}
}

func TestGuidelineAppendixFixed(t *testing.T) {
	doc := BuildGuideline(scenarioResult())
	for _, heading := range []string{"디자인 시스템 가이드", "타이포그래피 가이드", "테스트 체크리스트", "참고 자료"} {
		if !strings.Contains(doc, heading) {
			t.Errorf("appendix missing %q", heading)
		}
	}
}

func TestGuidelineSEOFallbackMatchesDerived(t *testing.T) {
	r := scenarioResult()
	doc := BuildGuideline(r)
	want := r.Score.DerivedSEO()
	if !strings.Contains(doc, "| 40 | 50 | 55 | 48 | 49 |") {
		t.Errorf("score table must show derived SEO %d for a result without an SEO report", want)
	}
}
