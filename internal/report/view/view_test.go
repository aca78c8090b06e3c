package view

import (
	"strings"
	"testing"

	"github.com/protouch/protouch/internal/gate"
	"github.com/protouch/protouch/internal/report"
)

type fixtureSession struct {
	role   string
	tier   string
	status string
}

func (s fixtureSession) Role() string               { return s.role }
func (s fixtureSession) SubscriptionTier() string   { return s.tier }
func (s fixtureSession) SubscriptionStatus() string { return s.status }

var adminSession = fixtureSession{"admin", gate.TierGuest, gate.StatusInactive}

func sampleResult() *report.AnalysisResult {
	return &report.AnalysisResult{
		URL:           "https://example.com",
		SiteName:      "예제 쇼핑몰",
		AnalysisDate:  "2026-08-15T09:30:00Z",
		AuthorName:    "김분석",
		AuthorContact: "kim@protouch.kr",
		Score: report.Score{
			Overall:       92,
			Usability:     95,
			Accessibility: 88,
			Visual:        91,
			Performance:   85,
		},
		Issues: []report.Issue{
			{
				Category: "시각 디자인", Severity: report.SeverityHigh,
				Title: "본문 대비 부족", Description: "본문 텍스트와 배경의 명도 대비가 낮습니다",
				Recommendation: "텍스트 색상을 더 어둡게 조정하세요",
				VisualExample:  &report.VisualExample{Kind: report.VisualColor, Before: "#999999", After: "#333333"},
			},
			{
				Category: "사용성", Severity: report.SeverityMedium,
				Title: "버튼 간격 과소", Description: "모바일에서 버튼 사이 간격이 좁습니다",
				Recommendation:    "버튼 간격을 넓히세요",
				VisualExample:     &report.VisualExample{Kind: report.VisualSpacing, Before: "4px", After: "12px"},
				ImprovedDesignURL: "https://cdn.protouch.kr/mockups/1.png",
			},
			{
				Category: "사용성", Severity: report.SeverityLow,
				Title: "푸터 링크 크기", Description: "푸터 링크의 터치 영역이 작습니다",
				Recommendation:    "터치 영역을 44px 이상으로 키우세요",
				ImprovedDesignURL: "https://cdn.protouch.kr/mockups/2.png",
			},
		},
	}
}

func TestBuildRadarDerivesSEO(t *testing.T) {
	r := sampleResult()
	radar := BuildRadar(r.Score)
	if len(radar) != 5 {
		t.Fatalf("radar has %d axes, want 5", len(radar))
	}
	seoAxis := radar[4]
	if seoAxis.Key != AxisSEO {
		t.Fatalf("last axis = %q, want seo", seoAxis.Key)
	}
	if seoAxis.Score != r.Score.DerivedSEO() {
		t.Errorf("seo axis score = %d, want derived %d", seoAxis.Score, r.Score.DerivedSEO())
	}
}

func TestBuildAssessment(t *testing.T) {
	radar := []RadarAxis{
		{Key: AxisUsability, Label: "사용성", Score: 95},
		{Key: AxisAccessibility, Label: "접근성", Score: 55},
		{Key: AxisVisual, Label: "시각", Score: 91},
		{Key: AxisPerformance, Label: "성능", Score: 62},
		{Key: AxisSEO, Label: "SEO", Score: 70},
	}
	a := BuildAssessment(radar, 92)

	if a.Average != 75 { // round((95+55+91+62+70)/5) = round(74.6)
		t.Errorf("average = %d, want 75", a.Average)
	}
	if a.Strongest != "사용성" || a.Weakest != "접근성" {
		t.Errorf("strongest/weakest = %q/%q, want 사용성/접근성", a.Strongest, a.Weakest)
	}
	if len(a.Weak) != 1 || a.Weak[0] != "접근성" {
		t.Errorf("weak axes = %v, want [접근성]", a.Weak)
	}
	if len(a.Strong) != 2 {
		t.Errorf("strong axes = %v, want 사용성 and 시각", a.Strong)
	}
	if !strings.Contains(a.GradeText, "상위 10%") {
		t.Errorf("grade text for overall 92 = %q, want 상위 10%% mention", a.GradeText)
	}
}

func TestIssueCardsSelectExactlyOneVisual(t *testing.T) {
	cards := BuildIssueCards(sampleResult().Issues)
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}

	if cards[0].Visual == nil || cards[0].Visual.Kind != "color" {
		t.Errorf("card 1 visual = %+v, want color swatch pair", cards[0].Visual)
	}
	// visual example wins over the mockup image when both are present
	if cards[1].Visual == nil || cards[1].Visual.Kind != "beforeAfter" {
		t.Errorf("card 2 visual = %+v, want before/after pair", cards[1].Visual)
	}
	if cards[2].Visual == nil || cards[2].Visual.Kind != "mockup" {
		t.Errorf("card 3 visual = %+v, want mockup image", cards[2].Visual)
	}

	for i, c := range cards {
		if c.Index != i+1 {
			t.Errorf("card %d has index %d, order must follow the issues slice", i, c.Index)
		}
	}
}

func TestBuildReportViewGating(t *testing.T) {
	r := sampleResult()

	locked := BuildReportView(r, fixtureSession{"analyst", gate.TierGuest, gate.StatusInactive})
	if locked.Gate.Visible || !locked.Gate.Blur || locked.Gate.Overlay == nil {
		t.Errorf("inactive viewer gate = %+v, want blurred with overlay", locked.Gate)
	}

	open := BuildReportView(r, adminSession)
	if !open.Gate.Visible || open.Gate.Blur {
		t.Errorf("admin gate = %+v, want fully visible regardless of subscription", open.Gate)
	}

	if open.Rank.Letter != "S" || open.OverallColor != report.ColorPass {
		t.Errorf("overall 92 rendered as %s/%s, want S/pass color", open.Rank.Letter, open.OverallColor)
	}
	if open.SEO.Score != r.Score.DerivedSEO() {
		t.Errorf("view SEO score = %d, want derived %d", open.SEO.Score, r.Score.DerivedSEO())
	}
}
