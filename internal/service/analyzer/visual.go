// internal/service/analyzer/visual.go
package analyzer

import (
	"fmt"

	"github.com/protouch/protouch/internal/report"
	"github.com/protouch/protouch/internal/service/parser"
)

const categoryVisual = "시각 디자인"

// AnalyzeVisual checks color palette discipline and typography consistency
func AnalyzeVisual(data *parser.PageData) CategoryResult {
	var issues []report.Issue

	if palette := uniqueValues(data.InlineColors); len(palette) > 6 {
		issues = append(issues, report.Issue{
			Category:       categoryVisual,
			Severity:       report.SeverityMedium,
			Title:          "색상 팔레트 과다",
			Description:    fmt.Sprintf("인라인 스타일에서만 %d가지 텍스트 색상이 사용되어 시각적 일관성이 떨어집니다.", len(palette)),
			Recommendation: "브랜드 기준 4색 이내로 팔레트를 정리하고 공통 스타일로 추출하세요.",
		})
	}

	if fonts := uniqueValues(data.FontFamilies); len(fonts) > 3 {
		issues = append(issues, report.Issue{
			Category:       categoryVisual,
			Severity:       report.SeverityMedium,
			Title:          "서체 혼용",
			Description:    fmt.Sprintf("%d가지 서체가 혼용되어 타이포그래피 위계가 흐려집니다.", len(fonts)),
			Recommendation: "본문/제목용 서체를 2종 이내로 통일하세요.",
			VisualExample:  &report.VisualExample{Kind: report.VisualSize, Before: fmt.Sprintf("%d종", len(fonts)), After: "2종"},
		})
	}

	if len(data.H1) == 0 && len(data.H2) == 0 {
		issues = append(issues, report.Issue{
			Category:       categoryVisual,
			Severity:       report.SeverityLow,
			Title:          "시각적 위계 부재",
			Description:    "제목 요소가 없어 콘텐츠의 시각적 위계를 파악하기 어렵습니다.",
			Recommendation: "페이지 구조를 드러내는 제목 위계(H1-H3)를 도입하세요.",
		})
	}

	return result(issues)
}

// uniqueValues deduplicates while preserving first-seen order
func uniqueValues(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := []string{}
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
