// internal/service/analyzer/accessibility.go
package analyzer

import (
	"fmt"
	"strings"

	"github.com/protouch/protouch/internal/report"
	"github.com/protouch/protouch/internal/service/parser"
)

const categoryAccessibility = "접근성"

// lowContrastColors are inline text colors that commonly fail the 4.5:1
// contrast ratio on a white background
var lowContrastColors = []string{"#999", "#999999", "#aaa", "#aaaaaa", "#bbb", "#bbbbbb", "#ccc", "#cccccc", "lightgray", "lightgrey"}

// AnalyzeAccessibility checks WCAG basics: alt text, contrast, language
func AnalyzeAccessibility(data *parser.PageData) CategoryResult {
	var issues []report.Issue

	missingAlt := 0
	for _, img := range data.Images {
		if img.Alt == "" {
			missingAlt++
		}
	}
	if missingAlt > 0 {
		severity := report.SeverityMedium
		if missingAlt > 5 {
			severity = report.SeverityHigh
		}
		issues = append(issues, report.Issue{
			Category:       categoryAccessibility,
			Severity:       severity,
			Title:          "대체 텍스트 누락",
			Description:    fmt.Sprintf("이미지 %d개에 alt 속성이 없어 스크린 리더 사용자가 내용을 알 수 없습니다.", missingAlt),
			Recommendation: "모든 의미 있는 이미지에 내용을 설명하는 대체 텍스트를 작성하세요.",
		})
	}

	if low := firstLowContrastColor(data.InlineColors); low != "" {
		issues = append(issues, report.Issue{
			Category:       categoryAccessibility,
			Severity:       report.SeverityHigh,
			Title:          "본문 명도 대비 부족",
			Description:    fmt.Sprintf("본문 텍스트 색상 %s는 흰 배경에서 4.5:1 대비 기준에 미달합니다.", low),
			Recommendation: "본문 텍스트 색상을 어둡게 조정해 명도 대비 4.5:1 이상을 확보하세요.",
			VisualExample:  &report.VisualExample{Kind: report.VisualColor, Before: low, After: "#1a1a1a"},
		})
	}

	if data.Lang == "" {
		issues = append(issues, report.Issue{
			Category:       categoryAccessibility,
			Severity:       report.SeverityLow,
			Title:          "문서 언어 미지정",
			Description:    "html 요소에 lang 속성이 없어 보조 기술이 언어를 추정해야 합니다.",
			Recommendation: "<html lang=\"ko\">처럼 문서 언어를 명시하세요.",
		})
	}

	return result(issues)
}

// firstLowContrastColor returns the first inline text color that fails the
// contrast heuristic, or "" when all pass
func firstLowContrastColor(colors []string) string {
	for _, color := range colors {
		c := strings.ToLower(strings.TrimSpace(color))
		for _, low := range lowContrastColors {
			if c == low {
				return c
			}
		}
	}
	return ""
}
