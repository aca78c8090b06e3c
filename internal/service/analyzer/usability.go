// internal/service/analyzer/usability.go
package analyzer

import (
	"fmt"
	"strings"

	"github.com/protouch/protouch/internal/report"
	"github.com/protouch/protouch/internal/service/parser"
)

const categoryUsability = "사용성"

// AnalyzeUsability checks navigation, touch targets and interaction basics
func AnalyzeUsability(data *parser.PageData) CategoryResult {
	var issues []report.Issue

	if !data.HasViewport {
		issues = append(issues, report.Issue{
			Category:       categoryUsability,
			Severity:       report.SeverityHigh,
			Title:          "모바일 뷰포트 미설정",
			Description:    "viewport 메타 태그가 없어 모바일에서 데스크톱 레이아웃이 그대로 노출됩니다.",
			Recommendation: "<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"> 태그를 추가하세요.",
		})
	}

	smallButtons := 0
	for _, btn := range data.Buttons {
		if strings.Contains(btn.Style, "height") &&
			(strings.Contains(btn.Style, "height: 2") || strings.Contains(btn.Style, "height:2")) {
			smallButtons++
		}
	}
	if smallButtons > 0 {
		issues = append(issues, report.Issue{
			Category:       categoryUsability,
			Severity:       report.SeverityMedium,
			Title:          "터치 영역 과소",
			Description:    fmt.Sprintf("버튼 %d개의 높이가 30px 미만으로 모바일 터치 기준에 미달합니다.", smallButtons),
			Recommendation: "클릭 가능한 요소의 터치 영역을 최소 44×44px로 확보하세요.",
			VisualExample:  &report.VisualExample{Kind: report.VisualSize, Before: "28px", After: "44px"},
		})
	}

	emptyLinks := 0
	for _, link := range data.Links {
		if link.Text == "" {
			emptyLinks++
		}
	}
	if emptyLinks > 2 {
		issues = append(issues, report.Issue{
			Category:       categoryUsability,
			Severity:       report.SeverityLow,
			Title:          "레이블 없는 링크",
			Description:    fmt.Sprintf("텍스트가 비어 있는 링크가 %d개 있어 목적을 예측하기 어렵습니다.", emptyLinks),
			Recommendation: "모든 링크에 목적을 설명하는 텍스트 또는 aria-label을 부여하세요.",
		})
	}

	if data.Forms > 0 && data.FormsWithLabels < data.Forms {
		issues = append(issues, report.Issue{
			Category:       categoryUsability,
			Severity:       report.SeverityMedium,
			Title:          "폼 레이블 누락",
			Description:    fmt.Sprintf("전체 %d개 폼 중 %d개에만 레이블이 있습니다.", data.Forms, data.FormsWithLabels),
			Recommendation: "모든 입력 필드에 연결된 <label>을 제공해 입력 목적을 명확히 하세요.",
		})
	}

	return result(issues)
}
