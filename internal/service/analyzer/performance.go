// internal/service/analyzer/performance.go
package analyzer

import (
	"fmt"
	"time"

	"github.com/protouch/protouch/internal/report"
	"github.com/protouch/protouch/internal/service/parser"
)

const categoryPerformance = "성능"

// AnalyzePerformance checks load characteristics and resource hygiene
func AnalyzePerformance(data *parser.PageData) CategoryResult {
	var issues []report.Issue

	if data.LoadTime > 3*time.Second {
		issues = append(issues, report.Issue{
			Category:       categoryPerformance,
			Severity:       report.SeverityHigh,
			Title:          "초기 로딩 지연",
			Description:    fmt.Sprintf("문서 응답까지 %.1f초가 걸려 이탈 위험이 높습니다.", data.LoadTime.Seconds()),
			Recommendation: "서버 응답 시간을 줄이고 핵심 리소스를 프리로드하세요.",
		})
	}

	blocking := 0
	for _, s := range data.Scripts {
		if !s.IsAsync && !s.IsDeferred {
			blocking++
		}
	}
	if blocking > 3 {
		issues = append(issues, report.Issue{
			Category:       categoryPerformance,
			Severity:       report.SeverityMedium,
			Title:          "렌더링 차단 스크립트",
			Description:    fmt.Sprintf("async/defer 없는 스크립트가 %d개 있어 첫 렌더링을 지연시킵니다.", blocking),
			Recommendation: "필수가 아닌 스크립트에 defer 속성을 부여하세요.",
		})
	}

	eager := 0
	for _, img := range data.Images {
		if !img.Lazy {
			eager++
		}
	}
	if len(data.Images) > 10 && eager == len(data.Images) {
		issues = append(issues, report.Issue{
			Category:       categoryPerformance,
			Severity:       report.SeverityMedium,
			Title:          "이미지 지연 로딩 미적용",
			Description:    fmt.Sprintf("이미지 %d개가 모두 즉시 로딩되어 초기 전송량이 큽니다.", len(data.Images)),
			Recommendation: "뷰포트 밖 이미지에 loading=\"lazy\"를 적용하세요.",
		})
	}

	if data.PageBytes > 2*1024*1024 {
		issues = append(issues, report.Issue{
			Category:       categoryPerformance,
			Severity:       report.SeverityLow,
			Title:          "문서 크기 과다",
			Description:    fmt.Sprintf("HTML 문서가 %dKB로 권장 범위를 초과합니다.", data.PageBytes/1024),
			Recommendation: "불필요한 인라인 리소스를 외부 파일로 분리하고 압축 전송을 확인하세요.",
		})
	}

	return result(issues)
}
