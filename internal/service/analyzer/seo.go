// internal/service/analyzer/seo.go
package analyzer

import (
	"fmt"

	"github.com/protouch/protouch/internal/report"
	"github.com/protouch/protouch/internal/service/parser"
)

const categorySEO = "SEO"

// AnalyzeSEO checks meta tags, heading structure and link profile, and
// produces the detailed SEO sub-report alongside the category score
func AnalyzeSEO(data *parser.PageData) (CategoryResult, report.SEOReport) {
	var issues []report.Issue

	hasTitle := data.Title != ""
	if !hasTitle {
		issues = append(issues, report.Issue{
			Category:       categorySEO,
			Severity:       report.SeverityHigh,
			Title:          "title 태그 누락",
			Description:    "페이지에 title 태그가 없어 검색 결과 노출에 불리합니다.",
			Recommendation: "페이지 내용을 요약하는 30-60자 title을 작성하세요.",
		})
	}

	hasDesc := data.Description != ""
	if !hasDesc {
		issues = append(issues, report.Issue{
			Category:       categorySEO,
			Severity:       report.SeverityHigh,
			Title:          "메타 설명 누락",
			Description:    "meta description이 없어 검색 결과 스니펫을 제어할 수 없습니다.",
			Recommendation: "50-160자 분량의 메타 설명을 작성하세요.",
		})
	}

	headingGrade := "A"
	switch {
	case len(data.H1) == 0:
		headingGrade = "D"
		issues = append(issues, report.Issue{
			Category:       categorySEO,
			Severity:       report.SeverityMedium,
			Title:          "H1 누락",
			Description:    "페이지에 H1 제목이 없습니다.",
			Recommendation: "페이지 주제를 나타내는 H1을 하나 추가하세요.",
		})
	case len(data.H1) > 1:
		headingGrade = "C"
		issues = append(issues, report.Issue{
			Category:       categorySEO,
			Severity:       report.SeverityLow,
			Title:          "H1 중복",
			Description:    fmt.Sprintf("H1이 %d개 존재합니다.", len(data.H1)),
			Recommendation: "H1은 페이지당 하나만 사용하세요.",
		})
	case len(data.H2) == 0:
		headingGrade = "B"
	}

	withAlt := 0
	for _, img := range data.Images {
		if img.Alt != "" {
			withAlt++
		}
	}
	altCoverage := 100
	if len(data.Images) > 0 {
		altCoverage = withAlt * 100 / len(data.Images)
	}

	internal, external := 0, 0
	for _, link := range data.Links {
		if link.IsInternal {
			internal++
		} else {
			external++
		}
	}

	if !data.HasStructuredData {
		issues = append(issues, report.Issue{
			Category:       categorySEO,
			Severity:       report.SeverityLow,
			Title:          "구조화 데이터 없음",
			Description:    "JSON-LD 구조화 데이터가 없어 리치 스니펫 노출 기회를 놓칩니다.",
			Recommendation: "schema.org 타입에 맞는 JSON-LD를 추가하세요.",
		})
	}

	res := result(issues)
	detail := report.SEOReport{
		Score: res.Score,
		MetaTags: report.MetaTags{
			Title:       hasTitle,
			Description: hasDesc,
			Keywords:    data.MetaTags["keywords"] != "",
			OpenGraph:   data.MetaTags["og:title"] != "",
		},
		HeadingGrade:  headingGrade,
		AltCoverage:   altCoverage,
		InternalLinks: internal,
		ExternalLinks: external,
		Vitals: report.CoreWebVitals{
			LCP: data.LoadTime.Seconds(),
			FID: 100,
			CLS: 0.1,
		},
		StructuredData: data.HasStructuredData,
	}
	return res, detail
}
