// internal/service/export/guideline.go
package export

import (
	"fmt"
	"strings"

	"github.com/protouch/protouch/internal/report"
)

// SeverityBuckets groups issues by severity, preserving the original
// relative order inside each bucket
type SeverityBuckets struct {
	High   []report.Issue
	Medium []report.Issue
	Low    []report.Issue
}

// Total returns the combined bucket size
func (b SeverityBuckets) Total() int {
	return len(b.High) + len(b.Medium) + len(b.Low)
}

// BucketBySeverity classifies issues into the three severity buckets
func BucketBySeverity(issues []report.Issue) SeverityBuckets {
	var b SeverityBuckets
	for _, issue := range issues {
		switch issue.Severity {
		case report.SeverityHigh:
			b.High = append(b.High, issue)
		case report.SeverityMedium:
			b.Medium = append(b.Medium, issue)
		default:
			b.Low = append(b.Low, issue)
		}
	}
	return b
}

// CategoryTally counts issues per category. Keys come back in order of
// first occurrence, not sorted.
func CategoryTally(issues []report.Issue) ([]string, map[string]int) {
	order := []string{}
	counts := map[string]int{}
	for _, issue := range issues {
		if _, seen := counts[issue.Category]; !seen {
			order = append(order, issue.Category)
		}
		counts[issue.Category]++
	}
	return order, counts
}

// BuildGuideline produces the long-form Markdown work order for an external
// AI assistant. Pure string construction: the same result always yields a
// byte-identical document.
func BuildGuideline(r *report.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(guidelineHeader(r))
	b.WriteString(summarySection(r.Issues))
	b.WriteString(axisSections(r.Score))
	b.WriteString("\n## 📋 이슈별 작업 지시서\n\n")
	b.WriteString("각 이슈는 독립적으로 AI 어시스턴트에 전달할 수 있도록 전체 맥락을 포함합니다.\n\n")
	for i, issue := range r.Issues {
		b.WriteString(issueSection(i+1, issue))
	}
	b.WriteString(appendixSections)
	return b.String()
}

func guidelineHeader(r *report.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("# ProTouch AI 작업 지침서\n\n")
	fmt.Fprintf(&b, "- **대상 사이트**: %s (%s)\n", r.SiteName, r.URL)
	fmt.Fprintf(&b, "- **분석일**: %s\n", r.AnalysisDate)
	fmt.Fprintf(&b, "- **작성자**: %s (%s)\n\n", r.AuthorName, r.AuthorContact)
	fmt.Fprintf(&b, "## 종합 점수: %d점 (%s 등급, %s)\n\n",
		r.Score.Overall, report.RankFor(r.Score.Overall).Letter, report.RankFor(r.Score.Overall).Percentile)
	fmt.Fprintf(&b, "| 사용성 | 접근성 | 시각 | 성능 | SEO |\n|---|---|---|---|---|\n| %d | %d | %d | %d | %d |\n\n",
		r.Score.Usability, r.Score.Accessibility, r.Score.Visual, r.Score.Performance, r.Score.DerivedSEO())
	return b.String()
}

func summarySection(issues []report.Issue) string {
	buckets := BucketBySeverity(issues)
	var b strings.Builder
	b.WriteString("## 🗂 이슈 요약\n\n")
	fmt.Fprintf(&b, "총 %d건 (🔴 긴급 %d건 / 🟡 중요 %d건 / 🟢 권장 %d건)\n\n",
		buckets.Total(), len(buckets.High), len(buckets.Medium), len(buckets.Low))

	writeBucket := func(title string, items []report.Issue) {
		fmt.Fprintf(&b, "### %s\n\n", title)
		if len(items) == 0 {
			b.WriteString("- 해당 없음\n\n")
			return
		}
		for _, issue := range items {
			fmt.Fprintf(&b, "- [%s] %s\n", issue.Category, issue.Title)
		}
		b.WriteString("\n")
	}
	writeBucket("🔴 긴급", buckets.High)
	writeBucket("🟡 중요", buckets.Medium)
	writeBucket("🟢 권장", buckets.Low)

	order, counts := CategoryTally(issues)
	b.WriteString("### 카테고리별 분포\n\n")
	for _, cat := range order {
		fmt.Fprintf(&b, "- %s: %d건\n", cat, counts[cat])
	}
	b.WriteString("\n")
	return b.String()
}

// bandSentences holds the interpretive sentence per band; the axis name is
// interpolated so the six-band logic stays identical across all five axes
var bandSentences = map[report.Band]string{
	report.BandExcellent: "%s 영역은 최상위 수준입니다. 현재 품질을 유지하면서 세부 디테일만 다듬으세요.",
	report.BandGood:      "%s 영역은 우수합니다. 아래 권장 사항으로 한 단계 더 끌어올릴 수 있습니다.",
	report.BandFair:      "%s 영역은 양호하지만 개선 여지가 뚜렷합니다. 우선순위를 정해 순차 적용하세요.",
	report.BandMiddling:  "%s 영역은 평균 수준입니다. 핵심 항목부터 개선을 시작해야 합니다.",
	report.BandPoor:      "%s 영역이 미흡합니다. 사용자 이탈에 직접 영향을 주므로 조기 개선이 필요합니다.",
	report.BandCritical:  "%s 영역이 심각한 수준입니다. 다른 작업보다 먼저 전면 개선하세요.",
}

// axisBullets are the per-axis remediation lists; content differs per axis
// but the banding logic above never does
var axisBullets = map[string][]string{
	"사용성": {
		"주요 과업 흐름(가입, 구매, 문의)을 3클릭 이내로 단축",
		"내비게이션 구조를 2단계 이하로 평탄화",
		"모바일 터치 영역 최소 44×44px 확보",
	},
	"접근성": {
		"본문 텍스트 명도 대비 4.5:1 이상 확보",
		"모든 이미지에 의미 있는 대체 텍스트 작성",
		"키보드만으로 전체 기능 사용 가능하도록 포커스 순서 정비",
	},
	"시각": {
		"색상 팔레트를 브랜드 기준 4색 이내로 정리",
		"타이포그래피 스케일을 일관된 비율로 통일",
		"8px 그리드 기반으로 여백과 정렬 재정비",
	},
	"성능": {
		"이미지 WebP 변환 및 지연 로딩 적용",
		"미사용 JavaScript/CSS 제거로 번들 크기 축소",
		"LCP 2.5초 이내, CLS 0.1 이하 목표로 최적화",
	},
	"SEO": {
		"페이지별 고유한 title/description 메타 태그 작성",
		"H1은 페이지당 하나, 헤딩 계층 순서 준수",
		"구조화 데이터(JSON-LD) 추가로 검색 노출 강화",
	},
}

// axisSections emits one interpretation block per score axis, all five
// driven by the same band classification
func axisSections(s report.Score) string {
	axes := []struct {
		name  string
		score int
	}{
		{"사용성", s.Usability},
		{"접근성", s.Accessibility},
		{"시각", s.Visual},
		{"성능", s.Performance},
		{"SEO", s.DerivedSEO()},
	}

	var b strings.Builder
	b.WriteString("## 📊 영역별 진단\n\n")
	for _, axis := range axes {
		fmt.Fprintf(&b, "### %s (%d점)\n\n", axis.name, axis.score)
		fmt.Fprintf(&b, bandSentences[report.BandFor(axis.score)], axis.name)
		b.WriteString("\n\n")
		for _, bullet := range axisBullets[axis.name] {
			fmt.Fprintf(&b, "- %s\n", bullet)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// designConstraintBlock is the fixed design-system constraint emitted for
// every single issue. The repetition is intentional: each issue section must
// be independently actionable when pasted to an external assistant alone.
const designConstraintBlock = `**디자인 시스템 제약 (모든 수정에 공통 적용):**

- 허용 색상 4종만 사용: ` + "`#1a1a1a`" + `(본문), ` + "`#ffffff`" + `(배경), ` + "`#3b82f6`" + `(포인트), ` + "`#ef4444`" + `(경고)
- 타이포 스케일: 모바일 14/16/20/28px, 데스크톱 16/18/24/32px
- 정렬: 8px 그리드 준수, 본문은 좌측 정렬 기본
`

// issueSection emits one fully-expanded remediation section, numbered in
// original report order
func issueSection(n int, issue report.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %d. %s %s\n\n", n, issue.Severity.Emoji(), issue.Title)
	fmt.Fprintf(&b, "- **카테고리**: %s\n", issue.Category)
	fmt.Fprintf(&b, "- **심각도**: %s %s\n\n", issue.Severity.Emoji(), issue.Severity.Label())
	fmt.Fprintf(&b, "**문제 설명**: %s\n\n", issue.Description)
	fmt.Fprintf(&b, "**개선 방향**: %s\n\n", issue.Recommendation)

	if ve := issue.VisualExample; ve != nil {
		switch ve.Kind {
		case report.VisualColor:
			fmt.Fprintf(&b, "**색상 변경**: `%s` → `%s`\n\n", ve.Before, ve.After)
		case report.VisualSpacing:
			fmt.Fprintf(&b, "**간격 변경**: `%s` → `%s`\n\n", ve.Before, ve.After)
		case report.VisualSize:
			fmt.Fprintf(&b, "**크기 변경**: `%s` → `%s`\n\n", ve.Before, ve.After)
		}
	}
	if issue.ImprovedDesignURL != "" {
		fmt.Fprintf(&b, "**개선 시안**: %s\n\n", issue.ImprovedDesignURL)
	}

	b.WriteString(`**작업 절차**:

1. 현황 분석: 해당 요소의 현재 마크업/스타일을 확인하고 영향 범위를 파악합니다.
2. 변경 적용: 개선 방향에 따라 마크업/스타일을 수정합니다.
3. 테스트: 데스크톱/모바일 뷰포트와 주요 브라우저에서 렌더링을 확인합니다.
4. 검증: 변경이 다른 요소를 깨뜨리지 않았는지, 접근성 기준을 충족하는지 검증합니다.

`)
	b.WriteString(designConstraintBlock)
	b.WriteString("\n---\n\n")
	return b.String()
}

// appendixSections are fixed boilerplate appendices, identical for every
// report
const appendixSections = `## 🎨 디자인 시스템 가이드

- 컬러: 본문 ` + "`#1a1a1a`" + `, 배경 ` + "`#ffffff`" + `, 포인트 ` + "`#3b82f6`" + `, 경고 ` + "`#ef4444`" + `
- 버튼: 기본 높이 44px, 모서리 반경 8px, 포인트 컬러 배경에 흰색 텍스트
- 카드: 테두리 ` + "`#e5e5e5`" + ` 1px, 반경 8px, 내부 여백 16px

## ✍️ 타이포그래피 가이드

- 본문: 모바일 14px / 데스크톱 16px, 행간 1.6
- 소제목: 모바일 20px / 데스크톱 24px, 굵기 600
- 대제목: 모바일 28px / 데스크톱 32px, 굵기 700
- 줄 길이는 한 줄 45~75자 유지

## ✅ 테스트 체크리스트

- [ ] 모바일(360px)/태블릿(768px)/데스크톱(1280px) 뷰포트 확인
- [ ] 키보드 탐색으로 모든 인터랙션 도달 가능
- [ ] 명도 대비 4.5:1 이상 (WebAIM Contrast Checker)
- [ ] Lighthouse 성능/접근성/SEO 점수 재측정
- [ ] 실제 기기에서 터치 영역 확인

## 🔗 참고 자료

- WCAG 2.1 빠른 참조: https://www.w3.org/WAI/WCAG21/quickref/
- Web Vitals 가이드: https://web.dev/vitals/
- Material Design 접근성: https://m3.material.io/foundations/accessible-design/overview
- ProTouch 요금제 안내: https://protouch.kr/pricing
`
