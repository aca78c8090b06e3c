// internal/service/analyzer/base_test.go
package analyzer

import (
	"testing"

	"github.com/protouch/protouch/internal/report"
	"github.com/protouch/protouch/internal/service/parser"
)

func TestScoreFromIssues(t *testing.T) {
	tests := []struct {
		name   string
		issues []report.Issue
		want   int
	}{
		{"no issues keeps 100", nil, 100},
		{"one of each severity", []report.Issue{
			{Severity: report.SeverityHigh},
			{Severity: report.SeverityMedium},
			{Severity: report.SeverityLow},
		}, 70},
		{"clamped at zero", []report.Issue{
			{Severity: report.SeverityHigh}, {Severity: report.SeverityHigh},
			{Severity: report.SeverityHigh}, {Severity: report.SeverityHigh},
			{Severity: report.SeverityHigh}, {Severity: report.SeverityHigh},
			{Severity: report.SeverityHigh},
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreFromIssues(tt.issues); got != tt.want {
				t.Errorf("scoreFromIssues() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverallScore(t *testing.T) {
	if got := overallScore(95, 55, 91, 62); got != 76 {
		t.Errorf("overallScore(95,55,91,62) = %d, want 76", got)
	}
	if got := overallScore(70, 70, 70, 71); got != 70 {
		t.Errorf("overallScore(70,70,70,71) = %d, want 70 (round half)", got)
	}
}

func TestAnalyzeAccessibilityContrast(t *testing.T) {
	data := &parser.PageData{
		Lang:         "ko",
		InlineColors: []string{"#333", "#999999", "#aaa"},
	}
	res := AnalyzeAccessibility(data)

	var contrast *report.Issue
	for i := range res.Issues {
		if res.Issues[i].VisualExample != nil {
			contrast = &res.Issues[i]
		}
	}
	if contrast == nil {
		t.Fatal("expected a contrast issue with a visual example")
	}
	if contrast.VisualExample.Kind != report.VisualColor {
		t.Errorf("visual kind = %s, want color", contrast.VisualExample.Kind)
	}
	if contrast.VisualExample.Before != "#999999" {
		t.Errorf("before = %s, want first failing color #999999", contrast.VisualExample.Before)
	}
}

func TestAnalyzeVisualPalette(t *testing.T) {
	data := &parser.PageData{
		InlineColors: []string{"#111", "#222", "#333", "#444", "#555", "#666", "#777", "#111"},
		H1:           []string{"제목"},
	}
	res := AnalyzeVisual(data)

	found := false
	for _, issue := range res.Issues {
		if issue.Title == "색상 팔레트 과다" {
			found = true
		}
	}
	if !found {
		t.Error("expected palette issue for 7 unique colors")
	}
	if res.Score != 90 {
		t.Errorf("score = %d, want 90 (one medium issue)", res.Score)
	}
}

func TestAnalyzeSEODetail(t *testing.T) {
	data := &parser.PageData{
		Title:       "쇼핑몰",
		Description: "설명",
		MetaTags:    map[string]string{"og:title": "쇼핑몰"},
		H1:          []string{"제목"},
		H2:          []string{"소제목"},
		Images: []parser.Image{
			{URL: "a.png", Alt: "a"},
			{URL: "b.png"},
		},
		Links: []parser.Link{
			{URL: "/about", IsInternal: true},
			{URL: "https://other.example", IsInternal: false},
		},
		HasStructuredData: true,
	}
	res, detail := AnalyzeSEO(data)

	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
	if !detail.MetaTags.Title || !detail.MetaTags.Description || !detail.MetaTags.OpenGraph {
		t.Errorf("meta tag presence wrong: %+v", detail.MetaTags)
	}
	if detail.HeadingGrade != "A" {
		t.Errorf("heading grade = %s, want A", detail.HeadingGrade)
	}
	if detail.AltCoverage != 50 {
		t.Errorf("alt coverage = %d, want 50", detail.AltCoverage)
	}
	if detail.InternalLinks != 1 || detail.ExternalLinks != 1 {
		t.Errorf("link counts = %d/%d, want 1/1", detail.InternalLinks, detail.ExternalLinks)
	}
}

func TestSiteNameFor(t *testing.T) {
	data := &parser.PageData{URL: "https://www.example.co.kr/", Title: "예제 상점"}

	if got := siteNameFor(Request{SiteName: "내 상점"}, data); got != "내 상점" {
		t.Errorf("explicit name lost: %s", got)
	}
	if got := siteNameFor(Request{}, data); got != "예제 상점" {
		t.Errorf("title fallback: %s", got)
	}
	data.Title = ""
	if got := siteNameFor(Request{}, data); got != "example.co.kr" {
		t.Errorf("hostname fallback: %s", got)
	}
}
