// internal/service/analyzer/engine.go
package analyzer

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/protouch/protouch/internal/config"
	"github.com/protouch/protouch/internal/report"
	"github.com/protouch/protouch/internal/service/llm"
	"github.com/protouch/protouch/internal/service/parser"
)

// ProgressFunc receives pipeline stage updates for streaming to clients
type ProgressFunc func(stage string, percent int)

// Request describes one analysis run
type Request struct {
	URL           string
	SiteName      string
	AuthorName    string
	AuthorContact string
}

// Engine orchestrates the analysis pipeline: fetch, category analyzers,
// SEO detail, optional LLM enrichment.
type Engine struct {
	cfg *config.Config
	llm *llm.Client
}

// NewEngine creates an analysis engine. llmClient may be nil.
func NewEngine(cfg *config.Config, llmClient *llm.Client) *Engine {
	return &Engine{cfg: cfg, llm: llmClient}
}

// Run executes the full pipeline and returns the immutable analysis
// result. Issues keep the order the analyzers emitted them in.
func (e *Engine) Run(ctx context.Context, req Request, progress ProgressFunc) (*report.AnalysisResult, error) {
	if progress == nil {
		progress = func(string, int) {}
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.AnalysisTimeout)
	defer cancel()

	progress("페이지 수집", 10)
	data, err := parser.ParsePage(req.URL, parser.ParseOptions{Timeout: e.cfg.AnalysisTimeout / 2})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	progress("스크린샷 캡처", 20)
	var screenshotURL string
	if shot, err := CaptureScreenshot(ctx, data.URL, 20*time.Second); err != nil {
		log.Printf("screenshot skipped for %s: %v", data.URL, err)
	} else {
		screenshotURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(shot)
	}

	progress("사용성 분석", 30)
	usability := AnalyzeUsability(data)

	progress("접근성 분석", 45)
	accessibility := AnalyzeAccessibility(data)

	progress("시각 디자인 분석", 60)
	visual := AnalyzeVisual(data)

	progress("성능 분석", 70)
	performance := AnalyzePerformance(data)

	progress("SEO 분석", 80)
	seo, seoDetail := AnalyzeSEO(data)

	issues := make([]report.Issue, 0,
		len(usability.Issues)+len(accessibility.Issues)+len(visual.Issues)+len(performance.Issues)+len(seo.Issues))
	issues = append(issues, usability.Issues...)
	issues = append(issues, accessibility.Issues...)
	issues = append(issues, visual.Issues...)
	issues = append(issues, performance.Issues...)
	issues = append(issues, seo.Issues...)

	seoScore := seo.Score
	score := report.Score{
		Overall:       overallScore(usability.Score, accessibility.Score, visual.Score, performance.Score),
		Usability:     usability.Score,
		Accessibility: accessibility.Score,
		Visual:        visual.Score,
		Performance:   performance.Score,
		SEO:           &seoScore,
	}

	result := &report.AnalysisResult{
		URL:           data.URL,
		SiteName:      siteNameFor(req, data),
		SiteAddress:   data.URL,
		AnalysisDate:  time.Now().Format(time.RFC3339),
		AuthorName:    req.AuthorName,
		AuthorContact: req.AuthorContact,
		ScreenshotURL: screenshotURL,
		Issues:        issues,
		Score:         score,
		SEO:           &seoDetail,
	}

	if e.llm != nil && len(issues) > 0 {
		progress("AI 개선안 생성", 90)
		designs, err := e.llm.SuggestImprovedDesigns(ctx, result.SiteName, issues)
		if err != nil {
			log.Printf("LLM enrichment skipped: %v", err)
		} else {
			result.ImprovedDesignURLs = designs
		}
	}

	progress("완료", 100)
	return result, nil
}

// overallScore is the rounded average of the four core category scores.
// SEO is informational and does not feed the overall.
func overallScore(usability, accessibility, visual, performance int) int {
	return int(math.Round(float64(usability+accessibility+visual+performance) / 4))
}

// siteNameFor prefers the caller-supplied name, then the page title, then
// the hostname
func siteNameFor(req Request, data *parser.PageData) string {
	if req.SiteName != "" {
		return req.SiteName
	}
	if data.Title != "" {
		return data.Title
	}
	if u, err := url.Parse(data.URL); err == nil && u.Hostname() != "" {
		return strings.TrimPrefix(u.Hostname(), "www.")
	}
	return data.URL
}
