// internal/service/export/filename.go
package export

import (
	"fmt"
	"strings"
	"time"
)

// sanitizeSiteName strips characters that are unsafe in download filenames
func sanitizeSiteName(name string) string {
	if name == "" {
		return "report"
	}
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
		"\"", "-", "<", "-", ">", "-", "|", "-", " ", "-",
	)
	return replacer.Replace(strings.TrimSpace(name))
}

// timestamp formats a time at millisecond resolution so repeated exports
// never collide on filename
func timestamp(t time.Time) string {
	return t.Format("20060102-150405") + fmt.Sprintf("%03d", t.Nanosecond()/1e6)
}

// PDFFileName builds the download name for a PDF report export
func PDFFileName(siteName string, t time.Time) string {
	return fmt.Sprintf("ProTouch-분석보고서-%s-%s.pdf", sanitizeSiteName(siteName), timestamp(t))
}

// GuidelineFileName builds the download name for a Markdown guideline export
func GuidelineFileName(siteName string, t time.Time) string {
	return fmt.Sprintf("ProTouch-AI지침서-%s-%s.md", sanitizeSiteName(siteName), timestamp(t))
}
