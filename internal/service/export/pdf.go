// internal/service/export/pdf.go
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/protouch/protouch/internal/report"
)

// A4 portrait with 15mm margins, in inches as PrintToPDF expects
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	marginInches   = 0.59
)

// PDFExporter converts assembled report HTML into a paginated PDF using a
// headless Chrome instance. Each Export call runs its own browser context;
// concurrent exports are independent and never deduplicated.
type PDFExporter struct {
	Timeout time.Duration
}

// NewPDFExporter creates a PDF exporter with the given conversion timeout
func NewPDFExporter(timeout time.Duration) *PDFExporter {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &PDFExporter{Timeout: timeout}
}

// Export renders the print document for the result and returns the PDF
// bytes plus the unique download filename. On conversion failure no partial
// artifact is returned.
func (e *PDFExporter) Export(ctx context.Context, r *report.AnalysisResult) ([]byte, string, error) {
	html := BuildReportHTML(r)

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				WithLandscape(false).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, "", fmt.Errorf("pdf conversion failed: %w", err)
	}

	return pdf, PDFFileName(r.SiteName, time.Now()), nil
}
