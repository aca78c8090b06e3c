// internal/service/analyzer/screenshot.go
package analyzer

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// CaptureScreenshot renders the page in headless Chrome and returns a
// full-page PNG. Screenshot failures are non-fatal to an analysis; callers
// log and continue without one.
func CaptureScreenshot(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(1280, 800),
		chromedp.Navigate(url),
		chromedp.Sleep(2*time.Second),
		chromedp.FullScreenshot(&buf, 80),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
