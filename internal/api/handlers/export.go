// internal/api/handlers/export.go
package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protouch/protouch/internal/api/middleware"
	"github.com/protouch/protouch/internal/config"
	"github.com/protouch/protouch/internal/gate"
	"github.com/protouch/protouch/internal/report"
	"github.com/protouch/protouch/internal/repository"
	"github.com/protouch/protouch/internal/repository/cache"
	"github.com/protouch/protouch/internal/service/export"
)

// ExportHandler serves report downloads: the PDF report and the Markdown
// AI work guideline
type ExportHandler struct {
	Repo   *repository.Factory
	Cache  *cache.Repository
	PDF    *export.PDFExporter
	Config *config.Config
}

// NewExportHandler creates a new export handler
func NewExportHandler(repo *repository.Factory, cacheRepo *cache.Repository, cfg *config.Config) *ExportHandler {
	return &ExportHandler{
		Repo:   repo,
		Cache:  cacheRepo,
		PDF:    export.NewPDFExporter(cfg.PDFTimeout),
		Config: cfg,
	}
}

// ExportPDF renders the analysis report to PDF and streams it as a
// download. Failures answer with a single notification and no partial
// artifact.
func (h *ExportHandler) ExportPDF(c *fiber.Ctx) error {
	result, errResp := h.loadResult(c)
	if result == nil {
		return errResp
	}
	if resp := h.requireSubscription(c); resp != nil {
		return resp
	}

	pdf, filename, err := h.PDF.Export(c.Context(), result)
	if err != nil {
		log.Printf("pdf export failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "PDF 생성에 실패했습니다. 잠시 후 다시 시도해 주세요",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, contentDisposition(filename))
	return c.Send(pdf)
}

// ExportGuideline renders the Markdown work guideline. The document is a
// pure function of the stored result, so it is cached by report ID.
func (h *ExportHandler) ExportGuideline(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid report ID",
		})
	}

	result, errResp := h.loadResult(c)
	if result == nil {
		return errResp
	}
	if resp := h.requireSubscription(c); resp != nil {
		return resp
	}

	doc, _ := h.Cache.GetGuideline(reportID)
	if doc == "" {
		doc = export.BuildGuideline(result)
		if err := h.Cache.CacheGuideline(reportID, doc); err != nil {
			log.Printf("failed to cache guideline: %v", err)
		}
	}

	filename := export.GuidelineFileName(result.SiteName, time.Now())
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, contentDisposition(filename))
	return c.SendString(doc)
}

// loadResult resolves the report ID path param to a stored result. On
// failure it writes the error response and returns nil.
func (h *ExportHandler) loadResult(c *fiber.Ctx) (*report.AnalysisResult, error) {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid report ID",
		})
	}

	if result, _ := h.Cache.GetResult(reportID); result != nil {
		return result, nil
	}

	rep, err := h.Repo.ReportRepository.FindWithWebsite(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "분석 결과가 없습니다",
			})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}
	if rep.Status != "completed" {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "분석 결과가 없습니다",
		})
	}

	result, err := h.Repo.ReportRepository.DecodeResult(rep)
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "분석 결과를 읽지 못했습니다",
		})
	}
	if err := h.Cache.CacheResult(reportID, result); err != nil {
		log.Printf("failed to cache result: %v", err)
	}
	return result, nil
}

// requireSubscription blocks exports for viewers the gate locks out
func (h *ExportHandler) requireSubscription(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	if gate.Allowed(sess) {
		return nil
	}
	decision := gate.Decide(sess)
	return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
		"success": false,
		"error":   decision.Overlay.Message,
		"gate":    decision,
	})
}

// contentDisposition builds an attachment header that survives non-ASCII
// filenames
func contentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename))
}
