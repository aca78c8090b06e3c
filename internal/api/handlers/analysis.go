// internal/api/handlers/analysis.go
package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protouch/protouch/internal/api/middleware"
	ws "github.com/protouch/protouch/internal/api/websocket"
	"github.com/protouch/protouch/internal/config"
	"github.com/protouch/protouch/internal/models"
	"github.com/protouch/protouch/internal/report/view"
	"github.com/protouch/protouch/internal/repository"
	"github.com/protouch/protouch/internal/repository/cache"
	"github.com/protouch/protouch/internal/service/analyzer"
	"github.com/protouch/protouch/internal/service/parser"
)

// AnalysisHandler runs analyses and serves stored reports
type AnalysisHandler struct {
	Repo   *repository.Factory
	Cache  *cache.Repository
	Engine *analyzer.Engine
	Hub    *ws.Hub
	Config *config.Config
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(repo *repository.Factory, cacheRepo *cache.Repository, engine *analyzer.Engine, hub *ws.Hub, cfg *config.Config) *AnalysisHandler {
	return &AnalysisHandler{
		Repo:   repo,
		Cache:  cacheRepo,
		Engine: engine,
		Hub:    hub,
		Config: cfg,
	}
}

// AnalyzeRequest starts one analysis
type AnalyzeRequest struct {
	URL           string `json:"url" validate:"required,url"`
	SiteName      string `json:"siteName"`
	AuthorName    string `json:"authorName"`
	AuthorContact string `json:"authorContact"`
}

// Analyze runs the full pipeline synchronously and returns the finished
// result. Progress is streamed over the websocket hub for clients that
// subscribed with the returned report ID.
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	req := new(AnalyzeRequest)
	if err := c.BodyParser(req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "분석할 URL을 입력해 주세요",
		})
	}

	userID := c.Locals("userID").(uuid.UUID)

	website := models.Website{URL: req.URL, SiteName: req.SiteName}
	if err := h.Repo.ReportRepository.Create(&website); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	rep := models.Report{
		WebsiteID: website.ID,
		UserID:    userID,
		Status:    "pending",
	}
	if err := h.Repo.ReportRepository.Create(&rep); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	if err := h.Repo.ReportRepository.MarkRunning(rep.ID); err != nil {
		log.Printf("failed to mark report running: %v", err)
	}

	result, err := h.Engine.Run(c.Context(), analyzer.Request{
		URL:           req.URL,
		SiteName:      req.SiteName,
		AuthorName:    req.AuthorName,
		AuthorContact: req.AuthorContact,
	}, func(stage string, percent int) {
		h.Hub.BroadcastProgress(rep.ID, stage, percent)
	})
	if err != nil {
		msg := failureMessage(err)
		if dberr := h.Repo.ReportRepository.MarkFailed(rep.ID, msg); dberr != nil {
			log.Printf("failed to mark report failed: %v", dberr)
		}
		h.Hub.BroadcastToReport(rep.ID, ws.Message{Type: "failed", Data: fiber.Map{"error": msg}})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   msg,
		})
	}

	if err := h.Repo.ReportRepository.MarkCompleted(rep.ID, result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "분석 결과를 저장하지 못했습니다",
		})
	}
	if err := h.Cache.CacheResult(rep.ID, result); err != nil {
		log.Printf("failed to cache result: %v", err)
	}

	sess := middleware.SessionFromCtx(c)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"reportId": rep.ID,
			"result":   view.BuildReportView(result, sess),
		},
	})
}

// GetReport returns the rendered dashboard payload for a stored report.
// A missing or unfinished report answers with the empty state and a
// return-to-analysis action instead of partial content.
func (h *AnalysisHandler) GetReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid report ID",
		})
	}

	result, _ := h.Cache.GetResult(reportID)
	if result == nil {
		rep, err := h.Repo.ReportRepository.FindWithWebsite(reportID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return h.emptyState(c)
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Database error",
			})
		}
		if rep.Status != "completed" {
			return h.emptyState(c)
		}
		result, err = h.Repo.ReportRepository.DecodeResult(rep)
		if err != nil {
			return h.emptyState(c)
		}
		if err := h.Cache.CacheResult(reportID, result); err != nil {
			log.Printf("failed to cache result: %v", err)
		}
	}

	sess := middleware.SessionFromCtx(c)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    view.BuildReportView(result, sess),
	})
}

// ListReports returns the caller's reports, newest first
func (h *AnalysisHandler) ListReports(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reports, total, err := h.Repo.ReportRepository.FindByUser(userID, page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	items := make([]fiber.Map, 0, len(reports))
	for _, r := range reports {
		items = append(items, fiber.Map{
			"id":            r.ID,
			"url":           r.Website.URL,
			"siteName":      r.Website.SiteName,
			"status":        r.Status,
			"overall_score": r.OverallScore,
			"created_at":    r.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"reports":   items,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		},
	})
}

// emptyState is the answer for reports without a usable result
func (h *AnalysisHandler) emptyState(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error":   "분석 결과가 없습니다",
		"action": fiber.Map{
			"label": "분석 페이지로 돌아가기",
			"url":   "/analyze",
		},
	})
}

// failureMessage picks the single user-facing message for an engine
// failure: a JSON error field from the fetched response, then its body
// text, then the status code.
func failureMessage(err error) string {
	var ferr *parser.FetchError
	if errors.As(err, &ferr) {
		return ferr.Message()
	}
	return "분석 중 오류가 발생했습니다"
}
