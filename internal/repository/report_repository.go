package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/protouch/protouch/internal/models"
	"github.com/protouch/protouch/internal/report"
)

// ReportRepository defines operations for stored analysis reports
type ReportRepository interface {
	Repository
	FindWithWebsite(id uuid.UUID) (*models.Report, error)
	FindByUser(userID uuid.UUID, page, pageSize int) ([]*models.Report, int64, error)
	MarkRunning(id uuid.UUID) error
	MarkCompleted(id uuid.UUID, result *report.AnalysisResult) error
	MarkFailed(id uuid.UUID, reason string) error
	DecodeResult(rep *models.Report) (*report.AnalysisResult, error)
}

type reportRepository struct {
	*BaseRepository
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{BaseRepository: NewBaseRepository(db)}
}

// FindWithWebsite loads a report with its website preloaded
func (r *reportRepository) FindWithWebsite(id uuid.UUID) (*models.Report, error) {
	var rep models.Report
	if err := r.DB.Preload("Website").First(&rep, id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

// FindByUser lists a user's reports, newest first
func (r *reportRepository) FindByUser(userID uuid.UUID, page, pageSize int) ([]*models.Report, int64, error) {
	var reports []*models.Report
	var count int64

	q := r.DB.Model(&models.Report{}).Where("user_id = ?", userID)
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := q.Preload("Website").Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, count, nil
}

// MarkRunning flips a pending report to running
func (r *reportRepository) MarkRunning(id uuid.UUID) error {
	return r.DB.Model(&models.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     "running",
		"started_at": time.Now(),
	}).Error
}

// MarkCompleted stores the finished analysis payload
func (r *reportRepository) MarkCompleted(id uuid.UUID, result *report.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.DB.Model(&models.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        "completed",
		"overall_score": result.Score.Overall,
		"result":        datatypes.JSON(payload),
		"completed_at":  time.Now(),
	}).Error
}

// MarkFailed records a failed analysis with its reason
func (r *reportRepository) MarkFailed(id uuid.UUID, reason string) error {
	return r.DB.Model(&models.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":         "failed",
		"failure_reason": reason,
		"completed_at":   time.Now(),
	}).Error
}

// DecodeResult unmarshals the stored jsonb payload into the report model
func (r *reportRepository) DecodeResult(rep *models.Report) (*report.AnalysisResult, error) {
	if len(rep.Result) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var result report.AnalysisResult
	if err := json.Unmarshal(rep.Result, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
