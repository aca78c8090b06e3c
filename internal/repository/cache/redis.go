// internal/repository/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/protouch/protouch/internal/report"
)

const (
	// Cache key prefixes
	KeyPrefixResult    = "result:"
	KeyPrefixGuideline = "guideline:"

	// Default TTL for cached items
	DefaultTTL = 1 * time.Hour
)

// Repository represents a Redis cache repository for finished reports and
// their rendered guideline documents
type Repository struct {
	client *redis.Client
	ctx    context.Context
}

// NewRepository creates a new Redis cache repository
func NewRepository(client *redis.Client) *Repository {
	return &Repository{
		client: client,
		ctx:    context.Background(),
	}
}

// CacheResult stores a finished analysis result
func (r *Repository) CacheResult(id uuid.UUID, result *report.AnalysisResult) error {
	if r.client == nil {
		return nil // Skip if Redis is not available
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	return r.client.Set(r.ctx, KeyPrefixResult+id.String(), data, DefaultTTL).Err()
}

// GetResult retrieves a cached analysis result; a miss returns nil, nil
func (r *Repository) GetResult(id uuid.UUID) (*report.AnalysisResult, error) {
	if r.client == nil {
		return nil, fmt.Errorf("redis client not available")
	}

	data, err := r.client.Get(r.ctx, KeyPrefixResult+id.String()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss, not an error
		}
		return nil, err
	}

	var result report.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CacheGuideline stores a rendered guideline document. The document is a
// pure function of the result, so caching by report ID is safe.
func (r *Repository) CacheGuideline(id uuid.UUID, doc string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(r.ctx, KeyPrefixGuideline+id.String(), doc, DefaultTTL).Err()
}

// GetGuideline retrieves a cached guideline document; a miss returns ""
func (r *Repository) GetGuideline(id uuid.UUID) (string, error) {
	if r.client == nil {
		return "", fmt.Errorf("redis client not available")
	}

	doc, err := r.client.Get(r.ctx, KeyPrefixGuideline+id.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return doc, nil
}

// InvalidateResult drops the cached entries for a report
func (r *Repository) InvalidateResult(id uuid.UUID) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(r.ctx, KeyPrefixResult+id.String(), KeyPrefixGuideline+id.String()).Err()
}
