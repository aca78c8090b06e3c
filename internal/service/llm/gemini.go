// internal/service/llm/gemini.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/protouch/protouch/internal/report"
)

// Client wraps the Gemini API for report enrichment. A nil *Client is a
// valid no-op client so analyses run unchanged when no API key is set.
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a Gemini client. Returns (nil, nil) when apiKey is
// empty: enrichment is optional and absence of a key is not an error.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &Client{client: client, modelName: modelName}, nil
}

// designSuggestion is the JSON shape we ask the model to return per issue
type designSuggestion struct {
	IssueTitle  string `json:"issueTitle"`
	Description string `json:"description"`
}

// SuggestImprovedDesigns asks the model for a short design direction per
// issue. Failures are returned to the caller, which logs and proceeds
// without enrichment.
func (c *Client) SuggestImprovedDesigns(ctx context.Context, siteName string, issues []report.Issue) ([]report.ImprovedDesign, error) {
	if c == nil || len(issues) == 0 {
		return nil, nil
	}

	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(2048)

	var sb strings.Builder
	for i, issue := range issues {
		fmt.Fprintf(&sb, "%d. [%s/%s] %s: %s\n", i+1, issue.Category, issue.Severity, issue.Title, issue.Description)
	}

	prompt := fmt.Sprintf(`당신은 UI/UX 디자인 전문가입니다. "%s" 사이트 분석에서 발견된 문제 목록입니다:

%s
각 문제에 대해 한 문장짜리 개선 디자인 방향을 제안하세요.

Response format: JSON array of objects with fields 'issueTitle', 'description'.
Do not include any explanations, just return the JSON array.`, siteName, sb.String())

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini api: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, errors.New("no content generated")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			text += string(textPart)
		}
	}
	text = cleanCodeBlocks(text)

	var suggestions []designSuggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	designs := make([]report.ImprovedDesign, 0, len(suggestions))
	for i, s := range suggestions {
		if i >= len(issues) {
			break
		}
		title := s.IssueTitle
		if title == "" {
			title = issues[i].Title
		}
		designs = append(designs, report.ImprovedDesign{
			IssueID:     i + 1,
			IssueTitle:  title,
			Description: s.Description,
		})
	}
	return designs, nil
}

// Close closes the underlying API client
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// cleanCodeBlocks strips markdown code fences the model sometimes wraps
// JSON in despite instructions
func cleanCodeBlocks(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
