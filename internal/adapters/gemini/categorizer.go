// Package gemini suggests transaction categories by calling a Gemini publisher
// model through the Vertex AI generateContent API with an API key.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	aiplatform "google.golang.org/api/aiplatform/v1"
	"google.golang.org/api/option"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// modelPrefix addresses Google's publisher models without a project.
const modelPrefix = "publishers/google/models/"

const (
	temperature     = 0.1
	maxOutputTokens = 20
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("gemini returned no candidates")

// Config holds the settings for the Gemini client.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string // custom base URL, e.g. a local emulator; empty uses aiplatform.googleapis.com
}

// Categorizer implements portssvc.Categorizer on top of a Gemini publisher model.
type Categorizer struct {
	models *aiplatform.PublishersModelsService
	model  string
}

var _ portssvc.Categorizer = (*Categorizer)(nil)

// NewCategorizer builds a Gemini-backed categorizer. Extra client options are
// appended after the ones derived from cfg.
func NewCategorizer(ctx context.Context, cfg Config, extra ...option.ClientOption) (*Categorizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	opts = append(opts, extra...)

	svc, err := aiplatform.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Gemini service: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Categorizer{models: aiplatform.NewPublishersModelsService(svc), model: model}, nil
}

func buildPrompt(description string) string {
	return fmt.Sprintf(
		"Categorize the transaction description %q into exactly one of these categories: %s.\n"+
			"Answer with the category name only.\n\nCategory:",
		description, strings.Join(domain.TransactionCategories, ", "))
}

// Categorize asks the model for a category. Answers outside the allow-list
// come back as domain.OtherCategory.
func (c *Categorizer) Categorize(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.OtherCategory, nil
	}

	req := &aiplatform.GoogleCloudAiplatformV1GenerateContentRequest{
		Contents: []*aiplatform.GoogleCloudAiplatformV1Content{{
			Role:  "user",
			Parts: []*aiplatform.GoogleCloudAiplatformV1Part{{Text: buildPrompt(description)}},
		}},
		GenerationConfig: &aiplatform.GoogleCloudAiplatformV1GenerationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	resp, err := c.models.GenerateContent(modelPrefix+c.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gemini generateContent: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return domain.NormalizeCategory(text), nil
}

// responseText joins the parts of the first candidate.
func responseText(resp *aiplatform.GoogleCloudAiplatformV1GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
