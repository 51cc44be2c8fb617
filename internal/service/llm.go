package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ryank-holgate/ChronoChef/config"
	"github.com/ryank-holgate/ChronoChef/internal/logger"
	"github.com/ryank-holgate/ChronoChef/internal/types"
	"github.com/ryank-holgate/ChronoChef/internal/validate"
)

const systemPrompt = `You are a professional chef and recipe creator. Generate 1-3 unique, creative recipes based on the user's requirements.

IMPORTANT: You must respond with valid JSON in exactly this format:
{
  "recipes": [
    {
      "name": "Recipe Name",
      "description": "Brief, appetizing description (1-2 sentences)",
      "cookTime": "cooking time estimate",
      "ingredients": ["ingredient 1", "ingredient 2", "ingredient 3"],
      "instructions": ["step 1", "step 2", "step 3"]
    }
  ]
}

Guidelines:
- Create 1-3 recipes that can be made within the specified time
- Use the provided ingredients as much as possible, but you can suggest additional common pantry items
- Match the mood/style requested (comfort food should be hearty, healthy should be nutritious, etc.)
- Provide clear, step-by-step instructions
- Make sure each recipe is unique and different from the others
- Keep ingredient lists practical and not overly long
- Instructions should be clear and easy to follow`

// GeminiService is the generation proxy. It is constructed explicitly and
// passed where needed; there is no package-level client.
type GeminiService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewGeminiService creates a GeminiService. A nil client gets a default with
// a 60 second timeout; callers inject their own to substitute a fake.
func NewGeminiService(cfg *config.Config, client *http.Client) *GeminiService {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &GeminiService{
		apiKey: cfg.GeminiAPIKey,
		apiURL: strings.TrimRight(cfg.GeminiAPIURL, "/"),
		model:  cfg.GeminiModel,
		client: client,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiSchema struct {
	Type       string                   `json:"type"`
	Properties map[string]*geminiSchema `json:"properties,omitempty"`
	Items      *geminiSchema            `json:"items,omitempty"`
	Required   []string                 `json:"required,omitempty"`
	MinItems   int                      `json:"minItems,omitempty"`
	MaxItems   int                      `json:"maxItems,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType"`
	ResponseSchema   *geminiSchema `json:"responseSchema"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// recipeResponseSchema constrains decoding to the recipes wrapper shape
func recipeResponseSchema() *geminiSchema {
	stringArray := &geminiSchema{Type: "array", Items: &geminiSchema{Type: "string"}}
	recipe := &geminiSchema{
		Type: "object",
		Properties: map[string]*geminiSchema{
			"name":         {Type: "string"},
			"description":  {Type: "string"},
			"cookTime":     {Type: "string"},
			"ingredients":  stringArray,
			"instructions": stringArray,
		},
		Required: []string{"name", "description", "cookTime", "ingredients", "instructions"},
	}
	return &geminiSchema{
		Type: "object",
		Properties: map[string]*geminiSchema{
			"recipes": {Type: "array", Items: recipe, MinItems: 1, MaxItems: 3},
		},
		Required: []string{"recipes"},
	}
}

// GenerateRecipes makes a single outbound call to the model and returns its
// validated output. No retries, no caching, no fallback recipe source.
func (s *GeminiService) GenerateRecipes(ctx context.Context, req *types.GenerationRequest) (*types.RecipeResponse, error) {
	if s.apiKey == "" {
		return nil, types.ErrServiceUnavailable
	}

	userPrompt := fmt.Sprintf(
		"Please create personalized recipes for someone who has %s to cook, has these ingredients: %s, and is in the mood for: %s",
		req.CookingTime, req.Ingredients, req.Mood,
	)

	body := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userPrompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   recipeResponseSchema(),
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.apiURL, s.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", types.ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("gemini request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return nil, fmt.Errorf("%w: status %d", types.ErrUpstream, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUpstreamFormat, err)
	}

	text := candidateText(&parsed)
	if text == "" {
		return nil, fmt.Errorf("%w: empty model response", types.ErrUpstreamFormat)
	}

	var recipes types.RecipeResponse
	if err := json.Unmarshal([]byte(text), &recipes); err != nil {
		logger.Error("gemini returned non-JSON content", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", types.ErrUpstreamFormat, err)
	}

	if err := validate.RecipeResponse(&recipes); err != nil {
		logger.Error("gemini response failed schema validation", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", types.ErrUpstreamFormat, err)
	}

	return &recipes, nil
}

func candidateText(resp *geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
