// Package gemini implements the provider.Provider interface over the
// official Google Gemini SDK.
package gemini

import (
	"context"

	"github.com/Cyclone1070/sidekick/internal/history"
	"github.com/Cyclone1070/sidekick/internal/provider"
	"google.golang.org/genai"
)

// GeminiProvider implements provider.Provider for Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
}

// New creates a GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// SendTurn sends the composed prompt and bounded history to Gemini and
// returns the raw response text.
func (p *GeminiProvider) SendTurn(ctx context.Context, system string, hist []history.Turn, prompt string) (string, error) {
	contents := toContents(hist, prompt)

	config := &genai.GenerateContentConfig{
		SafetySettings: defaultSafetySettings(),
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(system)},
		}
	}

	resp, err := p.client.GenerateContent(ctx, p.modelName, contents, config)
	if err != nil {
		return "", &provider.BackendError{Cause: mapAPIError(err)}
	}

	text, err := responseText(resp)
	if err != nil {
		return "", &provider.BackendError{Cause: err}
	}
	return text, nil
}

// toContents converts the history plus current prompt to Gemini contents.
func toContents(hist []history.Turn, prompt string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(hist)+1)

	for _, turn := range hist {
		if turn.Text == "" {
			continue
		}
		role := "user"
		if turn.Role == history.RoleModel {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(turn.Text)},
		})
	}

	if prompt != "" {
		contents = append(contents, &genai.Content{
			Role:  "user",
			Parts: []*genai.Part{genai.NewPartFromText(prompt)},
		})
	}

	return contents
}

// responseText extracts the concatenated text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", provider.ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", provider.ErrContentBlocked
	}
	if candidate.Content == nil {
		return "", provider.ErrEmptyResponse
	}

	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}
	return text, nil
}

// mapAPIError maps Gemini API errors to provider sentinels where a
// category exists; everything else passes through.
func mapAPIError(err error) error {
	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 401, 403:
			return provider.ErrAuthentication
		case 429:
			return provider.ErrRateLimit
		}
	}
	return err
}

// defaultSafetySettings disables blocking for all categories; the agent
// operates on the user's own workspace.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdOff},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdOff},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdOff},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdOff},
	}
}
