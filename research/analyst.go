// Package research generates the morning trading brief: it turns the current
// portfolio valuation into a structured prompt and asks a Gemini analyst
// persona for a markdown brief ending in an actionable 9AM plan.
package research

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Model is the Gemini model the analyst runs on.
const Model = "gemini-2.5-pro"

// systemInstruction frames every exchange with the analyst.
const systemInstruction = "You are an expert quantitative trading analyst with deep knowledge of AI infrastructure stocks, macroeconomics, and portfolio risk management."

// Analyst holds a Gemini chat client configured for brief generation. The
// low temperature keeps the plan numbers stable between runs.
type Analyst struct {
	ModelName string
	client    *genai.Client
}

// NewAnalyst initializes the Gemini client. The client reads its API key
// from the GEMINI_API_KEY environment variable.
func NewAnalyst(ctx context.Context) (*Analyst, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	return &Analyst{ModelName: Model, client: client}, nil
}

// Generate sends the brief prompt and returns the analyst's markdown.
func (a *Analyst) Generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0.3),
		MaxOutputTokens:   2000,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := a.client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return "", err
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
