// Package insights generates cash-flow narratives and payment reminders with
// a generative language model.
package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/config"
	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("text generation is not configured, set GEMINI_API_KEY to enable it")
	ErrUpstream      = errors.New("the text generation service failed")
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini generates text with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a client for the Gemini API.
func NewGemini(ctx context.Context, c config.Gemini) (*Gemini, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: c.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: c.Model}, nil
}

// Generate sends the prompt to the model and returns the text of the answer.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrUpstream)
	}

	return text, nil
}
