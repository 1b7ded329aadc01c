package llm

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// Gemini completes prompts with Google's Gemini API. The client is created
// on first use so a missing key fails the call, not startup.
type Gemini struct {
	cfg   genai.ClientConfig
	model string

	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewGemini configures the provider. baseURL overrides the API host and is
// only needed when talking to a proxy.
func NewGemini(apiKey, baseURL, model string) *Gemini {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	cc := genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	return &Gemini{cfg: cc, model: model}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		cc := g.cfg
		g.client, g.clientErr = genai.NewClient(context.WithoutCancel(ctx), &cc)
		if g.clientErr != nil {
			g.clientErr = fmt.Errorf("failed to create Gemini client: %w", g.clientErr)
		}
	})
	return g.client, g.clientErr
}

func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}

	gc := &genai.GenerateContentConfig{}
	if req.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		gc.Temperature = genai.Ptr(req.Temperature)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), gc)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrNoChoices
	}
	return resp.Text(), nil
}
