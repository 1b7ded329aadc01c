package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"insight-backend/internal/llm"
	"insight-backend/internal/prompts"
	"insight-backend/internal/types"
)

// csvSampleLimit is how many characters of uploaded CSV reach the prompt.
const csvSampleLimit = 300

// Service renders the per-route prompts, calls the completer and reshapes
// the reply. It holds no mutable state.
type Service struct {
	completer llm.Completer
	catalog   *prompts.Catalog
	timeout   time.Duration
	log       *zap.Logger
}

// NewService wires a completer and a prompt catalog. A zero timeout leaves
// the request context as the only deadline.
func NewService(completer llm.Completer, catalog *prompts.Catalog, timeout time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{completer: completer, catalog: catalog, timeout: timeout, log: log}
}

func (s *Service) Strategies(ctx context.Context, req types.StrategyRequest) ([]string, error) {
	data := struct {
		Domain, CompanyType, Goal, CustomReason, CSVData string
	}{
		Domain:       orDefault(req.Domain, "Not specified"),
		CompanyType:  orDefault(req.CompanyType, "Not specified"),
		Goal:         orDefault(req.Goal, "Not specified"),
		CustomReason: orDefault(req.CustomReason, "None"),
		CSVData:      orDefault(truncate(req.CSVData, csvSampleLimit), "No CSV provided"),
	}
	text, err := s.complete(ctx, prompts.Strategy, data)
	if err != nil {
		return nil, err
	}
	return Lines(text), nil
}

func (s *Service) Risks(ctx context.Context, req types.RiskRequest) (risks, mitigations []string, err error) {
	data := struct {
		RiskType, RiskScenario, RiskDescription string
	}{
		RiskType:        orDefault(req.RiskType, "General"),
		RiskScenario:    orDefault(req.RiskScenario, "Not specified"),
		RiskDescription: orDefault(req.RiskDescription, "No description provided"),
	}
	text, err := s.complete(ctx, prompts.Risk, data)
	if err != nil {
		return nil, nil, err
	}
	risks, mitigations = SplitPair(text)
	return risks, mitigations, nil
}

func (s *Service) Market(ctx context.Context, req types.MarketRequest) (insights, competitors []string, err error) {
	data := struct {
		Industry, Product, Query string
	}{
		Industry: orDefault(req.Industry, "General"),
		Product:  orDefault(req.Product, "Not specified"),
		Query:    orDefault(req.Query, "General market research"),
	}
	text, err := s.complete(ctx, prompts.Market, data)
	if err != nil {
		return nil, nil, err
	}
	insights, competitors = SplitPair(text)
	return insights, competitors, nil
}

func (s *Service) Reports(ctx context.Context, req types.ReportsRequest) ([]types.Report, error) {
	data := struct {
		Email, ActivitySummary string
	}{
		Email:           orDefault(req.Email, "Not specified"),
		ActivitySummary: summarizeActivities(req.Activities),
	}
	text, err := s.complete(ctx, prompts.Reports, data)
	if err != nil {
		return nil, err
	}
	s.log.Debug("report completion text", zap.String("text", text))
	return ParseReports(text), nil
}

func (s *Service) complete(ctx context.Context, name string, data any) (string, error) {
	p, err := s.catalog.Get(name)
	if err != nil {
		return "", err
	}
	prompt, err := p.Render(data)
	if err != nil {
		return "", fmt.Errorf("render %s prompt: %w", name, err)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.completer.Complete(ctx, llm.Request{
		System:      p.System,
		Prompt:      prompt,
		MaxTokens:   p.Style.MaxTokens,
		Temperature: p.Style.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", name, err)
	}
	s.log.Debug("completion finished",
		zap.String("prompt", name),
		zap.String("provider", s.completer.Name()),
		zap.Int("chars", len(text)),
		zap.Duration("duration", time.Since(start)),
	)
	return text, nil
}

func summarizeActivities(activities []types.Activity) string {
	if len(activities) == 0 {
		return "No previous activities recorded."
	}
	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		lines = append(lines, fmt.Sprintf("- %s (%s)", a.Description, a.Timestamp))
	}
	return strings.Join(lines, "\n")
}

func orDefault(v types.Text, def string) string {
	if v == "" {
		return def
	}
	return string(v)
}

// truncate cuts s to at most n characters.
func truncate(s types.Text, n int) types.Text {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return types.Text(r[:n])
}
