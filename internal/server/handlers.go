package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"insight-backend/internal/types"
)

const (
	msgGenerationFailed       = "AI generation failed"
	msgReportGenerationFailed = "AI report generation failed"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Backend is running!")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "provider": s.provider})
}

func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	var req types.StrategyRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, "strategy", msgGenerationFailed, err)
		return
	}
	s.log.Info("strategy request",
		zap.String("domain", req.Domain.String()),
		zap.String("companyType", req.CompanyType.String()),
		zap.String("goal", req.Goal.String()),
		zap.Int("csvBytes", len(req.CSVData)),
	)

	strategies, err := s.insights.Strategies(r.Context(), req)
	if err != nil {
		s.fail(w, r, "strategy", msgGenerationFailed, err)
		return
	}
	s.writeJSON(w, http.StatusOK, types.StrategyResponse{Success: true, Strategies: strategies})
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	var req types.RiskRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, "risk", msgGenerationFailed, err)
		return
	}
	s.log.Info("risk request",
		zap.String("riskType", req.RiskType.String()),
		zap.String("riskScenario", req.RiskScenario.String()),
	)

	risks, mitigations, err := s.insights.Risks(r.Context(), req)
	if err != nil {
		s.fail(w, r, "risk", msgGenerationFailed, err)
		return
	}
	s.writeJSON(w, http.StatusOK, types.RiskResponse{Success: true, Risks: risks, Mitigations: mitigations})
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	var req types.MarketRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, "market", msgGenerationFailed, err)
		return
	}
	s.log.Info("market research request",
		zap.String("industry", req.Industry.String()),
		zap.String("product", req.Product.String()),
		zap.String("query", req.Query.String()),
	)

	insights, competitors, err := s.insights.Market(r.Context(), req)
	if err != nil {
		s.fail(w, r, "market", msgGenerationFailed, err)
		return
	}
	s.writeJSON(w, http.StatusOK, types.MarketResponse{Success: true, Insights: insights, Competitors: competitors})
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	var req types.ReportsRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, "reports", msgReportGenerationFailed, err)
		return
	}
	s.log.Info("reports request",
		zap.String("email", req.Email.String()),
		zap.Int("activities", len(req.Activities)),
	)

	reports, err := s.insights.Reports(r.Context(), req)
	if err != nil {
		s.fail(w, r, "reports", msgReportGenerationFailed, err)
		return
	}
	s.writeJSON(w, http.StatusOK, types.ReportsResponse{Success: true, Reports: reports})
}

// fail logs err and answers with the uniform 500 body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, route, msg string, err error) {
	s.log.Error("generation failed",
		zap.String("route", route),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	s.writeError(w, http.StatusInternalServerError, msg)
}

// decodeBody reads a single JSON value into v. An empty body, null or a
// top-level array leaves v zero; anything after the value is rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	if b[0] == '[' {
		if !json.Valid(b) {
			return errors.New("invalid JSON body")
		}
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
