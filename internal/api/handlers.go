package api

import (
	"net/http"

	"github.com/xtding233/ticket-odds/internal/economy"
)

type calculateReq struct {
	CurrentLevel     int  `json:"current_level"`
	RemainingTickets int  `json:"remaining_tickets"`
	TotalFailures    int  `json:"total_failures"`
	IsExpressStart   bool `json:"is_express_start"`
	IncludeSummary   bool `json:"include_summary"`
}

type calculateResp struct {
	economy.Result
	CostSummary *economy.Stats `json:"cost_summary,omitempty"`
	Err         string         `json:"error,omitempty"`
}

type maxFailuresReq struct {
	RegularTickets int  `json:"regular_tickets"`
	IsExpressStart bool `json:"is_express_start"`
}

type maxFailuresResp struct {
	MaxFailuresCovered int    `json:"max_failures_covered"`
	Err                string `json:"error,omitempty"`
}

type planReq struct {
	TargetProbability float64 `json:"target_probability"`
	IsExpressStart    bool    `json:"is_express_start"`
}

type planResp struct {
	economy.Plan
	Err string `json:"error,omitempty"`
}

type healthResp struct {
	Status  string `json:"status"`
	Profile string `json:"profile,omitempty"`
	Version string `json:"version,omitempty"`
}

// handleCalculate always answers with a complete result body; on bad input the numbers are zero.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	req := calculateReq{CurrentLevel: 1}
	if err := decode(w, r, &req); err != nil {
		s.log.Warn("Decode calculate request failed", "err", err)
		writeJSON(w, http.StatusBadRequest, calculateResp{Err: "invalid request body: " + err.Error()})
		return
	}

	e := s.src.Engine()
	st := economy.PlayerState{
		CurrentLevel:     req.CurrentLevel,
		RemainingTickets: req.RemainingTickets,
		TotalFailures:    req.TotalFailures,
		IsExpressStart:   req.IsExpressStart,
	}
	resp := calculateResp{Result: e.Calculate(st)}
	if req.IncludeSummary {
		sum := e.Summary(st)
		resp.CostSummary = &sum
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMaxFailures(w http.ResponseWriter, r *http.Request) {
	var req maxFailuresReq
	if err := decode(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, maxFailuresResp{Err: "invalid request body: " + err.Error()})
		return
	}
	n := s.src.Engine().MaxFailuresCovered(req.RegularTickets, req.IsExpressStart)
	writeJSON(w, http.StatusOK, maxFailuresResp{MaxFailuresCovered: n})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	req := planReq{TargetProbability: 1}
	if err := decode(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, planResp{Err: "invalid request body: " + err.Error()})
		return
	}
	plan := s.src.Engine().TicketsForTarget(req.TargetProbability, req.IsExpressStart)
	writeJSON(w, http.StatusOK, planResp{Plan: plan})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.src.Engine().Config())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if s.src.Engine() == nil {
		status, code = "no engine", http.StatusServiceUnavailable
	}
	writeJSON(w, code, healthResp{Status: status, Profile: s.src.Profile(), Version: s.src.Version()})
}
