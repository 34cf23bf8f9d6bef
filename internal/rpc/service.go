package rpc

import (
	"context"
	"fmt"
	"math"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/ticket-odds/internal/economy"
)

const ServiceName = "ticketodds.v1.Odds"

// Full method names, as a client passes them to grpc.ClientConn.Invoke.
const (
	CalculateMethod   = "/" + ServiceName + "/Calculate"
	MaxFailuresMethod = "/" + ServiceName + "/MaxFailures"
	PlanMethod        = "/" + ServiceName + "/Plan"
)

// OddsServer is the server API for the Odds service. Requests and responses are
// google.protobuf.Struct values carrying the same fields as the HTTP API.
type OddsServer interface {
	Calculate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MaxFailures(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Plan(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// EngineSource hands out the engine to use for one call.
type EngineSource interface {
	Engine() *economy.Engine
}

// Server implements OddsServer on top of an EngineSource.
type Server struct {
	src EngineSource
}

func NewServer(src EngineSource) *Server { return &Server{src: src} }

// Register attaches the Odds service to s.
func Register(s grpc.ServiceRegistrar, srv OddsServer) {
	s.RegisterService(&serviceDesc, srv)
}

func (s *Server) Calculate(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	level, err := intField(in, "current_level", 1)
	if err != nil {
		return nil, err
	}
	tickets, err := intField(in, "remaining_tickets", 0)
	if err != nil {
		return nil, err
	}
	failures, err := intField(in, "total_failures", 0)
	if err != nil {
		return nil, err
	}
	st := economy.PlayerState{
		CurrentLevel:     level,
		RemainingTickets: tickets,
		TotalFailures:    failures,
		IsExpressStart:   boolField(in, "is_express_start"),
	}

	e := s.src.Engine()
	res := e.Calculate(st)
	out := map[string]any{
		"current_probability":      res.CurrentProbability,
		"restart_probability":      res.RestartProbability,
		"is_safe_level":            res.IsSafeLevel,
		"next_failure_cost":        res.NextFailureCost,
		"expected_additional_cost": res.ExpectedAdditionalCost,
	}
	if boolField(in, "include_summary") {
		sum := e.Summary(st)
		out["cost_summary"] = map[string]any{
			"mean": sum.Mean, "var": sum.Var, "std_dev": sum.StdDev,
			"p50": sum.P50, "p90": sum.P90, "p99": sum.P99,
		}
	}
	return structpb.NewStruct(out)
}

func (s *Server) MaxFailures(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	tickets, err := intField(in, "regular_tickets", 0)
	if err != nil {
		return nil, err
	}
	n := s.src.Engine().MaxFailuresCovered(tickets, boolField(in, "is_express_start"))
	return structpb.NewStruct(map[string]any{"max_failures_covered": n})
}

func (s *Server) Plan(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	target := 1.0
	if v, ok := in.GetFields()["target_probability"]; ok {
		n, isNum := v.GetKind().(*structpb.Value_NumberValue)
		if !isNum {
			return nil, status.Error(codes.InvalidArgument, "target_probability must be a number")
		}
		target = n.NumberValue
	}
	plan := s.src.Engine().TicketsForTarget(target, boolField(in, "is_express_start"))
	return structpb.NewStruct(map[string]any{
		"tickets_required": plan.TicketsRequired,
		"failures_covered": plan.FailuresCovered,
		"risky_trials":     plan.RiskyTrials,
		"probability":      plan.Probability,
	})
}

// intField reads a whole number; a missing field yields def.
func intField(in *structpb.Struct, key string, def int) (int, error) {
	v, ok := in.GetFields()[key]
	if !ok {
		return def, nil
	}
	n, isNum := v.GetKind().(*structpb.Value_NumberValue)
	if !isNum || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be an integer", key))
	}
	return int(n.NumberValue), nil
}

func boolField(in *structpb.Struct, key string) bool {
	return in.GetFields()[key].GetBoolValue()
}
