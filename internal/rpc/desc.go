package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// serviceDesc is written by hand: every method takes and returns a
// google.protobuf.Struct, so no generated message types are needed.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OddsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Calculate", Handler: unary(CalculateMethod, OddsServer.Calculate)},
		{MethodName: "MaxFailures", Handler: unary(MaxFailuresMethod, OddsServer.MaxFailures)},
		{MethodName: "Plan", Handler: unary(PlanMethod, OddsServer.Plan)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ticketodds/v1/odds.proto",
}

type structMethod func(OddsServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(fullMethod string, call structMethod) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(OddsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(OddsServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client is a thin caller for the Odds service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func (c *Client) call(ctx context.Context, method string, in map[string]any) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Calculate(ctx context.Context, in map[string]any) (*structpb.Struct, error) {
	return c.call(ctx, CalculateMethod, in)
}

func (c *Client) MaxFailures(ctx context.Context, in map[string]any) (*structpb.Struct, error) {
	return c.call(ctx, MaxFailuresMethod, in)
}

func (c *Client) Plan(ctx context.Context, in map[string]any) (*structpb.Struct, error) {
	return c.call(ctx, PlanMethod, in)
}
