package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

var _ types.QueryServer = (*queryServer)(nil)

type queryServer struct {
	Keeper
}

// NewQueryServer returns an implementation of the proxy QueryServer for the provided Keeper.
func NewQueryServer(k Keeper) types.QueryServer {
	return &queryServer{Keeper: k}
}

// Agent implements the Query/Agent gRPC method
func (q queryServer) Agent(ctx context.Context, req *types.QueryAgentRequest) (*types.QueryAgentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	agent, err := q.Agents.Get(ctx, addr)
	if err != nil {
		if errorsmod.IsOf(err, collections.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "agent %s not found", req.Address)
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAgentResponse{Agent: agent}, nil
}

// Collector implements the Query/Collector gRPC method
func (q queryServer) Collector(ctx context.Context, req *types.QueryCollectorRequest) (*types.QueryCollectorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	collector, err := q.Collectors.Get(ctx, addr)
	if err != nil {
		if errorsmod.IsOf(err, collections.ErrNotFound) {
			return &types.QueryCollectorResponse{}, nil
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryCollectorResponse{Collector: &collector, Pending: collector.Pending()}, nil
}

// Params implements the Query/Params gRPC method
func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}
