package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/polytone/polytone-go/internal/validate"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

var _ types.QueryServer = (*queryServer)(nil)

type queryServer struct {
	Keeper
}

// NewQueryServer returns an implementation of the voice QueryServer for the provided Keeper.
func NewQueryServer(k Keeper) types.QueryServer {
	return &queryServer{Keeper: k}
}

// Params implements the Query/Params gRPC method
func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

// ComputeBudget implements the Query/ComputeBudget gRPC method
func (q queryServer) ComputeBudget(ctx context.Context, _ *types.QueryComputeBudgetRequest) (*types.QueryComputeBudgetResponse, error) {
	params := q.GetParams(ctx)
	return &types.QueryComputeBudgetResponse{
		BlockMaxGas:   params.BlockMaxGas,
		AckGasReserve: polytonetypes.AckGasReserve,
		PacketGas:     params.ComputeBudget(),
	}, nil
}

// ProxyAddress implements the Query/ProxyAddress gRPC method. The address of a sender without a
// proxy is computed, not created.
func (q queryServer) ProxyAddress(ctx context.Context, req *types.QueryProxyAddressRequest) (*types.QueryProxyAddressResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.ProxyRequest(req.ConnectionID, req.CounterpartyPortID, req.Sender); err != nil {
		return nil, err
	}

	proxy, directive, err := q.ResolveOrProvision(ctx, req.ConnectionID, req.CounterpartyPortID, req.Sender)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryProxyAddressResponse{
		Address:     proxy.String(),
		Provisioned: directive == nil,
	}, nil
}
