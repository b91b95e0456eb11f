package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/polytone/polytone-go/internal/validate"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
)

var _ types.QueryServer = (*queryServer)(nil)

type queryServer struct {
	Keeper
}

// NewQueryServer returns an implementation of the note QueryServer for the provided Keeper.
func NewQueryServer(k Keeper) types.QueryServer {
	return &queryServer{Keeper: k}
}

// ActiveChannel implements the Query/ActiveChannel gRPC method
func (q queryServer) ActiveChannel(ctx context.Context, _ *types.QueryActiveChannelRequest) (*types.QueryActiveChannelResponse, error) {
	channelID, found := q.GetActiveChannel(ctx)
	if !found {
		return &types.QueryActiveChannelResponse{}, nil
	}

	return &types.QueryActiveChannelResponse{ChannelID: channelID}, nil
}

// Pair implements the Query/Pair gRPC method
func (q queryServer) Pair(ctx context.Context, _ *types.QueryPairRequest) (*types.QueryPairResponse, error) {
	pair, found, err := q.GetPair(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	if !found {
		return &types.QueryPairResponse{}, nil
	}

	return &types.QueryPairResponse{Pair: &pair}, nil
}

// Controller implements the Query/Controller gRPC method
func (q queryServer) Controller(ctx context.Context, _ *types.QueryControllerRequest) (*types.QueryControllerResponse, error) {
	controller, err := q.GetController(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryControllerResponse{Controller: controller}, nil
}

// RemoteAddress implements the Query/RemoteAddress gRPC method
func (q queryServer) RemoteAddress(ctx context.Context, req *types.QueryRemoteAddressRequest) (*types.QueryRemoteAddressResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	address, err := q.LocalToRemote.Get(ctx, req.Initiator)
	if errors.Is(err, collections.ErrNotFound) {
		return &types.QueryRemoteAddressResponse{}, nil
	} else if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryRemoteAddressResponse{Address: address}, nil
}

// PendingCallback implements the Query/PendingCallback gRPC method
func (q queryServer) PendingCallback(ctx context.Context, req *types.QueryPendingCallbackRequest) (*types.QueryPendingCallbackResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.GRPCRequest(req.PortID, req.ChannelID); err != nil {
		return nil, err
	}

	seq, err := q.PacketSequences.Get(ctx, collections.Join(req.ChannelID, req.PacketSequence))
	if errors.Is(err, collections.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "no pending callback for packet %s/%s/%d", req.PortID, req.ChannelID, req.PacketSequence)
	} else if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	pending, err := q.PendingCallbacks.Get(ctx, seq)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "no pending callback for sequence %d", seq)
	} else if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryPendingCallbackResponse{Sequence: seq, Callback: pending}, nil
}
