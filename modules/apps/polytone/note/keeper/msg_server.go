package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

var _ types.MsgServer = (*msgServer)(nil)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the note MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Execute defines an rpc handler for MsgExecute
func (m msgServer) Execute(goCtx context.Context, msg *types.MsgExecute) (*types.MsgExecuteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	initiator, err := m.authorize(ctx, msg.Sender, msg.OnBehalfOf, msg.Callback)
	if err != nil {
		return nil, err
	}

	data := polytonetypes.NewExecutePacketData(initiator, msg.Msgs)
	seq, err := m.sendRequest(ctx, data, msg.Callback, msg.TimeoutSeconds)
	if err != nil {
		return nil, err
	}

	return &types.MsgExecuteResponse{Sequence: seq}, nil
}

// Query defines an rpc handler for MsgQuery
func (m msgServer) Query(goCtx context.Context, msg *types.MsgQuery) (*types.MsgQueryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	initiator, err := m.authorize(ctx, msg.Sender, msg.OnBehalfOf, &msg.Callback)
	if err != nil {
		return nil, err
	}

	data := polytonetypes.NewQueryPacketData(initiator, msg.Msgs)
	seq, err := m.sendRequest(ctx, data, &msg.Callback, msg.TimeoutSeconds)
	if err != nil {
		return nil, err
	}

	return &types.MsgQueryResponse{Sequence: seq}, nil
}

// authorize validates the sender and callback receiver addresses and returns the initiator of the
// request as decided by the controller gate.
func (m msgServer) authorize(ctx sdk.Context, sender, onBehalfOf string, callback *types.CallbackRequest) (string, error) {
	if _, err := m.addressCodec.StringToBytes(sender); err != nil {
		return "", errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "invalid sender address %s: %s", sender, err)
	}

	if callback != nil {
		if _, err := m.addressCodec.StringToBytes(callback.Receiver); err != nil {
			return "", errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "invalid callback receiver %s: %s", callback.Receiver, err)
		}
	}

	controller, err := m.GetController(ctx)
	if err != nil {
		return "", err
	}

	return polytonetypes.Authorize(controller, sender, onBehalfOf)
}
