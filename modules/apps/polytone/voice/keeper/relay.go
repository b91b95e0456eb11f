package keeper

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/polytone/polytone-go/internal/collections"
	"github.com/polytone/polytone-go/modules/apps/polytone/internal/process"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

// OnRecvPacket executes the request carried by a packet and returns the acknowledgement to write.
// Execution happens in a branch of ctx bounded by the compute budget. The branch is written only if
// the request fully succeeded, any other outcome is reported inside the acknowledgement.
func (k Keeper) OnRecvPacket(ctx sdk.Context, packet channeltypes.Packet) (polytonetypes.PacketData, sdk.AccAddress, polytonetypes.Acknowledgement) {
	data, err := polytonetypes.UnmarshalPacketData(packet.GetData())
	if err != nil {
		k.Logger(ctx).Error("cannot decode packet", "sequence", packet.Sequence, "error", err.Error())
		return polytonetypes.PacketData{}, nil, polytonetypes.NewFatalAck(polytonetypes.RedactError(err))
	}

	connectionID, err := k.ChannelConnections.Get(ctx, packet.DestinationChannel)
	if err != nil {
		err = errorsmod.Wrapf(types.ErrUnknownChannel, "channel %s", packet.DestinationChannel)
		return data, nil, polytonetypes.NewFatalAck(polytonetypes.RedactError(err))
	}

	params := k.GetParams(ctx)

	var (
		ack   polytonetypes.Acknowledgement
		proxy sdk.AccAddress
	)

	descriptor := process.Describe("receive", packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	err = process.Bounded(ctx, params.ComputeBudget(), descriptor, func(cachedCtx sdk.Context) error {
		kind, err := data.Kind()
		if err != nil {
			return err
		}

		switch kind {
		case polytonetypes.RequestKindQuery:
			ack = k.executeQueries(cachedCtx, params, data.Msg.Query.Msgs)
		case polytonetypes.RequestKindExecute:
			proxy, err = k.getOrProvisionProxy(cachedCtx, connectionID, packet.SourcePort, data.Sender)
			if err != nil {
				return err
			}

			ack, err = k.executeActions(cachedCtx, proxy, data.Msg.Execute.Msgs)
			if err != nil {
				return err
			}
		default:
			return errorsmod.Wrapf(polytonetypes.ErrInvalidRequestKind, "%s", kind)
		}

		if !ack.Callback().Success() {
			return types.ErrExecutionFailed
		}
		return nil
	})

	if err != nil && !errorsmod.IsOf(err, types.ErrExecutionFailed) {
		k.Logger(ctx).Error("packet execution failed", "sequence", packet.Sequence, "sender", data.Sender, "error", err.Error())
		ack = polytonetypes.NewFatalAck(polytonetypes.RedactError(err))
		proxy = nil
	}

	return data, proxy, ack
}

// executeQueries runs every query in order and stops at the first failure.
func (k Keeper) executeQueries(ctx sdk.Context, params types.Params, reqs []polytonetypes.QueryRequest) polytonetypes.Acknowledgement {
	responses := make([][]byte, 0, len(reqs))
	for i, req := range reqs {
		if len(params.AllowQueries) != 0 && !collections.Contains(req.Path, params.AllowQueries) {
			err := errorsmod.Wrapf(types.ErrQueryNotAllowed, "%s", req.Path)
			return polytonetypes.NewQueryAck(nil, &polytonetypes.ErrorResponse{MessageIndex: uint64(i), Error: polytonetypes.RedactError(err)})
		}

		res, err := k.querier.Query(ctx, req)
		if err != nil {
			k.Logger(ctx).Info("query failed", "index", i, "path", req.Path, "error", err.Error())
			return polytonetypes.NewQueryAck(nil, &polytonetypes.ErrorResponse{MessageIndex: uint64(i), Error: polytonetypes.RedactError(err)})
		}

		responses = append(responses, res)
	}

	return polytonetypes.NewQueryAck(responses, nil)
}

// executeActions dispatches the action batch through the proxy on behalf of the voice.
func (k Keeper) executeActions(ctx sdk.Context, proxy sdk.AccAddress, actions []json.RawMessage) (polytonetypes.Acknowledgement, error) {
	result, err := k.proxyKeeper.Dispatch(ctx, k.GetModuleAddress(), proxy, actions)
	if err != nil {
		return polytonetypes.Acknowledgement{}, err
	}

	if !result.Success() {
		return polytonetypes.NewExecuteAck(nil, result.Failure), nil
	}

	return polytonetypes.NewExecuteAck(&polytonetypes.ExecutionResponse{
		ExecutedBy: proxy.String(),
		Result:     result.Results,
	}, nil), nil
}
