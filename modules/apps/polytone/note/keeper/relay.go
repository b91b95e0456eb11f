package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/internal/telemetry"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/internal/events"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// sendRequest records the request in the ledger and sends it over the active channel. It returns
// the ledger sequence of the request.
func (k Keeper) sendRequest(ctx sdk.Context, data polytonetypes.PacketData, callback *types.CallbackRequest, timeoutSeconds uint64) (uint64, error) {
	channelID, found := k.GetActiveChannel(ctx)
	if !found {
		return 0, types.ErrNoActiveChannel
	}

	timeout, err := types.Timeout(timeoutSeconds)
	if err != nil {
		return 0, err
	}

	if err := data.ValidateBasic(); err != nil {
		return 0, err
	}

	kind, err := data.Kind()
	if err != nil {
		return 0, err
	}

	seq, err := k.OnSend(ctx, data.Sender, kind, callback)
	if err != nil {
		return 0, err
	}

	timeoutTimestamp := uint64(ctx.BlockTime().Add(timeout).UnixNano())
	packetSeq, err := k.ics4Wrapper.SendPacket(ctx, types.PortID, channelID, clienttypes.ZeroHeight(), timeoutTimestamp, data.GetBytes())
	if err != nil {
		return 0, errorsmod.Wrapf(err, "failed to send %s request on channel %s", kind, channelID)
	}

	if callback != nil {
		if err := k.BindPacket(ctx, channelID, packetSeq, seq); err != nil {
			return 0, err
		}
	}

	k.Logger(ctx).Info("sent polytone request", "sequence", seq, "packet_sequence", packetSeq, "kind", kind.String(), "initiator", data.Sender)
	events.EmitSendEvent(ctx, data.Sender, channelID, seq, packetSeq, kind)
	telemetry.ReportSend(types.ModuleName, types.PortID, channelID, kind, data.Len())

	return seq, nil
}

// OnAcknowledgementPacket resolves the pending callback of an acknowledged packet and delivers it.
func (k Keeper) OnAcknowledgementPacket(ctx sdk.Context, packet channeltypes.Packet, acknowledgement []byte) error {
	delivery, err := k.OnAck(ctx, packet.SourceChannel, packet.Sequence, acknowledgement)
	if err != nil {
		return err
	}

	k.resolve(ctx, packet, types.AttributeValueResultAck, delivery)
	return nil
}

// OnTimeoutPacket resolves the pending callback of a timed out packet and delivers it.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	delivery, err := k.OnTimeout(ctx, packet.SourceChannel, packet.Sequence)
	if err != nil {
		return err
	}

	k.resolve(ctx, packet, types.AttributeValueResultTimeout, delivery)
	return nil
}

func (k Keeper) resolve(ctx sdk.Context, packet channeltypes.Packet, result string, delivery *types.CallbackDelivery) {
	if delivery == nil {
		k.Logger(ctx).Debug("no pending callback for packet", "channel_id", packet.SourceChannel, "packet_sequence", packet.Sequence, "result", result)
		return
	}

	events.EmitCallbackEvent(ctx, packet.SourceChannel, packet.Sequence, result, delivery)
	telemetry.ReportCallback(types.ModuleName, packet.SourcePort, packet.SourceChannel, result, delivery.Message.Result)

	k.deliverCallback(ctx, packet, delivery)
}
