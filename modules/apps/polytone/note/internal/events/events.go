package events

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// EmitSendEvent emits an event describing a request sent to the paired voice.
func EmitSendEvent(ctx sdk.Context, initiator, channelID string, sequence, packetSequence uint64, kind polytonetypes.RequestKind) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSend,
			sdk.NewAttribute(types.AttributeKeyInitiator, initiator),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
			sdk.NewAttribute(types.AttributeKeyPacketSequence, strconv.FormatUint(packetSequence, 10)),
			sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitCallbackEvent emits an event for a pending request resolved by an acknowledgement or a timeout.
func EmitCallbackEvent(ctx sdk.Context, channelID string, packetSequence uint64, result string, delivery *types.CallbackDelivery) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
		sdk.NewAttribute(types.AttributeKeyPacketSequence, strconv.FormatUint(packetSequence, 10)),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(delivery.Sequence, 10)),
		sdk.NewAttribute(types.AttributeKeyInitiator, delivery.Message.Initiator),
		sdk.NewAttribute(types.AttributeKeyResult, result),
		sdk.NewAttribute(types.AttributeKeySuccess, strconv.FormatBool(delivery.Message.Result.Success())),
	}
	if executedBy, ok := delivery.Message.Result.ExecutedBy(); ok {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyExecutedBy, executedBy))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCallback,
			attributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitCallbackDeliveryEvent emits an event recording whether the receiver accepted a callback.
func EmitCallbackDeliveryEvent(ctx sdk.Context, delivery *types.CallbackDelivery, err error) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(delivery.Sequence, 10)),
		sdk.NewAttribute(types.AttributeKeyReceiver, delivery.Receiver),
		sdk.NewAttribute(types.AttributeKeySuccess, strconv.FormatBool(err == nil)),
	}
	if err != nil {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyDeliveryError, polytonetypes.RedactError(err)))
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCallbackDelivery,
			attributes...,
		),
	)
}

// EmitChannelConnectEvent emits an event recording the pair and channel a note connected on.
func EmitChannelConnectEvent(ctx sdk.Context, channelID string, pair types.Pair) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeChannelConnect,
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeyConnectionID, pair.ConnectionID),
			sdk.NewAttribute(types.AttributeKeyRemotePort, pair.RemotePort),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}
