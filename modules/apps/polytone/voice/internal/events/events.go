package events

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

// EmitOnRecvPacketEvent emits an event describing how a received packet was handled.
func EmitOnRecvPacketEvent(ctx sdk.Context, channelID string, sequence uint64, sender, proxy string, kind polytonetypes.RequestKind, callback polytonetypes.Callback) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
		sdk.NewAttribute(types.AttributeKeySender, sender),
		sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(callback.Success())),
	}
	if proxy != "" {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyProxy, proxy))
	}
	if callback.IsFatal() {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyAckError, *callback.FatalError))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			attributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitChannelOpenEvent emits an event recording the connection a channel was opened on.
func EmitChannelOpenEvent(ctx sdk.Context, channelID, connectionID, counterpartyPortID string) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeChannelOpen,
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			sdk.NewAttribute(types.AttributeKeyCounterpartyPortID, counterpartyPortID),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}
