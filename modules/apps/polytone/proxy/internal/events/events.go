package events

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

// EmitProvisionAgentEvent emits an event signalling that an agent account was provisioned.
func EmitProvisionAgentEvent(ctx sdk.Context, agent sdk.AccAddress, info types.Agent, adopted bool) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeProvisionAgent,
			sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
			sdk.NewAttribute(types.AttributeKeyInstantiator, info.Instantiator),
			sdk.NewAttribute(types.AttributeKeyLabel, info.Label),
			sdk.NewAttribute(types.AttributeKeyAdopted, strconv.FormatBool(adopted)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitExecuteBatchEvent emits an event carrying the aggregate outcome of a batch.
func EmitExecuteBatchEvent(ctx sdk.Context, agent sdk.AccAddress, size int, result types.BatchResult) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyAgent, agent.String()),
		sdk.NewAttribute(types.AttributeKeyBatchSize, strconv.Itoa(size)),
		sdk.NewAttribute(types.AttributeKeySuccess, strconv.FormatBool(result.Success())),
	}
	if result.Failure != nil {
		attributes = append(attributes,
			sdk.NewAttribute(types.AttributeKeyFailedIndex, strconv.FormatUint(result.Failure.MessageIndex, 10)),
			sdk.NewAttribute(types.AttributeKeyError, result.Failure.Error),
		)
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeExecuteBatch,
			attributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}
