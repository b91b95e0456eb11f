package keeper

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/internal/process"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/internal/events"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
)

// deliverCallback hands a resolved callback to its receiver inside a branch of ctx bounded by the
// callback gas limit. A failed delivery is recorded and never fails the packet lifecycle.
func (k Keeper) deliverCallback(ctx sdk.Context, packet channeltypes.Packet, delivery *types.CallbackDelivery) {
	gasLimit := sdkmath.Min(k.GetCallbackGasLimit(ctx), ctx.GasMeter().GasRemaining())

	descriptor := process.Describe("callback", packet.SourcePort, packet.SourceChannel, packet.Sequence)
	err := process.Bounded(ctx, gasLimit, descriptor, func(cachedCtx sdk.Context) error {
		return k.receiver.OnCallback(cachedCtx, delivery.Receiver, delivery.Message)
	})

	events.EmitCallbackDeliveryEvent(ctx, delivery, err)
	if err != nil {
		k.Logger(ctx).Error("callback delivery failed", "sequence", delivery.Sequence, "receiver", delivery.Receiver, "error", err.Error())
		return
	}

	k.Logger(ctx).Info("callback delivered", "sequence", delivery.Sequence, "receiver", delivery.Receiver)
}
