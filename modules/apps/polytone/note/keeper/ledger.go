package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// OnSend hands out the next sequence and records the pending callback of the request, if one was
// requested.
func (k Keeper) OnSend(ctx sdk.Context, initiator string, kind polytonetypes.RequestKind, callback *types.CallbackRequest) (uint64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	seq, err := k.Sequence.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return 0, err
	}

	seq++
	if err := k.Sequence.Set(ctx, seq); err != nil {
		return 0, err
	}

	if callback == nil {
		return seq, nil
	}

	has, err := k.PendingCallbacks.Has(ctx, seq)
	if err != nil {
		return 0, err
	}

	if has {
		return 0, errorsmod.Wrapf(ibcerrors.ErrLogic, "pending callback already recorded for sequence %d", seq)
	}

	pending := types.PendingCallback{
		Initiator:    initiator,
		InitiatorMsg: callback.Msg,
		Receiver:     callback.Receiver,
		RequestKind:  kind,
	}

	if err := k.PendingCallbacks.Set(ctx, seq, pending); err != nil {
		return 0, err
	}

	return seq, nil
}

// BindPacket binds the packet sequence assigned by the channel to the ledger sequence of a request
// with a pending callback.
func (k Keeper) BindPacket(ctx sdk.Context, channelID string, packetSeq, seq uint64) error {
	return k.PacketSequences.Set(ctx, collections.Join(channelID, packetSeq), seq)
}

// OnAck consumes the pending callback bound to a packet and resolves it with the result carried by
// the acknowledgement. A nil delivery is returned if no callback is pending for the packet.
func (k Keeper) OnAck(ctx sdk.Context, channelID string, packetSeq uint64, rawAck []byte) (*types.CallbackDelivery, error) {
	seq, pending, found, err := k.takePending(ctx, channelID, packetSeq)
	if err != nil || !found {
		return nil, err
	}

	result := polytonetypes.DecodeAck(rawAck, pending.RequestKind)
	if executedBy, ok := result.ExecutedBy(); ok {
		if err := k.recordRemoteAddress(ctx, pending.Initiator, executedBy); err != nil {
			return nil, err
		}
	}

	return types.NewCallbackDelivery(seq, pending, result), nil
}

// OnTimeout consumes the pending callback bound to a packet and resolves it with a timeout error.
// A nil delivery is returned if no callback is pending for the packet.
func (k Keeper) OnTimeout(ctx sdk.Context, channelID string, packetSeq uint64) (*types.CallbackDelivery, error) {
	seq, pending, found, err := k.takePending(ctx, channelID, packetSeq)
	if err != nil || !found {
		return nil, err
	}

	return types.NewCallbackDelivery(seq, pending, polytonetypes.NewTimeoutCallback(pending.RequestKind)), nil
}

// takePending removes and returns the pending callback bound to a packet.
func (k Keeper) takePending(ctx sdk.Context, channelID string, packetSeq uint64) (uint64, types.PendingCallback, bool, error) {
	key := collections.Join(channelID, packetSeq)
	seq, err := k.PacketSequences.Get(ctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, types.PendingCallback{}, false, nil
	} else if err != nil {
		return 0, types.PendingCallback{}, false, err
	}

	if err := k.PacketSequences.Remove(ctx, key); err != nil {
		return 0, types.PendingCallback{}, false, err
	}

	pending, err := k.PendingCallbacks.Get(ctx, seq)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, types.PendingCallback{}, false, nil
	} else if err != nil {
		return 0, types.PendingCallback{}, false, err
	}

	if err := k.PendingCallbacks.Remove(ctx, seq); err != nil {
		return 0, types.PendingCallback{}, false, err
	}

	return seq, pending, true, nil
}

// recordRemoteAddress records the proxy executing requests for a local initiator. Entries are
// never overwritten.
func (k Keeper) recordRemoteAddress(ctx sdk.Context, initiator, remote string) error {
	existing, err := k.LocalToRemote.Get(ctx, initiator)
	switch {
	case err == nil:
		if existing != remote {
			k.Logger(ctx).Error("remote address mismatch", "initiator", initiator, "recorded", existing, "executed_by", remote)
		}
		return nil
	case errors.Is(err, collections.ErrNotFound):
		return k.LocalToRemote.Set(ctx, initiator, remote)
	default:
		return err
	}
}
