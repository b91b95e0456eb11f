package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// Keeper sends requests to the paired voice and resolves their callbacks
type Keeper struct {
	ics4Wrapper   types.ICS4Wrapper
	channelKeeper types.ChannelKeeper
	receiver      types.CallbackReceiver
	addressCodec  address.Codec

	// state management
	Schema           collections.Schema
	Pair             collections.Item[types.Pair]
	ActiveChannel    collections.Item[string]
	Controller       collections.Item[string]
	CallbackGasLimit collections.Item[uint64]
	// Sequence holds the last sequence handed out, the first request is sent with sequence 1
	Sequence collections.Item[uint64]
	// PendingCallbacks is a map of sequence to the callback awaiting its result
	PendingCallbacks collections.Map[uint64, types.PendingCallback]
	// PacketSequences is a map of (channel, packet sequence) to sequence
	PacketSequences collections.Map[collections.Pair[string, uint64], uint64]
	// LocalToRemote is a map of local initiator to the remote proxy that executed its requests
	LocalToRemote collections.Map[string, string]
}

// NewKeeper creates a new note Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	ics4Wrapper types.ICS4Wrapper, channelKeeper types.ChannelKeeper,
	receiver types.CallbackReceiver, addressCodec address.Codec,
) Keeper {
	if receiver == nil {
		panic(errors.New("callback receiver must not be nil"))
	}

	if addressCodec == nil {
		panic(errors.New("address codec must not be nil"))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		ics4Wrapper:      ics4Wrapper,
		channelKeeper:    channelKeeper,
		receiver:         receiver,
		addressCodec:     addressCodec,
		Pair:             collections.NewItem(sb, types.PairKey, "pair", polytonetypes.JSONValue[types.Pair]()),
		ActiveChannel:    collections.NewItem(sb, types.ActiveChannelKey, "active_channel", collections.StringValue),
		Controller:       collections.NewItem(sb, types.ControllerKey, "controller", collections.StringValue),
		CallbackGasLimit: collections.NewItem(sb, types.CallbackGasLimitKey, "callback_gas_limit", collections.Uint64Value),
		Sequence:         collections.NewItem(sb, types.SequenceKey, "sequence", collections.Uint64Value),
		PendingCallbacks: collections.NewMap(sb, types.PendingCallbacksKey, "pending_callbacks", collections.Uint64Key, polytonetypes.JSONValue[types.PendingCallback]()),
		PacketSequences:  collections.NewMap(sb, types.PacketSequencesKey, "packet_sequences", collections.PairKeyCodec(collections.StringKey, collections.Uint64Key), collections.Uint64Value),
		LocalToRemote:    collections.NewMap(sb, types.LocalToRemoteKey, "local_to_remote", collections.StringKey, collections.StringValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

// Logger returns the application logger, scoped to the associated module
func (Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With(log.ModuleKey, "x/"+types.ModuleName)
}

// WithICS4Wrapper sets the ICS4Wrapper. This function may be used after
// the keeper's creation to set the middleware which is above this module
// in the IBC application stack.
func (k *Keeper) WithICS4Wrapper(wrapper types.ICS4Wrapper) {
	k.ics4Wrapper = wrapper
}

// GetController returns the controller address, or an empty string if the note has none.
func (k Keeper) GetController(ctx context.Context) (string, error) {
	controller, err := k.Controller.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return "", nil
	}
	return controller, err
}

// GetCallbackGasLimit returns the gas available to deliver a single callback.
func (k Keeper) GetCallbackGasLimit(ctx context.Context) uint64 {
	limit, err := k.CallbackGasLimit.Get(ctx)
	if err != nil {
		return types.DefaultCallbackGasLimit
	}
	return limit
}

// GetPair returns the (connection, remote port) pair the note is bound to, if any.
func (k Keeper) GetPair(ctx context.Context) (types.Pair, bool, error) {
	pair, err := k.Pair.Get(ctx)
	switch {
	case err == nil:
		return pair, true, nil
	case errors.Is(err, collections.ErrNotFound):
		return types.Pair{}, false, nil
	default:
		return types.Pair{}, false, err
	}
}

// GetActiveChannel returns the channel requests are currently sent over.
func (k Keeper) GetActiveChannel(ctx context.Context) (string, bool) {
	channelID, err := k.ActiveChannel.Get(ctx)
	if err != nil {
		return "", false
	}
	return channelID, true
}

// GetChannel returns the channel end of the given port and channel.
func (k Keeper) GetChannel(ctx sdk.Context, portID, channelID string) (channeltypes.Channel, bool) {
	return k.channelKeeper.GetChannel(ctx, portID, channelID)
}
