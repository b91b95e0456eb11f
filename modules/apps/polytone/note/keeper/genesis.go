package keeper

import (
	"errors"
	"fmt"

	"cosmossdk.io/collections"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
)

// InitGenesis initializes the note submodule's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	if err := state.Validate(); err != nil {
		panic(fmt.Errorf("invalid note genesis state: %w", err))
	}

	if state.Pair != nil {
		if err := k.Pair.Set(ctx, *state.Pair); err != nil {
			panic(err)
		}
	}

	if state.Controller != "" {
		if _, err := k.addressCodec.StringToBytes(state.Controller); err != nil {
			panic(fmt.Errorf("invalid controller address %s: %w", state.Controller, err))
		}

		if err := k.Controller.Set(ctx, state.Controller); err != nil {
			panic(err)
		}
	}

	if err := k.CallbackGasLimit.Set(ctx, state.CallbackGasLimit); err != nil {
		panic(err)
	}

	if state.ActiveChannel != "" {
		if err := k.ActiveChannel.Set(ctx, state.ActiveChannel); err != nil {
			panic(err)
		}
	}

	if err := k.Sequence.Set(ctx, state.Sequence); err != nil {
		panic(err)
	}

	for _, cb := range state.PendingCallbacks {
		if err := k.PendingCallbacks.Set(ctx, cb.Sequence, cb.Callback); err != nil {
			panic(err)
		}
	}

	for _, ps := range state.PacketSequences {
		if err := k.BindPacket(ctx, ps.ChannelID, ps.PacketSequence, ps.Sequence); err != nil {
			panic(err)
		}
	}

	for _, ra := range state.RemoteAddresses {
		if err := k.LocalToRemote.Set(ctx, ra.Initiator, ra.Address); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the note submodule's exported genesis.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	controller, err := k.GetController(ctx)
	if err != nil {
		panic(err)
	}

	state := types.NewGenesisState(nil, controller, k.GetCallbackGasLimit(ctx))

	pair, found, err := k.GetPair(ctx)
	if err != nil {
		panic(err)
	}
	if found {
		state.Pair = &pair
	}

	if channelID, found := k.GetActiveChannel(ctx); found {
		state.ActiveChannel = channelID
	}

	state.Sequence, err = k.Sequence.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		panic(err)
	}

	err = k.PendingCallbacks.Walk(ctx, nil, func(seq uint64, pending types.PendingCallback) (bool, error) {
		state.PendingCallbacks = append(state.PendingCallbacks, types.RegisteredCallback{Sequence: seq, Callback: pending})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.PacketSequences.Walk(ctx, nil, func(key collections.Pair[string, uint64], seq uint64) (bool, error) {
		state.PacketSequences = append(state.PacketSequences, types.PacketSequence{
			ChannelID:      key.K1(),
			PacketSequence: key.K2(),
			Sequence:       seq,
		})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.LocalToRemote.Walk(ctx, nil, func(initiator, address string) (bool, error) {
		state.RemoteAddresses = append(state.RemoteAddresses, types.RemoteAddress{Initiator: initiator, Address: address})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return state
}
