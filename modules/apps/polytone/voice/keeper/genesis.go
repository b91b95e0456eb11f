package keeper

import (
	"fmt"

	"cosmossdk.io/collections"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

// InitGenesis initializes the voice submodule's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	if err := k.SetParams(ctx, state.Params); err != nil {
		panic(fmt.Errorf("could not set voice params at genesis: %w", err))
	}

	for _, cc := range state.ChannelConnections {
		if err := k.ChannelConnections.Set(ctx, cc.ChannelID, cc.ConnectionID); err != nil {
			panic(err)
		}
	}

	for _, proxy := range state.Proxies {
		addr, err := sdk.AccAddressFromBech32(proxy.Address)
		if err != nil {
			panic(err)
		}

		if err := k.SenderToProxy.Set(ctx, collections.Join3(proxy.ConnectionID, proxy.CounterpartyPortID, proxy.Sender), addr); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the voice submodule's exported genesis.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	var channelConnections []types.ChannelConnection
	err := k.ChannelConnections.Walk(ctx, nil, func(channelID, connectionID string) (bool, error) {
		channelConnections = append(channelConnections, types.ChannelConnection{ChannelID: channelID, ConnectionID: connectionID})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	var proxies []types.RegisteredProxy
	err = k.SenderToProxy.Walk(ctx, nil, func(key collections.Triple[string, string, string], addr sdk.AccAddress) (bool, error) {
		proxies = append(proxies, types.RegisteredProxy{
			ConnectionID:       key.K1(),
			CounterpartyPortID: key.K2(),
			Sender:             key.K3(),
			Address:            addr.String(),
		})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return types.NewGenesisState(k.GetParams(ctx), channelConnections, proxies)
}
