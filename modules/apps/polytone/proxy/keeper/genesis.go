package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

// InitGenesis initializes the proxy submodule's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	if err := k.SetParams(ctx, state.Params); err != nil {
		panic(fmt.Errorf("could not set proxy params at genesis: %w", err))
	}

	for _, registered := range state.Agents {
		addr, err := sdk.AccAddressFromBech32(registered.Address)
		if err != nil {
			panic(err)
		}

		if err := k.Agents.Set(ctx, addr, registered.Agent); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the proxy submodule's exported genesis. Collectors never outlive a
// transaction and are not exported.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	var agents []types.RegisteredAgent
	err := k.Agents.Walk(ctx, nil, func(addr sdk.AccAddress, agent types.Agent) (bool, error) {
		agents = append(agents, types.RegisteredAgent{Address: addr.String(), Agent: agent})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return types.NewGenesisState(k.GetParams(ctx), agents)
}
