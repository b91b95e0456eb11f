package keeper

import (
	"context"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// Keeper owns the proxy agents and executes action batches on their behalf
type Keeper struct {
	accountKeeper types.AccountKeeper
	executor      types.Executor

	// state management
	Schema collections.Schema
	Params collections.Item[types.Params]
	// Agents is a map of agent address to its bookkeeping
	Agents collections.Map[sdk.AccAddress, types.Agent]
	// Collectors is a map of agent address to the collector of its in-flight batch
	Collectors collections.Map[sdk.AccAddress, types.Collector]
}

// NewKeeper creates a new proxy Keeper instance
func NewKeeper(storeService storetypes.KVStoreService, accountKeeper types.AccountKeeper, executor types.Executor) Keeper {
	if executor == nil {
		panic("executor cannot be nil")
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		accountKeeper: accountKeeper,
		executor:      executor,
		Params:        collections.NewItem(sb, types.ParamsKey, "params", polytonetypes.JSONValue[types.Params]()),
		Agents:        collections.NewMap(sb, types.AgentsKey, "agents", sdk.AccAddressKey, polytonetypes.JSONValue[types.Agent]()),
		Collectors:    collections.NewMap(sb, types.CollectorsKey, "collectors", sdk.AccAddressKey, polytonetypes.JSONValue[types.Collector]()),
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

// GetParams returns the current proxy submodule parameters, falling back to the defaults.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams sets the proxy submodule parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, params)
}
