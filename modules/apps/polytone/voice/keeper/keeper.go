package keeper

import (
	"context"
	"errors"
	"strings"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

// Keeper executes requests received from notes through per sender proxies
type Keeper struct {
	proxyKeeper types.ProxyKeeper
	querier     types.Querier
	deriver     polytonetypes.AddressDeriver

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string

	// state management
	Schema collections.Schema
	Params collections.Item[types.Params]
	// ChannelConnections is a map of channel id to the connection the channel was opened on
	ChannelConnections collections.Map[string, string]
	// SenderToProxy is a map of (connection, counterparty port, sender) to proxy address
	SenderToProxy collections.Map[collections.Triple[string, string, string], sdk.AccAddress]
}

// NewKeeper creates a new voice Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	proxyKeeper types.ProxyKeeper, querier types.Querier, deriver polytonetypes.AddressDeriver,
	authority string,
) Keeper {
	if strings.TrimSpace(authority) == "" {
		panic(errors.New("authority must be non-empty"))
	}

	if deriver == nil {
		deriver = polytonetypes.PredictableAddressDeriver{}
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		proxyKeeper:        proxyKeeper,
		querier:            querier,
		deriver:            deriver,
		authority:          authority,
		Params:             collections.NewItem(sb, types.ParamsKey, "params", polytonetypes.JSONValue[types.Params]()),
		ChannelConnections: collections.NewMap(sb, types.ChannelConnectionsKey, "channel_connections", collections.StringKey, collections.StringValue),
		SenderToProxy:      collections.NewMap(sb, types.SenderToProxyKey, "sender_to_proxy", collections.TripleKeyCodec(collections.StringKey, collections.StringKey, collections.StringKey), collcodec.KeyToValueCodec(sdk.AccAddressKey)),
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

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the voice module account address, which creates every proxy.
func (Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetParams returns the current voice submodule parameters, falling back to the defaults.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams sets the voice submodule parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, params)
}
