package types

import (
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"

	proxytypes "github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// ProxyKeeper defines the expected proxy keeper
type ProxyKeeper interface {
	Provision(ctx sdk.Context, addr, instantiator sdk.AccAddress, label string) error
	Dispatch(ctx sdk.Context, caller, agent sdk.AccAddress, actions []json.RawMessage) (*proxytypes.BatchResult, error)
}

// Querier executes a single query request and returns its raw response.
type Querier interface {
	Query(ctx sdk.Context, req polytonetypes.QueryRequest) ([]byte, error)
}

// QueryRouter ADR 021 based routing for module gRPC queries
type QueryRouter interface {
	Route(path string) baseapp.GRPCQueryHandler
}
