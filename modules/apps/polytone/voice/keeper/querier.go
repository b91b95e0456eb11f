package keeper

import (
	errorsmod "cosmossdk.io/errors"

	abci "github.com/cometbft/cometbft/abci/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

var _ types.Querier = GRPCQuerier{}

// GRPCQuerier executes query requests through the module gRPC query router.
type GRPCQuerier struct {
	queryRouter types.QueryRouter
}

// NewGRPCQuerier creates a new GRPCQuerier instance
func NewGRPCQuerier(queryRouter types.QueryRouter) GRPCQuerier {
	return GRPCQuerier{queryRouter: queryRouter}
}

// Query implements types.Querier. Only the response value is returned, height and proof are
// not deterministic across validators.
func (q GRPCQuerier) Query(ctx sdk.Context, req polytonetypes.QueryRequest) ([]byte, error) {
	route := q.queryRouter.Route(req.Path)
	if route == nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "no route found for query path %s", req.Path)
	}

	res, err := route(ctx, &abci.RequestQuery{
		Path: req.Path,
		Data: req.Data,
	})
	if err != nil {
		return nil, err
	}

	return res.Value, nil
}
