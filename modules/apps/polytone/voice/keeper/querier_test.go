package keeper_test

import (
	"errors"

	abci "github.com/cometbft/cometbft/abci/types"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/keeper"
)

// queryRouter routes queries to fixed handlers.
type queryRouter map[string]baseapp.GRPCQueryHandler

func (r queryRouter) Route(path string) baseapp.GRPCQueryHandler {
	return r[path]
}

func (s *KeeperTestSuite) TestGRPCQuerier() {
	errQuery := errors.New("query failed")

	var received *abci.RequestQuery
	router := queryRouter{
		balancePath: func(_ sdk.Context, req *abci.RequestQuery) (*abci.ResponseQuery, error) {
			received = req
			return &abci.ResponseQuery{Value: []byte("balance"), Height: 10, ProofOps: nil}, nil
		},
		"/cosmos.auth.v1beta1.Query/Account": func(sdk.Context, *abci.RequestQuery) (*abci.ResponseQuery, error) {
			return nil, errQuery
		},
	}

	testCases := []struct {
		name   string
		req    polytonetypes.QueryRequest
		expRes []byte
		expErr error
	}{
		{
			"success",
			polytonetypes.QueryRequest{Path: balancePath, Data: []byte("request")},
			[]byte("balance"),
			nil,
		},
		{
			"failure: handler error",
			polytonetypes.QueryRequest{Path: "/cosmos.auth.v1beta1.Query/Account"},
			nil,
			errQuery,
		},
		{
			"failure: no route",
			polytonetypes.QueryRequest{Path: "/cosmos.staking.v1beta1.Query/Validators"},
			nil,
			ibcerrors.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			received = nil

			res, err := keeper.NewGRPCQuerier(router).Query(s.chainB.GetContext(), tc.req)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Equal(tc.expRes, res)

				s.Require().NotNil(received)
				s.Require().Equal(tc.req.Path, received.Path)
				s.Require().Equal(tc.req.Data, received.Data)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)
			}
		})
	}
}
