package keeper_test

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/keeper"
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

func (s *KeeperTestSuite) TestQueryAgent() {
	var req *types.QueryAgentRequest

	testCases := []struct {
		name     string
		malleate func()
		expCode  codes.Code
	}{
		{
			"success", func() {}, codes.OK,
		},
		{
			"failure: empty request", func() {
				req = nil
			}, codes.InvalidArgument,
		},
		{
			"failure: invalid address", func() {
				req.Address = "agent"
			}, codes.InvalidArgument,
		},
		{
			"failure: not found", func() {
				req.Address = s.chain.SenderAccounts[1].String()
			}, codes.NotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			agent := s.provision(0)
			req = &types.QueryAgentRequest{Address: agent.String()}

			tc.malleate()

			res, err := keeper.NewQueryServer(s.chain.ProxyKeeper).Agent(s.chain.GetContext(), req)

			if tc.expCode == codes.OK {
				s.Require().NoError(err)
				s.Require().Equal(types.NewAgent(s.instantiator, types.Label("sender")), res.Agent)
			} else {
				s.Require().Equal(tc.expCode, status.Code(err))
				s.Require().Nil(res)
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryCollector() {
	ctx := s.chain.GetContext()
	agent := s.provision(0)
	queryServer := keeper.NewQueryServer(s.chain.ProxyKeeper)

	res, err := queryServer.Collector(ctx, &types.QueryCollectorRequest{Address: agent.String()})
	s.Require().NoError(err)
	s.Require().Nil(res.Collector)
	s.Require().Zero(res.Pending)

	s.Require().NoError(s.chain.ProxyKeeper.StartBatch(ctx, agent, 3))
	_, err = s.chain.ProxyKeeper.OnActionResult(ctx, agent, 0, types.NewSuccessOutcome(nil))
	s.Require().NoError(err)

	res, err = queryServer.Collector(ctx, &types.QueryCollectorRequest{Address: agent.String()})
	s.Require().NoError(err)
	s.Require().NotNil(res.Collector)
	s.Require().Equal(types.BatchPolicyFailFast, res.Collector.Policy)
	s.Require().Equal(2, res.Pending)

	_, err = queryServer.Collector(ctx, nil)
	s.Require().Equal(codes.InvalidArgument, status.Code(err))

	_, err = queryServer.Collector(ctx, &types.QueryCollectorRequest{Address: "agent"})
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *KeeperTestSuite) TestQueryParams() {
	res, err := keeper.NewQueryServer(s.chain.ProxyKeeper).Params(s.chain.GetContext(), &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultParams(), res.Params)
}
