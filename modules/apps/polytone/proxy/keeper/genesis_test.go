package keeper_test

import (
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

func (s *KeeperTestSuite) TestGenesis() {
	ctx := s.chain.GetContext()
	first := s.provision(0)
	second := s.provision(1)
	s.Require().NoError(s.chain.ProxyKeeper.SetParams(ctx, types.NewParams(types.BatchPolicyCollectAll)))

	// an in-flight batch is not exported
	s.Require().NoError(s.chain.ProxyKeeper.StartBatch(ctx, first, 1))

	genesis := s.chain.ProxyKeeper.ExportGenesis(ctx)
	s.Require().NoError(genesis.Validate())
	s.Require().Equal(types.BatchPolicyCollectAll, genesis.Params.BatchPolicy)
	s.Require().Len(genesis.Agents, 2)

	s.SetupTest() // reset

	ctx = s.chain.GetContext()
	s.chain.ProxyKeeper.InitGenesis(ctx, *genesis)
	s.Require().Equal(genesis, s.chain.ProxyKeeper.ExportGenesis(ctx))

	s.Require().True(s.chain.ProxyKeeper.HasAgent(ctx, first))
	s.Require().True(s.chain.ProxyKeeper.HasAgent(ctx, second))

	has, err := s.chain.ProxyKeeper.Collectors.Has(ctx, first)
	s.Require().NoError(err)
	s.Require().False(has)
}

func (s *KeeperTestSuite) TestInitGenesisPanics() {
	s.Require().Panics(func() {
		s.chain.ProxyKeeper.InitGenesis(s.chain.GetContext(), *types.NewGenesisState(types.NewParams("first_success"), nil))
	})

	s.Require().Panics(func() {
		s.chain.ProxyKeeper.InitGenesis(s.chain.GetContext(), *types.NewGenesisState(types.DefaultParams(), []types.RegisteredAgent{{Address: "agent"}}))
	})
}
