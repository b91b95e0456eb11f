package keeper_test

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
	ibctesting "github.com/polytone/polytone-go/testing"
	"github.com/polytone/polytone-go/testing/mock"
)

func (s *KeeperTestSuite) TestDispatch() {
	var (
		agent   sdk.AccAddress
		caller  sdk.AccAddress
		actions []json.RawMessage
	)

	failure := polytonetypes.RedactError(mock.ErrMockAction)

	testCases := []struct {
		name      string
		malleate  func()
		expResult *types.BatchResult
		expCalls  int
		expWrite  bool
		expErr    error
	}{
		{
			"success",
			func() {},
			&types.BatchResult{Results: []polytonetypes.ActionResult{{Data: []byte("a")}, {Data: []byte("done")}, {Data: []byte("b")}}},
			3,
			true,
			nil,
		},
		{
			"success: empty batch",
			func() {
				actions = nil
			},
			&types.BatchResult{Results: []polytonetypes.ActionResult{}},
			0,
			false,
			nil,
		},
		{
			"fail fast: stops at the first failure",
			func() {
				actions = []json.RawMessage{mock.SetAction("a", "a"), mock.FailAction("first"), mock.FailAction("second"), mock.SetAction("b", "b")}
			},
			&types.BatchResult{Failure: &polytonetypes.ErrorResponse{MessageIndex: 1, Error: failure}},
			2,
			false,
			nil,
		},
		{
			"collect all: executes every action and reports the first failure",
			func() {
				s.Require().NoError(s.chain.ProxyKeeper.SetParams(s.chain.GetContext(), types.NewParams(types.BatchPolicyCollectAll)))
				actions = []json.RawMessage{mock.SetAction("a", "a"), mock.FailAction("first"), mock.FailAction("second"), mock.SetAction("b", "b")}
			},
			&types.BatchResult{Failure: &polytonetypes.ErrorResponse{MessageIndex: 1, Error: failure}},
			4,
			false,
			nil,
		},
		{
			"collect all: success",
			func() {
				s.Require().NoError(s.chain.ProxyKeeper.SetParams(s.chain.GetContext(), types.NewParams(types.BatchPolicyCollectAll)))
			},
			&types.BatchResult{Results: []polytonetypes.ActionResult{{Data: []byte("a")}, {Data: []byte("done")}, {Data: []byte("b")}}},
			3,
			true,
			nil,
		},
		{
			"failure: caller is not the instantiator",
			func() {
				caller = s.chain.SenderAccounts[5]
			},
			nil,
			0,
			false,
			types.ErrNotInstantiator,
		},
		{
			"failure: agent not found",
			func() {
				agent = s.chain.SenderAccounts[6]
			},
			nil,
			0,
			false,
			types.ErrAgentNotFound,
		},
		{
			"failure: batch in flight",
			func() {
				s.Require().NoError(s.chain.ProxyKeeper.StartBatch(s.chain.GetContext(), agent, 1))
			},
			nil,
			0,
			false,
			types.ErrBatchInFlight,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			agent = s.provision(0)
			caller = s.instantiator
			actions = []json.RawMessage{mock.SetAction("a", "a"), mock.OKAction("done"), mock.SetAction("b", "b")}

			tc.malleate()

			ctx := s.chain.GetContext()
			result, err := s.chain.ProxyKeeper.Dispatch(ctx, caller, agent, actions)

			s.Require().Len(s.chain.Executor.Calls, tc.expCalls)
			s.Require().Equal(tc.expWrite, s.chain.Executor.Get(ctx, "a") != nil)
			s.Require().Equal(tc.expWrite, s.chain.Executor.Get(ctx, "b") != nil)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Equal(tc.expResult, result)

				for _, call := range s.chain.Executor.Calls {
					s.Require().Equal(agent, call.Agent)
				}

				// the collector is cleared once the batch is finalized
				has, err := s.chain.ProxyKeeper.Collectors.Has(ctx, agent)
				s.Require().NoError(err)
				s.Require().False(has)

				s.Require().True(ibctesting.HasEvent(ctx.EventManager().Events(), types.EventTypeExecuteBatch, types.AttributeKeyAgent, agent.String()))
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(result)
			}
		})
	}
}

func (s *KeeperTestSuite) TestDispatchKeepsActionsInOrder() {
	agent := s.provision(0)

	actions := []json.RawMessage{mock.SetAction("key", "first"), mock.SetAction("key", "second")}
	result, err := s.chain.ProxyKeeper.Dispatch(s.chain.GetContext(), s.instantiator, agent, actions)
	s.Require().NoError(err)
	s.Require().True(result.Success())

	s.Require().Equal([]byte("second"), s.chain.Executor.Get(s.chain.GetContext(), "key"))
	s.Require().Equal("first", s.chain.Executor.Calls[0].Action.Value)
	s.Require().Equal("second", s.chain.Executor.Calls[1].Action.Value)
}

func (s *KeeperTestSuite) TestOnActionResult() {
	ctx := s.chain.GetContext()
	agent := s.provision(0)

	// a result for an agent without a batch in flight is stale
	result, err := s.chain.ProxyKeeper.OnActionResult(ctx, agent, 0, types.NewSuccessOutcome(nil))
	s.Require().NoError(err)
	s.Require().Nil(result)

	s.Require().NoError(s.chain.ProxyKeeper.StartBatch(ctx, agent, 2))

	// results may arrive in any order
	result, err = s.chain.ProxyKeeper.OnActionResult(ctx, agent, 1, types.NewSuccessOutcome([]byte("second")))
	s.Require().NoError(err)
	s.Require().Nil(result)

	collector, err := s.chain.ProxyKeeper.Collectors.Get(ctx, agent)
	s.Require().NoError(err)
	s.Require().Equal(1, collector.Pending())

	_, err = s.chain.ProxyKeeper.OnActionResult(ctx, agent, 1, types.NewSuccessOutcome(nil))
	s.Require().ErrorIs(err, types.ErrDuplicateResult)

	_, err = s.chain.ProxyKeeper.OnActionResult(ctx, agent, 2, types.NewSuccessOutcome(nil))
	s.Require().ErrorIs(err, types.ErrInvalidPosition)

	result, err = s.chain.ProxyKeeper.OnActionResult(ctx, agent, 0, types.NewSuccessOutcome([]byte("first")))
	s.Require().NoError(err)
	s.Require().Equal(&types.BatchResult{Results: []polytonetypes.ActionResult{{Data: []byte("first")}, {Data: []byte("second")}}}, result)

	has, err := s.chain.ProxyKeeper.Collectors.Has(ctx, agent)
	s.Require().NoError(err)
	s.Require().False(has)
}
