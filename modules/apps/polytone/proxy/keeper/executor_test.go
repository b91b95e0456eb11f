package keeper_test

import (
	"errors"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	"github.com/cosmos/cosmos-sdk/x/bank"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/keeper"
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

// msgRouter routes every message to a single handler, or to none if the handler is nil.
type msgRouter struct {
	handler baseapp.MsgServiceHandler
}

func (r msgRouter) Handler(sdk.Msg) baseapp.MsgServiceHandler {
	return r.handler
}

func (s *KeeperTestSuite) TestMsgRouterExecutor() {
	var (
		msg     *banktypes.MsgSend
		handler baseapp.MsgServiceHandler
		action  []byte
	)

	encodingCfg := moduletestutil.MakeTestEncodingConfig(bank.AppModule{})
	cdc := encodingCfg.Codec

	agent := s.chain.SenderAccounts[0]
	errHandler := errors.New("insufficient funds")

	var handled sdk.Msg
	okHandler := func(ctx sdk.Context, req sdk.Msg) (*sdk.Result, error) {
		handled = req
		ctx = ctx.WithEventManager(sdk.NewEventManager())
		ctx.EventManager().EmitEvent(sdk.NewEvent(banktypes.EventTypeTransfer))
		return &sdk.Result{Data: []byte("response"), Events: ctx.EventManager().ABCIEvents()}, nil
	}

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"failure: signer is not the agent", func() {
				msg.FromAddress = s.chain.SenderAccounts[1].String()
			}, ibcerrors.ErrUnauthorized,
		},
		{
			"failure: action is not a message", func() {
				action = []byte(`{"@type":"/cosmos.bank.v1beta1.Unknown"}`)
			}, types.ErrInvalidAction,
		},
		{
			"failure: action is not JSON", func() {
				action = []byte("send")
			}, types.ErrInvalidAction,
		},
		{
			"failure: no route", func() {
				handler = nil
			}, types.ErrInvalidRoute,
		},
		{
			"failure: handler error", func() {
				handler = func(sdk.Context, sdk.Msg) (*sdk.Result, error) {
					return nil, errHandler
				}
			}, errHandler,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			handled = nil
			handler = okHandler
			action = nil
			msg = &banktypes.MsgSend{
				FromAddress: agent.String(),
				ToAddress:   s.chain.SenderAccounts[2].String(),
				Amount:      sdk.NewCoins(sdk.NewCoin("stake", sdkmath.NewInt(100))),
			}

			tc.malleate()

			if action == nil {
				var err error
				action, err = cdc.MarshalInterfaceJSON(msg)
				s.Require().NoError(err)
			}

			ctx := s.chain.GetContext()
			executor := keeper.NewMsgRouterExecutor(cdc, msgRouter{handler: handler})
			data, err := executor.Execute(ctx, agent, action)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Equal([]byte("response"), data)
				sent, ok := handled.(*banktypes.MsgSend)
				s.Require().True(ok)
				s.Require().Equal(msg.FromAddress, sent.FromAddress)
				s.Require().Equal(msg.Amount.String(), sent.Amount.String())

				// handler events are propagated to the caller
				s.Require().Len(ctx.EventManager().Events(), 1)
				s.Require().Equal(banktypes.EventTypeTransfer, ctx.EventManager().Events()[0].Type)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(data)
			}
		})
	}
}
