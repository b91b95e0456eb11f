package keeper_test

import (
	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/keeper"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

func (s *KeeperTestSuite) TestUpdateParams() {
	var msg *types.MsgUpdateParams

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"success: restrict queries", func() {
				msg.Params.AllowQueries = []string{balancePath}
			}, nil,
		},
		{
			"failure: unauthorized", func() {
				msg.Authority = s.chainB.SenderAccounts[0].String()
			}, ibcerrors.ErrUnauthorized,
		},
		{
			"failure: empty authority", func() {
				msg.Authority = ""
			}, ibcerrors.ErrUnauthorized,
		},
		{
			"failure: empty proxy code hash", func() {
				msg.Params.ProxyCodeHash = nil
			}, types.ErrInvalidParams,
		},
		{
			"failure: block max gas within the ack reserve", func() {
				msg.Params.BlockMaxGas = polytonetypes.AckGasReserve
			}, types.ErrInvalidParams,
		},
		{
			"failure: blank allowed query", func() {
				msg.Params.AllowQueries = []string{balancePath, " "}
			}, types.ErrInvalidParams,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			msg = types.NewMsgUpdateParams(s.chainB.Authority, types.NewParams([]byte("migrated"), 2*types.DefaultBlockMaxGas, nil))

			tc.malleate()

			ctx := s.chainB.GetContext()
			res, err := keeper.NewMsgServerImpl(&s.chainB.VoiceKeeper).UpdateParams(ctx, msg)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().NotNil(res)
				s.Require().Equal(msg.Params, s.chainB.VoiceKeeper.GetParams(ctx))
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)
				s.Require().Equal(types.DefaultParams(), s.chainB.VoiceKeeper.GetParams(ctx))
			}
		})
	}
}
