package keeper_test

import (
	"encoding/base64"

	"cosmossdk.io/collections"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

const channelID = "channel-0"

func (s *KeeperTestSuite) TestOnSend() {
	ctx := s.chainA.GetContext()
	initiator := s.chainA.SenderAccounts[0].String()

	for i := uint64(1); i <= 3; i++ {
		seq, err := s.chainA.NoteKeeper.OnSend(ctx, initiator, polytonetypes.RequestKindExecute, nil)
		s.Require().NoError(err)
		s.Require().Equal(i, seq)

		has, err := s.chainA.NoteKeeper.PendingCallbacks.Has(ctx, seq)
		s.Require().NoError(err)
		s.Require().False(has, "no callback was requested")
	}

	seq, err := s.chainA.NoteKeeper.OnSend(ctx, initiator, polytonetypes.RequestKindQuery, s.callback())
	s.Require().NoError(err)
	s.Require().Equal(uint64(4), seq)

	pending, err := s.chainA.NoteKeeper.PendingCallbacks.Get(ctx, seq)
	s.Require().NoError(err)
	s.Require().Equal(types.PendingCallback{
		Initiator:    initiator,
		InitiatorMsg: callbackMsg,
		Receiver:     s.callback().Receiver,
		RequestKind:  polytonetypes.RequestKindQuery,
	}, pending)

	// an invalid kind does not consume a sequence
	_, err = s.chainA.NoteKeeper.OnSend(ctx, initiator, polytonetypes.RequestKind(0), nil)
	s.Require().ErrorIs(err, polytonetypes.ErrInvalidRequestKind)

	last, err := s.chainA.NoteKeeper.Sequence.Get(ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(4), last)
}

func (s *KeeperTestSuite) TestOnSendPendingCollision() {
	ctx := s.chainA.GetContext()
	initiator := s.chainA.SenderAccounts[0].String()

	err := s.chainA.NoteKeeper.PendingCallbacks.Set(ctx, 1, types.PendingCallback{
		Initiator:    initiator,
		InitiatorMsg: callbackMsg,
		Receiver:     s.callback().Receiver,
		RequestKind:  polytonetypes.RequestKindExecute,
	})
	s.Require().NoError(err)

	_, err = s.chainA.NoteKeeper.OnSend(ctx, initiator, polytonetypes.RequestKindExecute, s.callback())
	s.Require().ErrorIs(err, ibcerrors.ErrLogic)
}

func (s *KeeperTestSuite) TestOnAck() {
	var (
		kind   polytonetypes.RequestKind
		rawAck []byte
	)

	proxy := s.chainB.SenderAccounts[0].String()

	testCases := []struct {
		name      string
		malleate  func()
		expResult func() polytonetypes.Callback
	}{
		{
			"execute success",
			func() {
				rawAck = polytonetypes.NewExecuteAck(&polytonetypes.ExecutionResponse{
					ExecutedBy: proxy,
					Result:     []polytonetypes.ActionResult{{Data: []byte("ok")}},
				}, nil).Acknowledgement()
			},
			func() polytonetypes.Callback {
				return polytonetypes.NewExecuteSuccess(proxy, []polytonetypes.ActionResult{{Data: []byte("ok")}})
			},
		},
		{
			"execute error",
			func() {
				rawAck = polytonetypes.NewExecuteAck(nil, &polytonetypes.ErrorResponse{MessageIndex: 1, Error: "codespace: mock, code: 2"}).Acknowledgement()
			},
			func() polytonetypes.Callback {
				return polytonetypes.NewExecuteError(1, "codespace: mock, code: 2")
			},
		},
		{
			"query success",
			func() {
				kind = polytonetypes.RequestKindQuery
				rawAck = polytonetypes.NewQueryAck([][]byte{[]byte("a"), []byte("b")}, nil).Acknowledgement()
			},
			func() polytonetypes.Callback {
				return polytonetypes.NewQuerySuccess([][]byte{[]byte("a"), []byte("b")})
			},
		},
		{
			"fatal error",
			func() {
				rawAck = polytonetypes.NewFatalAck("codespace: polytone, code: 5").Acknowledgement()
			},
			func() polytonetypes.Callback {
				return polytonetypes.NewFatalError("codespace: polytone, code: 5")
			},
		},
		{
			"acknowledgement of the wrong kind",
			func() {
				kind = polytonetypes.RequestKindQuery
				rawAck = polytonetypes.NewExecuteAck(&polytonetypes.ExecutionResponse{ExecutedBy: proxy}, nil).Acknowledgement()
			},
			func() polytonetypes.Callback {
				return polytonetypes.NewFatalError(base64.StdEncoding.EncodeToString(rawAck))
			},
		},
		{
			"malformed acknowledgement",
			func() {
				rawAck = []byte(`{"result":"AQ=="}`)
			},
			func() polytonetypes.Callback {
				return polytonetypes.NewFatalError(base64.StdEncoding.EncodeToString(rawAck))
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			kind = polytonetypes.RequestKindExecute

			tc.malleate()

			ctx := s.chainA.GetContext()
			initiator := s.chainA.SenderAccounts[0].String()

			seq, err := s.chainA.NoteKeeper.OnSend(ctx, initiator, kind, s.callback())
			s.Require().NoError(err)
			s.Require().NoError(s.chainA.NoteKeeper.BindPacket(ctx, channelID, 7, seq))

			delivery, err := s.chainA.NoteKeeper.OnAck(ctx, channelID, 7, rawAck)
			s.Require().NoError(err)
			s.Require().NotNil(delivery)

			s.Require().Equal(seq, delivery.Sequence)
			s.Require().Equal(s.callback().Receiver, delivery.Receiver)
			s.Require().Equal(initiator, delivery.Message.Initiator)
			s.Require().Equal(callbackMsg, delivery.Message.InitiatorMsg)
			s.Require().Equal(tc.expResult(), delivery.Message.Result)

			// the ledger entries are consumed
			has, err := s.chainA.NoteKeeper.PendingCallbacks.Has(ctx, seq)
			s.Require().NoError(err)
			s.Require().False(has)

			has, err = s.chainA.NoteKeeper.PacketSequences.Has(ctx, collections.Join(channelID, uint64(7)))
			s.Require().NoError(err)
			s.Require().False(has)

			remote, err := s.chainA.NoteKeeper.LocalToRemote.Get(ctx, initiator)
			if executedBy, ok := delivery.Message.Result.ExecutedBy(); ok {
				s.Require().NoError(err)
				s.Require().Equal(executedBy, remote)
			} else {
				s.Require().ErrorIs(err, collections.ErrNotFound)
			}
		})
	}
}

func (s *KeeperTestSuite) TestAtMostOnceResolution() {
	ack := polytonetypes.NewExecuteAck(&polytonetypes.ExecutionResponse{ExecutedBy: s.chainB.SenderAccounts[0].String()}, nil).Acknowledgement()

	testCases := []struct {
		name    string
		resolve func() (*types.CallbackDelivery, error)
		again   func() (*types.CallbackDelivery, error)
	}{
		{
			"ack then ack",
			func() (*types.CallbackDelivery, error) {
				return s.chainA.NoteKeeper.OnAck(s.chainA.GetContext(), channelID, 1, ack)
			},
			func() (*types.CallbackDelivery, error) {
				return s.chainA.NoteKeeper.OnAck(s.chainA.GetContext(), channelID, 1, ack)
			},
		},
		{
			"ack then timeout",
			func() (*types.CallbackDelivery, error) {
				return s.chainA.NoteKeeper.OnAck(s.chainA.GetContext(), channelID, 1, ack)
			},
			func() (*types.CallbackDelivery, error) {
				return s.chainA.NoteKeeper.OnTimeout(s.chainA.GetContext(), channelID, 1)
			},
		},
		{
			"timeout then ack",
			func() (*types.CallbackDelivery, error) {
				return s.chainA.NoteKeeper.OnTimeout(s.chainA.GetContext(), channelID, 1)
			},
			func() (*types.CallbackDelivery, error) {
				return s.chainA.NoteKeeper.OnAck(s.chainA.GetContext(), channelID, 1, ack)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			ctx := s.chainA.GetContext()
			seq, err := s.chainA.NoteKeeper.OnSend(ctx, s.chainA.SenderAccounts[0].String(), polytonetypes.RequestKindExecute, s.callback())
			s.Require().NoError(err)
			s.Require().NoError(s.chainA.NoteKeeper.BindPacket(ctx, channelID, 1, seq))

			delivery, err := tc.resolve()
			s.Require().NoError(err)
			s.Require().NotNil(delivery)

			delivery, err = tc.again()
			s.Require().NoError(err)
			s.Require().Nil(delivery)
		})
	}
}

func (s *KeeperTestSuite) TestOnTimeout() {
	ctx := s.chainA.GetContext()

	for _, kind := range []polytonetypes.RequestKind{polytonetypes.RequestKindExecute, polytonetypes.RequestKindQuery} {
		seq, err := s.chainA.NoteKeeper.OnSend(ctx, s.chainA.SenderAccounts[0].String(), kind, s.callback())
		s.Require().NoError(err)
		s.Require().NoError(s.chainA.NoteKeeper.BindPacket(ctx, channelID, seq, seq))

		delivery, err := s.chainA.NoteKeeper.OnTimeout(ctx, channelID, seq)
		s.Require().NoError(err)
		s.Require().NotNil(delivery)
		s.Require().Equal(polytonetypes.NewTimeoutCallback(kind), delivery.Message.Result)
		s.Require().False(delivery.Message.Result.Success())
	}

	_, err := s.chainA.NoteKeeper.LocalToRemote.Get(ctx, s.chainA.SenderAccounts[0].String())
	s.Require().ErrorIs(err, collections.ErrNotFound, "a timeout never records a remote address")
}

func (s *KeeperTestSuite) TestResolveUnboundPacket() {
	ctx := s.chainA.GetContext()

	// a request sent without a callback is never bound to its packet
	_, err := s.chainA.NoteKeeper.OnSend(ctx, s.chainA.SenderAccounts[0].String(), polytonetypes.RequestKindExecute, nil)
	s.Require().NoError(err)

	delivery, err := s.chainA.NoteKeeper.OnAck(ctx, channelID, 1, polytonetypes.NewFatalAck("error").Acknowledgement())
	s.Require().NoError(err)
	s.Require().Nil(delivery)

	delivery, err = s.chainA.NoteKeeper.OnTimeout(ctx, channelID, 1)
	s.Require().NoError(err)
	s.Require().Nil(delivery)
}

func (s *KeeperTestSuite) TestRemoteAddressIsNotOverwritten() {
	ctx := s.chainA.GetContext()
	initiator := s.chainA.SenderAccounts[0].String()
	first := s.chainB.SenderAccounts[0].String()
	second := s.chainB.SenderAccounts[1].String()

	for i, executedBy := range []string{first, second} {
		packetSeq := uint64(i + 1)

		seq, err := s.chainA.NoteKeeper.OnSend(ctx, initiator, polytonetypes.RequestKindExecute, s.callback())
		s.Require().NoError(err)
		s.Require().NoError(s.chainA.NoteKeeper.BindPacket(ctx, channelID, packetSeq, seq))

		ack := polytonetypes.NewExecuteAck(&polytonetypes.ExecutionResponse{ExecutedBy: executedBy}, nil).Acknowledgement()
		_, err = s.chainA.NoteKeeper.OnAck(ctx, channelID, packetSeq, ack)
		s.Require().NoError(err)
	}

	remote, err := s.chainA.NoteKeeper.LocalToRemote.Get(ctx, initiator)
	s.Require().NoError(err)
	s.Require().Equal(first, remote)
	s.Require().True(s.chainA.Logger.HasError("remote address mismatch"))
}
