package keeper_test

import (
	"encoding/json"
	"strconv"

	"cosmossdk.io/collections"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	voicetypes "github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
	ibctesting "github.com/polytone/polytone-go/testing"
	"github.com/polytone/polytone-go/testing/mock"
)

func (s *KeeperTestSuite) TestMsgExecute() {
	var (
		path *ibctesting.Path
		msg  *types.MsgExecute
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"success: no callback", func() {
				msg.Callback = nil
			}, nil,
		},
		{
			"success: empty batch", func() {
				msg.Msgs = nil
			}, nil,
		},
		{
			"success: maximum timeout", func() {
				msg.TimeoutSeconds = uint64(types.MaxTimeout.Seconds())
			}, nil,
		},
		{
			"failure: no active channel", func() {
				s.Require().NoError(path.EndpointA.ChanCloseConfirm())
			}, types.ErrNoActiveChannel,
		},
		{
			"failure: invalid sender address", func() {
				msg.Sender = "sender"
			}, ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: blank sender", func() {
				msg.Sender = ""
			}, ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: invalid callback receiver", func() {
				msg.Callback.Receiver = "receiver"
			}, ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: callback msg is not JSON", func() {
				msg.Callback.Msg = json.RawMessage("ping")
			}, types.ErrInvalidCallbackMsg,
		},
		{
			"failure: action is not JSON", func() {
				msg.Msgs = append(msg.Msgs, json.RawMessage("{"))
			}, polytonetypes.ErrInvalidPacketData,
		},
		{
			"failure: timeout exceeds maximum", func() {
				msg.TimeoutSeconds = uint64(types.MaxTimeout.Seconds()) + 1
			}, types.ErrInvalidTimeout,
		},
		{
			"failure: on behalf of without a controller", func() {
				msg.OnBehalfOf = s.chainA.SenderAccounts[2].String()
			}, polytonetypes.ErrUnexpectedDelegation,
		},
		{
			"failure: channel rejects the packet", func() {
				s.chainA.ChannelKeeper.SendPacketErr = channeltypes.ErrInvalidChannelState
			}, channeltypes.ErrInvalidChannelState,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			path = s.setupPath()
			msg = types.NewMsgExecute(
				s.chainA.SenderAccounts[0].String(), "",
				[]json.RawMessage{mock.SetAction("key", "value")},
				s.callback(), 0,
			)

			tc.malleate() // malleate mutates test data

			res, events, err := s.chainA.Execute(msg)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().NotNil(res)
				s.Require().Equal(uint64(1), res.Sequence)

				seq, err := ibctesting.ParseSequenceFromEvents(events)
				s.Require().NoError(err)
				s.Require().Equal(res.Sequence, seq)

				packet, found := path.EndpointA.LastSentPacket()
				s.Require().True(found)
				s.Require().Equal(types.PortID, packet.SourcePort)
				s.Require().Equal(path.EndpointA.ChannelID, packet.SourceChannel)
				s.Require().Equal(voicetypes.PortID, packet.DestinationPort)
				s.Require().Equal(path.EndpointB.ChannelID, packet.DestinationChannel)
				s.Require().Equal(clienttypes.ZeroHeight(), packet.TimeoutHeight)

				timeout, err := types.Timeout(msg.TimeoutSeconds)
				s.Require().NoError(err)
				s.Require().Equal(uint64(s.chainA.CurrentHeader.Time.Add(timeout).UnixNano()), packet.TimeoutTimestamp)

				data, err := polytonetypes.UnmarshalPacketData(packet.GetData())
				s.Require().NoError(err)
				s.Require().Equal(polytonetypes.NewExecutePacketData(msg.Sender, msg.Msgs), data)

				ctx := s.chainA.GetContext()
				has, err := s.chainA.NoteKeeper.PacketSequences.Has(ctx, collections.Join(packet.SourceChannel, packet.Sequence))
				s.Require().NoError(err)
				s.Require().Equal(msg.Callback != nil, has)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)

				// a rejected request leaves the ledger untouched
				seq, err := s.chainA.NoteKeeper.Sequence.Get(s.chainA.GetContext())
				s.Require().NoError(err)
				s.Require().Zero(seq)
			}
		})
	}
}

func (s *KeeperTestSuite) TestMsgQuery() {
	var msg *types.MsgQuery

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"success: custom timeout", func() {
				msg.TimeoutSeconds = 30
			}, nil,
		},
		{
			"failure: callback is required", func() {
				msg.Callback = types.CallbackRequest{}
			}, types.ErrCallbackRequired,
		},
		{
			"failure: invalid callback receiver", func() {
				msg.Callback.Receiver = "receiver"
			}, ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: blank query path", func() {
				msg.Msgs = append(msg.Msgs, polytonetypes.QueryRequest{Path: " "})
			}, polytonetypes.ErrInvalidPacketData,
		},
		{
			"failure: on behalf of without a controller", func() {
				msg.OnBehalfOf = s.chainA.SenderAccounts[2].String()
			}, polytonetypes.ErrUnexpectedDelegation,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			s.setupPath()
			msg = types.NewMsgQuery(
				s.chainA.SenderAccounts[0].String(), "",
				[]polytonetypes.QueryRequest{{Path: "/cosmos.bank.v1beta1.Query/Balance", Data: []byte("request")}},
				*s.callback(), 0,
			)

			tc.malleate() // malleate mutates test data

			res, _, err := s.chainA.Query(msg)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Equal(uint64(1), res.Sequence)

				pending, err := s.chainA.NoteKeeper.PendingCallbacks.Get(s.chainA.GetContext(), res.Sequence)
				s.Require().NoError(err)
				s.Require().Equal(polytonetypes.RequestKindQuery, pending.RequestKind)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)
			}
		})
	}
}

func (s *KeeperTestSuite) TestSequenceIsMonotonic() {
	s.setupPath()

	sender := s.chainA.SenderAccounts[0].String()
	for i := uint64(1); i <= 5; i++ {
		var callback *types.CallbackRequest
		if i%2 == 0 {
			callback = s.callback()
		}

		res, events, err := s.chainA.Execute(types.NewMsgExecute(sender, "", []json.RawMessage{mock.OKAction(strconv.FormatUint(i, 10))}, callback, 0))
		s.Require().NoError(err)
		s.Require().Equal(i, res.Sequence)
		s.Require().True(ibctesting.HasEvent(events, types.EventTypeSend, types.AttributeKeyKind, polytonetypes.RequestKindExecute.String()))
	}

	// a failed request does not consume a sequence
	_, _, err := s.chainA.Execute(types.NewMsgExecute("", "", nil, nil, 0))
	s.Require().Error(err)

	res, _, err := s.chainA.Query(types.NewMsgQuery(sender, "", nil, *s.callback(), 0))
	s.Require().NoError(err)
	s.Require().Equal(uint64(6), res.Sequence)
}

func (s *KeeperTestSuite) TestControllerGate() {
	var (
		controller string
		msg        *types.MsgExecute
	)

	testCases := []struct {
		name         string
		malleate     func()
		expInitiator func() string
		expErr       error
	}{
		{
			"success: controller acts on behalf of an account",
			func() {
				msg.Sender = controller
				msg.OnBehalfOf = s.chainA.SenderAccounts[2].String()
			},
			func() string { return s.chainA.SenderAccounts[2].String() },
			nil,
		},
		{
			"failure: caller is not the controller",
			func() {
				msg.OnBehalfOf = s.chainA.SenderAccounts[2].String()
			},
			nil,
			polytonetypes.ErrNotController,
		},
		{
			"failure: controller must name an account",
			func() {
				msg.Sender = controller
			},
			nil,
			polytonetypes.ErrDelegationRequired,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			path := s.setupPath()
			controller = s.chainA.SenderAccounts[9].String()
			s.chainA.SetController(controller)

			msg = types.NewMsgExecute(s.chainA.SenderAccounts[0].String(), "", []json.RawMessage{mock.OKAction("done")}, s.callback(), 0)

			tc.malleate()

			_, events, err := s.chainA.Execute(msg)

			if tc.expErr == nil {
				s.Require().NoError(err)

				initiator := tc.expInitiator()
				s.Require().True(ibctesting.HasEvent(events, types.EventTypeSend, types.AttributeKeyInitiator, initiator))

				_, err := path.RelayLastPacket()
				s.Require().NoError(err)

				delivery, found := s.chainA.CallbackReceiver.LastDelivery()
				s.Require().True(found)
				s.Require().Equal(initiator, delivery.Message.Initiator)

				proxy, err := s.chainB.VoiceKeeper.ComputeProxyAddress(s.chainB.GetContext(), ibctesting.FirstConnectionID, types.PortID, initiator)
				s.Require().NoError(err)

				executedBy, ok := delivery.Message.Result.ExecutedBy()
				s.Require().True(ok)
				s.Require().Equal(proxy.String(), executedBy)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
