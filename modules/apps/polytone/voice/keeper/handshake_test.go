package keeper_test

import (
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	notetypes "github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
	ibctesting "github.com/polytone/polytone-go/testing"
)

func (s *KeeperTestSuite) TestOnChanOpenInit() {
	var (
		order   channeltypes.Order
		hops    []string
		portID  string
		version string
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
			"success: empty version", func() {
				version = ""
			}, nil,
		},
		{
			"failure: invalid port", func() {
				portID = notetypes.PortID
			}, porttypes.ErrInvalidPort,
		},
		{
			"failure: no connection hops", func() {
				hops = nil
			}, ibcerrors.ErrInvalidRequest,
		},
		{
			"failure: ordered channel", func() {
				order = channeltypes.ORDERED
			}, channeltypes.ErrInvalidChannelOrdering,
		},
		{
			"failure: role tagged version", func() {
				version = polytonetypes.RoleNote.Version()
			}, polytonetypes.ErrProtocolMismatch,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			order = channeltypes.UNORDERED
			hops = []string{ibctesting.FirstConnectionID}
			portID = types.PortID
			version = polytonetypes.Version

			tc.malleate() // explicitly change fields

			ctx := s.chainB.GetContext()
			channelID := s.chainB.ChannelKeeper.GenerateChannelIdentifier()
			counterparty := channeltypes.NewCounterparty(notetypes.PortID, "")
			appVersion, err := s.chainB.VoiceKeeper.OnChanOpenInit(ctx, order, hops, portID, channelID, counterparty, version)

			connectionID, getErr := s.chainB.VoiceKeeper.ChannelConnections.Get(ctx, channelID)
			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Equal(polytonetypes.RoleVoice.Version(), appVersion)

				s.Require().NoError(getErr)
				s.Require().Equal(ibctesting.FirstConnectionID, connectionID)
				s.Require().True(ibctesting.HasEvent(ctx.EventManager().Events(), types.EventTypeChannelOpen, types.AttributeKeyCounterpartyPortID, notetypes.PortID))
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Empty(appVersion)
				s.Require().Error(getErr, "a rejected channel is not bound")
			}
		})
	}
}

func (s *KeeperTestSuite) TestOnChanOpenTry() {
	var (
		order               channeltypes.Order
		hops                []string
		counterpartyVersion string
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
			"failure: ordered channel", func() {
				order = channeltypes.ORDERED
			}, channeltypes.ErrInvalidChannelOrdering,
		},
		{
			"failure: counterparty is a voice", func() {
				counterpartyVersion = polytonetypes.RoleVoice.Version()
			}, polytonetypes.ErrProtocolMismatch,
		},
		{
			"failure: untagged counterparty version", func() {
				counterpartyVersion = polytonetypes.Version
			}, polytonetypes.ErrProtocolMismatch,
		},
		{
			"failure: multiple connection hops", func() {
				hops = []string{ibctesting.FirstConnectionID, ibctesting.SecondConnectionID}
			}, ibcerrors.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			order = channeltypes.UNORDERED
			hops = []string{ibctesting.SecondConnectionID}
			counterpartyVersion = polytonetypes.RoleNote.Version()

			tc.malleate() // explicitly change fields

			ctx := s.chainB.GetContext()
			channelID := s.chainB.ChannelKeeper.GenerateChannelIdentifier()
			counterparty := channeltypes.NewCounterparty(notetypes.PortID, "channel-0")
			appVersion, err := s.chainB.VoiceKeeper.OnChanOpenTry(ctx, order, hops, types.PortID, channelID, counterparty, counterpartyVersion)

			if tc.expErr == nil {
				s.Require().NoError(err)

				extensions, err := polytonetypes.DecodeExtensions(appVersion)
				s.Require().NoError(err)
				s.Require().Equal(polytonetypes.SupportedExtensions(), extensions)

				connectionID, err := s.chainB.VoiceKeeper.ChannelConnections.Get(ctx, channelID)
				s.Require().NoError(err)
				s.Require().Equal(ibctesting.SecondConnectionID, connectionID)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *KeeperTestSuite) TestOnChanOpenAck() {
	testCases := []struct {
		name       string
		extensions []string
		expErr     error
	}{
		{"success", polytonetypes.SupportedExtensions(), nil},
		{"success: note announces no extensions", nil, nil},
		{"failure: note announces an unsupported extension", []string{polytonetypes.ExtensionJSONMsgs, "Proto-Any"}, polytonetypes.ErrUnsupportedExtension},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			counterpartyVersion, err := polytonetypes.EncodeExtensions(tc.extensions)
			s.Require().NoError(err)

			err = s.chainB.VoiceKeeper.OnChanOpenAck(s.chainB.GetContext(), types.PortID, "channel-0", counterpartyVersion)
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}

	err := s.chainB.VoiceKeeper.OnChanOpenAck(s.chainB.GetContext(), types.PortID, "channel-0", polytonetypes.RoleNote.Version())
	s.Require().ErrorIs(err, polytonetypes.ErrInvalidExtensions)
}

func (s *KeeperTestSuite) TestHandshakeFromVoice() {
	path := ibctesting.NewPath(s.chainA, s.chainB)
	path.SetupFromVoice()

	connectionID, err := s.chainB.VoiceKeeper.ChannelConnections.Get(s.chainB.GetContext(), path.EndpointB.ChannelID)
	s.Require().NoError(err)
	s.Require().Equal(path.EndpointB.ConnectionID, connectionID)
	s.Require().Equal(channeltypes.OPEN, path.EndpointB.GetChannel().State)
}

func (s *KeeperTestSuite) TestOnChanCloseConfirm() {
	path := s.setupPath()

	ctx := s.chainB.GetContext()
	has, err := s.chainB.VoiceKeeper.ChannelConnections.Has(ctx, path.EndpointB.ChannelID)
	s.Require().NoError(err)
	s.Require().True(has)

	s.Require().NoError(s.chainB.VoiceKeeper.OnChanCloseConfirm(ctx, types.PortID, path.EndpointB.ChannelID))

	has, err = s.chainB.VoiceKeeper.ChannelConnections.Has(ctx, path.EndpointB.ChannelID)
	s.Require().NoError(err)
	s.Require().False(has)

	// a packet arriving on the closed channel has no connection to derive proxies from
	data := polytonetypes.NewQueryPacketData(s.chainA.SenderAccounts[0].String(), nil)
	_, _, ack := s.chainB.VoiceKeeper.OnRecvPacket(ctx, newPacket(path, data, 1))
	s.Require().True(ack.Callback().IsFatal())
}
