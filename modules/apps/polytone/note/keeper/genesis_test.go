package keeper_test

import (
	"encoding/json"

	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	voicetypes "github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
	ibctesting "github.com/polytone/polytone-go/testing"
	"github.com/polytone/polytone-go/testing/mock"
)

func (s *KeeperTestSuite) TestGenesis() {
	path := s.setupPath()
	sender := s.chainA.SenderAccounts[0].String()

	// one resolved request recording the remote address, one request still in flight
	_, _, err := s.chainA.Execute(types.NewMsgExecute(sender, "", []json.RawMessage{mock.OKAction("done")}, s.callback(), 0))
	s.Require().NoError(err)
	s.relayLastPacket(path)

	_, _, err = s.chainA.Query(types.NewMsgQuery(sender, "", []polytonetypes.QueryRequest{{Path: balancePath}}, *s.callback(), 0))
	s.Require().NoError(err)

	genesis := s.chainA.NoteKeeper.ExportGenesis(s.chainA.GetContext())

	s.Require().Equal(types.NewPair(ibctesting.FirstConnectionID, voicetypes.PortID), *genesis.Pair)
	s.Require().Equal(path.EndpointA.ChannelID, genesis.ActiveChannel)
	s.Require().Equal(types.DefaultCallbackGasLimit, genesis.CallbackGasLimit)
	s.Require().Equal(uint64(2), genesis.Sequence)
	s.Require().Len(genesis.PendingCallbacks, 1)
	s.Require().Equal(uint64(2), genesis.PendingCallbacks[0].Sequence)
	s.Require().Equal([]types.PacketSequence{{ChannelID: path.EndpointA.ChannelID, PacketSequence: 2, Sequence: 2}}, genesis.PacketSequences)
	s.Require().Len(genesis.RemoteAddresses, 1)
	s.Require().Equal(sender, genesis.RemoteAddresses[0].Initiator)
	s.Require().NoError(genesis.Validate())

	// import into a fresh chain and export again
	s.SetupTest()
	s.chainA.NoteKeeper.InitGenesis(s.chainA.GetContext(), *genesis)

	s.Require().Equal(genesis, s.chainA.NoteKeeper.ExportGenesis(s.chainA.GetContext()))

	// the imported ledger continues where it left off
	seq, err := s.chainA.NoteKeeper.OnSend(s.chainA.GetContext(), sender, polytonetypes.RequestKindExecute, nil)
	s.Require().NoError(err)
	s.Require().Equal(uint64(3), seq)
}

func (s *KeeperTestSuite) TestInitGenesisPanics() {
	testCases := []struct {
		name    string
		genesis *types.GenesisState
	}{
		{
			"zero callback gas limit",
			types.NewGenesisState(nil, "", 0),
		},
		{
			"invalid controller address",
			types.NewGenesisState(nil, "controller", types.DefaultCallbackGasLimit),
		},
		{
			"invalid pair",
			types.NewGenesisState(&types.Pair{ConnectionID: "", RemotePort: voicetypes.PortID}, "", types.DefaultCallbackGasLimit),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			s.Require().Panics(func() {
				s.chainA.NoteKeeper.InitGenesis(s.chainA.GetContext(), *tc.genesis)
			})
		})
	}
}
