package keeper_test

import (
	"cosmossdk.io/collections"

	notetypes "github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	proxytypes "github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
	ibctesting "github.com/polytone/polytone-go/testing"
)

func (s *KeeperTestSuite) TestResolveOrProvision() {
	ctx := s.chainB.GetContext()
	sender := s.chainA.SenderAccounts[0].String()

	proxy, directive, err := s.chainB.VoiceKeeper.ResolveOrProvision(ctx, ibctesting.FirstConnectionID, notetypes.PortID, sender)
	s.Require().NoError(err)
	s.Require().NotNil(directive)
	s.Require().Equal(proxy, directive.Address)
	s.Require().Equal(s.chainB.VoiceKeeper.GetModuleAddress(), directive.Creator)
	s.Require().Equal(proxytypes.Label(sender), directive.Label)

	// resolving is read only
	has, err := s.chainB.VoiceKeeper.SenderToProxy.Has(ctx, collections.Join3(ibctesting.FirstConnectionID, notetypes.PortID, sender))
	s.Require().NoError(err)
	s.Require().False(has)

	recorded := s.chainB.SenderAccounts[3]
	s.Require().NoError(s.chainB.VoiceKeeper.SenderToProxy.Set(ctx, collections.Join3(ibctesting.FirstConnectionID, notetypes.PortID, sender), recorded))

	proxy, directive, err = s.chainB.VoiceKeeper.ResolveOrProvision(ctx, ibctesting.FirstConnectionID, notetypes.PortID, sender)
	s.Require().NoError(err)
	s.Require().Nil(directive)
	s.Require().Equal(recorded, proxy)
}
