package ibctesting

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"

	notetypes "github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	voicetypes "github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

// Endpoint represents a channel endpoint of a polytone application on a test chain. Endpoint
// functions drive the application callbacks the way IBC core does, using the channel
// configuration of the endpoint.
type Endpoint struct {
	Chain        *TestChain
	Counterparty *Endpoint
	ConnectionID string
	ChannelID    string

	ChannelConfig *ChannelConfig
}

// NewEndpoint constructs a new endpoint without the counterparty.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewEndpoint(chain *TestChain, channelConfig *ChannelConfig) *Endpoint {
	return &Endpoint{
		Chain:         chain,
		ConnectionID:  FirstConnectionID,
		ChannelConfig: channelConfig,
	}
}

// IBCModule returns the application bound to the port of the endpoint.
func (endpoint *Endpoint) IBCModule() porttypes.IBCModule {
	switch endpoint.ChannelConfig.PortID {
	case notetypes.PortID:
		return endpoint.Chain.NoteModule
	case voicetypes.PortID:
		return endpoint.Chain.VoiceModule
	default:
		panic(fmt.Errorf("no application bound to port %s", endpoint.ChannelConfig.PortID))
	}
}

// ChanOpenInit will construct and execute a MsgChannelOpenInit on the associated endpoint.
func (endpoint *Endpoint) ChanOpenInit() error {
	channelID := endpoint.Chain.ChannelKeeper.GenerateChannelIdentifier()
	counterparty := channeltypes.NewCounterparty(endpoint.Counterparty.ChannelConfig.PortID, "")
	hops := []string{endpoint.ConnectionID}

	_, err := endpoint.Chain.Exec(func(ctx sdk.Context) error {
		version, err := endpoint.IBCModule().OnChanOpenInit(ctx, endpoint.ChannelConfig.Order, hops, endpoint.ChannelConfig.PortID, channelID, counterparty, endpoint.ChannelConfig.Version)
		if err != nil {
			return err
		}

		endpoint.Chain.ChannelKeeper.SetChannel(endpoint.ChannelConfig.PortID, channelID, channeltypes.NewChannel(channeltypes.INIT, endpoint.ChannelConfig.Order, counterparty, hops, version))
		return nil
	})
	if err != nil {
		return err
	}

	endpoint.ChannelID = channelID
	return nil
}

// ChanOpenTry will construct and execute a MsgChannelOpenTry on the associated endpoint.
func (endpoint *Endpoint) ChanOpenTry() error {
	channelID := endpoint.Chain.ChannelKeeper.GenerateChannelIdentifier()
	counterparty := channeltypes.NewCounterparty(endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID)
	hops := []string{endpoint.ConnectionID}
	counterpartyVersion := endpoint.Counterparty.GetChannel().Version

	_, err := endpoint.Chain.Exec(func(ctx sdk.Context) error {
		version, err := endpoint.IBCModule().OnChanOpenTry(ctx, endpoint.ChannelConfig.Order, hops, endpoint.ChannelConfig.PortID, channelID, counterparty, counterpartyVersion)
		if err != nil {
			return err
		}

		endpoint.Chain.ChannelKeeper.SetChannel(endpoint.ChannelConfig.PortID, channelID, channeltypes.NewChannel(channeltypes.TRYOPEN, endpoint.ChannelConfig.Order, counterparty, hops, version))
		return nil
	})
	if err != nil {
		return err
	}

	endpoint.ChannelID = channelID
	return nil
}

// ChanOpenAck will construct and execute a MsgChannelOpenAck on the associated endpoint.
func (endpoint *Endpoint) ChanOpenAck() error {
	counterpartyVersion := endpoint.Counterparty.GetChannel().Version

	_, err := endpoint.Chain.Exec(func(ctx sdk.Context) error {
		return endpoint.IBCModule().OnChanOpenAck(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID, endpoint.Counterparty.ChannelID, counterpartyVersion)
	})
	if err != nil {
		return err
	}

	channel := endpoint.GetChannel()
	channel.State = channeltypes.OPEN
	channel.Version = counterpartyVersion
	channel.Counterparty.ChannelId = endpoint.Counterparty.ChannelID
	endpoint.SetChannel(channel)

	return nil
}

// ChanOpenConfirm will construct and execute a MsgChannelOpenConfirm on the associated endpoint.
func (endpoint *Endpoint) ChanOpenConfirm() error {
	_, err := endpoint.Chain.Exec(func(ctx sdk.Context) error {
		return endpoint.IBCModule().OnChanOpenConfirm(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID)
	})
	if err != nil {
		return err
	}

	channel := endpoint.GetChannel()
	channel.State = channeltypes.OPEN
	endpoint.SetChannel(channel)

	return nil
}

// ChanCloseInit will construct and execute a MsgChannelCloseInit on the associated endpoint.
func (endpoint *Endpoint) ChanCloseInit() error {
	_, err := endpoint.Chain.Exec(func(ctx sdk.Context) error {
		return endpoint.IBCModule().OnChanCloseInit(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID)
	})
	return err
}

// ChanCloseConfirm will construct and execute a MsgChannelCloseConfirm on the associated endpoint.
// The counterparty is assumed to have closed its end.
func (endpoint *Endpoint) ChanCloseConfirm() error {
	_, err := endpoint.Chain.Exec(func(ctx sdk.Context) error {
		return endpoint.IBCModule().OnChanCloseConfirm(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID)
	})
	if err != nil {
		return err
	}

	channel := endpoint.GetChannel()
	channel.State = channeltypes.CLOSED
	endpoint.SetChannel(channel)

	return nil
}

// RecvPacket receives a packet on the associated endpoint and returns the acknowledgement
// written. The writes of the application are kept only if the acknowledgement is successful.
func (endpoint *Endpoint) RecvPacket(packet channeltypes.Packet) ([]byte, error) {
	chain := endpoint.Chain
	if chain.ChannelKeeper.HasPacketReceipt(packet.DestinationPort, packet.DestinationChannel, packet.Sequence) {
		return nil, channeltypes.ErrNoOpMsg
	}

	if packet.TimeoutTimestamp != 0 && uint64(chain.CurrentHeader.Time.UnixNano()) >= packet.TimeoutTimestamp {
		return nil, errorsmod.Wrapf(channeltypes.ErrTimeoutElapsed, "block timestamp >= packet timeout timestamp (%s >= %d)", chain.CurrentHeader.Time, packet.TimeoutTimestamp)
	}

	ctx := chain.GetContext()
	cacheCtx, writeFn := ctx.CacheContext()

	ack := endpoint.IBCModule().OnRecvPacket(cacheCtx, endpoint.GetChannel().Version, packet, chain.SenderAccounts[0])
	if ack == nil {
		return nil, errorsmod.Wrap(channeltypes.ErrInvalidAcknowledgement, "asynchronous acknowledgements are not supported")
	}

	if ack.Success() {
		writeFn()
	}

	chain.ChannelKeeper.SetPacketReceipt(packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	return ack.Acknowledgement(), nil
}

// AcknowledgePacket sends a MsgAcknowledgement to the channel associated with the endpoint.
func (endpoint *Endpoint) AcknowledgePacket(packet channeltypes.Packet, ack []byte) error {
	chain := endpoint.Chain
	if !chain.ChannelKeeper.HasPacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence) {
		return channeltypes.ErrNoOpMsg
	}

	_, err := chain.Exec(func(ctx sdk.Context) error {
		return endpoint.IBCModule().OnAcknowledgementPacket(ctx, endpoint.GetChannel().Version, packet, ack, chain.SenderAccounts[0])
	})
	if err != nil {
		return err
	}

	chain.ChannelKeeper.DeletePacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence)
	return nil
}

// TimeoutPacket sends a MsgTimeout to the channel associated with the endpoint.
func (endpoint *Endpoint) TimeoutPacket(packet channeltypes.Packet) error {
	chain := endpoint.Chain
	if !chain.ChannelKeeper.HasPacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence) {
		return channeltypes.ErrNoOpMsg
	}

	counterparty := endpoint.Counterparty.Chain
	if counterparty.ChannelKeeper.HasPacketReceipt(packet.DestinationPort, packet.DestinationChannel, packet.Sequence) {
		return errorsmod.Wrap(channeltypes.ErrInvalidPacket, "packet was received by the counterparty")
	}

	if uint64(counterparty.CurrentHeader.Time.UnixNano()) < packet.TimeoutTimestamp {
		return errorsmod.Wrapf(channeltypes.ErrTimeoutNotReached, "counterparty time %s < packet timeout timestamp %d", counterparty.CurrentHeader.Time, packet.TimeoutTimestamp)
	}

	_, err := chain.Exec(func(ctx sdk.Context) error {
		return endpoint.IBCModule().OnTimeoutPacket(ctx, endpoint.GetChannel().Version, packet, chain.SenderAccounts[0])
	})
	if err != nil {
		return err
	}

	chain.ChannelKeeper.DeletePacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence)
	return nil
}

// GetChannel retrieves an IBC Channel for the endpoint. The channel must exist.
func (endpoint *Endpoint) GetChannel() channeltypes.Channel {
	channel, found := endpoint.Chain.ChannelKeeper.GetChannel(endpoint.Chain.GetContext(), endpoint.ChannelConfig.PortID, endpoint.ChannelID)
	if !found {
		panic(fmt.Errorf("channel %s/%s not found on %s", endpoint.ChannelConfig.PortID, endpoint.ChannelID, endpoint.Chain.ChainID))
	}
	return channel
}

// SetChannel sets the channel for this endpoint.
func (endpoint *Endpoint) SetChannel(channel channeltypes.Channel) {
	endpoint.Chain.ChannelKeeper.SetChannel(endpoint.ChannelConfig.PortID, endpoint.ChannelID, channel)
}

// LastSentPacket returns the last packet sent by the chain of the endpoint.
func (endpoint *Endpoint) LastSentPacket() (channeltypes.Packet, bool) {
	return endpoint.Chain.ChannelKeeper.LastPacket()
}
