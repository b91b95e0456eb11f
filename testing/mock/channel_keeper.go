package mock

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// ChannelKeeper is an in-memory channel registry of a single chain. It also sends packets
// over the channels it knows of and records them.
type ChannelKeeper struct {
	channels    map[string]channeltypes.Channel
	nextSeqSend map[string]uint64
	nextChannel uint64
	commitments map[string]bool
	receipts    map[string]bool

	// Packets is every packet sent, in order
	Packets []channeltypes.Packet
	// SendPacketErr, if set, is returned by SendPacket
	SendPacketErr error
}

// NewChannelKeeper creates an empty ChannelKeeper
func NewChannelKeeper() *ChannelKeeper {
	return &ChannelKeeper{
		channels:    make(map[string]channeltypes.Channel),
		nextSeqSend: make(map[string]uint64),
		commitments: make(map[string]bool),
		receipts:    make(map[string]bool),
	}
}

// GenerateChannelIdentifier returns the next free channel identifier.
func (k *ChannelKeeper) GenerateChannelIdentifier() string {
	channelID := channeltypes.FormatChannelIdentifier(k.nextChannel)
	k.nextChannel++
	return channelID
}

// GetChannel returns the channel end stored for the port and channel.
func (k *ChannelKeeper) GetChannel(_ sdk.Context, portID, channelID string) (channeltypes.Channel, bool) {
	channel, found := k.channels[channelPath(portID, channelID)]
	return channel, found
}

// SetChannel stores a channel end.
func (k *ChannelKeeper) SetChannel(portID, channelID string, channel channeltypes.Channel) {
	k.channels[channelPath(portID, channelID)] = channel
}

// SendPacket records a packet on an open channel and returns its sequence. Sequences start at 1
// per channel.
func (k *ChannelKeeper) SendPacket(
	_ sdk.Context,
	sourcePort string,
	sourceChannel string,
	timeoutHeight clienttypes.Height,
	timeoutTimestamp uint64,
	data []byte,
) (uint64, error) {
	if k.SendPacketErr != nil {
		return 0, k.SendPacketErr
	}

	channel, found := k.channels[channelPath(sourcePort, sourceChannel)]
	if !found {
		return 0, errorsmod.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", sourcePort, sourceChannel)
	}

	if channel.State != channeltypes.OPEN {
		return 0, errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel state is not OPEN (got %s)", channel.State)
	}

	path := channelPath(sourcePort, sourceChannel)
	sequence := k.nextSeqSend[path] + 1
	k.nextSeqSend[path] = sequence

	packet := channeltypes.NewPacket(
		data, sequence, sourcePort, sourceChannel,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId,
		timeoutHeight, timeoutTimestamp,
	)
	k.Packets = append(k.Packets, packet)
	k.commitments[packetPath(sourcePort, sourceChannel, sequence)] = true

	return sequence, nil
}

// LastPacket returns the last packet sent.
func (k *ChannelKeeper) LastPacket() (channeltypes.Packet, bool) {
	if len(k.Packets) == 0 {
		return channeltypes.Packet{}, false
	}
	return k.Packets[len(k.Packets)-1], true
}

// HasPacketCommitment returns true if the packet was sent and neither acknowledged nor timed out.
func (k *ChannelKeeper) HasPacketCommitment(portID, channelID string, sequence uint64) bool {
	return k.commitments[packetPath(portID, channelID, sequence)]
}

// DeletePacketCommitment deletes the commitment of an acknowledged or timed out packet.
func (k *ChannelKeeper) DeletePacketCommitment(portID, channelID string, sequence uint64) {
	delete(k.commitments, packetPath(portID, channelID, sequence))
}

// HasPacketReceipt returns true if the packet was received.
func (k *ChannelKeeper) HasPacketReceipt(portID, channelID string, sequence uint64) bool {
	return k.receipts[packetPath(portID, channelID, sequence)]
}

// SetPacketReceipt records the receipt of a packet.
func (k *ChannelKeeper) SetPacketReceipt(portID, channelID string, sequence uint64) {
	k.receipts[packetPath(portID, channelID, sequence)] = true
}

func packetPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%d", portID, channelID, sequence)
}

func channelPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", portID, channelID)
}
