package ibctesting

import (
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	notetypes "github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	voicetypes "github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

const (
	// MaxAccounts is the number of sender accounts created on every chain
	MaxAccounts = 10

	// FirstConnectionID is the connection every endpoint uses by default
	FirstConnectionID = "connection-0"
	// SecondConnectionID is a connection to a different counterparty
	SecondConnectionID = "connection-1"
)

// ChannelConfig is the channel configuration of an endpoint
type ChannelConfig struct {
	PortID  string
	Version string
	Order   channeltypes.Order
}

// NewNoteChannelConfig returns the channel configuration of a note endpoint
func NewNoteChannelConfig() *ChannelConfig {
	return &ChannelConfig{
		PortID:  notetypes.PortID,
		Version: polytonetypes.Version,
		Order:   channeltypes.UNORDERED,
	}
}

// NewVoiceChannelConfig returns the channel configuration of a voice endpoint
func NewVoiceChannelConfig() *ChannelConfig {
	return &ChannelConfig{
		PortID:  voicetypes.PortID,
		Version: polytonetypes.Version,
		Order:   channeltypes.UNORDERED,
	}
}
