package types

import (
	"errors"
	"fmt"
	"strings"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// RegisteredCallback is a pending callback as exported to genesis.
type RegisteredCallback struct {
	Sequence uint64          `json:"sequence" yaml:"sequence"`
	Callback PendingCallback `json:"callback" yaml:"callback"`
}

// PacketSequence binds a packet sent on a channel to its ledger sequence.
type PacketSequence struct {
	ChannelID      string `json:"channel_id" yaml:"channel_id"`
	PacketSequence uint64 `json:"packet_sequence" yaml:"packet_sequence"`
	Sequence       uint64 `json:"sequence" yaml:"sequence"`
}

// RemoteAddress records the remote proxy that executed requests for a local initiator.
type RemoteAddress struct {
	Initiator string `json:"initiator" yaml:"initiator"`
	Address   string `json:"address" yaml:"address"`
}

// GenesisState defines the note submodule genesis state
type GenesisState struct {
	Pair             *Pair                `json:"pair,omitempty" yaml:"pair,omitempty"`
	Controller       string               `json:"controller,omitempty" yaml:"controller,omitempty"`
	CallbackGasLimit uint64               `json:"callback_gas_limit" yaml:"callback_gas_limit"`
	ActiveChannel    string               `json:"active_channel,omitempty" yaml:"active_channel,omitempty"`
	Sequence         uint64               `json:"sequence" yaml:"sequence"`
	PendingCallbacks []RegisteredCallback `json:"pending_callbacks" yaml:"pending_callbacks"`
	PacketSequences  []PacketSequence     `json:"packet_sequences" yaml:"packet_sequences"`
	RemoteAddresses  []RemoteAddress      `json:"remote_addresses" yaml:"remote_addresses"`
}

// NewGenesisState creates a note GenesisState bound to an optional pair and controller.
func NewGenesisState(pair *Pair, controller string, callbackGasLimit uint64) *GenesisState {
	return &GenesisState{
		Pair:             pair,
		Controller:       controller,
		CallbackGasLimit: callbackGasLimit,
	}
}

// DefaultGenesisState creates and returns the default note GenesisState
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(nil, "", DefaultCallbackGasLimit)
}

// Validate performs basic validation of the note GenesisState
func (gs GenesisState) Validate() error {
	if gs.Pair != nil {
		if err := gs.Pair.Validate(); err != nil {
			return fmt.Errorf("invalid pair %s: %w", gs.Pair, err)
		}
	}

	if gs.Controller != "" && strings.TrimSpace(gs.Controller) == "" {
		return errors.New("controller cannot be blank")
	}

	if gs.CallbackGasLimit == 0 {
		return errors.New("callback gas limit must be positive")
	}

	if gs.ActiveChannel != "" {
		if err := host.ChannelIdentifierValidator(gs.ActiveChannel); err != nil {
			return err
		}
	}

	pending := make(map[uint64]bool, len(gs.PendingCallbacks))
	for _, cb := range gs.PendingCallbacks {
		if cb.Sequence == 0 || cb.Sequence > gs.Sequence {
			return fmt.Errorf("pending callback sequence %d outside of (0, %d]", cb.Sequence, gs.Sequence)
		}

		if pending[cb.Sequence] {
			return fmt.Errorf("duplicate pending callback for sequence %d", cb.Sequence)
		}
		pending[cb.Sequence] = true

		if err := cb.Callback.Validate(); err != nil {
			return fmt.Errorf("invalid pending callback %d: %w", cb.Sequence, err)
		}
	}

	for _, ps := range gs.PacketSequences {
		if err := host.ChannelIdentifierValidator(ps.ChannelID); err != nil {
			return err
		}

		if !pending[ps.Sequence] {
			return fmt.Errorf("packet %s/%d bound to sequence %d without a pending callback", ps.ChannelID, ps.PacketSequence, ps.Sequence)
		}
	}

	seen := make(map[string]bool, len(gs.RemoteAddresses))
	for _, ra := range gs.RemoteAddresses {
		if strings.TrimSpace(ra.Initiator) == "" || strings.TrimSpace(ra.Address) == "" {
			return errors.New("remote address entries cannot be blank")
		}

		if seen[ra.Initiator] {
			return fmt.Errorf("duplicate remote address for %s", ra.Initiator)
		}
		seen[ra.Initiator] = true
	}

	return nil
}
