package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
)

// ChannelConnection binds a voice channel to the connection it was opened on.
type ChannelConnection struct {
	ChannelID    string `json:"channel_id" yaml:"channel_id"`
	ConnectionID string `json:"connection_id" yaml:"connection_id"`
}

// RegisteredProxy binds a remote sender to its proxy address.
type RegisteredProxy struct {
	ConnectionID       string `json:"connection_id" yaml:"connection_id"`
	CounterpartyPortID string `json:"counterparty_port_id" yaml:"counterparty_port_id"`
	Sender             string `json:"sender" yaml:"sender"`
	Address            string `json:"address" yaml:"address"`
}

// GenesisState defines the voice submodule genesis state
type GenesisState struct {
	Params             Params              `json:"params" yaml:"params"`
	ChannelConnections []ChannelConnection `json:"channel_connections" yaml:"channel_connections"`
	Proxies            []RegisteredProxy   `json:"proxies" yaml:"proxies"`
}

// NewGenesisState creates a new voice GenesisState instance
func NewGenesisState(params Params, channelConnections []ChannelConnection, proxies []RegisteredProxy) *GenesisState {
	return &GenesisState{
		Params:             params,
		ChannelConnections: channelConnections,
		Proxies:            proxies,
	}
}

// DefaultGenesisState creates and returns the default voice GenesisState
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), nil, nil)
}

// Validate performs basic validation of the voice GenesisState
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	for _, cc := range gs.ChannelConnections {
		if err := host.ChannelIdentifierValidator(cc.ChannelID); err != nil {
			return errorsmod.Wrapf(err, "invalid channel %s", cc.ChannelID)
		}

		if err := host.ConnectionIdentifierValidator(cc.ConnectionID); err != nil {
			return errorsmod.Wrapf(err, "invalid connection %s", cc.ConnectionID)
		}
	}

	seen := make(map[string]bool, len(gs.Proxies))
	for _, proxy := range gs.Proxies {
		if err := host.ConnectionIdentifierValidator(proxy.ConnectionID); err != nil {
			return errorsmod.Wrapf(err, "invalid proxy connection %s", proxy.ConnectionID)
		}

		if err := host.PortIdentifierValidator(proxy.CounterpartyPortID); err != nil {
			return errorsmod.Wrapf(err, "invalid proxy counterparty port %s", proxy.CounterpartyPortID)
		}

		if strings.TrimSpace(proxy.Sender) == "" {
			return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "proxy sender cannot be blank")
		}

		if _, err := sdk.AccAddressFromBech32(proxy.Address); err != nil {
			return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "invalid proxy address %s: %s", proxy.Address, err)
		}

		key := fmt.Sprintf("%s/%s/%s", proxy.ConnectionID, proxy.CounterpartyPortID, proxy.Sender)
		if seen[key] {
			return errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "duplicate proxy for %s", key)
		}
		seen[key] = true
	}

	return nil
}
