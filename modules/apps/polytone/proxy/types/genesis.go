package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisteredAgent pairs an agent with its address for genesis import and export.
type RegisteredAgent struct {
	Address string `json:"address" yaml:"address"`
	Agent   Agent  `json:"agent" yaml:"agent"`
}

// GenesisState defines the proxy submodule genesis state
type GenesisState struct {
	Params Params            `json:"params" yaml:"params"`
	Agents []RegisteredAgent `json:"agents" yaml:"agents"`
}

// NewGenesisState creates a new proxy GenesisState instance
func NewGenesisState(params Params, agents []RegisteredAgent) *GenesisState {
	return &GenesisState{
		Params: params,
		Agents: agents,
	}
}

// DefaultGenesisState creates and returns the default proxy GenesisState
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), nil)
}

// Validate performs basic validation of the proxy GenesisState
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(gs.Agents))
	for _, registered := range gs.Agents {
		if _, err := sdk.AccAddressFromBech32(registered.Address); err != nil {
			return fmt.Errorf("invalid agent address %s: %w", registered.Address, err)
		}

		if seen[registered.Address] {
			return fmt.Errorf("duplicate agent %s", registered.Address)
		}
		seen[registered.Address] = true

		if err := registered.Agent.Validate(); err != nil {
			return err
		}
	}

	return nil
}
