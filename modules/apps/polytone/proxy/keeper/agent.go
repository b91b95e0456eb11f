package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/internal/events"
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

// Provision creates the account of a new agent at the given address and records its instantiator.
// An account which already exists at the address is adopted only if it has never signed anything,
// which is the case for an account created by a transfer to the precomputed address.
func (k Keeper) Provision(ctx sdk.Context, addr, instantiator sdk.AccAddress, label string) error {
	has, err := k.Agents.Has(ctx, addr)
	if err != nil {
		return err
	}
	if has {
		return errorsmod.Wrapf(types.ErrAccountAlreadyExists, "agent %s already provisioned", addr)
	}

	agent := types.NewAgent(instantiator, label)
	if err := agent.Validate(); err != nil {
		return err
	}

	adopted := false
	if existing := k.accountKeeper.GetAccount(ctx, addr); existing != nil {
		if existing.GetPubKey() != nil || existing.GetSequence() != 0 {
			return errorsmod.Wrapf(types.ErrAccountAlreadyExists, "existing account for agent address %s", addr)
		}
		adopted = true
	} else {
		acc := k.accountKeeper.NewAccountWithAddress(ctx, addr)
		k.accountKeeper.SetAccount(ctx, acc)
	}

	if err := k.Agents.Set(ctx, addr, agent); err != nil {
		return errorsmod.Wrapf(err, "failed to set agent %s in store", addr)
	}

	k.Logger(ctx).Info("provisioned agent", "agent", addr.String(), "instantiator", agent.Instantiator, "adopted", adopted)
	events.EmitProvisionAgentEvent(ctx, addr, agent, adopted)

	return nil
}

// GetAgent returns the agent provisioned at the given address.
func (k Keeper) GetAgent(ctx context.Context, addr sdk.AccAddress) (types.Agent, error) {
	agent, err := k.Agents.Get(ctx, addr)
	if err != nil {
		return types.Agent{}, errorsmod.Wrapf(types.ErrAgentNotFound, "%s", addr)
	}
	return agent, nil
}

// HasAgent returns true if an agent is provisioned at the given address.
func (k Keeper) HasAgent(ctx context.Context, addr sdk.AccAddress) bool {
	has, err := k.Agents.Has(ctx, addr)
	return err == nil && has
}
