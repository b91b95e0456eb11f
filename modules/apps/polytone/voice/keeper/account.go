package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	proxytypes "github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

// ResolveOrProvision returns the proxy of a remote sender. If no proxy was recorded yet, the
// derived address is returned together with a directive to provision it.
func (k Keeper) ResolveOrProvision(ctx context.Context, connectionID, counterpartyPortID, sender string) (sdk.AccAddress, *types.ProvisionDirective, error) {
	proxy, err := k.SenderToProxy.Get(ctx, collections.Join3(connectionID, counterpartyPortID, sender))
	if err == nil {
		return proxy, nil, nil
	} else if !errorsmod.IsOf(err, collections.ErrNotFound) {
		return nil, nil, err
	}

	proxy, err = k.ComputeProxyAddress(ctx, connectionID, counterpartyPortID, sender)
	if err != nil {
		return nil, nil, err
	}

	return proxy, &types.ProvisionDirective{
		Address: proxy,
		Creator: k.GetModuleAddress(),
		Label:   proxytypes.Label(sender),
	}, nil
}

// ComputeProxyAddress derives the address the proxy of a remote sender is created at under the
// current proxy code hash. This doesn't modify the store.
func (k Keeper) ComputeProxyAddress(ctx context.Context, connectionID, counterpartyPortID, sender string) (sdk.AccAddress, error) {
	salt := polytonetypes.ProxySalt(connectionID, counterpartyPortID, sender)
	return k.deriver.DeriveAddress(k.GetParams(ctx).ProxyCodeHash, k.GetModuleAddress(), salt)
}

// getOrProvisionProxy resolves the proxy of a remote sender, provisioning it on first use.
func (k Keeper) getOrProvisionProxy(ctx sdk.Context, connectionID, counterpartyPortID, sender string) (sdk.AccAddress, error) {
	proxy, directive, err := k.ResolveOrProvision(ctx, connectionID, counterpartyPortID, sender)
	if err != nil {
		return nil, err
	}

	if directive == nil {
		return proxy, nil
	}

	if err := k.proxyKeeper.Provision(ctx, directive.Address, directive.Creator, directive.Label); err != nil {
		return nil, err
	}

	if err := k.SenderToProxy.Set(ctx, collections.Join3(connectionID, counterpartyPortID, sender), proxy); err != nil {
		return nil, errorsmod.Wrapf(err, "failed to record proxy %s", proxy)
	}

	k.Logger(ctx).Info("created new proxy", "proxy", proxy.String(), "connection", connectionID, "counterparty_port", counterpartyPortID, "sender", sender)
	return proxy, nil
}
