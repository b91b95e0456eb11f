package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ProvisionDirective instructs the proxy keeper to create the agent of a remote sender which
// has no recorded proxy yet.
type ProvisionDirective struct {
	Address sdk.AccAddress
	Creator sdk.AccAddress
	Label   string
}
