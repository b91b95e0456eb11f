package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
)

// Agent is the bookkeeping kept for a provisioned proxy account.
type Agent struct {
	// Instantiator is the only address allowed to dispatch actions through the agent
	Instantiator string `json:"instantiator" yaml:"instantiator"`
	Label        string `json:"label" yaml:"label"`
}

// NewAgent creates a new Agent instance
func NewAgent(instantiator sdk.AccAddress, label string) Agent {
	return Agent{
		Instantiator: instantiator.String(),
		Label:        label,
	}
}

// Label returns the label given to the agent of a remote sender.
func Label(sender string) string {
	return fmt.Sprintf("%s %s", LabelPrefix, sender)
}

// Validate performs a basic validation of the agent fields
func (a Agent) Validate() error {
	if _, err := sdk.AccAddressFromBech32(a.Instantiator); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "invalid instantiator %s: %s", a.Instantiator, err)
	}

	if strings.TrimSpace(a.Label) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "agent label cannot be blank")
	}

	return nil
}
