package types

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
)

// MsgUpdateParams replaces the voice params. Updating the proxy code hash and the block
// compute budget together is how a voice is migrated to a new agent code.
type MsgUpdateParams struct {
	// Authority is the address that controls the voice (defaults to x/gov unless overwritten)
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse defines the response type for MsgUpdateParams
type MsgUpdateParamsResponse struct{}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Authority: authority,
		Params:    params,
	}
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	return msg.Params.Validate()
}
