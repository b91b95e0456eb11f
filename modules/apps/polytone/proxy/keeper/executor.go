package keeper

import (
	"bytes"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

var _ types.Executor = MsgRouterExecutor{}

// MsgRouterExecutor executes actions encoded as proto JSON sdk.Msgs through the message router.
// Every signer of a message must be the executing agent.
type MsgRouterExecutor struct {
	cdc       codec.Codec
	msgRouter types.MessageRouter
}

// NewMsgRouterExecutor creates a new MsgRouterExecutor instance
func NewMsgRouterExecutor(cdc codec.Codec, msgRouter types.MessageRouter) MsgRouterExecutor {
	return MsgRouterExecutor{
		cdc:       cdc,
		msgRouter: msgRouter,
	}
}

// Execute implements types.Executor. The returned data is the encoded message response.
func (e MsgRouterExecutor) Execute(ctx sdk.Context, agent sdk.AccAddress, action json.RawMessage) ([]byte, error) {
	var msg sdk.Msg
	if err := e.cdc.UnmarshalInterfaceJSON(action, &msg); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidAction, "cannot decode action: %s", err)
	}

	signers, _, err := e.cdc.GetMsgV1Signers(msg)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidAction, "cannot get signers of %s: %s", sdk.MsgTypeURL(msg), err)
	}

	for _, signer := range signers {
		if !bytes.Equal(signer, agent) {
			return nil, errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "unexpected signer address: expected %s, got %s", agent, sdk.AccAddress(signer))
		}
	}

	if m, ok := msg.(sdk.HasValidateBasic); ok {
		if err := m.ValidateBasic(); err != nil {
			return nil, err
		}
	}

	handler := e.msgRouter.Handler(msg)
	if handler == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRoute, sdk.MsgTypeURL(msg))
	}

	res, err := handler(ctx, msg)
	if err != nil {
		return nil, err
	}

	// NOTE: The sdk msg handler creates a new EventManager, so events must be correctly propagated back to the current context
	ctx.EventManager().EmitEvents(res.GetEvents())

	return res.Data, nil
}
