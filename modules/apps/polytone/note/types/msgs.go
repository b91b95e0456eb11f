package types

import (
	"encoding/json"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// MsgExecute sends an ordered batch of actions to be executed by the sender's remote proxy.
type MsgExecute struct {
	Sender string `json:"sender"`
	// OnBehalfOf must be set, and only then, when the note has a controller
	OnBehalfOf string            `json:"on_behalf_of,omitempty"`
	Msgs       []json.RawMessage `json:"msgs"`
	Callback   *CallbackRequest  `json:"callback,omitempty"`
	// TimeoutSeconds is relative to the block time, zero selects the default timeout
	TimeoutSeconds uint64 `json:"timeout_seconds,omitempty"`
}

// MsgExecuteResponse defines the response type for MsgExecute
type MsgExecuteResponse struct {
	Sequence uint64 `json:"sequence"`
}

// MsgQuery sends an ordered batch of queries. Query results are only delivered through a callback.
type MsgQuery struct {
	Sender         string                       `json:"sender"`
	OnBehalfOf     string                       `json:"on_behalf_of,omitempty"`
	Msgs           []polytonetypes.QueryRequest `json:"msgs"`
	Callback       CallbackRequest              `json:"callback"`
	TimeoutSeconds uint64                       `json:"timeout_seconds,omitempty"`
}

// MsgQueryResponse defines the response type for MsgQuery
type MsgQueryResponse struct {
	Sequence uint64 `json:"sequence"`
}

// NewMsgExecute creates a new MsgExecute instance
func NewMsgExecute(sender, onBehalfOf string, msgs []json.RawMessage, callback *CallbackRequest, timeoutSeconds uint64) *MsgExecute {
	return &MsgExecute{
		Sender:         sender,
		OnBehalfOf:     onBehalfOf,
		Msgs:           msgs,
		Callback:       callback,
		TimeoutSeconds: timeoutSeconds,
	}
}

// NewMsgQuery creates a new MsgQuery instance
func NewMsgQuery(sender, onBehalfOf string, msgs []polytonetypes.QueryRequest, callback CallbackRequest, timeoutSeconds uint64) *MsgQuery {
	return &MsgQuery{
		Sender:         sender,
		OnBehalfOf:     onBehalfOf,
		Msgs:           msgs,
		Callback:       callback,
		TimeoutSeconds: timeoutSeconds,
	}
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgExecute) ValidateBasic() error {
	if strings.TrimSpace(msg.Sender) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "sender cannot be blank")
	}

	if msg.Callback != nil {
		if err := msg.Callback.ValidateBasic(); err != nil {
			return err
		}
	}

	if _, err := Timeout(msg.TimeoutSeconds); err != nil {
		return err
	}

	return polytonetypes.NewExecutePacketData(msg.Sender, msg.Msgs).ValidateBasic()
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgQuery) ValidateBasic() error {
	if strings.TrimSpace(msg.Sender) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "sender cannot be blank")
	}

	if err := msg.Callback.ValidateBasic(); err != nil {
		return errorsmod.Wrap(ErrCallbackRequired, err.Error())
	}

	if _, err := Timeout(msg.TimeoutSeconds); err != nil {
		return err
	}

	return polytonetypes.NewQueryPacketData(msg.Sender, msg.Msgs).ValidateBasic()
}

// Timeout returns the relative packet timeout selected by timeoutSeconds.
func Timeout(timeoutSeconds uint64) (time.Duration, error) {
	if timeoutSeconds == 0 {
		return DefaultTimeout, nil
	}

	if timeoutSeconds > uint64(MaxTimeout/time.Second) {
		return 0, errorsmod.Wrapf(ErrInvalidTimeout, "timeout of %ds exceeds the maximum of %s", timeoutSeconds, MaxTimeout)
	}

	return time.Duration(timeoutSeconds) * time.Second, nil
}
