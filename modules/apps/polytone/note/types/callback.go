package types

import (
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// CallbackRequest asks for the result of a request to be delivered to Receiver along with Msg.
type CallbackRequest struct {
	Receiver string          `json:"receiver"`
	Msg      json.RawMessage `json:"msg"`
}

// ValidateBasic performs a basic check of the callback request fields
func (r CallbackRequest) ValidateBasic() error {
	if strings.TrimSpace(r.Receiver) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "callback receiver cannot be blank")
	}

	if len(r.Msg) == 0 || !json.Valid(r.Msg) {
		return errorsmod.Wrap(ErrInvalidCallbackMsg, "callback msg must be valid JSON")
	}

	return nil
}

// PendingCallback is the ledger entry kept for a request awaiting its acknowledgement or timeout.
type PendingCallback struct {
	Initiator    string                    `json:"initiator"`
	InitiatorMsg json.RawMessage           `json:"initiator_msg"`
	Receiver     string                    `json:"receiver"`
	RequestKind  polytonetypes.RequestKind `json:"request_kind"`
}

// Validate performs a basic validation of the pending callback fields
func (p PendingCallback) Validate() error {
	if strings.TrimSpace(p.Initiator) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "initiator cannot be blank")
	}

	if err := p.RequestKind.Validate(); err != nil {
		return err
	}

	return CallbackRequest{Receiver: p.Receiver, Msg: p.InitiatorMsg}.ValidateBasic()
}

// CallbackMessage is delivered to the receiver of a resolved request.
type CallbackMessage struct {
	Initiator    string                 `json:"initiator"`
	InitiatorMsg json.RawMessage        `json:"initiator_msg"`
	Result       polytonetypes.Callback `json:"result"`
}

// CallbackDelivery is a resolved pending callback, ready to be handed to its receiver.
type CallbackDelivery struct {
	Sequence uint64
	Receiver string
	Message  CallbackMessage
}

// NewCallbackDelivery resolves a pending callback with the given result.
func NewCallbackDelivery(seq uint64, pending PendingCallback, result polytonetypes.Callback) *CallbackDelivery {
	return &CallbackDelivery{
		Sequence: seq,
		Receiver: pending.Receiver,
		Message: CallbackMessage{
			Initiator:    pending.Initiator,
			InitiatorMsg: pending.InitiatorMsg,
			Result:       result,
		},
	}
}
