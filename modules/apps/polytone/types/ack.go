package types

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
)

var _ ibcexported.Acknowledgement = (*Acknowledgement)(nil)

// ErrorResponse locates the failing message of a batch.
type ErrorResponse struct {
	MessageIndex uint64 `json:"message_index"`
	Error        string `json:"error"`
}

// ActionResult is the outcome of one successfully executed action.
type ActionResult struct {
	Data []byte `json:"data,omitempty"`
}

// ExecutionResponse is returned when every action of a batch succeeded.
type ExecutionResponse struct {
	ExecutedBy string         `json:"executed_by"`
	Result     []ActionResult `json:"result"`
}

// QueryCallback is the result of a query batch. Exactly one of Responses or Error is meaningful.
type QueryCallback struct {
	Responses [][]byte       `json:"responses,omitempty"`
	Error     *ErrorResponse `json:"error,omitempty"`
}

// ExecuteCallback is the result of an execute batch. Exactly one of Response or Error is set.
type ExecuteCallback struct {
	Response *ExecutionResponse `json:"response,omitempty"`
	Error    *ErrorResponse     `json:"error,omitempty"`
}

// Callback is the tagged result delivered for a request. Exactly one field is set.
type Callback struct {
	Query      *QueryCallback   `json:"query,omitempty"`
	Execute    *ExecuteCallback `json:"execute,omitempty"`
	FatalError *string          `json:"fatal_error,omitempty"`
}

// NewQuerySuccess returns a callback carrying the responses of a query batch in order.
func NewQuerySuccess(responses [][]byte) Callback {
	if responses == nil {
		responses = [][]byte{}
	}
	return Callback{Query: &QueryCallback{Responses: responses}}
}

// NewQueryError returns a callback reporting the failing query of a batch.
func NewQueryError(index uint64, msg string) Callback {
	return Callback{Query: &QueryCallback{Error: &ErrorResponse{MessageIndex: index, Error: msg}}}
}

// NewExecuteSuccess returns a callback carrying the executing agent and per action results.
func NewExecuteSuccess(executedBy string, result []ActionResult) Callback {
	if result == nil {
		result = []ActionResult{}
	}
	return Callback{Execute: &ExecuteCallback{Response: &ExecutionResponse{ExecutedBy: executedBy, Result: result}}}
}

// NewExecuteError returns a callback reporting the failing action of a batch.
func NewExecuteError(index uint64, msg string) Callback {
	return Callback{Execute: &ExecuteCallback{Error: &ErrorResponse{MessageIndex: index, Error: msg}}}
}

// NewFatalError returns a callback reporting a failure outside of message execution.
func NewFatalError(msg string) Callback {
	return Callback{FatalError: &msg}
}

// NewTimeoutCallback synthesizes the callback delivered when a request of the given kind times out.
func NewTimeoutCallback(kind RequestKind) Callback {
	switch kind {
	case RequestKindExecute:
		return NewExecuteError(0, TimeoutError)
	case RequestKindQuery:
		return NewQueryError(0, TimeoutError)
	default:
		panic(fmt.Errorf("timeout for unknown request kind %d", int(kind)))
	}
}

// Kind returns the request kind the callback answers. Fatal errors have no kind.
func (c Callback) Kind() (RequestKind, bool) {
	switch {
	case c.Execute != nil:
		return RequestKindExecute, true
	case c.Query != nil:
		return RequestKindQuery, true
	default:
		return 0, false
	}
}

// IsFatal returns true if the callback reports a fatal error.
func (c Callback) IsFatal() bool {
	return c.FatalError != nil
}

// Success returns true if the request was fully executed.
func (c Callback) Success() bool {
	switch {
	case c.Execute != nil:
		return c.Execute.Error == nil
	case c.Query != nil:
		return c.Query.Error == nil
	default:
		return false
	}
}

// ExecutedBy returns the executing agent of a successful execute callback.
func (c Callback) ExecutedBy() (string, bool) {
	if c.Execute == nil || c.Execute.Response == nil {
		return "", false
	}
	return c.Execute.Response.ExecutedBy, true
}

// ValidateBasic checks that exactly one variant is set and that it is internally consistent.
func (c Callback) ValidateBasic() error {
	set := 0
	if c.Query != nil {
		set++
		if c.Query.Error != nil && len(c.Query.Responses) != 0 {
			return errorsmod.Wrap(ErrInvalidAcknowledgement, "query callback cannot carry both responses and an error")
		}
	}
	if c.Execute != nil {
		set++
		if (c.Execute.Response == nil) == (c.Execute.Error == nil) {
			return errorsmod.Wrap(ErrInvalidAcknowledgement, "execute callback must carry exactly one of response or error")
		}
	}
	if c.FatalError != nil {
		set++
	}

	if set != 1 {
		return errorsmod.Wrapf(ErrInvalidAcknowledgement, "expected exactly one callback variant, got %d", set)
	}
	return nil
}

// GetBytes returns the JSON encoding of the callback.
func (c Callback) GetBytes() []byte {
	bz, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return bz
}

// Acknowledgement wraps a Callback so that it can be written by core IBC.
// Application failures travel inside the callback, so the acknowledgement is always successful.
type Acknowledgement struct {
	callback Callback
}

// NewAcknowledgement returns an acknowledgement for the given callback.
func NewAcknowledgement(cb Callback) Acknowledgement {
	return Acknowledgement{callback: cb}
}

// NewQueryAck encodes the acknowledgement of a query batch. A non nil failure takes precedence.
func NewQueryAck(responses [][]byte, failure *ErrorResponse) Acknowledgement {
	if failure != nil {
		return NewAcknowledgement(NewQueryError(failure.MessageIndex, failure.Error))
	}
	return NewAcknowledgement(NewQuerySuccess(responses))
}

// NewExecuteAck encodes the acknowledgement of an execute batch. A non nil failure takes precedence.
func NewExecuteAck(response *ExecutionResponse, failure *ErrorResponse) Acknowledgement {
	if failure != nil {
		return NewAcknowledgement(NewExecuteError(failure.MessageIndex, failure.Error))
	}
	if response == nil {
		response = &ExecutionResponse{}
	}
	return NewAcknowledgement(NewExecuteSuccess(response.ExecutedBy, response.Result))
}

// NewFatalAck encodes the acknowledgement of a packet that could not be processed.
func NewFatalAck(msg string) Acknowledgement {
	return NewAcknowledgement(NewFatalError(msg))
}

// Success implements the Acknowledgement interface.
func (Acknowledgement) Success() bool {
	return true
}

// Acknowledgement implements the Acknowledgement interface.
func (a Acknowledgement) Acknowledgement() []byte {
	return a.callback.GetBytes()
}

// Callback returns the wrapped callback.
func (a Acknowledgement) Callback() Callback {
	return a.callback
}

// DecodeAck decodes acknowledgement bytes for a request of the given kind. It never fails:
// bytes which do not hold exactly one variant matching the kind are reported as a fatal error
// carrying the base64 encoding of the raw acknowledgement.
func DecodeAck(bz []byte, kind RequestKind) Callback {
	cb, err := unmarshalCallback(bz)
	if err != nil {
		return NewFatalError(base64.StdEncoding.EncodeToString(bz))
	}

	if cb.IsFatal() {
		return cb
	}

	if cbKind, _ := cb.Kind(); cbKind != kind {
		return NewFatalError(base64.StdEncoding.EncodeToString(bz))
	}

	return cb
}

func unmarshalCallback(bz []byte) (Callback, error) {
	var cb Callback

	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cb); err != nil {
		return Callback{}, err
	}

	if dec.More() {
		return Callback{}, errorsmod.Wrap(ErrInvalidAcknowledgement, "trailing data after callback")
	}

	if err := cb.ValidateBasic(); err != nil {
		return Callback{}, err
	}

	return cb, nil
}

// RedactError returns a deterministic description of err suitable for acknowledgements.
// Only the codespace and code are kept, the message may differ across validators.
func RedactError(err error) string {
	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	return fmt.Sprintf("codespace: %s, code: %d", codespace, code)
}
