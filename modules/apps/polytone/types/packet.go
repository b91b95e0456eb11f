package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// RequestKind is the closed set of request variants a note can send.
type RequestKind int

const (
	RequestKindExecute RequestKind = iota + 1
	RequestKindQuery
)

// String implements fmt.Stringer.
func (k RequestKind) String() string {
	switch k {
	case RequestKindExecute:
		return "execute"
	case RequestKindQuery:
		return "query"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Validate returns an error if the kind is not one of the known variants.
func (k RequestKind) Validate() error {
	switch k {
	case RequestKindExecute, RequestKindQuery:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidRequestKind, "%d", int(k))
	}
}

// MarshalJSON encodes the kind by name.
func (k RequestKind) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind encoded by name.
func (k *RequestKind) UnmarshalJSON(bz []byte) error {
	var name string
	if err := json.Unmarshal(bz, &name); err != nil {
		return err
	}

	switch name {
	case "execute":
		*k = RequestKindExecute
	case "query":
		*k = RequestKindQuery
	default:
		return errorsmod.Wrapf(ErrInvalidRequestKind, "%q", name)
	}
	return nil
}

// QueryRequest is a single query routed by path on the executing chain.
type QueryRequest struct {
	Path string `json:"path"`
	Data []byte `json:"data,omitempty"`
}

// ValidateBasic performs a basic check of the query request fields.
func (q QueryRequest) ValidateBasic() error {
	if strings.TrimSpace(q.Path) == "" {
		return errorsmod.Wrap(ErrInvalidPacketData, "query path cannot be blank")
	}
	return nil
}

// ExecuteMsg carries an ordered batch of opaque JSON encoded actions.
type ExecuteMsg struct {
	Msgs []json.RawMessage `json:"msgs"`
}

// QueryMsg carries an ordered batch of query requests.
type QueryMsg struct {
	Msgs []QueryRequest `json:"msgs"`
}

// Msg is the request body. Exactly one of Execute or Query is set.
type Msg struct {
	Execute *ExecuteMsg `json:"execute,omitempty"`
	Query   *QueryMsg   `json:"query,omitempty"`
}

// Kind returns the variant held by the message.
func (m Msg) Kind() (RequestKind, error) {
	switch {
	case m.Execute != nil && m.Query != nil:
		return 0, errorsmod.Wrap(ErrInvalidPacketData, "message cannot be both execute and query")
	case m.Execute != nil:
		return RequestKindExecute, nil
	case m.Query != nil:
		return RequestKindQuery, nil
	default:
		return 0, errorsmod.Wrap(ErrInvalidPacketData, "message must be execute or query")
	}
}

// PacketData is the data sent by a note to a voice.
type PacketData struct {
	Sender string `json:"sender"`
	Msg    Msg    `json:"msg"`
}

// NewExecutePacketData creates a packet carrying an ordered action batch.
func NewExecutePacketData(sender string, actions []json.RawMessage) PacketData {
	if actions == nil {
		actions = []json.RawMessage{}
	}
	return PacketData{
		Sender: sender,
		Msg:    Msg{Execute: &ExecuteMsg{Msgs: actions}},
	}
}

// NewQueryPacketData creates a packet carrying an ordered query batch.
func NewQueryPacketData(sender string, requests []QueryRequest) PacketData {
	if requests == nil {
		requests = []QueryRequest{}
	}
	return PacketData{
		Sender: sender,
		Msg:    Msg{Query: &QueryMsg{Msgs: requests}},
	}
}

// ValidateBasic performs a basic check of the packet fields.
func (pd PacketData) ValidateBasic() error {
	if strings.TrimSpace(pd.Sender) == "" {
		return errorsmod.Wrap(ErrInvalidPacketData, "sender cannot be blank")
	}

	kind, err := pd.Msg.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case RequestKindExecute:
		for i, action := range pd.Msg.Execute.Msgs {
			if len(action) == 0 || !json.Valid(action) {
				return errorsmod.Wrapf(ErrInvalidPacketData, "action %d is not valid JSON", i)
			}
		}
	case RequestKindQuery:
		for i, req := range pd.Msg.Query.Msgs {
			if err := req.ValidateBasic(); err != nil {
				return errorsmod.Wrapf(err, "query %d", i)
			}
		}
	}

	return nil
}

// Kind returns the request kind of the packet.
func (pd PacketData) Kind() (RequestKind, error) {
	return pd.Msg.Kind()
}

// Len returns the number of actions or queries carried by the packet.
func (pd PacketData) Len() int {
	switch {
	case pd.Msg.Execute != nil:
		return len(pd.Msg.Execute.Msgs)
	case pd.Msg.Query != nil:
		return len(pd.Msg.Query.Msgs)
	default:
		return 0
	}
}

// GetBytes returns the JSON encoding of the packet data. Actions are carried verbatim.
func (pd PacketData) GetBytes() []byte {
	bz, err := json.Marshal(pd)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalPacketData decodes packet bytes. Unknown fields are rejected.
func UnmarshalPacketData(bz []byte) (PacketData, error) {
	var pd PacketData

	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&pd); err != nil {
		return PacketData{}, errorsmod.Wrapf(ErrInvalidPacketData, "cannot unmarshal packet data: %s", err)
	}

	if dec.More() {
		return PacketData{}, errorsmod.Wrap(ErrInvalidPacketData, "trailing data after packet")
	}

	if err := pd.ValidateBasic(); err != nil {
		return PacketData{}, err
	}

	return pd, nil
}
