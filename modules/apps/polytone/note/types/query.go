package types

import "context"

// QueryActiveChannelRequest is the request type for the Query/ActiveChannel method
type QueryActiveChannelRequest struct{}

// QueryActiveChannelResponse is the response type for the Query/ActiveChannel method
type QueryActiveChannelResponse struct {
	ChannelID string `json:"channel_id"`
}

// QueryPairRequest is the request type for the Query/Pair method
type QueryPairRequest struct{}

// QueryPairResponse is the response type for the Query/Pair method
type QueryPairResponse struct {
	Pair *Pair `json:"pair,omitempty"`
}

// QueryControllerRequest is the request type for the Query/Controller method
type QueryControllerRequest struct{}

// QueryControllerResponse is the response type for the Query/Controller method
type QueryControllerResponse struct {
	Controller string `json:"controller,omitempty"`
}

// QueryRemoteAddressRequest is the request type for the Query/RemoteAddress method
type QueryRemoteAddressRequest struct {
	Initiator string `json:"initiator"`
}

// QueryRemoteAddressResponse is the response type for the Query/RemoteAddress method
type QueryRemoteAddressResponse struct {
	// Address is empty until an execute request of the initiator succeeded with a callback
	Address string `json:"address,omitempty"`
}

// QueryPendingCallbackRequest is the request type for the Query/PendingCallback method
type QueryPendingCallbackRequest struct {
	PortID         string `json:"port_id"`
	ChannelID      string `json:"channel_id"`
	PacketSequence uint64 `json:"packet_sequence"`
}

// QueryPendingCallbackResponse is the response type for the Query/PendingCallback method
type QueryPendingCallbackResponse struct {
	Sequence uint64          `json:"sequence"`
	Callback PendingCallback `json:"callback"`
}

// QueryServer is the server API for the note Query service
type QueryServer interface {
	ActiveChannel(context.Context, *QueryActiveChannelRequest) (*QueryActiveChannelResponse, error)
	Pair(context.Context, *QueryPairRequest) (*QueryPairResponse, error)
	Controller(context.Context, *QueryControllerRequest) (*QueryControllerResponse, error)
	RemoteAddress(context.Context, *QueryRemoteAddressRequest) (*QueryRemoteAddressResponse, error)
	PendingCallback(context.Context, *QueryPendingCallbackRequest) (*QueryPendingCallbackResponse, error)
}

// MsgServer is the server API for the note Msg service
type MsgServer interface {
	Execute(context.Context, *MsgExecute) (*MsgExecuteResponse, error)
	Query(context.Context, *MsgQuery) (*MsgQueryResponse, error)
}
