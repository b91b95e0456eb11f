package types

import "context"

// QueryParamsRequest is the request type for the Query/Params method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params method
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryComputeBudgetRequest is the request type for the Query/ComputeBudget method
type QueryComputeBudgetRequest struct{}

// QueryComputeBudgetResponse is the response type for the Query/ComputeBudget method
type QueryComputeBudgetResponse struct {
	BlockMaxGas   uint64 `json:"block_max_gas"`
	AckGasReserve uint64 `json:"ack_gas_reserve"`
	PacketGas     uint64 `json:"packet_gas"`
}

// QueryProxyAddressRequest is the request type for the Query/ProxyAddress method
type QueryProxyAddressRequest struct {
	ConnectionID       string `json:"connection_id"`
	CounterpartyPortID string `json:"counterparty_port_id"`
	Sender             string `json:"sender"`
}

// QueryProxyAddressResponse is the response type for the Query/ProxyAddress method
type QueryProxyAddressResponse struct {
	Address string `json:"address"`
	// Provisioned is true if the proxy was already created for the sender
	Provisioned bool `json:"provisioned"`
}

// QueryServer is the server API for the voice Query service
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	ComputeBudget(context.Context, *QueryComputeBudgetRequest) (*QueryComputeBudgetResponse, error)
	ProxyAddress(context.Context, *QueryProxyAddressRequest) (*QueryProxyAddressResponse, error)
}

// MsgServer is the server API for the voice Msg service
type MsgServer interface {
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
