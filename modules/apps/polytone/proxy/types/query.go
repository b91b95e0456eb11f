package types

import "context"

// QueryAgentRequest is the request type for the Query/Agent method
type QueryAgentRequest struct {
	Address string `json:"address"`
}

// QueryAgentResponse is the response type for the Query/Agent method
type QueryAgentResponse struct {
	Agent Agent `json:"agent"`
}

// QueryCollectorRequest is the request type for the Query/Collector method
type QueryCollectorRequest struct {
	Address string `json:"address"`
}

// QueryCollectorResponse is the response type for the Query/Collector method
type QueryCollectorResponse struct {
	Collector *Collector `json:"collector,omitempty"`
	Pending   int        `json:"pending"`
}

// QueryParamsRequest is the request type for the Query/Params method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params method
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryServer is the server API for the proxy Query service
type QueryServer interface {
	Agent(context.Context, *QueryAgentRequest) (*QueryAgentResponse, error)
	Collector(context.Context, *QueryCollectorRequest) (*QueryCollectorResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
}
