package mock

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// PanicPath is a query path the Querier panics on.
const PanicPath = "/mock.Query/Panic"

// Querier answers queries from a fixed set of responses.
type Querier struct {
	Responses map[string][]byte
	Calls     []polytonetypes.QueryRequest
}

// NewQuerier creates a new Querier answering the given paths
func NewQuerier(responses map[string][]byte) *Querier {
	if responses == nil {
		responses = make(map[string][]byte)
	}
	return &Querier{Responses: responses}
}

// Query implements the voice Querier interface
func (q *Querier) Query(_ sdk.Context, req polytonetypes.QueryRequest) ([]byte, error) {
	q.Calls = append(q.Calls, req)

	if req.Path == PanicPath {
		panic("mock query panic")
	}

	res, found := q.Responses[req.Path]
	if !found {
		return nil, errorsmod.Wrapf(ErrMockQuery, "no response for %s", req.Path)
	}
	return res, nil
}
