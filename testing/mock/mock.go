package mock

import (
	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
)

const (
	ModuleName = "mock"

	StoreKey = ModuleName
)

var (
	// ErrMockAction is returned by the Executor for a failing action.
	ErrMockAction = errorsmod.Register(ModuleName, 2, "mock action failed")
	// ErrMockQuery is returned by the Querier for a failing query.
	ErrMockQuery = errorsmod.Register(ModuleName, 3, "mock query failed")
	// MockApplicationCallbackError should be returned when a callback receiver should fail. It is possible to
	// test that this error was returned using ErrorIs.
	MockApplicationCallbackError error = &applicationCallbackError{}
)

var (
	TestKey   = []byte("test-key")
	TestValue = []byte("test-value")
)

// applicationCallbackError is a custom error type that will be unique for testing purposes.
type applicationCallbackError struct{}

func (applicationCallbackError) Error() string {
	return "mock application callback failed"
}

// NewStoreKey returns the store key written to by the mocks.
func NewStoreKey() *storetypes.KVStoreKey {
	return storetypes.NewKVStoreKey(StoreKey)
}
