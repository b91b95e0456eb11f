package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidPosition      = errorsmod.Register(ModuleName, 2, "invalid result position")
	ErrDuplicateResult      = errorsmod.Register(ModuleName, 3, "duplicate result")
	ErrBatchInFlight        = errorsmod.Register(ModuleName, 4, "batch already in flight")
	ErrNotInstantiator      = errorsmod.Register(ModuleName, 5, "caller is not the instantiator")
	ErrAgentNotFound        = errorsmod.Register(ModuleName, 6, "agent not found")
	ErrAccountAlreadyExists = errorsmod.Register(ModuleName, 7, "account already exists")
	ErrInvalidBatchPolicy   = errorsmod.Register(ModuleName, 8, "invalid batch policy")
	ErrInvalidRoute         = errorsmod.Register(ModuleName, 9, "no message handler found")
	ErrInvalidAction        = errorsmod.Register(ModuleName, 10, "invalid action")
)
