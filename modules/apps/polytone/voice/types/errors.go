package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidParams      = errorsmod.Register(ModuleName, 2, "invalid params")
	ErrUnknownChannel     = errorsmod.Register(ModuleName, 3, "unknown channel")
	ErrQueryNotAllowed    = errorsmod.Register(ModuleName, 4, "query path not allowed")
	ErrExecutionFailed    = errorsmod.Register(ModuleName, 5, "execution failed")
	ErrInvalidChannelFlow = errorsmod.Register(ModuleName, 6, "invalid message sent to channel end")
)
