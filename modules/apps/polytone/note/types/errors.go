package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrActiveChannelAlreadySet = errorsmod.Register(ModuleName, 2, "active channel already set")
	ErrNoActiveChannel         = errorsmod.Register(ModuleName, 3, "no active channel, the note is not paired")
	ErrInvalidCallbackMsg      = errorsmod.Register(ModuleName, 4, "invalid callback message")
	ErrInvalidTimeout          = errorsmod.Register(ModuleName, 5, "invalid timeout")
	ErrCallbackRequired        = errorsmod.Register(ModuleName, 6, "callback required")
	ErrInvalidPair             = errorsmod.Register(ModuleName, 7, "invalid pair")
	ErrInvalidChannelFlow      = errorsmod.Register(ModuleName, 8, "invalid message sent to channel end")
)
