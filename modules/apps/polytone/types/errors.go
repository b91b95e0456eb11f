package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrProtocolMismatch       = errorsmod.Register(ModuleName, 20, "protocol mismatch")
	ErrUnsupportedExtension   = errorsmod.Register(ModuleName, 21, "unsupported extension")
	ErrInvalidExtensions      = errorsmod.Register(ModuleName, 22, "invalid extensions")
	ErrAlreadyPaired          = errorsmod.Register(ModuleName, 23, "already paired")
	ErrNotController          = errorsmod.Register(ModuleName, 24, "caller is not the controller")
	ErrDelegationRequired     = errorsmod.Register(ModuleName, 25, "on_behalf_of must be set when a controller is configured")
	ErrUnexpectedDelegation   = errorsmod.Register(ModuleName, 26, "on_behalf_of must not be set without a controller")
	ErrInvalidPacketData      = errorsmod.Register(ModuleName, 27, "invalid packet data")
	ErrInvalidAcknowledgement = errorsmod.Register(ModuleName, 28, "invalid acknowledgement")
	ErrInvalidRequestKind     = errorsmod.Register(ModuleName, 29, "invalid request kind")
	ErrInvalidSalt            = errorsmod.Register(ModuleName, 30, "invalid salt")
	ErrInvalidCodeHash        = errorsmod.Register(ModuleName, 31, "invalid code hash")
	ErrInvalidRole            = errorsmod.Register(ModuleName, 32, "invalid role")
)
