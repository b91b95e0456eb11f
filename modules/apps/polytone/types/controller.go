package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Authorize decides which local address a request is initiated by.
//
// Without a controller the caller is the initiator and on behalf of must be empty.
// With a controller only the controller may call, and it must name the account it acts for.
func Authorize(controller, caller, onBehalfOf string) (string, error) {
	if controller == "" {
		if onBehalfOf != "" {
			return "", errorsmod.Wrapf(ErrUnexpectedDelegation, "got %s", onBehalfOf)
		}
		return caller, nil
	}

	if caller != controller {
		return "", errorsmod.Wrapf(ErrNotController, "expected %s, got %s", controller, caller)
	}

	if onBehalfOf == "" {
		return "", ErrDelegationRequired
	}

	return onBehalfOf, nil
}
