package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/polytone/polytone-go/internal/collections"
)

// Role identifies which end of a note/voice pair a channel endpoint plays.
type Role string

const (
	RoleNote  Role = "note"
	RoleVoice Role = "voice"
)

// Validate returns an error if the role is neither note nor voice.
func (r Role) Validate() error {
	switch r {
	case RoleNote, RoleVoice:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidRole, "%q", string(r))
	}
}

// Version returns the role tagged version, e.g. polytone-1-note.
func (r Role) Version() string {
	return fmt.Sprintf("%s-%s", Version, r)
}

// Counterparty returns the role expected on the other end of the channel.
func (r Role) Counterparty() Role {
	if r == RoleNote {
		return RoleVoice
	}
	return RoleNote
}

// ValidateOpenInit performs the checks required of the endpoint initiating the handshake
// and returns the role tagged version to propose. An empty version is treated as the base version.
func ValidateOpenInit(order channeltypes.Order, version string, role Role) (string, error) {
	if err := role.Validate(); err != nil {
		return "", err
	}

	if order != channeltypes.UNORDERED {
		return "", errorsmod.Wrapf(channeltypes.ErrInvalidChannelOrdering, "expected %s channel, got %s", channeltypes.UNORDERED, order)
	}

	if version == "" {
		version = Version
	}

	if version != Version {
		return "", errorsmod.Wrapf(ErrProtocolMismatch, "got %s, expected %s", version, Version)
	}

	return role.Version(), nil
}

// ValidateOpenTry checks the version proposed by the counterparty, which must be the tag of the
// opposite role, and returns the encoded extension set published by this endpoint.
func ValidateOpenTry(order channeltypes.Order, counterpartyVersion string, role Role, extensions []string) (string, error) {
	if err := role.Validate(); err != nil {
		return "", err
	}

	if order != channeltypes.UNORDERED {
		return "", errorsmod.Wrapf(channeltypes.ErrInvalidChannelOrdering, "expected %s channel, got %s", channeltypes.UNORDERED, order)
	}

	expected := role.Counterparty().Version()
	if counterpartyVersion != expected {
		return "", errorsmod.Wrapf(ErrProtocolMismatch, "got %s, expected %s", counterpartyVersion, expected)
	}

	return EncodeExtensions(extensions)
}

// ValidateConnect checks the extension set published by the counterparty once the handshake
// reaches OpenAck. A note requires every extension it needs to be published, a voice requires
// every published extension to be one it supports.
func ValidateConnect(counterpartyVersion string, extensions []string, role Role) error {
	published, err := DecodeExtensions(counterpartyVersion)
	if err != nil {
		return err
	}

	switch role {
	case RoleNote:
		if missing, found := collections.FirstMissing(extensions, published); found {
			return errorsmod.Wrapf(ErrUnsupportedExtension, "voice does not speak %s", missing)
		}
	case RoleVoice:
		if missing, found := collections.FirstMissing(published, extensions); found {
			return errorsmod.Wrapf(ErrUnsupportedExtension, "note announced unsupported extension %s", missing)
		}
	default:
		return errorsmod.Wrapf(ErrInvalidRole, "%q", string(role))
	}

	return nil
}

// EncodeExtensions encodes an extension set as base64 of its JSON list.
func EncodeExtensions(extensions []string) (string, error) {
	if extensions == nil {
		extensions = []string{}
	}

	bz, err := json.Marshal(extensions)
	if err != nil {
		return "", errorsmod.Wrap(ErrInvalidExtensions, err.Error())
	}

	return base64.StdEncoding.EncodeToString(bz), nil
}

// DecodeExtensions decodes an extension set produced by EncodeExtensions.
func DecodeExtensions(encoded string) ([]string, error) {
	bz, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidExtensions, "not base64: %s", err)
	}

	var extensions []string
	if err := json.Unmarshal(bz, &extensions); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidExtensions, "not a JSON list of strings: %s", err)
	}

	return extensions, nil
}
