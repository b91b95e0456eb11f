package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/internal/events"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

// OnChanOpenInit performs basic validation of channel initialization and records the connection
// the channel is opened on. It returns the voice tagged version.
func (k Keeper) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	counterparty channeltypes.Counterparty,
	version string,
) (string, error) {
	if err := validateChannelParams(connectionHops, portID); err != nil {
		return "", err
	}

	version, err := polytonetypes.ValidateOpenInit(order, version, polytonetypes.RoleVoice)
	if err != nil {
		return "", err
	}

	if err := k.bindChannel(ctx, channelID, connectionHops[0], counterparty.PortId); err != nil {
		return "", err
	}

	return version, nil
}

// OnChanOpenTry checks that the counterparty is a note, records the connection the channel is
// opened on and publishes the extensions the voice supports.
func (k Keeper) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if err := validateChannelParams(connectionHops, portID); err != nil {
		return "", err
	}

	version, err := polytonetypes.ValidateOpenTry(order, counterpartyVersion, polytonetypes.RoleVoice, polytonetypes.SupportedExtensions())
	if err != nil {
		return "", err
	}

	if err := k.bindChannel(ctx, channelID, connectionHops[0], counterparty.PortId); err != nil {
		return "", err
	}

	return version, nil
}

// OnChanOpenAck checks that every extension the note announced is supported by the voice.
func (Keeper) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	counterpartyVersion string,
) error {
	return polytonetypes.ValidateConnect(counterpartyVersion, polytonetypes.SupportedExtensions(), polytonetypes.RoleVoice)
}

// OnChanCloseConfirm removes the connection binding of a channel closed by the counterparty.
func (k Keeper) OnChanCloseConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return k.ChannelConnections.Remove(ctx, channelID)
}

func (k Keeper) bindChannel(ctx sdk.Context, channelID, connectionID, counterpartyPortID string) error {
	if err := k.ChannelConnections.Set(ctx, channelID, connectionID); err != nil {
		return errorsmod.Wrapf(err, "failed to bind channel %s to connection %s", channelID, connectionID)
	}

	events.EmitChannelOpenEvent(ctx, channelID, connectionID, counterpartyPortID)
	return nil
}

func validateChannelParams(connectionHops []string, portID string) error {
	if portID != types.PortID {
		return errorsmod.Wrapf(porttypes.ErrInvalidPort, "invalid port: %s, expected %s", portID, types.PortID)
	}

	if len(connectionHops) != 1 {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "expected a single connection hop, got %d", len(connectionHops))
	}

	return nil
}
