package keeper

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/internal/events"
	"github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// OnChanOpenInit checks that no channel is active and that the counterparty matches the pair the
// note is bound to, if any. It returns the note tagged version.
func (k Keeper) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	counterparty channeltypes.Counterparty,
	version string,
) (string, error) {
	if err := k.validateChannelOpen(ctx, connectionHops, portID, counterparty.PortId); err != nil {
		return "", err
	}

	return polytonetypes.ValidateOpenInit(order, version, polytonetypes.RoleNote)
}

// OnChanOpenTry performs the same checks as OnChanOpenInit for a handshake started by the voice
// and publishes the extensions the note supports.
func (k Keeper) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if err := k.validateChannelOpen(ctx, connectionHops, portID, counterparty.PortId); err != nil {
		return "", err
	}

	return polytonetypes.ValidateOpenTry(order, counterpartyVersion, polytonetypes.RoleNote, polytonetypes.SupportedExtensions())
}

// OnChanOpenAck checks that the voice supports every extension the note requires and connects
// the channel.
func (k Keeper) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	counterpartyVersion string,
) error {
	if err := polytonetypes.ValidateConnect(counterpartyVersion, polytonetypes.SupportedExtensions(), polytonetypes.RoleNote); err != nil {
		return err
	}

	return k.connect(ctx, portID, channelID)
}

// OnChanOpenConfirm connects a channel whose handshake was started by the voice.
func (k Keeper) OnChanOpenConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return k.connect(ctx, portID, channelID)
}

// OnChanCloseConfirm clears the active channel if the closed channel is the one in use. The pair
// is kept, so only a channel to the same voice may replace it.
func (k Keeper) OnChanCloseConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	if activeChannelID, found := k.GetActiveChannel(ctx); found && activeChannelID == channelID {
		k.Logger(ctx).Info("active channel closed", "channel_id", channelID)
		return k.ActiveChannel.Remove(ctx)
	}

	return nil
}

// connect stores the pair of an opened channel if the note has none and makes it the active channel.
func (k Keeper) connect(ctx sdk.Context, portID, channelID string) error {
	channel, found := k.channelKeeper.GetChannel(ctx, portID, channelID)
	if !found {
		return errorsmod.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", portID, channelID)
	}

	if err := validateConnectionHops(channel.ConnectionHops); err != nil {
		return err
	}

	connected := types.NewPair(channel.ConnectionHops[0], channel.Counterparty.PortId)
	pair, found, err := k.GetPair(ctx)
	if err != nil {
		return err
	}

	if found {
		if err := checkPair(pair, connected); err != nil {
			return err
		}
	} else if err := k.Pair.Set(ctx, connected); err != nil {
		return err
	}

	if err := k.ActiveChannel.Set(ctx, channelID); err != nil {
		return err
	}

	k.Logger(ctx).Info("channel connected", "channel_id", channelID, "pair", connected.String())
	events.EmitChannelConnectEvent(ctx, channelID, connected)

	return nil
}

func (k Keeper) validateChannelOpen(ctx sdk.Context, connectionHops []string, portID, counterpartyPortID string) error {
	if portID != types.PortID {
		return errorsmod.Wrapf(porttypes.ErrInvalidPort, "invalid port: %s, expected %s", portID, types.PortID)
	}

	if err := validateConnectionHops(connectionHops); err != nil {
		return err
	}

	if activeChannelID, found := k.GetActiveChannel(ctx); found {
		return errorsmod.Wrapf(types.ErrActiveChannelAlreadySet, "existing active channel %s", activeChannelID)
	}

	pair, found, err := k.GetPair(ctx)
	if err != nil || !found {
		return err
	}

	return checkPair(pair, types.NewPair(connectionHops[0], counterpartyPortID))
}

func validateConnectionHops(connectionHops []string) error {
	if len(connectionHops) != 1 || strings.TrimSpace(connectionHops[0]) == "" {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "expected a single connection hop, got %v", connectionHops)
	}
	return nil
}

func checkPair(pair, suggested types.Pair) error {
	if pair != suggested {
		return errorsmod.Wrapf(polytonetypes.ErrAlreadyPaired, "suggested %s, paired with %s", suggested, pair)
	}
	return nil
}
