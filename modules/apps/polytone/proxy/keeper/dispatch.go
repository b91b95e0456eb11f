package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/internal/events"
	"github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// StartBatch opens a collector for a batch of n actions executed by agent.
func (k Keeper) StartBatch(ctx context.Context, agent sdk.AccAddress, n int) error {
	inFlight, err := k.Collectors.Has(ctx, agent)
	if err != nil {
		return err
	}
	if inFlight {
		return errorsmod.Wrapf(types.ErrBatchInFlight, "agent %s", agent)
	}

	return k.Collectors.Set(ctx, agent, types.NewCollector(n, k.GetParams(ctx).BatchPolicy))
}

// OnActionResult records the outcome of the action at pos. The batch result is returned once
// the batch is finalized, at which point the collector is cleared. A result for an agent with
// no batch in flight is stale and ignored.
func (k Keeper) OnActionResult(ctx context.Context, agent sdk.AccAddress, pos int, outcome types.Outcome) (*types.BatchResult, error) {
	collector, err := k.Collectors.Get(ctx, agent)
	if err != nil {
		if errorsmod.IsOf(err, collections.ErrNotFound) {
			k.Logger(ctx).Debug("ignoring stale action result", "agent", agent.String(), "position", pos)
			return nil, nil
		}
		return nil, err
	}

	result, err := collector.Record(pos, outcome)
	if err != nil {
		return nil, err
	}

	if result != nil {
		return result, k.Collectors.Remove(ctx, agent)
	}

	return nil, k.Collectors.Set(ctx, agent, collector)
}

// Dispatch executes actions in order on behalf of agent. Only the agent's instantiator may dispatch.
// Each action runs in its own branch of the batch state, and the batch state is written only if the
// batch as a whole succeeds.
func (k Keeper) Dispatch(ctx sdk.Context, caller, agent sdk.AccAddress, actions []json.RawMessage) (*types.BatchResult, error) {
	info, err := k.GetAgent(ctx, agent)
	if err != nil {
		return nil, err
	}

	if info.Instantiator != caller.String() {
		return nil, errorsmod.Wrapf(types.ErrNotInstantiator, "expected %s, got %s", info.Instantiator, caller)
	}

	if err := k.StartBatch(ctx, agent, len(actions)); err != nil {
		return nil, err
	}

	if len(actions) == 0 {
		if err := k.Collectors.Remove(ctx, agent); err != nil {
			return nil, err
		}
		result := &types.BatchResult{Results: []polytonetypes.ActionResult{}}
		events.EmitExecuteBatchEvent(ctx, agent, 0, *result)
		return result, nil
	}

	batchCtx, writeBatch := ctx.CacheContext()
	for i, action := range actions {
		actionCtx, writeAction := batchCtx.CacheContext()

		var outcome types.Outcome
		data, err := k.executor.Execute(actionCtx, agent, action)
		if err != nil {
			k.Logger(ctx).Info("action failed", "agent", agent.String(), "position", i, "error", err.Error())
			outcome = types.NewFailureOutcome(polytonetypes.RedactError(err))
		} else {
			writeAction()
			outcome = types.NewSuccessOutcome(data)
		}

		result, err := k.OnActionResult(ctx, agent, i, outcome)
		if err != nil {
			return nil, err
		}

		if result != nil {
			if result.Success() {
				writeBatch()
			}
			events.EmitExecuteBatchEvent(ctx, agent, len(actions), *result)
			return result, nil
		}
	}

	return nil, errorsmod.Wrapf(ibcerrors.ErrLogic, "batch of %d actions did not finalize", len(actions))
}
