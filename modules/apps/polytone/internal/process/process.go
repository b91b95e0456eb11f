package process

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
)

// Bounded executes fn in a branch of ctx metered by a gas meter limited to gasLimit and writes the
// branch only if fn returns nil. The gas consumed by the branch, up to the limit, is charged to ctx.
//
// Error Precedence and Returns:
//   - out of gas: takes the highest precedence, an error wrapped with ErrOutOfGas is returned.
//   - panic: any other panic is recovered and an error wrapped with ErrPanic is returned.
//   - fnErr: if fn returns an error, it is returned as-is.
func Bounded(ctx sdk.Context, gasLimit uint64, descriptor string, fn func(sdk.Context) error) (err error) {
	cachedCtx, writeFn := ctx.CacheContext()
	cachedCtx = cachedCtx.WithGasMeter(storetypes.NewGasMeter(gasLimit))

	defer func() {
		// consume the minimum of g.consumed and g.limit
		ctx.GasMeter().ConsumeGas(cachedCtx.GasMeter().GasConsumedToLimit(), descriptor)

		if r := recover(); r != nil {
			err = errorsmod.Wrapf(ibcerrors.ErrPanic, "%s panicked with: %v", descriptor, r)
		}

		if cachedCtx.GasMeter().IsPastLimit() {
			err = errorsmod.Wrapf(ibcerrors.ErrOutOfGas, "%s out of gas; limit: %d", descriptor, gasLimit)
		}
	}()

	err = fn(cachedCtx)
	if err == nil {
		writeFn()
	}

	return err
}

// Describe returns a descriptor naming the packet being processed.
func Describe(action, portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("polytone %s %s/%s/%d", action, portID, channelID, sequence)
}
