package mock

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Operations understood by the Executor
const (
	OpOK      = "ok"
	OpSet     = "set"
	OpFail    = "fail"
	OpBurnGas = "burn_gas"
	OpPanic   = "panic"
)

// Action is the action format executed by the Executor.
type Action struct {
	Op    string `json:"op"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Gas   uint64 `json:"gas,omitempty"`
}

// ExecutorCall records a call to Execute
type ExecutorCall struct {
	Agent  sdk.AccAddress
	Action Action
}

// Executor executes mock actions. A set action writes to the mock store, which makes it
// possible to observe whether the state of an action was kept.
type Executor struct {
	storeKey storetypes.StoreKey

	Calls []ExecutorCall
}

// NewExecutor creates a new Executor writing to the store of storeKey
func NewExecutor(storeKey storetypes.StoreKey) *Executor {
	return &Executor{storeKey: storeKey}
}

// Execute implements the proxy Executor interface
func (e *Executor) Execute(ctx sdk.Context, agent sdk.AccAddress, action json.RawMessage) ([]byte, error) {
	var a Action
	if err := json.Unmarshal(action, &a); err != nil {
		return nil, errorsmod.Wrap(ErrMockAction, err.Error())
	}

	e.Calls = append(e.Calls, ExecutorCall{Agent: agent, Action: a})

	switch a.Op {
	case OpOK:
		return []byte(a.Value), nil
	case OpSet:
		ctx.KVStore(e.storeKey).Set([]byte(a.Key), []byte(a.Value))
		return []byte(a.Value), nil
	case OpFail:
		return nil, errorsmod.Wrap(ErrMockAction, a.Value)
	case OpBurnGas:
		ctx.GasMeter().ConsumeGas(a.Gas, "mock burn gas")
		return nil, nil
	case OpPanic:
		panic(a.Value)
	default:
		return nil, errorsmod.Wrapf(ErrMockAction, "unknown op %s", a.Op)
	}
}

// Get returns the value a set action wrote under key.
func (e *Executor) Get(ctx sdk.Context, key string) []byte {
	return ctx.KVStore(e.storeKey).Get([]byte(key))
}

// NewAction returns the encoded action.
func NewAction(op, key, value string) json.RawMessage {
	bz, err := json.Marshal(Action{Op: op, Key: key, Value: value})
	if err != nil {
		panic(fmt.Errorf("cannot encode mock action: %w", err))
	}
	return bz
}

// OKAction returns an action returning value.
func OKAction(value string) json.RawMessage {
	return NewAction(OpOK, "", value)
}

// SetAction returns an action writing value under key.
func SetAction(key, value string) json.RawMessage {
	return NewAction(OpSet, key, value)
}

// FailAction returns an action failing with msg.
func FailAction(msg string) json.RawMessage {
	return NewAction(OpFail, "", msg)
}

// PanicAction returns an action panicking with msg.
func PanicAction(msg string) json.RawMessage {
	return NewAction(OpPanic, "", msg)
}

// BurnGasAction returns an action consuming gas.
func BurnGasAction(gas uint64) json.RawMessage {
	bz, err := json.Marshal(Action{Op: OpBurnGas, Gas: gas})
	if err != nil {
		panic(fmt.Errorf("cannot encode mock action: %w", err))
	}
	return bz
}
