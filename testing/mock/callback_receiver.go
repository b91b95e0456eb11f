package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	notetypes "github.com/polytone/polytone-go/modules/apps/polytone/note/types"
)

// Delivery records a callback handed to the CallbackReceiver
type Delivery struct {
	Receiver string
	Message  notetypes.CallbackMessage
}

// CallbackReceiver records the callbacks it receives. Deliveries to receivers listed in
// Failing fail with MockApplicationCallbackError, those listed in Panicking panic and those
// listed in GasHungry consume all their gas.
type CallbackReceiver struct {
	Deliveries []Delivery

	Failing   map[string]bool
	Panicking map[string]bool
	GasHungry map[string]bool
}

// NewCallbackReceiver creates a new CallbackReceiver accepting every callback
func NewCallbackReceiver() *CallbackReceiver {
	return &CallbackReceiver{
		Failing:   make(map[string]bool),
		Panicking: make(map[string]bool),
		GasHungry: make(map[string]bool),
	}
}

// OnCallback implements the note CallbackReceiver interface
func (r *CallbackReceiver) OnCallback(ctx sdk.Context, receiver string, msg notetypes.CallbackMessage) error {
	r.Deliveries = append(r.Deliveries, Delivery{Receiver: receiver, Message: msg})

	switch {
	case r.Panicking[receiver]:
		panic("mock callback panic")
	case r.GasHungry[receiver]:
		ctx.GasMeter().ConsumeGas(ctx.GasMeter().Limit()+1, "mock callback")
		return nil
	case r.Failing[receiver]:
		return MockApplicationCallbackError
	default:
		return nil
	}
}

// LastDelivery returns the last callback delivered.
func (r *CallbackReceiver) LastDelivery() (Delivery, bool) {
	if len(r.Deliveries) == 0 {
		return Delivery{}, false
	}
	return r.Deliveries[len(r.Deliveries)-1], true
}
