package mock

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// AccountKeeper is an in-memory account store.
type AccountKeeper struct {
	accounts      map[string]sdk.AccountI
	accountNumber uint64
}

// NewAccountKeeper creates an empty AccountKeeper
func NewAccountKeeper() *AccountKeeper {
	return &AccountKeeper{accounts: make(map[string]sdk.AccountI)}
}

// NewAccountWithAddress returns a new base account with the next account number. The account is not stored.
func (ak *AccountKeeper) NewAccountWithAddress(_ context.Context, addr sdk.AccAddress) sdk.AccountI {
	acc := authtypes.NewBaseAccountWithAddress(addr)
	acc.AccountNumber = ak.accountNumber
	ak.accountNumber++
	return acc
}

// GetAccount returns the stored account, or nil.
func (ak *AccountKeeper) GetAccount(_ context.Context, addr sdk.AccAddress) sdk.AccountI {
	return ak.accounts[addr.String()]
}

// SetAccount stores an account.
func (ak *AccountKeeper) SetAccount(_ context.Context, acc sdk.AccountI) {
	ak.accounts[acc.GetAddress().String()] = acc
}
