package mock

import (
	"errors"

	"cosmossdk.io/core/address"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ address.Codec = TestAddressCodec{}

// TestAddressCodec accepts bech32 addresses with the configured account prefix and hex encoded addresses.
type TestAddressCodec struct{}

// StringToBytes implements address.Codec
func (TestAddressCodec) StringToBytes(text string) ([]byte, error) {
	hexBytes, err := sdk.AccAddressFromHexUnsafe(text)
	if err == nil && len(hexBytes) > 0 {
		return hexBytes, nil
	}

	bech32Bytes, err := sdk.AccAddressFromBech32(text)
	if err == nil {
		return bech32Bytes, nil
	}

	return nil, errors.New("invalid address format")
}

// BytesToString implements address.Codec
func (TestAddressCodec) BytesToString(bz []byte) (string, error) {
	if len(bz) == 0 {
		return "", errors.New("empty address")
	}
	return sdk.AccAddress(bz).String(), nil
}
