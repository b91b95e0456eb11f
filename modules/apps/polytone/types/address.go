package types

import (
	"crypto/sha512"
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	ibcerrors "github.com/polytone/polytone-go/internal/errors"
)

const (
	// ProxySaltLength is the length of the salt returned by ProxySalt
	ProxySaltLength = sha512.Size

	// MaxSaltLength is the largest salt accepted by PredictableAddressDeriver
	MaxSaltLength = 64
)

// ProxySalt returns the salt identifying a remote sender: the SHA-512 digest of its length
// prefixed connection, counterparty port and sender address. Length prefixing keeps distinct
// triples with the same concatenation apart.
func ProxySalt(connectionID, counterpartyPortID, sender string) []byte {
	hasher := sha512.New()
	hasher.Write(lengthPrefix([]byte(connectionID)))
	hasher.Write(lengthPrefix([]byte(counterpartyPortID)))
	hasher.Write(lengthPrefix([]byte(sender)))
	return hasher.Sum(nil)
}

// AddressDeriver computes the deterministic address an agent will be created at.
type AddressDeriver interface {
	DeriveAddress(codeHash []byte, creator sdk.AccAddress, salt []byte) (sdk.AccAddress, error)
}

var _ AddressDeriver = PredictableAddressDeriver{}

// PredictableAddressDeriver derives addresses from the agent code fingerprint, the creating
// account and a salt, so that the address is known before the agent exists.
type PredictableAddressDeriver struct{}

// DeriveAddress implements AddressDeriver.
func (PredictableAddressDeriver) DeriveAddress(codeHash []byte, creator sdk.AccAddress, salt []byte) (sdk.AccAddress, error) {
	if len(codeHash) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidCodeHash, "code hash cannot be empty")
	}
	if creator.Empty() {
		return nil, errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "creator cannot be empty")
	}
	if len(salt) == 0 || len(salt) > MaxSaltLength {
		return nil, errorsmod.Wrapf(ErrInvalidSalt, "salt length must be between 1 and %d, got %d", MaxSaltLength, len(salt))
	}

	key := make([]byte, 0, 3*8+len(codeHash)+len(creator)+len(salt))
	key = append(key, lengthPrefix(codeHash)...)
	key = append(key, lengthPrefix(creator)...)
	key = append(key, lengthPrefix(salt)...)

	return sdk.AccAddress(address.Module(ModuleName, key)), nil
}

func lengthPrefix(bz []byte) []byte {
	prefixed := make([]byte, 8+len(bz))
	binary.BigEndian.PutUint64(prefixed, uint64(len(bz)))
	copy(prefixed[8:], bz)
	return prefixed
}
