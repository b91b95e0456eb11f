package types

import (
	"crypto/sha256"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

const (
	// DefaultBlockMaxGas is the default per block compute budget
	DefaultBlockMaxGas uint64 = 100_000_000
)

// DefaultProxyCodeHash is the code fingerprint proxies are derived from by default
var DefaultProxyCodeHash = sha256.Sum256([]byte("polytone-proxy"))

// Params defines the parameters of the voice submodule.
type Params struct {
	// ProxyCodeHash fingerprints the agent code proxy addresses are derived from
	ProxyCodeHash []byte `json:"proxy_code_hash" yaml:"proxy_code_hash"`
	// BlockMaxGas is the compute budget of a block, the gas available to a packet is this minus the ack reserve
	BlockMaxGas uint64 `json:"block_max_gas" yaml:"block_max_gas"`
	// AllowQueries restricts the query paths a remote sender may use. An empty list allows every path.
	AllowQueries []string `json:"allow_queries,omitempty" yaml:"allow_queries,omitempty"`
}

// NewParams creates a new parameter configuration for the voice submodule
func NewParams(proxyCodeHash []byte, blockMaxGas uint64, allowQueries []string) Params {
	return Params{
		ProxyCodeHash: proxyCodeHash,
		BlockMaxGas:   blockMaxGas,
		AllowQueries:  allowQueries,
	}
}

// DefaultParams is the default parameter configuration for the voice submodule
func DefaultParams() Params {
	return NewParams(DefaultProxyCodeHash[:], DefaultBlockMaxGas, nil)
}

// ComputeBudget returns the gas available to execute a single packet.
func (p Params) ComputeBudget() uint64 {
	if p.BlockMaxGas <= polytonetypes.AckGasReserve {
		return 0
	}
	return p.BlockMaxGas - polytonetypes.AckGasReserve
}

// Validate validates all voice submodule parameters
func (p Params) Validate() error {
	if len(p.ProxyCodeHash) == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "proxy code hash cannot be empty")
	}

	if p.BlockMaxGas <= polytonetypes.AckGasReserve {
		return errorsmod.Wrapf(ErrInvalidParams, "block max gas must exceed the ack gas reserve of %d, got %d", polytonetypes.AckGasReserve, p.BlockMaxGas)
	}

	for _, path := range p.AllowQueries {
		if strings.TrimSpace(path) == "" {
			return errorsmod.Wrap(ErrInvalidParams, fmt.Sprintf("allow queries must not contain empty strings: %s", p.AllowQueries))
		}
	}

	return nil
}
