package ibctesting

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ChainIDPrefix prefixes the chain ID of every TestChain.
const ChainIDPrefix = "polytone"

var genesisTime = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

// Coordinator drives N TestChain's forward on a shared clock. Packet timeouts are checked
// against this clock, so moving it is how tests expire requests.
type Coordinator struct {
	*testing.T

	CurrentTime time.Time
	Chains      map[string]*TestChain
}

// NewCoordinator creates n TestChain's starting at the same genesis time.
func NewCoordinator(t *testing.T, n int) *Coordinator {
	t.Helper()

	coord := &Coordinator{
		T:           t,
		CurrentTime: genesisTime,
		Chains:      make(map[string]*TestChain, n),
	}

	for i := 1; i <= n; i++ {
		chainID := GetChainID(i)
		coord.Chains[chainID] = NewTestChain(t, coord, chainID)
	}

	return coord
}

// IncrementTimeBy advances the shared clock and moves every chain to a new block at that time.
func (coord *Coordinator) IncrementTimeBy(increment time.Duration) {
	require.Positive(coord.T, increment, "time only moves forward")

	coord.CurrentTime = coord.CurrentTime.Add(increment).UTC()
	for _, chain := range coord.Chains {
		chain.NextBlock()
	}
}

// GetChain returns the TestChain with the given chainID and fails the test if it does not exist.
func (coord *Coordinator) GetChain(chainID string) *TestChain {
	chain, found := coord.Chains[chainID]
	require.True(coord.T, found, "%s chain does not exist", chainID)
	return chain
}

// GetChainID returns the chainID used for the provided index.
func GetChainID(index int) string {
	return ChainIDPrefix + "-" + strconv.Itoa(index)
}
