package types

import (
	"time"

	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the note submodule name
	ModuleName = "polytonenote"

	// PortID is the default port id that the note submodule binds to
	PortID = ModuleName

	// StoreKey is the store key string for the note submodule
	StoreKey = ModuleName

	// DefaultCallbackGasLimit is the default gas available to deliver a single callback
	DefaultCallbackGasLimit uint64 = 1_000_000

	// DefaultTimeout is the default relative packet timeout
	DefaultTimeout = 10 * time.Minute

	// MaxTimeout is the largest relative packet timeout a request may ask for
	MaxTimeout = 7 * 24 * time.Hour
)

var (
	// PairKey is the prefix under which the (connection, remote port) pair is stored
	PairKey = collections.NewPrefix(0)
	// ActiveChannelKey is the prefix under which the open channel is stored
	ActiveChannelKey = collections.NewPrefix(1)
	// ControllerKey is the prefix under which the controller address is stored
	ControllerKey = collections.NewPrefix(2)
	// CallbackGasLimitKey is the prefix under which the callback gas limit is stored
	CallbackGasLimitKey = collections.NewPrefix(3)
	// SequenceKey is the prefix under which the local send counter is stored
	SequenceKey = collections.NewPrefix(4)
	// PendingCallbacksKey is the prefix for sequence to pending callback
	PendingCallbacksKey = collections.NewPrefix(5)
	// PacketSequencesKey is the prefix for (channel, packet sequence) to sequence
	PacketSequencesKey = collections.NewPrefix(6)
	// LocalToRemoteKey is the prefix for local initiator to remote proxy address
	LocalToRemoteKey = collections.NewPrefix(7)
)
