package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the voice submodule name
	ModuleName = "polytonevoice"

	// PortID is the default port id that the voice submodule binds to
	PortID = ModuleName

	// StoreKey is the store key string for the voice submodule
	StoreKey = ModuleName
)

var (
	// ParamsKey is the prefix under which the voice params are stored
	ParamsKey = collections.NewPrefix(0)
	// ChannelConnectionsKey is the prefix for channel id to connection id
	ChannelConnectionsKey = collections.NewPrefix(1)
	// SenderToProxyKey is the prefix for (connection, counterparty port, sender) to proxy address
	SenderToProxyKey = collections.NewPrefix(2)
)
