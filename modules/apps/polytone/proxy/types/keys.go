package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the proxy submodule name
	ModuleName = "polytoneproxy"

	// StoreKey is the store key string for the proxy submodule
	StoreKey = ModuleName

	// LabelPrefix is prepended to the remote sender to label a new agent
	LabelPrefix = "polytone-proxy"
)

var (
	// ParamsKey is the prefix under which the proxy params are stored
	ParamsKey = collections.NewPrefix(0)
	// AgentsKey is the prefix for agent address to agent info
	AgentsKey = collections.NewPrefix(1)
	// CollectorsKey is the prefix for agent address to in-flight collector
	CollectorsKey = collections.NewPrefix(2)
)
