package types

import (
	"fmt"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// Pair is the (connection, remote port) a note is bound to once its first channel connects.
type Pair struct {
	ConnectionID string `json:"connection_id" yaml:"connection_id"`
	RemotePort   string `json:"remote_port" yaml:"remote_port"`
}

// NewPair creates a new Pair instance
func NewPair(connectionID, remotePort string) Pair {
	return Pair{
		ConnectionID: connectionID,
		RemotePort:   remotePort,
	}
}

// Validate performs a basic validation of the pair identifiers
func (p Pair) Validate() error {
	if err := host.ConnectionIdentifierValidator(p.ConnectionID); err != nil {
		return err
	}
	return host.PortIdentifierValidator(p.RemotePort)
}

// String implements fmt.Stringer
func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.ConnectionID, p.RemotePort)
}
