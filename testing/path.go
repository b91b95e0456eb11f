package ibctesting

import (
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// Path contains two endpoints representing two chains connected over IBC. EndpointA is the note
// of chain A and EndpointB the voice of chain B.
type Path struct {
	EndpointA *Endpoint
	EndpointB *Endpoint
}

// NewPath constructs an endpoint for the note of chainA and the voice of chainB. The counterparty
// of each endpoint is set.
func NewPath(chainA, chainB *TestChain) *Path {
	endpointA := NewEndpoint(chainA, NewNoteChannelConfig())
	endpointB := NewEndpoint(chainB, NewVoiceChannelConfig())

	endpointA.Counterparty = endpointB
	endpointB.Counterparty = endpointA

	return &Path{
		EndpointA: endpointA,
		EndpointB: endpointB,
	}
}

// Setup opens the channel with a handshake started by the note.
func (path *Path) Setup() {
	path.EndpointA.Chain.TB.Helper()

	path.requireNoError(path.EndpointA.ChanOpenInit())
	path.requireNoError(path.EndpointB.ChanOpenTry())
	path.requireNoError(path.EndpointA.ChanOpenAck())
	path.requireNoError(path.EndpointB.ChanOpenConfirm())
}

// SetupFromVoice opens the channel with a handshake started by the voice.
func (path *Path) SetupFromVoice() {
	path.EndpointA.Chain.TB.Helper()

	path.requireNoError(path.EndpointB.ChanOpenInit())
	path.requireNoError(path.EndpointA.ChanOpenTry())
	path.requireNoError(path.EndpointB.ChanOpenAck())
	path.requireNoError(path.EndpointA.ChanOpenConfirm())
}

// RelayPacket relays a packet sent by the note to the voice and its acknowledgement back. The
// acknowledgement is returned.
func (path *Path) RelayPacket(packet channeltypes.Packet) ([]byte, error) {
	ack, err := path.EndpointB.RecvPacket(packet)
	if err != nil {
		return nil, err
	}

	if err := path.EndpointA.AcknowledgePacket(packet, ack); err != nil {
		return nil, err
	}

	return ack, nil
}

// RelayLastPacket relays the last packet sent by the note of chain A.
func (path *Path) RelayLastPacket() ([]byte, error) {
	packet, found := path.EndpointA.LastSentPacket()
	if !found {
		return nil, channeltypes.ErrInvalidPacket
	}
	return path.RelayPacket(packet)
}

func (path *Path) requireNoError(err error) {
	if err != nil {
		path.EndpointA.Chain.TB.Fatalf("channel handshake failed: %s", err)
	}
}
