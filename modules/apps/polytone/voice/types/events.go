package types

// Voice events
const (
	EventTypePacket      = "polytone_voice_packet"
	EventTypeChannelOpen = "polytone_voice_channel_open"

	AttributeKeySender             = "sender"
	AttributeKeyKind               = "kind"
	AttributeKeyProxy              = "proxy"
	AttributeKeyConnectionID       = "connection_id"
	AttributeKeyCounterpartyPortID = "counterparty_port_id"
	AttributeKeyChannelID          = "channel_id"
	AttributeKeySequence           = "sequence"
	AttributeKeyAckSuccess         = "success"
	AttributeKeyAckError           = "error"
)
