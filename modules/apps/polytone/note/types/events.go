package types

// Note events
const (
	EventTypeSend             = "polytone_note_send"
	EventTypeCallback         = "polytone_note_callback"
	EventTypeCallbackDelivery = "polytone_note_callback_delivery"
	EventTypeChannelConnect   = "polytone_note_channel_connect"

	AttributeKeyInitiator       = "initiator"
	AttributeKeyKind            = "kind"
	AttributeKeyChannelID       = "channel_id"
	AttributeKeyConnectionID    = "connection_id"
	AttributeKeyRemotePort      = "remote_port"
	AttributeKeySequence        = "sequence"
	AttributeKeyPacketSequence  = "packet_sequence"
	AttributeKeyReceiver        = "receiver"
	AttributeKeyResult          = "result"
	AttributeKeySuccess         = "success"
	AttributeKeyExecutedBy      = "executed_by"
	AttributeKeyDeliveryError   = "callback_error"
	AttributeValueResultAck     = "ack"
	AttributeValueResultTimeout = "timeout"
)
