package types

// Proxy events
const (
	EventTypeProvisionAgent = "provision_agent"
	EventTypeExecuteBatch   = "execute_batch"

	AttributeKeyAgent        = "agent"
	AttributeKeyInstantiator = "instantiator"
	AttributeKeyLabel        = "label"
	AttributeKeyAdopted      = "adopted"
	AttributeKeyBatchSize    = "batch_size"
	AttributeKeySuccess      = "success"
	AttributeKeyFailedIndex  = "failed_index"
	AttributeKeyError        = "error"
)
